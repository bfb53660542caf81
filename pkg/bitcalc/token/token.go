// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"

	"github.com/consensys/go-bitcalc/pkg/util/source"
)

// Kind identifies the lexical class of a token.  The set of kinds is closed.
type Kind uint

// END_OF signals "end of input"
const END_OF Kind = 0

// BINARY signals a binary literal, such as "0101"
const BINARY Kind = 1

// ID signals an identifier
const ID Kind = 2

// AND signals the "and" operator
const AND Kind = 3

// OR signals the "or" operator
const OR Kind = 4

// XOR signals the "xor" operator
const XOR Kind = 5

// EQUALS signals "="
const EQUALS Kind = 6

// LPAREN signals "("
const LPAREN Kind = 7

// RPAREN signals ")"
const RPAREN Kind = 8

// PRINT signals the "print" keyword
const PRINT Kind = 9

// NUM_KINDS is one past the largest token kind.
const NUM_KINDS = 10

var names = [NUM_KINDS]string{
	END_OF: "end of input",
	BINARY: "binary literal",
	ID:     "identifier",
	AND:    "'and'",
	OR:     "'or'",
	XOR:    "'xor'",
	EQUALS: "'='",
	LPAREN: "'('",
	RPAREN: "')'",
	PRINT:  "'print'",
}

func (k Kind) String() string {
	if k < NUM_KINDS {
		return names[k]
	}
	//
	return fmt.Sprintf("kind(%d)", uint(k))
}

// Position identifies a character within a source file by line and column,
// both counting from 1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d char %d", p.Line, p.Column)
}

// Token is a single lexeme produced by the scanner.  The lexeme itself is not
// stored, but can be recovered from the span.
type Token struct {
	Kind Kind
	// Span of the token within the original source file.
	Span source.Span
	// Position of the first character of this token.
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.Position)
}
