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
package diag

import (
	"fmt"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/token"
	"github.com/consensys/go-bitcalc/pkg/util/source"
)

// Error is implemented by every diagnostic which can abort a program.  All
// diagnostics are associated with a position in the source file being
// evaluated.
type Error interface {
	error
	// Span of the source file on which this error is reported.
	Span() source.Span
	// Position of the first character of the span.
	Position() token.Position
	// Report returns the user-facing rendering of this error.
	Report() string
}

// LexicalError arises when the scanner encounters a character sequence which
// cannot begin any token.
type LexicalError struct {
	span     source.Span
	position token.Position
}

// NewLexicalError constructs a lexical error at a given position.
func NewLexicalError(span source.Span, position token.Position) *LexicalError {
	return &LexicalError{span, position}
}

// Span implementation for Error interface.
func (e *LexicalError) Span() source.Span {
	return e.span
}

// Position implementation for Error interface.
func (e *LexicalError) Position() token.Position {
	return e.position
}

// Report implementation for Error interface.
func (e *LexicalError) Report() string {
	return fmt.Sprintf("Scanner Error: at %s", e.position)
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unknown text encountered at %s", e.position)
}

// SyntaxError arises when the lookahead token is not one the grammar permits
// at the current point.
type SyntaxError struct {
	span     source.Span
	position token.Position
	// Kinds which would have been accepted.
	Expected token.Set
	// Kind actually found.
	Found token.Kind
}

// NewSyntaxError constructs a syntax error for an unexpected token.
func NewSyntaxError(found token.Token, expected token.Set) *SyntaxError {
	return &SyntaxError{found.Span, found.Position, expected, found.Kind}
}

// Span implementation for Error interface.
func (e *SyntaxError) Span() source.Span {
	return e.span
}

// Position implementation for Error interface.
func (e *SyntaxError) Position() token.Position {
	return e.position
}

// Message returns the body of this error, naming the expected and found
// token kinds.
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// Report implementation for Error interface.
func (e *SyntaxError) Report() string {
	return fmt.Sprintf("Parser Error: %s at %s", e.Message(), e.position)
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message(), e.position)
}

// UndefinedError arises when an identifier is read before any value has been
// assigned to it.
type UndefinedError struct {
	span     source.Span
	position token.Position
	// Name of the identifier
	Name string
}

// NewUndefinedError constructs an error for the given identifier token.
func NewUndefinedError(id token.Token, name string) *UndefinedError {
	return &UndefinedError{id.Span, id.Position, name}
}

// Span implementation for Error interface.
func (e *UndefinedError) Span() source.Span {
	return e.span
}

// Position implementation for Error interface.
func (e *UndefinedError) Position() token.Position {
	return e.position
}

// Report implementation for Error interface.
func (e *UndefinedError) Report() string {
	return fmt.Sprintf("Evaluation Error: undefined identifier '%s' at %s", e.Name, e.position)
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined identifier '%s' at %s", e.Name, e.position)
}
