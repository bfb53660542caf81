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
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/token"
	"github.com/consensys/go-bitcalc/pkg/util/assert"
	"github.com/consensys/go-bitcalc/pkg/util/source"
)

func TestLexicalError_Report(t *testing.T) {
	err := NewLexicalError(source.NewSpan(4, 5), token.Position{Line: 1, Column: 5})
	//
	assert.Equal(t, "Scanner Error: at line 1 char 5", err.Report())
}

func TestSyntaxError_Report(t *testing.T) {
	found := token.Token{Kind: token.EQUALS, Span: source.NewSpan(4, 5), Position: token.Position{Line: 1, Column: 5}}
	err := NewSyntaxError(found, token.NewSet(token.LPAREN, token.ID, token.BINARY))
	//
	assert.Equal(t, "Parser Error: expected binary literal, identifier or '(', found '=' at line 1 char 5",
		err.Report())
	assert.Equal(t, token.EQUALS, err.Found)
}

func TestUndefinedError_Report(t *testing.T) {
	id := token.Token{Kind: token.ID, Span: source.NewSpan(6, 7), Position: token.Position{Line: 2, Column: 7}}
	err := NewUndefinedError(id, "y")
	//
	assert.Equal(t, "Evaluation Error: undefined identifier 'y' at line 2 char 7", err.Report())
	assert.Equal(t, source.NewSpan(6, 7), err.Span())
}

func TestError_Unwrap(t *testing.T) {
	var (
		diagnostic Error
		id         = token.Token{Kind: token.ID, Position: token.Position{Line: 1, Column: 1}}
		wrapped    = fmt.Errorf("prog.bc: %w", NewUndefinedError(id, "x"))
	)
	//
	assert.True(t, errors.As(wrapped, &diagnostic))
	assert.Equal(t, token.Position{Line: 1, Column: 1}, diagnostic.Position())
}
