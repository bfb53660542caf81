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
package scanner

import (
	"strings"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/diag"
	"github.com/consensys/go-bitcalc/pkg/bitcalc/token"
	"github.com/consensys/go-bitcalc/pkg/util/source"
	"github.com/consensys/go-bitcalc/pkg/util/source/lex"
)

// Lexical classes produced by the underlying lexer.  Whitespace and comments
// are discarded, whilst words are split into identifiers and keywords after
// they are matched.
const (
	endOf uint = iota
	whitespace
	comment
	binary
	word
	equals
	lparen
	rparen
)

// Rule for describing whitespace
var spaces lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

// Rule for describing binary literals
var digits lex.Scanner[rune] = lex.Many(lex.Within('0', '1'))

var letter lex.Scanner[rune] = lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'))

var wordRest lex.Scanner[rune] = lex.Many(lex.Or(letter, lex.Within('0', '9')))

// Rule for describing identifiers (and keywords)
var identifier lex.Scanner[rune] = lex.And(letter, wordRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Enclosed('{', '}'), comment),
	lex.Rule(spaces, whitespace),
	lex.Rule(digits, binary),
	lex.Rule(identifier, word),
	lex.Rule(lex.Unit('='), equals),
	lex.Rule(lex.Unit('('), lparen),
	lex.Rule(lex.Unit(')'), rparen),
	lex.Rule(lex.Eof[rune](), endOf),
}

// Mapping of simple lexical classes to token kinds.
var kinds = map[uint]token.Kind{
	endOf:  token.END_OF,
	binary: token.BINARY,
	equals: token.EQUALS,
	lparen: token.LPAREN,
	rparen: token.RPAREN,
}

// Case-sensitive reserved words.
var keywords = map[string]token.Kind{
	"and": token.AND,
	"or":  token.OR,
	"xor": token.XOR,
}

// Scanner is the token source for a single source file.  Tokens are produced
// lazily, one at a time, so that an error late in a file does not prevent
// earlier statements from being evaluated.
type Scanner struct {
	srcfile *source.File
	lexer   *lex.Lexer[rune]
	// Most recently produced token.
	last token.Token
	// Set once end of input has been produced.
	done bool
}

// New constructs a scanner for the given source file.
func New(srcfile *source.File) *Scanner {
	lexer := lex.NewLexer(srcfile.Contents(), rules...).Ignore(whitespace, comment)
	//
	return &Scanner{srcfile, lexer, token.Token{}, false}
}

// Next advances the scanner and returns the next significant token.  Once the
// input is exhausted, END_OF is returned indefinitely.  An error is returned
// if the input contains text which cannot begin any token.
func (s *Scanner) Next() (token.Token, error) {
	if s.done {
		return s.last, nil
	} else if s.lexer.Stuck() {
		return s.last, s.lexicalError()
	}
	//
	next := s.lexer.Next()
	//
	if next.Kind == word {
		s.last = s.token(s.classify(next.Span), next.Span)
	} else {
		s.last = s.token(kinds[next.Kind], next.Span)
	}
	//
	s.done = s.last.Kind == token.END_OF
	//
	return s.last, nil
}

// Position returns the position of the token most recently produced.
func (s *Scanner) Position() token.Position {
	return s.last.Position
}

// Text returns the lexeme of a given token.
func (s *Scanner) Text(tok token.Token) string {
	return s.srcfile.Text(tok.Span)
}

// Determine whether a word is a keyword or an identifier.
func (s *Scanner) classify(span source.Span) token.Kind {
	text := s.srcfile.Text(span)
	//
	if kind, ok := keywords[text]; ok {
		return kind
	} else if strings.EqualFold(text, "print") {
		return token.PRINT
	}
	//
	return token.ID
}

func (s *Scanner) token(kind token.Kind, span source.Span) token.Token {
	line, col := s.srcfile.LineColumn(span.Start())
	//
	return token.Token{Kind: kind, Span: span, Position: token.Position{Line: line, Column: col}}
}

func (s *Scanner) lexicalError() error {
	start := int(s.lexer.Index())
	span := source.NewSpan(start, start+1)
	line, col := s.srcfile.LineColumn(start)
	//
	return diag.NewLexicalError(span, token.Position{Line: line, Column: col})
}
