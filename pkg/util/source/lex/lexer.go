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
package lex

import (
	"slices"

	"github.com/consensys/go-bitcalc/pkg/util"
	"github.com/consensys/go-bitcalc/pkg/util/source"
)

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag}
}

// Lexer tokenises a given input on demand, such that nothing beyond the next
// token is ever examined.  Rules are tried in order, with the first match
// winning.  Tokens whose tag is ignored (e.g. whitespace) are skipped over
// rather than returned.
type Lexer[T any] struct {
	items []T
	// Index of the first item not yet consumed.
	index int
	rules []LexRule[T]
	// Tags of tokens which are discarded.
	ignored []uint
	// Token matched at the current index, if any.
	peeked util.Option[Token]
	// Set once the end of input has been consumed.
	done bool
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{
		items:  input,
		rules:  rules,
		peeked: util.None[Token](),
	}
}

// Ignore marks tokens with any of the given tags to be discarded.
func (p *Lexer[T]) Ignore(tags ...uint) *Lexer[T] {
	p.ignored = append(p.ignored, tags...)
	return p
}

// Index returns the index of the next item to be examined.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items from the original sequence are yet to be
// consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(len(p.items) - p.index)
}

// Peek returns the next token without consuming it, or None when either the
// end of input has been consumed or no rule matches.
func (p *Lexer[T]) Peek() util.Option[Token] {
	for p.peeked.IsEmpty() && !p.done {
		tok, ok := p.match()
		//
		if !ok {
			break
		} else if tok.Span.Length() > 0 && slices.Contains(p.ignored, tok.Kind) {
			p.index = tok.Span.End()
			continue
		}
		//
		p.peeked = util.Some(tok)
	}
	//
	return p.peeked
}

// HasNext checks whether or not there is another token to consume.
func (p *Lexer[T]) HasNext() bool {
	return p.Peek().HasValue()
}

// Stuck checks whether the lexer has stopped before the end of its input.  This
// arises when no rule matches the items at the current index, and indicates
// the input contains unknown text.
func (p *Lexer[T]) Stuck() bool {
	return !p.HasNext() && p.Remaining() != 0
}

// Next consumes and returns the next token.  This panics if there is no next
// token, hence HasNext should be checked first.
func (p *Lexer[T]) Next() Token {
	next := p.Peek().Unwrap()
	p.peeked = util.None[Token]()
	// A token which consumes nothing can only be the end of input.
	if next.Span.Length() == 0 {
		p.done = true
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Find the first rule matching at the current index.
func (p *Lexer[T]) match() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			return Token{r.tag, source.NewSpan(p.index, end)}, true
		}
	}
	//
	return Token{}, false
}
