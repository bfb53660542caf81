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
package engine

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/diag"
	"github.com/consensys/go-bitcalc/pkg/bitcalc/scanner"
	"github.com/consensys/go-bitcalc/pkg/bitcalc/symbol"
	"github.com/consensys/go-bitcalc/pkg/bitcalc/token"
	"github.com/consensys/go-bitcalc/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// TokenSource provides the stream of tokens consumed by the engine.
type TokenSource interface {
	// Next advances and returns the next token.  Once the input is exhausted
	// this returns END_OF indefinitely.
	Next() (token.Token, error)
	// Text returns the lexeme of a given token.
	Text(token.Token) string
}

// Session evaluates one or more source fragments, in order, against a single
// symbol table.  Assignments made by one fragment are visible to all later
// fragments.
type Session struct {
	symbols *symbol.Table
	out     io.Writer
}

// NewSession constructs a session with an empty symbol table, writing the
// output of print statements to the given writer.
func NewSession(out io.Writer) *Session {
	return &Session{symbol.NewTable(), out}
}

// Symbols returns the symbol table of this session.
func (s *Session) Symbols() *symbol.Table {
	return s.symbols
}

// Execute evaluates a given source file within this session.  Evaluation stops
// at the first error, though the effects of statements preceding it remain.
func (s *Session) Execute(srcfile *source.File) error {
	return Run(scanner.New(srcfile), s.symbols, s.out)
}

// Execute evaluates a given source file as a complete program, using a fresh
// symbol table.
func Execute(srcfile *source.File, out io.Writer) error {
	return NewSession(out).Execute(srcfile)
}

// Run evaluates the program provided by a given token source.  Each statement
// is recognised and evaluated in a single pass: the output of a print statement
// is written, and an assignment committed to the symbol table, before the next
// statement is examined.
func Run(src TokenSource, symbols *symbol.Table, out io.Writer) error {
	ctx := &Context{src, token.Token{}, symbols, out, 0}
	// Initialise lookahead
	if err := advance(ctx); err != nil {
		return err
	}
	//
	err := parseStmtList(ctx)
	//
	log.Debugf("evaluated %d statement(s) with %d symbol(s) defined", ctx.statements, symbols.Len())
	//
	return err
}

// Context holds the state threaded through the recursive descent.  The
// lookahead is only ever replaced by advance, whilst the symbol table is the
// only state mutated by evaluation itself.
type Context struct {
	source TokenSource
	// Single token of lookahead
	lookahead token.Token
	symbols   *symbol.Table
	out       io.Writer
	// Number of statements evaluated so far
	statements uint
}

// ============================================================================
// FIRST / FOLLOW sets
// ============================================================================

var (
	firstStmt    = token.NewSet(token.ID, token.PRINT)
	firstOperand = token.NewSet(token.LPAREN, token.ID, token.BINARY)
	// End of input may follow any statement, and hence any expression at the
	// outermost level.
	followExpr   = token.NewSet(token.RPAREN, token.ID, token.PRINT, token.END_OF)
	followTerm   = followExpr.Union(token.NewSet(token.XOR))
	followFactor = followTerm.Union(token.NewSet(token.OR))
)

// ============================================================================
// Statements
// ============================================================================

// StmtList -> Stmt StmtList | ε
func parseStmtList(ctx *Context) error {
	for firstStmt.Contains(ctx.lookahead.Kind) {
		if err := parseStmt(ctx); err != nil {
			return err
		}
		//
		ctx.statements++
	}
	// Accepting state
	if ctx.lookahead.Kind != token.END_OF {
		return diag.NewSyntaxError(ctx.lookahead, firstStmt.Union(token.NewSet(token.END_OF)))
	}
	//
	return nil
}

// Stmt -> id '=' Expr | 'print' Expr
func parseStmt(ctx *Context) error {
	switch ctx.lookahead.Kind {
	case token.ID:
		id, err := match(ctx, token.ID)
		if err != nil {
			return err
		} else if _, err = match(ctx, token.EQUALS); err != nil {
			return err
		}
		//
		val, err := parseExpr(ctx)
		if err != nil {
			return err
		}
		//
		ctx.symbols.Set(ctx.source.Text(id), val)
	case token.PRINT:
		if _, err := match(ctx, token.PRINT); err != nil {
			return err
		}
		//
		val, err := parseExpr(ctx)
		if err != nil {
			return err
		}
		//
		if _, err := fmt.Fprintln(ctx.out, val.Text(2)); err != nil {
			return err
		}
	default:
		return diag.NewSyntaxError(ctx.lookahead, firstStmt)
	}
	//
	return nil
}

// ============================================================================
// Expressions
// ============================================================================

// Expr -> Term ('xor' Term)*
func parseExpr(ctx *Context) (*big.Int, error) {
	acc, err := parseTerm(ctx)
	//
	for err == nil && ctx.lookahead.Kind == token.XOR {
		var rhs *big.Int
		//
		if rhs, err = parseOperator(ctx, token.XOR, parseTerm); err == nil {
			acc.Xor(acc, rhs)
		}
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return acc, follows(ctx, followExpr, token.XOR)
}

// Term -> Factor ('or' Factor)*
func parseTerm(ctx *Context) (*big.Int, error) {
	acc, err := parseFactor(ctx)
	//
	for err == nil && ctx.lookahead.Kind == token.OR {
		var rhs *big.Int
		//
		if rhs, err = parseOperator(ctx, token.OR, parseFactor); err == nil {
			acc.Or(acc, rhs)
		}
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return acc, follows(ctx, followTerm, token.OR)
}

// Factor -> Operand ('and' Operand)*
func parseFactor(ctx *Context) (*big.Int, error) {
	acc, err := parseOperand(ctx)
	//
	for err == nil && ctx.lookahead.Kind == token.AND {
		var rhs *big.Int
		//
		if rhs, err = parseOperator(ctx, token.AND, parseOperand); err == nil {
			acc.And(acc, rhs)
		}
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return acc, follows(ctx, followFactor, token.AND)
}

// Consume a binary operator, followed by its right-hand operand.
func parseOperator(ctx *Context, operator token.Kind, operand func(*Context) (*big.Int, error)) (*big.Int, error) {
	if _, err := match(ctx, operator); err != nil {
		return nil, err
	}
	//
	return operand(ctx)
}

// Operand -> '(' Expr ')' | id | binary-literal
func parseOperand(ctx *Context) (*big.Int, error) {
	switch ctx.lookahead.Kind {
	case token.LPAREN:
		return parseBracketedExpr(ctx)
	case token.ID:
		return parseVariable(ctx)
	case token.BINARY:
		return parseBinary(ctx)
	}
	//
	return nil, diag.NewSyntaxError(ctx.lookahead, firstOperand)
}

func parseBracketedExpr(ctx *Context) (*big.Int, error) {
	if _, err := match(ctx, token.LPAREN); err != nil {
		return nil, err
	}
	//
	val, err := parseExpr(ctx)
	if err != nil {
		return nil, err
	}
	//
	if _, err := match(ctx, token.RPAREN); err != nil {
		return nil, err
	}
	//
	return val, nil
}

func parseVariable(ctx *Context) (*big.Int, error) {
	id, err := match(ctx, token.ID)
	if err != nil {
		return nil, err
	}
	//
	name := ctx.source.Text(id)
	// Undefined variables are an error, not zero.
	if val := ctx.symbols.Get(name); val.HasValue() {
		return val.Unwrap(), nil
	}
	//
	return nil, diag.NewUndefinedError(id, name)
}

func parseBinary(ctx *Context) (*big.Int, error) {
	var val big.Int
	//
	lit, err := match(ctx, token.BINARY)
	if err != nil {
		return nil, err
	}
	//
	if _, ok := val.SetString(ctx.source.Text(lit), 2); !ok {
		// Unreachable for a well-behaved token source.
		return nil, diag.NewSyntaxError(lit, token.NewSet(token.BINARY))
	}
	//
	return &val, nil
}

// ============================================================================
// Helpers
// ============================================================================

// Match consumes the lookahead provided it has the expected kind, returning the
// consumed token.
func match(ctx *Context, kind token.Kind) (token.Token, error) {
	tok := ctx.lookahead
	//
	if tok.Kind != kind {
		return tok, diag.NewSyntaxError(tok, token.NewSet(kind))
	}
	//
	return tok, advance(ctx)
}

// Check the lookahead is in the follow set of the nonterminal just parsed.  The
// operator which would have extended that nonterminal is also reported as
// expected.
func follows(ctx *Context, follow token.Set, operator token.Kind) error {
	if follow.Contains(ctx.lookahead.Kind) {
		return nil
	}
	//
	return diag.NewSyntaxError(ctx.lookahead, follow.Union(token.NewSet(operator)))
}

// Replace the lookahead with the next token from the source.
func advance(ctx *Context) error {
	next, err := ctx.source.Next()
	if err != nil {
		return err
	}
	//
	ctx.lookahead = next
	//
	return nil
}
