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
package main

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
)

// Names which generated programs may assign to.
var names = []string{"a", "b", "c", "x1", "Y", "acc"}

// Operators in increasing order of precedence.
var operators = []string{"xor", "or", "and"}

// Program is a randomly generated sequence of statements.
type Program struct {
	stmts []Stmt
}

// Stmt is either an assignment (when target is non-empty) or a print.
type Stmt struct {
	target string
	expr   Expr
}

// Expr is a generated expression which knows its own value.
type Expr interface {
	// Eval computes the value of this expression in a given environment.
	Eval(env map[string]*big.Int) *big.Int
	// Precedence of the outermost operator, or len(operators) for operands.
	Precedence() int
	fmt.Stringer
}

// Literal is a binary literal, possibly with leading zeros.
type Literal struct {
	digits string
}

// Variable is a reference to a previously assigned name.
type Variable struct {
	name string
}

// Binary applies one of the operators to two expressions.
type Binary struct {
	op  int
	lhs Expr
	rhs Expr
}

// Bracketed is an expression wrapped in (possibly redundant) parentheses.
type Bracketed struct {
	expr Expr
}

// Eval implementation for Expr interface.
func (e *Literal) Eval(_ map[string]*big.Int) *big.Int {
	val, _ := new(big.Int).SetString(e.digits, 2)
	return val
}

// Precedence implementation for Expr interface.
func (e *Literal) Precedence() int { return len(operators) }

func (e *Literal) String() string { return e.digits }

// Eval implementation for Expr interface.
func (e *Variable) Eval(env map[string]*big.Int) *big.Int {
	return new(big.Int).Set(env[e.name])
}

// Precedence implementation for Expr interface.
func (e *Variable) Precedence() int { return len(operators) }

func (e *Variable) String() string { return e.name }

// Eval implementation for Expr interface.
func (e *Binary) Eval(env map[string]*big.Int) *big.Int {
	lhs, rhs := e.lhs.Eval(env), e.rhs.Eval(env)
	//
	switch operators[e.op] {
	case "xor":
		return lhs.Xor(lhs, rhs)
	case "or":
		return lhs.Or(lhs, rhs)
	default:
		return lhs.And(lhs, rhs)
	}
}

// Precedence implementation for Expr interface.
func (e *Binary) Precedence() int { return e.op }

func (e *Binary) String() string {
	// Operators associate to the left, hence a right operand of equal
	// precedence must be bracketed.
	lhs := bracket(e.lhs, e.lhs.Precedence() < e.op)
	rhs := bracket(e.rhs, e.rhs.Precedence() <= e.op)
	//
	return fmt.Sprintf("%s %s %s", lhs, operators[e.op], rhs)
}

// Eval implementation for Expr interface.
func (e *Bracketed) Eval(env map[string]*big.Int) *big.Int { return e.expr.Eval(env) }

// Precedence implementation for Expr interface.
func (e *Bracketed) Precedence() int { return len(operators) }

func (e *Bracketed) String() string { return bracket(e.expr, true) }

func bracket(e Expr, required bool) string {
	if required {
		return fmt.Sprintf("(%s)", e.String())
	}
	//
	return e.String()
}

// Output determines the lines printed by this program, by evaluating its
// statements directly.
func (p *Program) Output() []string {
	var (
		env    = make(map[string]*big.Int)
		output []string
	)
	//
	for _, stmt := range p.stmts {
		val := stmt.expr.Eval(env)
		//
		if stmt.target != "" {
			env[stmt.target] = val
		} else {
			output = append(output, val.Text(2))
		}
	}
	//
	return output
}

func (p *Program) String() string {
	var sb strings.Builder
	//
	for _, stmt := range p.stmts {
		if stmt.target != "" {
			sb.WriteString(fmt.Sprintf("%s = %s\n", stmt.target, stmt.expr))
		} else {
			sb.WriteString(fmt.Sprintf("print %s\n", stmt.expr))
		}
	}
	//
	return sb.String()
}

// Generate a random program where every variable is assigned before use.
func generateProgram(cfg TestGenConfig, rng *rand.Rand) Program {
	var (
		n       = cfg.min_stmts + uint(rng.Intn(int(cfg.max_stmts-cfg.min_stmts+1)))
		defined []string
		stmts   = make([]Stmt, n)
	)
	//
	for i := range stmts {
		expr := generateExpr(cfg, cfg.max_depth, defined, rng)
		// Always finish with a print, so every program has some output
		if i+1 == len(stmts) || rng.Intn(2) == 0 {
			stmts[i] = Stmt{"", expr}
			continue
		}
		//
		target := names[rng.Intn(len(names))]
		stmts[i] = Stmt{target, expr}
		//
		if !contains(defined, target) {
			defined = append(defined, target)
		}
	}
	//
	return Program{stmts}
}

func generateExpr(cfg TestGenConfig, depth uint, defined []string, rng *rand.Rand) Expr {
	if depth == 0 || rng.Intn(3) == 0 {
		return generateOperand(cfg, defined, rng)
	}
	//
	lhs := generateExpr(cfg, depth-1, defined, rng)
	rhs := generateExpr(cfg, depth-1, defined, rng)
	expr := &Binary{rng.Intn(len(operators)), lhs, rhs}
	// Occasionally add redundant brackets
	if rng.Intn(4) == 0 {
		return &Bracketed{expr}
	}
	//
	return expr
}

func generateOperand(cfg TestGenConfig, defined []string, rng *rand.Rand) Expr {
	if len(defined) > 0 && rng.Intn(2) == 0 {
		return &Variable{defined[rng.Intn(len(defined))]}
	}
	//
	digits := make([]byte, 1+rng.Intn(int(cfg.max_width)))
	for i := range digits {
		digits[i] = byte('0' + rng.Intn(2))
	}
	//
	return &Literal{string(digits)}
}

func contains(items []string, item string) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	//
	return false
}
