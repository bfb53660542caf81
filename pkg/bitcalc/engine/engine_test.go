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
	"errors"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/diag"
	"github.com/consensys/go-bitcalc/pkg/bitcalc/token"
	"github.com/consensys/go-bitcalc/pkg/util/assert"
	"github.com/consensys/go-bitcalc/pkg/util/source"
)

// ============================================================================
// Valid programs
// ============================================================================

func TestEngine_Empty(t *testing.T) {
	checkOutput(t, "")
	checkOutput(t, "  { nothing to see here }\n")
}

func TestEngine_Literal_01(t *testing.T) {
	checkOutput(t, "print 1", "1")
	checkOutput(t, "print 0", "0")
	checkOutput(t, "print 0000", "0")
	checkOutput(t, "print 00101", "101")
}

func TestEngine_Literal_02(t *testing.T) {
	// Literals wider than any machine word.
	wide := "1" + strings.Repeat("0", 200) + "1"
	checkOutput(t, "print "+wide, wide)
	checkOutput(t, "print "+wide+" and 1", "1")
	checkOutput(t, "print "+wide+" xor "+wide, "0")
}

func TestEngine_RoundTrip(t *testing.T) {
	checkOutput(t, "x = 0101 print x", "101")
	checkOutput(t, "x = 000 print x", "0")
}

func TestEngine_Precedence_01(t *testing.T) {
	checkOutput(t, "print 1 and 0 or 1", "1")
	checkOutput(t, "print 1 or 1 xor 1", "0")
}

func TestEngine_Precedence_02(t *testing.T) {
	checkOutput(t, "print (1 or 0) and 0", "0")
	checkOutput(t, "print 1 or 0 and 0", "1")
	checkOutput(t, "print 1 xor 1 or 1", "0")
	checkOutput(t, "print (1 xor 1) or 1", "1")
}

func TestEngine_Operators(t *testing.T) {
	checkOutput(t, "print 1100 and 1010", "1000")
	checkOutput(t, "print 1100 or 1010", "1110")
	checkOutput(t, "print 1100 xor 1010", "110")
	checkOutput(t, "print 1 and 1 and 0", "0")
	checkOutput(t, "print 1 or 10 or 100", "111")
	checkOutput(t, "print 1 xor 11 xor 111", "101")
}

func TestEngine_Parentheses(t *testing.T) {
	checkOutput(t, "print ((((1))))", "1")
	checkOutput(t, "print (1100 xor (1010 and (1 or 10)))", "1110")
}

func TestEngine_Assignment_01(t *testing.T) {
	checkOutput(t, "x = 101 print x", "101")
	checkOutput(t, "x = 101 x = 1 print x", "1")
	checkOutput(t, "x = 101 y = x xor 1 print y print x", "100", "101")
}

func TestEngine_Assignment_02(t *testing.T) {
	// Self-referential update
	checkOutput(t, "x = 1 x = x or 10 x = x or 100 print x", "111")
}

func TestEngine_Assignment_03(t *testing.T) {
	// Identifiers are case sensitive
	checkOutput(t, "x = 1 X = 0 print x print X", "1", "0")
}

func TestEngine_Print(t *testing.T) {
	// print is case-insensitive, and can also not be used as an identifier.
	checkOutput(t, "PRINT 1 Print 10", "1", "10")
}

func TestEngine_CommentsAndWhitespace(t *testing.T) {
	plain := "x = 1100 print x and 1010 or 1"
	noisy := "{start}x{a}={b}1100\n\t print{c}x   and\n\n1010 {d} or {\n} 1 {end}"
	//
	checkOutput(t, plain, "1001")
	checkOutput(t, noisy, "1001")
}

// ============================================================================
// Invalid programs
// ============================================================================

func TestEngine_Syntax_01(t *testing.T) {
	checkError(t, "x = = 1", "Parser Error: expected binary literal, identifier or '(', found '=' at line 1 char 5")
}

func TestEngine_Syntax_02(t *testing.T) {
	checkError(t, "x 1", "Parser Error: expected '=', found binary literal at line 1 char 3")
}

func TestEngine_Syntax_03(t *testing.T) {
	checkError(t, "print (1 or 0", "Parser Error: expected ')', found end of input at line 1 char 14")
}

func TestEngine_Syntax_04(t *testing.T) {
	checkError(t, "print 1 )",
		"Parser Error: expected identifier, 'print' or end of input, found ')' at line 1 char 9")
}

func TestEngine_Syntax_05(t *testing.T) {
	checkError(t, "print 1 1",
		"Parser Error: expected identifier, 'and', 'or', 'xor', ')', 'print' or end of input, found binary literal at line 1 char 9")
}

func TestEngine_Syntax_06(t *testing.T) {
	checkError(t, "print", "Parser Error: expected binary literal, identifier or '(', found end of input at line 1 char 6")
}

func TestEngine_Syntax_07(t *testing.T) {
	checkError(t, "1 = x", "Parser Error: expected identifier, 'print' or end of input, found binary literal at line 1 char 1")
}

func TestEngine_Syntax_08(t *testing.T) {
	checkError(t, "print 1 and\nor 1",
		"Parser Error: expected binary literal, identifier or '(', found 'or' at line 2 char 1")
}

func TestEngine_Lexical_01(t *testing.T) {
	checkError(t, "x = 1\nprint x and 2", "Scanner Error: at line 2 char 13")
}

func TestEngine_Lexical_02(t *testing.T) {
	checkError(t, "x = 1 { unterminated", "Scanner Error: at line 1 char 7")
}

func TestEngine_Undefined_01(t *testing.T) {
	checkError(t, "print y", "Evaluation Error: undefined identifier 'y' at line 1 char 7")
}

func TestEngine_Undefined_02(t *testing.T) {
	// Assignments are not visible to earlier statements, nor to their own
	// right-hand side.
	checkError(t, "print x x = 1", "Evaluation Error: undefined identifier 'x' at line 1 char 7")
	checkError(t, "x = x", "Evaluation Error: undefined identifier 'x' at line 1 char 5")
}

func TestEngine_ErrorAborts(t *testing.T) {
	var out strings.Builder
	// Statements before the error are committed, nothing after it runs.
	err := Execute(source.NewSourceFile("test", []byte("print 1 print 10 print 1 1 print 11")), &out)
	//
	assert.True(t, err != nil)
	assert.Equal(t, "1\n10\n", out.String())
}

func TestEngine_ErrorKinds(t *testing.T) {
	var (
		lexErr *diag.LexicalError
		synErr *diag.SyntaxError
		undErr *diag.UndefinedError
	)
	//
	assert.True(t, errors.As(execute("print 3"), &lexErr))
	assert.True(t, errors.As(execute("print )"), &synErr))
	assert.True(t, errors.As(execute("print z"), &undErr))
	assert.Equal(t, token.RPAREN, synErr.Found)
	assert.Equal(t, "z", undErr.Name)
}

// ============================================================================
// Sessions
// ============================================================================

func TestSession_01(t *testing.T) {
	var (
		out     strings.Builder
		session = NewSession(&out)
	)
	//
	assert.NoError(t, session.Execute(source.NewSourceFile("1", []byte("x = 1"))))
	assert.NoError(t, session.Execute(source.NewSourceFile("2", []byte("y = x or 10"))))
	// An error in one fragment leaves earlier assignments in place
	assert.True(t, session.Execute(source.NewSourceFile("3", []byte("x = 0 y = ("))) != nil)
	assert.NoError(t, session.Execute(source.NewSourceFile("4", []byte("print x print y"))))
	//
	assert.Equal(t, "0\n11\n", out.String())
	assert.Equal(t, []string{"x", "y"}, session.Symbols().Names())
}

// ============================================================================
// Reference evaluation
// ============================================================================

// Check random operator chains, without parentheses, against an evaluator
// which applies precedence by splitting on the loosest operator first.
func TestEngine_Reference_Flat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 500; i++ {
		var (
			n        = 1 + rng.Intn(8)
			operands = make([]*big.Int, n)
			ops      = make([]string, n-1)
			builder  strings.Builder
		)
		//
		builder.WriteString("print ")
		//
		for j := range n {
			operands[j] = randomValue(rng)
			//
			if j > 0 {
				ops[j-1] = []string{"and", "or", "xor"}[rng.Intn(3)]
				builder.WriteString(" " + ops[j-1] + " ")
			}
			//
			builder.WriteString(operands[j].Text(2))
		}
		//
		expected := evalFlat(operands, ops)
		checkOutput(t, builder.String(), expected.Text(2))
	}
}

// Check random fully parenthesised expressions over variables and literals
// against a recursive reference evaluator.
func TestEngine_Reference_Nested(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	//
	for i := 0; i < 200; i++ {
		var (
			env     = map[string]*big.Int{"a": randomValue(rng), "b": randomValue(rng), "c1": randomValue(rng)}
			builder strings.Builder
		)
		//
		for _, name := range []string{"a", "b", "c1"} {
			builder.WriteString(name + " = " + env[name].Text(2) + "\n")
		}
		//
		text, expected := randomExpr(rng, env, 4)
		builder.WriteString("print " + text)
		//
		checkOutput(t, builder.String(), expected.Text(2))
	}
}

func randomValue(rng *rand.Rand) *big.Int {
	var val big.Int
	// Widths well beyond 64 bits
	bits := make([]byte, 1+rng.Intn(100))
	//
	for i := range bits {
		bits[i] = byte('0' + rng.Intn(2))
	}
	//
	val.SetString(string(bits), 2)
	//
	return &val
}

func randomExpr(rng *rand.Rand, env map[string]*big.Int, depth int) (string, *big.Int) {
	if depth == 0 || rng.Intn(3) == 0 {
		if rng.Intn(2) == 0 {
			val := randomValue(rng)
			return val.Text(2), val
		}
		//
		name := []string{"a", "b", "c1"}[rng.Intn(3)]
		//
		return name, new(big.Int).Set(env[name])
	}
	//
	var (
		lt, lv = randomExpr(rng, env, depth-1)
		rt, rv = randomExpr(rng, env, depth-1)
		op     = []string{"and", "or", "xor"}[rng.Intn(3)]
	)
	//
	return "(" + lt + " " + op + " " + rt + ")", apply(op, lv, rv)
}

func evalFlat(operands []*big.Int, ops []string) *big.Int {
	for _, op := range []string{"xor", "or", "and"} {
		for i := len(ops) - 1; i >= 0; i-- {
			if ops[i] == op {
				lhs := evalFlat(operands[:i+1], ops[:i])
				rhs := evalFlat(operands[i+1:], ops[i+1:])
				//
				return apply(op, lhs, rhs)
			}
		}
	}
	// No operators left
	return new(big.Int).Set(operands[0])
}

func apply(op string, lhs, rhs *big.Int) *big.Int {
	switch op {
	case "and":
		return new(big.Int).And(lhs, rhs)
	case "or":
		return new(big.Int).Or(lhs, rhs)
	default:
		return new(big.Int).Xor(lhs, rhs)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func execute(input string) error {
	var out strings.Builder
	//
	return Execute(source.NewSourceFile("test", []byte(input)), &out)
}

func checkOutput(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	var out strings.Builder
	//
	if err := Execute(source.NewSourceFile("test", []byte(input)), &out); err != nil {
		t.Fatalf("%q: unexpected error: %s", input, err)
	}
	//
	actual := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	//
	if out.Len() == 0 {
		actual = nil
	}
	//
	if strings.Join(actual, ",") != strings.Join(expected, ",") || len(actual) != len(expected) {
		t.Fatalf("%q: got %v, expected %v", input, actual, expected)
	}
}

func checkError(t *testing.T, input string, expected string) {
	t.Helper()
	//
	var report diag.Error
	//
	if err := execute(input); err == nil {
		t.Fatalf("%q: expected error %q", input, expected)
	} else if !errors.As(err, &report) {
		t.Fatalf("%q: unexpected error %s", input, err)
	} else {
		assert.Equal(t, expected, report.Report())
	}
}
