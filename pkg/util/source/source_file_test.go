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
package source

import (
	"strings"
	"testing"

	"github.com/consensys/go-bitcalc/pkg/util/assert"
)

func TestLineColumn_00(t *testing.T) {
	checkLineColumn(t, "", 0, 1, 1)
}

func TestLineColumn_01(t *testing.T) {
	checkLineColumn(t, "x = 1", 0, 1, 1)
	checkLineColumn(t, "x = 1", 4, 1, 5)
	checkLineColumn(t, "x = 1", 5, 1, 6)
}

func TestLineColumn_02(t *testing.T) {
	input := "x = 1\nprint x\n"
	checkLineColumn(t, input, 5, 1, 6)
	checkLineColumn(t, input, 6, 2, 1)
	checkLineColumn(t, input, 12, 2, 7)
	checkLineColumn(t, input, 14, 3, 1)
}

func TestLineColumn_03(t *testing.T) {
	// Out of range offsets are clamped.
	checkLineColumn(t, "ab\ncd", 100, 2, 3)
	checkLineColumn(t, "ab\ncd", -1, 1, 1)
}

func TestLineColumn_04(t *testing.T) {
	// Columns count characters, not bytes.
	checkLineColumn(t, "{é} x", 4, 1, 5)
}

func TestLines_01(t *testing.T) {
	file := NewSourceFile("test", []byte("a = 1\n\nprint a"))
	lines := file.Lines()
	//
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "a = 1", lines[0].String())
	assert.Equal(t, "", lines[1].String())
	assert.Equal(t, "print a", lines[2].String())
	assert.Equal(t, 3, lines[2].Number())
	assert.Equal(t, 7, lines[2].Start())
}

func TestFindFirstEnclosingLine_01(t *testing.T) {
	file := NewSourceFile("test", []byte("a = 1\nprint b\n"))
	line := file.FindFirstEnclosingLine(NewSpan(12, 13))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "print b", line.String())
	assert.Equal(t, "b", file.Text(NewSpan(12, 13)))
}

func TestReadFrom_01(t *testing.T) {
	file, err := ReadFrom("<stdin>", strings.NewReader("print 1"))
	//
	assert.Equal(t, nil, err)
	assert.Equal(t, "<stdin>", file.Filename())
	assert.Equal(t, "print 1", string(file.Contents()))
}

func checkLineColumn(t *testing.T, input string, offset, line, column int) {
	file := NewSourceFile("test", []byte(input))
	l, c := file.LineColumn(offset)
	//
	if l != line || c != column {
		t.Errorf("offset %d: got %d:%d, expected %d:%d", offset, l, c, line, column)
	}
}
