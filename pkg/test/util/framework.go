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
package util

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/diag"
	"github.com/consensys/go-bitcalc/pkg/bitcalc/engine"
	"github.com/consensys/go-bitcalc/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the test programs are found.
const TestDir = "../../testdata"

// Ext is the file extension used for test programs.
const Ext = "bc"

// CheckValid checks that a given test program evaluates without error, and
// produces exactly the output lines given by its "{out:...}" attributes.
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.%s", TestDir, test, Ext)
		out      strings.Builder
	)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	expected, errs := ExtractAttributes(srcfile, extractOutput)
	if len(errs) > 0 {
		// Report any errors encountered parsing the attributes themselves.
		t.Fatal(errors.Join(errs...))
	}
	//
	if err := engine.Execute(srcfile, &out); err != nil {
		t.Fatalf("Error %s should have evaluated: %s", filename, err)
	}
	//
	actual := splitOutput(out.String())
	//
	if strings.Join(actual, "\n") != strings.Join(expected, "\n") || len(actual) != len(expected) {
		t.Fatalf("Error %s\n got:      %v\n expected: %v", filename, actual, expected)
	}
}

// CheckInvalid checks that a given test program fails with exactly the error
// given by its "{error:...}" attribute.  Any "{out:...}" attributes give the
// output expected before the error arises.
func CheckInvalid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.%s", TestDir, test, Ext)
		out      strings.Builder
		report   diag.Error
	)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	outputs, errs1 := ExtractAttributes(srcfile, extractOutput)
	expected, errs2 := ExtractAttributes(srcfile, extractError)
	//
	if errs := append(errs1, errs2...); len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(expected) != 1 {
		t.Fatalf("Error %s should have exactly one expected error", filename)
	}
	//
	err := engine.Execute(srcfile, &out)
	//
	switch {
	case err == nil:
		t.Fatalf("Error %s should not have evaluated", filename)
	case !errors.As(err, &report):
		t.Fatalf("Error %s unexpected error %s", filename, err)
	}
	//
	pos := report.Position()
	actual := ExpectedError{pos.Line, pos.Column, report.Report()}
	//
	if actual != expected[0] {
		t.Fatalf("Error %s\n unexpected error %s\n   expected error %s", filename, actual, expected[0])
	} else if prefix := splitOutput(out.String()); strings.Join(prefix, "\n") != strings.Join(outputs, "\n") {
		t.Fatalf("Error %s\n got output:      %v\n expected output: %v", filename, prefix, outputs)
	}
}

func readSourceFile(t *testing.T, filename string) *source.File {
	// Read program file
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}

func splitOutput(output string) []string {
	if output == "" {
		return nil
	}
	//
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}
