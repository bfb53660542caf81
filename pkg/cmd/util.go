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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/diag"
	"github.com/consensys/go-bitcalc/pkg/util/source"
	"github.com/consensys/go-bitcalc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the source files named on the command line.  If none are given, a
// single program is read from stdin instead.
// Exit status for a run in which every program either succeeded, or one failed
// with a lexical, syntax or evaluation error.
func exitStatus(ok bool) int {
	if ok {
		return 0
	}
	//
	return 4
}

func readSourceFiles(filenames []string) []source.File {
	if len(filenames) == 0 {
		log.Debug("reading program from stdin")
		//
		srcfile, err := source.ReadFrom("<stdin>", os.Stdin)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return []source.File{*srcfile}
	}
	//
	for _, n := range filenames {
		log.Debug(fmt.Sprintf("including source file %s", n))
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return srcfiles
}

// Report an error arising from evaluating a given source file.  Diagnostics
// are reported in their user-facing form, optionally followed by the line on
// which they arose.
func printError(out io.Writer, srcfile *source.File, err error, highlight bool, colour bool) {
	var report diag.Error
	//
	if !errors.As(err, &report) {
		// Not a program error (e.g. failed writing output)
		fmt.Fprintln(out, err)
		return
	}
	//
	fmt.Fprintln(out, report.Report())
	//
	if highlight {
		printHighlight(out, srcfile, report.Span(), colour)
	}
}

// Print the line enclosing a given span with the span itself underlined.
func printHighlight(out io.Writer, srcfile *source.File, span source.Span, colour bool) {
	line := srcfile.FindFirstEnclosingLine(span)
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line, and at least one marker
	// for end of input)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	marker := strings.Repeat("^", length)
	//
	if colour {
		marker = termio.Colour(marker, termio.TERM_RED)
	}
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent, keeping tabs so the marker lines up
	prefix := string([]rune(line.String())[:lineOffset])
	fmt.Fprint(out, strings.Map(indent, prefix))
	// Print highlight
	fmt.Fprintln(out, marker)
}

func indent(r rune) rune {
	if r == '\t' {
		return r
	}
	//
	return ' '
}
