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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/engine"
	"github.com/consensys/go-bitcalc/pkg/util"
	"github.com/consensys/go-bitcalc/pkg/util/source"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file1.bc file2.bc ...]",
	Short: "evaluate one or more programs.",
	Long: `Evaluate each given program in turn, printing the value of every print
statement.  Each program starts with no variables defined.  Evaluation stops at
the first error.  If no files are given, a program is read from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := getConfig(cmd)
		//
		if status := exitStatus(runFiles(readSourceFiles(args), os.Stdout, config)); status != 0 {
			os.Exit(status)
		}
	},
}

// Evaluate each source file in turn as a complete program, writing output and
// any error report to the given writer.  This stops at the first failing
// program, returning false.
func runFiles(srcfiles []source.File, out io.Writer, config Config) bool {
	for i := range srcfiles {
		if !evaluate(&srcfiles[i], out, out, config) {
			return false
		}
	}
	//
	return true
}

// Evaluate a given source file as a complete program, writing its output to
// one writer and any error arising to another.  This returns true if
// evaluation succeeded.
func evaluate(srcfile *source.File, out io.Writer, report io.Writer, config Config) bool {
	stats := util.NewPerfStats()
	//
	err := engine.Execute(srcfile, out)
	//
	stats.Log(fmt.Sprintf("Evaluating %s", srcfile.Filename()))
	//
	if err != nil {
		printError(report, srcfile, err, config.Highlight, false)
		return false
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(runCmd)
}
