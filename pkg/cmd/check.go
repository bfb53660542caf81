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

	"github.com/consensys/go-bitcalc/pkg/util/source"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.bc file2.bc ...",
	Short: "check one or more programs evaluate without error.",
	Long: `Evaluate each given program with its output discarded, reporting whether or
not it completed without error.  Stops at the first failing program.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getConfig(cmd)
		//
		if status := exitStatus(checkFiles(readSourceFiles(args), os.Stdout, config)); status != 0 {
			os.Exit(status)
		}
	},
}

// Evaluate each source file in turn with its output discarded, writing either
// "FILE: ok" or the error report to the given writer.  This stops at the first
// failing program, returning false.
func checkFiles(srcfiles []source.File, out io.Writer, config Config) bool {
	for i := range srcfiles {
		if !evaluate(&srcfiles[i], io.Discard, out, config) {
			return false
		}
		//
		fmt.Fprintf(out, "%s: ok\n", srcfiles[i].Filename())
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
