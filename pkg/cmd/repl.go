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
	"strings"

	"github.com/consensys/go-bitcalc/pkg/bitcalc/engine"
	"github.com/consensys/go-bitcalc/pkg/util/source"
	"github.com/consensys/go-bitcalc/pkg/util/termio"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "evaluate statements interactively.",
	Long: `Read statements one line at a time, evaluating each line as it is entered.
Variables assigned on one line remain visible on all later lines.  An error
aborts only the line on which it arises.  Enter ":vars" to list variables, and
":quit" (or end of input) to exit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config := getConfig(cmd)
		//
		reader, err := termio.NewLineReader(config.Prompt)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		err = runRepl(reader, config)
		// Restore terminal before reporting anything
		if cerr := reader.Close(); err == nil {
			err = cerr
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Run an interactive session over a given line reader, until either end of
// input or the user quits.
func runRepl(reader termio.LineReader, config Config) error {
	var (
		out     = reader.Output()
		session = engine.NewSession(out)
		id      = uuid.New()
	)
	//
	log.Debugf("started session %s", id)
	//
	for n := 1; ; n++ {
		line, err := reader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		//
		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":vars":
			printVariables(out, session)
			continue
		}
		//
		srcfile := source.NewSourceFile(fmt.Sprintf("<input:%d>", n), []byte(line))
		//
		if err := session.Execute(srcfile); err != nil {
			printError(out, srcfile, err, config.Highlight, reader.Interactive())
		}
	}
	//
	log.Debugf("finished session %s with %d variable(s)", id, session.Symbols().Len())
	//
	return nil
}

func printVariables(out io.Writer, session *engine.Session) {
	symbols := session.Symbols()
	//
	for _, name := range symbols.Names() {
		val := symbols.Get(name).Unwrap()
		fmt.Fprintf(out, "%s = %s\n", name, val.Text(2))
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("prompt", "> ", "prompt displayed before each line")
}
