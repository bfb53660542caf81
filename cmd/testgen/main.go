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
	"math/rand"
	"os"
	"path"
	"strings"

	"github.com/consensys/go-bitcalc/pkg/cmd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int64("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().Uint("count", 10, "Number of programs to generate")
	rootCmd.Flags().Uint("min-stmts", 1, "Minimum number of statements per program")
	rootCmd.Flags().Uint("max-stmts", 8, "Maximum number of statements per program")
	rootCmd.Flags().Uint("max-depth", 3, "Maximum nesting depth of expressions")
	rootCmd.Flags().Uint("max-width", 16, "Maximum width (in bits) of binary literals")
	rootCmd.Flags().String("dir", "testdata/valid", "Directory to write programs into")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] name",
	Short: "Test generation utility for bitcalc.",
	Long: `Generate random programs, along with the output they are expected to produce.
Each program is written as name_NN.auto.bc with its expected output given as
"{out:...}" attributes.`,
	Run: func(c *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(c.UsageString())
			os.Exit(1)
		}
		//
		var cfg TestGenConfig
		//
		cfg.seed = getInt64(c, "seed")
		cfg.count = getUint(c, "count")
		cfg.min_stmts = getUint(c, "min-stmts")
		cfg.max_stmts = getUint(c, "max-stmts")
		cfg.max_depth = getUint(c, "max-depth")
		cfg.max_width = getUint(c, "max-width")
		//
		if cfg.min_stmts > cfg.max_stmts || cfg.max_width == 0 {
			fmt.Println("invalid statement or width bounds")
			os.Exit(1)
		}
		//
		rng := rand.New(rand.NewSource(cfg.seed))
		dir := cmd.GetString(c, "dir")
		//
		for i := uint(0); i < cfg.count; i++ {
			program := generateProgram(cfg, rng)
			filename := path.Join(dir, fmt.Sprintf("%s_%02d.auto.bc", args[0], i))
			writeTestProgram(filename, program)
		}
		//
		os.Exit(0)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	seed      int64
	count     uint
	min_stmts uint
	max_stmts uint
	max_depth uint
	max_width uint
}

// Write a program to a given file, prefixed by the output the program is
// expected to produce.
func writeTestProgram(filename string, program Program) {
	var sb strings.Builder
	// Generate attributes
	for _, line := range program.Output() {
		sb.WriteString(fmt.Sprintf("{out:%s}\n", line))
	}
	//
	sb.WriteString(program.String())
	// Write the file
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Log what happened
	log.Infof("Wrote %s (%d statements)\n", filename, len(program.stmts))
}

func getUint(c *cobra.Command, flag string) uint {
	r, err := c.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}

func getInt64(c *cobra.Command, flag string) int64 {
	r, err := c.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	return r
}
