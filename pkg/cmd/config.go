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
	"os"
	"path"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config captures options which can be given either on the command line, or
// in a configuration file.  Options given on the command line take precedence.
type Config struct {
	// Enable debug logging
	Verbose bool `toml:"verbose" yaml:"verbose"`
	// Show offending source line for errors
	Highlight bool `toml:"highlight" yaml:"highlight"`
	// Prompt displayed by the interactive session
	Prompt string `toml:"prompt" yaml:"prompt"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Prompt: "> "}
}

// LoadConfig reads a configuration file, whose format is determined by its
// extension.  Options not given in the file retain their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	//
	switch ext := path.Ext(filename); ext {
	case ".toml":
		err = toml.Unmarshal(bytes, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &config)
	default:
		err = fmt.Errorf("unknown configuration file format: %s", ext)
	}
	//
	return config, err
}

// Determine the configuration for a given command, by reading the
// configuration file (if given) and then applying any flags explicitly set.
// This also configures the log level.
func getConfig(cmd *cobra.Command) Config {
	var (
		config   = DefaultConfig()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		if config, err = LoadConfig(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if cmd.Flags().Changed("verbose") {
		config.Verbose = GetFlag(cmd, "verbose")
	}
	//
	if cmd.Flags().Changed("highlight") {
		config.Highlight = GetFlag(cmd, "highlight")
	}
	//
	if cmd.Flags().Lookup("prompt") != nil && cmd.Flags().Changed("prompt") {
		config.Prompt = GetString(cmd, "prompt")
	}
	// Configure log level
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	if filename != "" {
		log.Debugf("read configuration file %s", filename)
	}
	//
	return config
}
