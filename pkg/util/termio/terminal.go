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
package termio

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// LineReader reads input one line at a time, displaying a prompt beforehand
// where appropriate.
type LineReader interface {
	// ReadLine reads the next line of input, returning io.EOF when no more
	// input is available.
	ReadLine() (string, error)
	// Output returns a writer for displaying text alongside the input.
	Output() io.Writer
	// Interactive indicates whether input is coming from a terminal.
	Interactive() bool
	// Close releases any resources held, such as restoring the terminal.
	Close() error
}

// NewLineReader constructs a line reader over stdin and stdout.  When stdin is
// a terminal, this provides line editing and history.  Otherwise, lines are
// read without a prompt.
func NewLineReader(prompt string) (LineReader, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return NewStreamReader(os.Stdin, os.Stdout), nil
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Terminal{fd, term.NewTerminal(screen, prompt), state}, nil
}

// Terminal reads lines from a terminal in raw mode.
type Terminal struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// ReadLine implementation for LineReader interface.
func (t *Terminal) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// Output implementation for LineReader interface.  Text written here has
// newlines translated appropriately for a terminal in raw mode.
func (t *Terminal) Output() io.Writer {
	return t.xterm
}

// Interactive implementation for LineReader interface.
func (t *Terminal) Interactive() bool {
	return true
}

// Close restores terminal to its original state.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.state)
}

// StreamReader reads lines from an arbitrary stream, such as a pipe.
type StreamReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewStreamReader constructs a line reader for a given stream.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{bufio.NewScanner(in), out}
}

// ReadLine implementation for LineReader interface.
func (s *StreamReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	} else if err := s.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Output implementation for LineReader interface.
func (s *StreamReader) Output() io.Writer {
	return s.out
}

// Interactive implementation for LineReader interface.
func (s *StreamReader) Interactive() bool {
	return false
}

// Close implementation for LineReader interface.
func (s *StreamReader) Close() error {
	return nil
}
