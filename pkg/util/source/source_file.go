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
	"io"
	"os"
	"sort"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// ReadFrom reads a single source file from a given reader (e.g. stdin), using
// the given name for reporting purposes.
func ReadFrom(name string, reader io.Reader) (*File, error) {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(name, bytes), nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	// Extract runes representing line
	runes := p.text[p.span.start:p.span.end]
	// Convert into string
	return string(runes)
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Offset of the first character of each line.  The first line always
	// starts at offset 0.
	starts []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	starts := []int{0}
	//
	for i, r := range contents {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	//
	return &File{filename, contents, starts}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// Lines returns the physical lines making up this file.
func (s *File) Lines() []Line {
	lines := make([]Line, len(s.starts))
	//
	for i, start := range s.starts {
		end := findEndOfLine(start, s.contents)
		lines[i] = Line{s.contents, Span{start, end}, i + 1}
	}
	//
	return lines
}

// LineColumn determines the line and column (both counting from 1) of a given
// character offset within this file.  Offsets at or beyond the end of the file
// are reported on the last line, one column past its final character.
func (s *File) LineColumn(offset int) (int, int) {
	offset = max(0, min(offset, len(s.contents)))
	// Find last line starting at or before offset
	index := sort.Search(len(s.starts), func(i int) bool { return s.starts[i] > offset }) - 1
	//
	return index + 1, offset - s.starts[index] + 1
}

// FindFirstEnclosingLine determines the first line  in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.  Also,
// the returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	num, _ := s.LineColumn(span.start)
	start := s.starts[num-1]
	end := findEndOfLine(start, s.contents)
	//
	return Line{s.contents, Span{start, end}, num}
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
