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
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-bitcalc/pkg/util/source"
)

// Attribute provides a generic mechanism for extracting attributes from the
// beginning of a file.  Attributes are written as comments, one per line, such
// as "{out:101}".  An attribute parses a given line (assuming it has matched)
// producing an item or an error.
type Attribute[T any] func(int, []source.Line, *source.File) (bool, T, error)

// ExtractAttributes extracts any matching attributes at the beginning of a
// source file.  Extraction stops at the first line which is not an attribute,
// whilst attributes which none of the given extractors match are skipped.
func ExtractAttributes[T any](srcfile *source.File, attributes ...Attribute[T]) ([]T, []error) {
	var (
		lines = srcfile.Lines()
		// Now construct items
		items []T
		//
		errors []error
	)
	// scan file line-by-line until no more attributes found
	for i := 0; i < len(lines) && isAttribute(lines[i]); i++ {
		for _, attribute := range attributes {
			matched, item, err := attribute(i, lines, srcfile)
			//
			if err != nil {
				errors = append(errors, err)
			} else if matched {
				items = append(items, item)
			}
		}
	}
	//
	return items, errors
}

// ExpectedError describes an error which a test program should raise.
type ExpectedError struct {
	Line   int
	Column int
	// Report expected for the error
	Report string
}

func (e ExpectedError) String() string {
	return fmt.Sprintf("%d:%d:%s", e.Line, e.Column, e.Report)
}

// Extract an expected line of output, written "{out:BITS}".
func extractOutput(lineno int, lines []source.Line, _ *source.File) (bool, string, error) {
	body, ok := attributeBody(lines[lineno], "out")
	//
	if !ok {
		return false, "", nil
	} else if strings.Trim(body, "01") != "" || body == "" {
		return true, "", fmt.Errorf("line %d: malformed output \"%s\"", lineno+1, body)
	}
	//
	return true, body, nil
}

// Extract an expected error, written "{error:L:C:report}".
func extractError(lineno int, lines []source.Line, _ *source.File) (bool, ExpectedError, error) {
	var (
		expected ExpectedError
		err      error
	)
	//
	body, ok := attributeBody(lines[lineno], "error")
	if !ok {
		return false, expected, nil
	}
	//
	splits := strings.SplitN(body, ":", 3)
	//
	if len(splits) != 3 {
		return true, expected, fmt.Errorf("line %d: malformed error, should be e.g. \"{error:L:C:report}\"", lineno+1)
	} else if expected.Line, err = strconv.Atoi(splits[0]); err != nil {
		return true, expected, fmt.Errorf("line %d: invalid line number (%s)", lineno+1, err.Error())
	} else if expected.Column, err = strconv.Atoi(splits[1]); err != nil {
		return true, expected, fmt.Errorf("line %d: invalid column number (%s)", lineno+1, err.Error())
	}
	//
	expected.Report = splits[2]
	//
	return true, expected, nil
}

// Check whether a given line holds an attribute of any kind.
func isAttribute(line source.Line) bool {
	contents := strings.TrimSpace(line.String())
	//
	return strings.HasPrefix(contents, "{") && strings.HasSuffix(contents, "}") && strings.Contains(contents, ":")
}

// Extract the body of a comment attribute with the given name, or return false
// if the line does not hold such an attribute.
func attributeBody(line source.Line, name string) (string, bool) {
	var (
		contents = strings.TrimSpace(line.String())
		prefix   = "{" + name + ":"
	)
	//
	if !strings.HasPrefix(contents, prefix) || !strings.HasSuffix(contents, "}") {
		return "", false
	}
	//
	return contents[len(prefix) : len(contents)-1], true
}
