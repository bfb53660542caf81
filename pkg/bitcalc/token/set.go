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
package token

import "strings"

// Set is a set of token kinds, as used for FIRST and FOLLOW sets.
type Set uint32

// NewSet constructs a set containing exactly the given kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	//
	for _, k := range kinds {
		s |= 1 << k
	}
	//
	return s
}

// Contains checks whether a given kind is a member of this set.
func (s Set) Contains(kind Kind) bool {
	return s&(1<<kind) != 0
}

// Union returns the set of kinds in either this set or the other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Kinds returns the members of this set in ascending order.
func (s Set) Kinds() []Kind {
	var kinds []Kind
	//
	for k := Kind(0); k < NUM_KINDS; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	//
	return kinds
}

// String renders this set as a human readable list, such as "'(', identifier
// or binary literal".  Members are listed in ascending kind order, except that
// end of input always comes last.
func (s Set) String() string {
	var (
		kinds = s.Kinds()
		words []string
	)
	// Move end of input to the end
	if len(kinds) > 0 && kinds[0] == END_OF {
		kinds = append(kinds[1:], END_OF)
	}
	//
	for _, k := range kinds {
		words = append(words, k.String())
	}
	//
	switch len(words) {
	case 0:
		return "nothing"
	case 1:
		return words[0]
	}
	//
	n := len(words) - 1
	//
	return strings.Join(words[:n], ", ") + " or " + words[n]
}
