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
package symbol

import (
	"maps"
	"math/big"
	"slices"

	"github.com/consensys/go-bitcalc/pkg/util"
)

// Table is a flat mapping from identifiers to values.  Identifiers are case
// sensitive, and once assigned can be overwritten but never removed.
type Table struct {
	values map[string]*big.Int
}

// NewTable constructs an initially empty symbol table.
func NewTable() *Table {
	return &Table{make(map[string]*big.Int)}
}

// Get returns a copy of the value most recently assigned to a given
// identifier, or None if it has never been assigned.
func (p *Table) Get(name string) util.Option[*big.Int] {
	if v, ok := p.values[name]; ok {
		return util.Some(new(big.Int).Set(v))
	}
	//
	return util.None[*big.Int]()
}

// Set assigns a value to a given identifier, overwriting any previous value.
func (p *Table) Set(name string, value *big.Int) {
	p.values[name] = new(big.Int).Set(value)
}

// Len returns the number of identifiers defined.
func (p *Table) Len() uint {
	return uint(len(p.values))
}

// Names returns the identifiers defined in this table, in sorted order.
func (p *Table) Names() []string {
	return slices.Sorted(maps.Keys(p.values))
}
