// Copyright 2020 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package closure computes attribute set closures under a collection of
// functional dependencies. Two interchangeable strategies are provided: a
// direct fixpoint scan over the dependency list, and a reachability search
// over a precomputed gate graph. Both produce identical results; the graph
// strategy amortizes its build cost across many queries on one collection.
package closure

import (
	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdep"
)

// Computer computes the smallest attribute set that contains a seed and is
// closed under a fixed collection of dependencies: whenever a dependency's
// determinant is contained in the result, its dependent is as well.
type Computer interface {
	Closure(seed attrs.AttributeSet) attrs.AttributeSet
}

// IsSuperkey reports whether seed determines every attribute of an n
// attribute schema, i.e. whether its closure is the full set.
func IsSuperkey(c Computer, seed attrs.AttributeSet, numAttrs int) bool {
	return c.Closure(seed).IsFull(numAttrs)
}

// Direct computes closures by scanning the dependency list to a fixpoint.
// Each pass unions in the dependents of every dependency whose determinant
// is already contained; passes repeat until one adds nothing.
type Direct struct {
	fds *fdep.Collection
}

// NewDirect returns a Direct closure computer over fds.
func NewDirect(fds *fdep.Collection) *Direct {
	return &Direct{fds: fds}
}

// Closure implements Computer.
func (d *Direct) Closure(seed attrs.AttributeSet) attrs.AttributeSet {
	numAttrs := d.fds.NumAttributes()
	result := seed

	for {
		changed := false
		d.fds.Iter(func(dep fdep.Dependency) (stop bool) {
			if result.ContainsAll(dep.Determinant) && !result.ContainsAll(dep.Dependent) {
				result = result.Union(dep.Dependent)
				changed = true
			}
			// nothing more can be added once the set is full
			return result.IsFull(numAttrs)
		})

		if !changed || result.IsFull(numAttrs) {
			return result
		}
	}
}
