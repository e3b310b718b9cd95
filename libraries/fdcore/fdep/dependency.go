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

// Package fdep defines functional dependencies over attribute sets and
// ordered collections of them.
package fdep

import (
	"fmt"

	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
)

// Dependency is the rule Determinant -> Dependent: the values of the
// determinant attributes functionally determine the dependent attributes.
// Both sides are non-empty by construction.
type Dependency struct {
	Determinant attrs.AttributeSet
	Dependent   attrs.AttributeSet
}

func (d Dependency) String() string {
	return d.Determinant.String() + "->" + d.Dependent.String()
}

// ErrInvalidAttributeCount is returned when a schema's attribute count falls
// outside [1, attrs.MaxAttributes].
type ErrInvalidAttributeCount struct {
	Count int
}

func (e ErrInvalidAttributeCount) Error() string {
	return fmt.Sprintf("invalid attribute count %d: must be between 1 and %d", e.Count, attrs.MaxAttributes)
}

// Collection is an ordered sequence of dependencies over a schema with a
// fixed attribute count. Order is insertion order; it affects the order in
// which candidate keys are discovered, never the set of results. Collections
// are read-only once handed to an engine.
type Collection struct {
	numAttrs int
	deps     []Dependency
}

// NewCollection creates an empty collection for a schema of numAttrs
// attributes. Counts outside [1, attrs.MaxAttributes] are rejected here,
// before any engine can be built on the collection.
func NewCollection(numAttrs int) (*Collection, error) {
	if numAttrs < 1 || numAttrs > attrs.MaxAttributes {
		return nil, ErrInvalidAttributeCount{Count: numAttrs}
	}

	return &Collection{numAttrs: numAttrs}, nil
}

// Add appends a dependency. Both sides must be non-empty and reference only
// attributes of this schema; violations are bugs in the caller, which is
// expected to have validated its input already.
func (c *Collection) Add(d Dependency) {
	if d.Determinant.IsEmpty() || d.Dependent.IsEmpty() {
		panic("fdep: dependency with an empty side")
	}

	full := attrs.FullSet(c.numAttrs)
	if !full.ContainsAll(d.Determinant) || !full.ContainsAll(d.Dependent) {
		panic("fdep: dependency references attributes outside the schema")
	}

	c.deps = append(c.deps, d)
}

// NumAttributes returns the schema's attribute count.
func (c *Collection) NumAttributes() int {
	return c.numAttrs
}

// Size returns the number of dependencies in the collection.
func (c *Collection) Size() int {
	return len(c.deps)
}

// Get returns the dependency at index i in insertion order.
func (c *Collection) Get(i int) Dependency {
	return c.deps[i]
}

// Iter visits every dependency in insertion order until cb returns true.
func (c *Collection) Iter(cb func(d Dependency) (stop bool)) {
	for _, d := range c.deps {
		if cb(d) {
			break
		}
	}
}
