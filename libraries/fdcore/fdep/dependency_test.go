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

package fdep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
)

func TestNewCollection(t *testing.T) {
	tests := []struct {
		name      string
		numAttrs  int
		expectErr bool
	}{
		{"one attribute", 1, false},
		{"full width", attrs.MaxAttributes, false},
		{"zero attributes", 0, true},
		{"negative", -3, true},
		{"too wide", attrs.MaxAttributes + 1, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := NewCollection(test.numAttrs)

			if test.expectErr {
				assert.Error(t, err)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.numAttrs, c.NumAttributes())
				assert.Equal(t, 0, c.Size())
			}
		})
	}
}

func TestAddPreconditions(t *testing.T) {
	c, err := NewCollection(3)
	require.NoError(t, err)

	assert.Panics(t, func() {
		c.Add(Dependency{Determinant: attrs.NewAttributeSet(), Dependent: attrs.NewAttributeSet(1)})
	})
	assert.Panics(t, func() {
		c.Add(Dependency{Determinant: attrs.NewAttributeSet(0), Dependent: attrs.NewAttributeSet()})
	})
	assert.Panics(t, func() {
		c.Add(Dependency{Determinant: attrs.NewAttributeSet(0), Dependent: attrs.NewAttributeSet(3)})
	})
}

func TestIterationOrder(t *testing.T) {
	c, err := NewCollection(4)
	require.NoError(t, err)

	deps := []Dependency{
		{Determinant: attrs.NewAttributeSet(2), Dependent: attrs.NewAttributeSet(3)},
		{Determinant: attrs.NewAttributeSet(0), Dependent: attrs.NewAttributeSet(1)},
		{Determinant: attrs.NewAttributeSet(0, 1), Dependent: attrs.NewAttributeSet(2)},
	}
	for _, d := range deps {
		c.Add(d)
	}

	require.Equal(t, len(deps), c.Size())
	for i, d := range deps {
		assert.Equal(t, d, c.Get(i))
	}

	var visited []Dependency
	c.Iter(func(d Dependency) (stop bool) {
		visited = append(visited, d)
		return false
	})
	assert.Equal(t, deps, visited)

	visited = visited[:0]
	c.Iter(func(d Dependency) (stop bool) {
		visited = append(visited, d)
		return len(visited) == 2
	})
	assert.Equal(t, deps[:2], visited)
}

func TestDependencyString(t *testing.T) {
	d := Dependency{
		Determinant: attrs.NewAttributeSet(0, 1),
		Dependent:   attrs.NewAttributeSet(2),
	}
	assert.Equal(t, "A,B->C", d.String())
}
