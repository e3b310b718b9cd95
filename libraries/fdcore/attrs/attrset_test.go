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

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAlgebra(t *testing.T) {
	tests := []struct {
		name     string
		s        AttributeSet
		t        AttributeSet
		union    AttributeSet
		isect    AttributeSet
		diff     AttributeSet
		contains bool
	}{
		{
			"disjoint",
			NewAttributeSet(0, 2),
			NewAttributeSet(1, 3),
			NewAttributeSet(0, 1, 2, 3),
			NewAttributeSet(),
			NewAttributeSet(0, 2),
			false,
		},
		{
			"subset",
			NewAttributeSet(0, 1, 2),
			NewAttributeSet(1, 2),
			NewAttributeSet(0, 1, 2),
			NewAttributeSet(1, 2),
			NewAttributeSet(0),
			true,
		},
		{
			"equal",
			NewAttributeSet(4, 5),
			NewAttributeSet(4, 5),
			NewAttributeSet(4, 5),
			NewAttributeSet(4, 5),
			NewAttributeSet(),
			true,
		},
		{
			"empty right",
			NewAttributeSet(7),
			NewAttributeSet(),
			NewAttributeSet(7),
			NewAttributeSet(),
			NewAttributeSet(7),
			true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.union, test.s.Union(test.t))
			assert.Equal(t, test.isect, test.s.Intersect(test.t))
			assert.Equal(t, test.diff, test.s.Diff(test.t))
			assert.Equal(t, test.contains, test.s.ContainsAll(test.t))
		})
	}
}

func TestSizeTracksMembership(t *testing.T) {
	s := NewAttributeSet()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())

	s = s.Insert(3)
	s = s.Insert(3) // second insert is a no-op
	s = s.Insert(0)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(1))

	s = s.Remove(3)
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.Contains(3))
}

func TestFullSet(t *testing.T) {
	full := FullSet(5)
	assert.Equal(t, 5, full.Size())
	assert.True(t, full.IsFull(5))
	assert.False(t, full.IsFull(6))
	assert.Equal(t, NewAttributeSet(0, 1, 2, 3, 4), full)

	assert.True(t, FullSet(0).IsEmpty())
	assert.Equal(t, MaxAttributes, FullSet(MaxAttributes).Size())
}

func TestIterator(t *testing.T) {
	s := NewAttributeSet(9, 0, 4, 25)

	var got []int
	itr := s.Iterator()
	for i, ok := itr.Next(); ok; i, ok = itr.Next() {
		got = append(got, i)
	}
	require.Equal(t, []int{0, 4, 9, 25}, got)

	// iterators restart from the beginning and do not disturb each other
	itr1, itr2 := s.Iterator(), s.Iterator()
	i1, ok := itr1.Next()
	require.True(t, ok)
	i2, ok := itr2.Next()
	require.True(t, ok)
	assert.Equal(t, i1, i2)

	empty := NewAttributeSet().Iterator()
	_, ok = empty.Next()
	assert.False(t, ok)
}

func TestPreconditionPanics(t *testing.T) {
	assert.Panics(t, func() { NewAttributeSet(MaxAttributes) })
	assert.Panics(t, func() { NewAttributeSet(-1) })
	assert.Panics(t, func() { NewAttributeSet().Insert(26) })
	assert.Panics(t, func() { NewAttributeSet(1).Remove(2) })
	assert.Panics(t, func() { FullSet(27) })
	assert.Panics(t, func() { NewAttributeSet().IsFull(27) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "", NewAttributeSet().String())
	assert.Equal(t, "A", NewAttributeSet(0).String())
	assert.Equal(t, "A,C,Z", NewAttributeSet(2, 25, 0).String())
}
