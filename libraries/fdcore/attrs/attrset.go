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
	"math/bits"
	"strings"
)

// MaxAttributes is the hard ceiling on schema width, one mask bit per
// attribute letter A through Z.
const MaxAttributes = 26

// AttributeSet is a set of attribute indices in the range [0, MaxAttributes).
// Values are immutable; every operation returns a new set. The zero value is
// the empty set. AttributeSet values are comparable with ==.
type AttributeSet struct {
	mask uint32
	size uint8
}

func makeSet(mask uint32) AttributeSet {
	return AttributeSet{mask: mask, size: uint8(bits.OnesCount32(mask))}
}

// NewAttributeSet returns the set containing exactly the given indices.
func NewAttributeSet(indices ...int) AttributeSet {
	var mask uint32
	for _, i := range indices {
		if i < 0 || i >= MaxAttributes {
			panic("attrs: attribute index out of range")
		}
		mask |= 1 << uint(i)
	}

	return makeSet(mask)
}

// FullSet returns the set of all attributes of an n attribute schema.
func FullSet(n int) AttributeSet {
	if n < 0 || n > MaxAttributes {
		panic("attrs: attribute count out of range")
	}

	return makeSet((1 << uint(n)) - 1)
}

// Union returns the set of attributes present in s or t.
func (s AttributeSet) Union(t AttributeSet) AttributeSet {
	return makeSet(s.mask | t.mask)
}

// Intersect returns the set of attributes present in both s and t.
func (s AttributeSet) Intersect(t AttributeSet) AttributeSet {
	return makeSet(s.mask & t.mask)
}

// Diff returns the set of attributes present in s but not in t.
func (s AttributeSet) Diff(t AttributeSet) AttributeSet {
	return makeSet(s.mask &^ t.mask)
}

// ContainsAll reports whether every attribute of t is also in s. This is the
// subset primitive serving both closure containment and key domination.
func (s AttributeSet) ContainsAll(t AttributeSet) bool {
	return s.mask&t.mask == t.mask
}

// Contains reports whether attribute i is in s.
func (s AttributeSet) Contains(i int) bool {
	if i < 0 || i >= MaxAttributes {
		panic("attrs: attribute index out of range")
	}

	return s.mask&(1<<uint(i)) != 0
}

// Insert returns s with attribute i added.
func (s AttributeSet) Insert(i int) AttributeSet {
	if i < 0 || i >= MaxAttributes {
		panic("attrs: tried to insert an invalid attribute")
	}

	return makeSet(s.mask | 1<<uint(i))
}

// Remove returns s with attribute i taken out. Removing an attribute that is
// not in the set is a bug in the caller.
func (s AttributeSet) Remove(i int) AttributeSet {
	if i < 0 || i >= MaxAttributes {
		panic("attrs: tried to remove an invalid attribute")
	}
	if s.mask&(1<<uint(i)) == 0 {
		panic("attrs: tried to remove an attribute that is not in the set")
	}

	return makeSet(s.mask &^ (1 << uint(i)))
}

// Size returns the number of attributes in s.
func (s AttributeSet) Size() int {
	return int(s.size)
}

// IsEmpty reports whether s has no attributes.
func (s AttributeSet) IsEmpty() bool {
	return s.size == 0
}

// IsFull reports whether s contains all n attributes of the schema.
func (s AttributeSet) IsFull(n int) bool {
	if n < 0 || n > MaxAttributes {
		panic("attrs: attribute count out of range")
	}

	return int(s.size) == n
}

// Iterator returns a fresh iterator over the attributes of s in ascending
// index order. Iterators are independent of the set and of each other, so
// a set can be iterated any number of times, by any number of callers.
func (s AttributeSet) Iterator() AttrIterator {
	return AttrIterator{remaining: s.mask}
}

// AttrIterator yields the attributes of a set in ascending order.
type AttrIterator struct {
	remaining uint32
}

// Next returns the next attribute index, or false once the iterator is
// exhausted.
func (itr *AttrIterator) Next() (int, bool) {
	if itr.remaining == 0 {
		return 0, false
	}

	i := bits.TrailingZeros32(itr.remaining)
	itr.remaining &^= 1 << uint(i)

	return i, true
}

// AttrName returns the letter naming attribute i.
func AttrName(i int) string {
	if i < 0 || i >= MaxAttributes {
		panic("attrs: attribute index out of range")
	}

	return string(rune('A' + i))
}

// String renders s as comma separated attribute letters, e.g. "A,C,D".
func (s AttributeSet) String() string {
	names := make([]string, 0, s.size)

	itr := s.Iterator()
	for i, ok := itr.Next(); ok; i, ok = itr.Next() {
		names = append(names, AttrName(i))
	}

	return strings.Join(names, ",")
}
