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

// Package keys enumerates the candidate keys of a relational schema using
// the algorithm of Lucchesi and Osborn (1978), with attribute closure as the
// underlying primitive.
package keys

import (
	"github.com/sirupsen/logrus"

	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
	"github.com/dolthub/fdkeys/libraries/fdcore/closure"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdep"
)

// Minimize reduces a superkey to a candidate key by greedily dropping
// attributes in ascending index order, keeping each removal that preserves
// the superkey property. Superkey-ness is antitone under removal, so the
// result is minimal; which minimal key comes out when several are contained
// in the input is a deterministic consequence of the visitation order.
// Calling Minimize on a non-superkey is a bug in the caller.
func Minimize(c closure.Computer, superkey attrs.AttributeSet, numAttrs int) attrs.AttributeSet {
	if !closure.IsSuperkey(c, superkey, numAttrs) {
		panic("keys: Minimize called on a set that is not a superkey")
	}

	result := superkey
	itr := superkey.Iterator()
	for a, ok := itr.Next(); ok; a, ok = itr.Next() {
		reduced := result.Remove(a)
		if closure.IsSuperkey(c, reduced, numAttrs) {
			result = reduced
		}
	}

	return result
}

// Enumerator lazily produces every candidate key of a schema, each exactly
// once, in discovery order. The sequence is finite, always contains at least
// one key (the full attribute set is a superkey), and is not restartable.
type Enumerator struct {
	c        closure.Computer
	fds      *fdep.Collection
	numAttrs int

	found  []attrs.AttributeSet
	work   []attrs.AttributeSet
	head   int
	depIdx int
	seeded bool
}

// NewEnumerator returns an Enumerator over fds, driving c for every closure
// query. For the graph strategy the build cost is paid once, which is why it
// is the preferred computer here.
func NewEnumerator(c closure.Computer, fds *fdep.Collection) *Enumerator {
	return &Enumerator{c: c, fds: fds, numAttrs: fds.NumAttributes()}
}

// Next returns the next candidate key, or false when the enumeration is
// complete.
func (e *Enumerator) Next() (attrs.AttributeSet, bool) {
	if !e.seeded {
		e.seeded = true

		k0 := Minimize(e.c, attrs.FullSet(e.numAttrs), e.numAttrs)
		e.record(k0)

		return k0, true
	}

	for e.head < len(e.work) {
		k := e.work[e.head]

		for e.depIdx < e.fds.Size() {
			d := e.fds.Get(e.depIdx)
			e.depIdx++

			// candidate superkey: the determinant plus whatever of
			// k the dependent does not cover
			s := d.Determinant.Union(k.Diff(d.Dependent))
			if e.dominated(s) {
				continue
			}

			kNew := Minimize(e.c, s, e.numAttrs)
			e.record(kNew)

			return kNew, true
		}

		e.head++
		e.depIdx = 0
	}

	return attrs.AttributeSet{}, false
}

func (e *Enumerator) record(k attrs.AttributeSet) {
	e.found = append(e.found, k)
	e.work = append(e.work, k)
	logrus.Debugf("candidate key found: {%s}", k)
}

// dominated reports whether s contains some already-found key. The check is
// containment, not equality: any superset of a found key minimizes to a key
// already accounted for, and pruning it is what keeps the search from
// re-deriving keys reachable along multiple dependency paths.
func (e *Enumerator) dominated(s attrs.AttributeSet) bool {
	for _, k := range e.found {
		if s.ContainsAll(k) {
			return true
		}
	}

	return false
}

// AllCandidateKeys drains a fresh Enumerator and returns every candidate key
// of fds in discovery order.
func AllCandidateKeys(c closure.Computer, fds *fdep.Collection) []attrs.AttributeSet {
	e := NewEnumerator(c, fds)

	var all []attrs.AttributeSet
	for k, ok := e.Next(); ok; k, ok = e.Next() {
		all = append(all, k)
	}

	return all
}
