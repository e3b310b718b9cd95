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

package closure

import (
	"github.com/sirupsen/logrus"

	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdep"
)

// VertexKind distinguishes the two kinds of vertices in a closure graph.
type VertexKind int

const (
	// AttrVertex is a vertex standing for a single schema attribute.
	AttrVertex VertexKind = iota
	// GateVertex stands for the conjunction of a multi-attribute
	// determinant: it fires only once every determinant attribute has
	// been reached.
	GateVertex
)

type vertex struct {
	kind VertexKind

	// number of distinct inbound edges that must fire before this vertex
	// is visited: 1 for attributes, the determinant's cardinality for
	// gates
	threshold int

	out []int
}

// Graph computes closures by breadth-first reachability. Attribute vertices
// carry threshold 1; each dependency with a multi-attribute determinant
// contributes one gate vertex whose threshold is the determinant size, so a
// gate's dependents become reachable only after the whole determinant is.
// Singleton determinants connect attribute to attribute directly.
//
// The graph is built once per collection and is read-only afterwards; each
// query allocates its own visit counters, so concurrent queries against one
// Graph are safe.
type Graph struct {
	numAttrs int
	vertices []vertex
}

// NewGraph builds the closure graph for fds.
func NewGraph(fds *fdep.Collection) *Graph {
	numAttrs := fds.NumAttributes()

	g := &Graph{numAttrs: numAttrs}
	g.vertices = make([]vertex, numAttrs, numAttrs+fds.Size())
	for i := range g.vertices {
		g.vertices[i] = vertex{kind: AttrVertex, threshold: 1}
	}

	fds.Iter(func(dep fdep.Dependency) (stop bool) {
		if dep.Determinant.Size() > 1 {
			gate := len(g.vertices)
			g.vertices = append(g.vertices, vertex{kind: GateVertex, threshold: dep.Determinant.Size()})

			itr := dep.Determinant.Iterator()
			for a, ok := itr.Next(); ok; a, ok = itr.Next() {
				g.addEdge(a, gate)
			}
			itr = dep.Dependent.Iterator()
			for b, ok := itr.Next(); ok; b, ok = itr.Next() {
				g.addEdge(gate, b)
			}
		} else {
			detItr := dep.Determinant.Iterator()
			a, _ := detItr.Next()

			itr := dep.Dependent.Iterator()
			for b, ok := itr.Next(); ok; b, ok = itr.Next() {
				g.addEdge(a, b)
			}
		}
		return false
	})

	logrus.Debugf("built closure graph: %d attribute vertices, %d gate vertices", numAttrs, len(g.vertices)-numAttrs)

	return g
}

func (g *Graph) addEdge(from, to int) {
	g.vertices[from].out = append(g.vertices[from].out, to)
}

// Closure implements Computer.
func (g *Graph) Closure(seed attrs.AttributeSet) attrs.AttributeSet {
	hits := make([]int, len(g.vertices))
	visited := make([]bool, len(g.vertices))
	queue := make([]int, 0, len(g.vertices))

	result := seed
	itr := seed.Iterator()
	for a, ok := itr.Next(); ok; a, ok = itr.Next() {
		visited[a] = true
		queue = append(queue, a)
	}

	for head := 0; head < len(queue); head++ {
		if result.IsFull(g.numAttrs) {
			break
		}

		for _, w := range g.vertices[queue[head]].out {
			if visited[w] {
				continue
			}

			hits[w]++
			if hits[w] >= g.vertices[w].threshold {
				visited[w] = true
				if g.vertices[w].kind == AttrVertex {
					result = result.Insert(w)
				}
				queue = append(queue, w)
			}
		}
	}

	return result
}

// NumAttributes returns the number of attribute vertices.
func (g *Graph) NumAttributes() int {
	return g.numAttrs
}

// NumVertices returns the total vertex count, attributes and gates.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// Kind returns the kind of vertex v. Vertices below NumAttributes are
// attribute vertices; gates follow in dependency order.
func (g *Graph) Kind(v int) VertexKind {
	return g.vertices[v].kind
}

// Threshold returns the visit threshold of vertex v.
func (g *Graph) Threshold(v int) int {
	return g.vertices[v].threshold
}

// OutEdges returns the targets of vertex v's outgoing edges. The returned
// slice is owned by the graph and must not be modified.
func (g *Graph) OutEdges(v int) []int {
	return g.vertices[v].out
}
