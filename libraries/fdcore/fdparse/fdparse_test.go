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

package fdparse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdep"
)

func TestParseClassic(t *testing.T) {
	in := `4
A->B
B, C -> D
C->A,B

`
	sch, err := ParseClassic(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, sch.NumAttributes())
	assert.Equal(t, []string{"A", "B", "C", "D"}, sch.Names)

	require.Equal(t, 3, sch.Deps.Size())
	assert.Equal(t, fdep.Dependency{
		Determinant: attrs.NewAttributeSet(0),
		Dependent:   attrs.NewAttributeSet(1),
	}, sch.Deps.Get(0))
	assert.Equal(t, fdep.Dependency{
		Determinant: attrs.NewAttributeSet(1, 2),
		Dependent:   attrs.NewAttributeSet(3),
	}, sch.Deps.Get(1))
	assert.Equal(t, fdep.Dependency{
		Determinant: attrs.NewAttributeSet(2),
		Dependent:   attrs.NewAttributeSet(0, 1),
	}, sch.Deps.Get(2))
}

func TestParseClassicErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		errStr string
	}{
		{"empty file", "", "empty"},
		{"bad count", "x\nA->B\n", "invalid attribute count"},
		{"zero count", "0\n", "invalid attribute count"},
		{"count too large", "27\n", "invalid attribute count"},
		{"missing separator", "2\nAB\n", "missing '->'"},
		{"empty right side", "2\nA->\n", "empty attribute list"},
		{"no letter in token", "2\nA->1\n", "missing valid attribute"},
		{"attribute out of range", "2\nA->C\n", "expected attributes from A to B"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseClassic(strings.NewReader(test.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errStr)
		})
	}
}

const validYAML = `
attributes: [id, name, email]
dependencies:
  - determinant: [id]
    dependent: [name, email]
  - determinant: [name, email]
    dependent: [id]
`

func TestParseYAML(t *testing.T) {
	sch, err := ParseYAML(strings.NewReader(validYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "email"}, sch.Names)
	require.Equal(t, 2, sch.Deps.Size())
	assert.Equal(t, fdep.Dependency{
		Determinant: attrs.NewAttributeSet(0),
		Dependent:   attrs.NewAttributeSet(1, 2),
	}, sch.Deps.Get(0))
	assert.Equal(t, fdep.Dependency{
		Determinant: attrs.NewAttributeSet(1, 2),
		Dependent:   attrs.NewAttributeSet(0),
	}, sch.Deps.Get(1))
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		errStr string
	}{
		{"no attributes", "attributes: []\n", "invalid attribute count"},
		{"duplicate names", "attributes: [a, a]\n", "duplicate attribute name"},
		{
			"unknown attribute",
			"attributes: [a, b]\ndependencies:\n  - determinant: [a]\n    dependent: [c]\n",
			"unknown attribute 'c'",
		},
		{
			"empty determinant",
			"attributes: [a, b]\ndependencies:\n  - determinant: []\n    dependent: [b]\n",
			"empty determinant",
		},
		{"not yaml", "{attributes: [a", "could not parse schema yaml"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(test.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.errStr)
		})
	}
}

func TestSchemaHelpers(t *testing.T) {
	sch, err := ParseYAML(strings.NewReader(validYAML))
	require.NoError(t, err)

	i, ok := sch.IndexOf("email")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = sch.IndexOf("missing")
	assert.False(t, ok)

	assert.Equal(t, "id,email", sch.FormatSet(attrs.NewAttributeSet(0, 2)))

	seed, err := sch.ParseAttrList("name, email")
	require.NoError(t, err)
	assert.Equal(t, attrs.NewAttributeSet(1, 2), seed)

	_, err = sch.ParseAttrList("name,bogus")
	assert.Error(t, err)
	_, err = sch.ParseAttrList(" , ")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	classicPath := filepath.Join(dir, "deps.txt")
	require.NoError(t, os.WriteFile(classicPath, []byte("2\nA->B\n"), 0644))

	sch, err := LoadFile(classicPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, sch.Names)

	yamlPath := filepath.Join(dir, "deps.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(validYAML), 0644))

	sch, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "email"}, sch.Names)

	_, err = LoadFile(filepath.Join(dir, "no_such_file"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open dependency file")
}
