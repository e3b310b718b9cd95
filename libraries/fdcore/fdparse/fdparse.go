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

// Package fdparse reads dependency files into collections the engines can
// consume. Two formats are supported: the classic text format (an attribute
// count line followed by one "LHS->RHS" rule per line, attributes named A-Z)
// and a YAML format that names attributes freely.
package fdparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/fdkeys/libraries/fdcore/attrs"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdep"
)

const depSeparator = "->"

// Schema is a parsed dependency file: the attribute names, by index, and the
// dependencies that hold over them.
type Schema struct {
	Names []string
	Deps  *fdep.Collection
}

// NumAttributes returns the schema's attribute count.
func (s *Schema) NumAttributes() int {
	return len(s.Names)
}

// AttrName returns the name of attribute i.
func (s *Schema) AttrName(i int) string {
	return s.Names[i]
}

// IndexOf resolves an attribute name to its index. Classic-format schemas
// name attributes by their letter, so lookup is uniform across formats.
func (s *Schema) IndexOf(name string) (int, bool) {
	for i, n := range s.Names {
		if n == name {
			return i, true
		}
	}

	return 0, false
}

// FormatSet renders an attribute set using this schema's attribute names.
func (s *Schema) FormatSet(as attrs.AttributeSet) string {
	names := make([]string, 0, as.Size())

	itr := as.Iterator()
	for i, ok := itr.Next(); ok; i, ok = itr.Next() {
		names = append(names, s.Names[i])
	}

	return strings.Join(names, ",")
}

// ParseAttrList parses a comma separated list of attribute names against
// this schema, e.g. a seed set given on the command line.
func (s *Schema) ParseAttrList(list string) (attrs.AttributeSet, error) {
	result := attrs.NewAttributeSet()

	for _, tok := range strings.Split(list, ",") {
		name := strings.TrimSpace(tok)
		if name == "" {
			continue
		}

		i, ok := s.IndexOf(name)
		if !ok {
			return attrs.AttributeSet{}, fmt.Errorf("unknown attribute '%s'", name)
		}
		result = result.Insert(i)
	}

	if result.IsEmpty() {
		return attrs.AttributeSet{}, fmt.Errorf("empty attribute list '%s'", list)
	}

	return result, nil
}

// LoadFile reads a dependency file, picking the format by extension:
// .yaml/.yml files use the YAML format, everything else the classic text
// format.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open dependency file '%s'", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseClassic(f)
	}
}

// ParseClassic reads the classic dependency format. The first line is the
// attribute count n; attributes are the letters A through the nth letter.
// Every further non-blank line is "LHS->RHS" with comma separated sides; a
// token's attribute is the first A-Z rune it contains, so "A, B" and "A,B"
// read the same.
func ParseClassic(r io.Reader) (*Schema, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("dependency file is empty")
	}

	countStr := strings.TrimSpace(scanner.Text())
	numAttrs, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, fmt.Errorf("invalid attribute count '%s'", countStr)
	}

	coll, err := fdep.NewCollection(numAttrs)
	if err != nil {
		return nil, err
	}

	names := make([]string, numAttrs)
	for i := range names {
		names[i] = attrs.AttrName(i)
	}

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		sides := strings.SplitN(line, depSeparator, 2)
		if len(sides) != 2 {
			return nil, fmt.Errorf("line %d: missing '%s'", lineNum, depSeparator)
		}

		det, err := parseClassicSide(sides[0], numAttrs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", lineNum, err.Error())
		}
		dpt, err := parseClassicSide(sides[1], numAttrs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", lineNum, err.Error())
		}

		coll.Add(fdep.Dependency{Determinant: det, Dependent: dpt})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Schema{Names: names, Deps: coll}, nil
}

func parseClassicSide(side string, numAttrs int) (attrs.AttributeSet, error) {
	if strings.TrimSpace(side) == "" {
		return attrs.AttributeSet{}, fmt.Errorf("empty attribute list")
	}

	result := attrs.NewAttributeSet()
	for _, tok := range strings.Split(side, ",") {
		index := -1
		for _, c := range tok {
			if c >= 'A' && c <= 'Z' {
				index = int(c - 'A')
				break
			}
		}

		if index == -1 {
			return attrs.AttributeSet{}, fmt.Errorf("missing valid attribute <A-Z> in '%s'", strings.TrimSpace(tok))
		}
		if index >= numAttrs {
			return attrs.AttributeSet{}, fmt.Errorf("invalid attribute %s: expected attributes from A to %s",
				attrs.AttrName(index), attrs.AttrName(numAttrs-1))
		}

		result = result.Insert(index)
	}

	return result, nil
}

type yamlDependency struct {
	Determinant []string `yaml:"determinant"`
	Dependent   []string `yaml:"dependent"`
}

type yamlSchema struct {
	Attributes   []string         `yaml:"attributes"`
	Dependencies []yamlDependency `yaml:"dependencies"`
}

// ParseYAML reads the YAML dependency format:
//
//	attributes: [id, name, email]
//	dependencies:
//	  - determinant: [id]
//	    dependent: [name, email]
//
// Attribute names map to indices in declaration order and must be unique.
func ParseYAML(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var ys yamlSchema
	if err := yaml.UnmarshalStrict(data, &ys); err != nil {
		return nil, errors.Wrap(err, "could not parse schema yaml")
	}

	coll, err := fdep.NewCollection(len(ys.Attributes))
	if err != nil {
		return nil, err
	}

	indexByName := make(map[string]int, len(ys.Attributes))
	for i, name := range ys.Attributes {
		if name == "" {
			return nil, fmt.Errorf("attribute %d has an empty name", i)
		}
		if _, exists := indexByName[name]; exists {
			return nil, fmt.Errorf("duplicate attribute name '%s'", name)
		}
		indexByName[name] = i
	}

	resolveSide := func(depNum int, side string, names []string) (attrs.AttributeSet, error) {
		if len(names) == 0 {
			return attrs.AttributeSet{}, fmt.Errorf("dependency %d has an empty %s", depNum, side)
		}

		result := attrs.NewAttributeSet()
		for _, name := range names {
			i, ok := indexByName[name]
			if !ok {
				return attrs.AttributeSet{}, fmt.Errorf("dependency %d references unknown attribute '%s'", depNum, name)
			}
			result = result.Insert(i)
		}
		return result, nil
	}

	for depNum, yd := range ys.Dependencies {
		det, err := resolveSide(depNum+1, "determinant", yd.Determinant)
		if err != nil {
			return nil, err
		}
		dpt, err := resolveSide(depNum+1, "dependent", yd.Dependent)
		if err != nil {
			return nil, err
		}

		coll.Add(fdep.Dependency{Determinant: det, Dependent: dpt})
	}

	names := make([]string, len(ys.Attributes))
	copy(names, ys.Attributes)

	return &Schema{Names: names, Deps: coll}, nil
}
