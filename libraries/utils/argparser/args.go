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

package argparser

// ArgParseResults is the result of parsing command line arguments: named
// options and positional arguments.
type ArgParseResults struct {
	options map[string]string
	args    []string
	parser  *ArgParser
}

// Contains returns whether the given option was provided.
func (res *ArgParseResults) Contains(name string) bool {
	_, ok := res.options[name]
	return ok
}

// GetValue returns the value of the given option, if provided.
func (res *ArgParseResults) GetValue(name string) (string, bool) {
	val, ok := res.options[name]
	return val, ok
}

// GetValueOrDefault returns the value of the given option, or defVal if it
// was not provided.
func (res *ArgParseResults) GetValueOrDefault(name, defVal string) string {
	if val, ok := res.options[name]; ok {
		return val
	}

	return defVal
}

// NArg returns the number of positional arguments.
func (res *ArgParseResults) NArg() int {
	return len(res.args)
}

// Arg returns the positional argument at index i.
func (res *ArgParseResults) Arg(i int) string {
	return res.args[i]
}

// Args returns all positional arguments in order.
func (res *ArgParseResults) Args() []string {
	return res.args
}
