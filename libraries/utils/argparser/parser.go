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

import (
	"errors"
	"fmt"
	"strings"
)

const (
	optNameValDelimChars = " =:"

	helpFlag       = "help"
	helpFlagAbbrev = "h"
)

// ErrHelp is returned from Parse when the universal --help or -h flag is
// found.
var ErrHelp = errors.New("help")

// UnknownArgumentParam is the error for an option the parser does not know.
type UnknownArgumentParam struct {
	name string
}

func (u UnknownArgumentParam) Error() string {
	return fmt.Sprintf("error: unknown option `%s'", u.name)
}

type ArgParser struct {
	Name              string
	MaxArgs           int
	Supported         []*Option
	nameOrAbbrevToOpt map[string]*Option
	ArgListHelp       [][2]string
}

// NewArgParserWithMaxArgs creates a new ArgParser for a named command that limits how many positional
// arguments it will accept, returning a detailed error when more are provided.
func NewArgParserWithMaxArgs(name string, maxArgs int) *ArgParser {
	return &ArgParser{
		Name:              name,
		MaxArgs:           maxArgs,
		nameOrAbbrevToOpt: make(map[string]*Option),
	}
}

// NewArgParserWithVariableArgs creates a new ArgParser for a named command
// that accepts any number of positional arguments.
func NewArgParserWithVariableArgs(name string) *ArgParser {
	return NewArgParserWithMaxArgs(name, -1)
}

// SupportOption adds support for a new argument with the option given. Options must have a unique name and
// abbreviated name.
func (ap *ArgParser) SupportOption(opt *Option) {
	name := opt.Name
	abbrev := opt.Abbrev

	_, nameExist := ap.nameOrAbbrevToOpt[name]
	_, abbrevExist := ap.nameOrAbbrevToOpt[abbrev]

	if name == "" {
		panic("Name is required")
	} else if name == helpFlag || abbrev == helpFlag || name == helpFlagAbbrev || abbrev == helpFlagAbbrev {
		panic(`"help" and "h" are both reserved`)
	} else if nameExist || abbrevExist {
		panic("There is a bug.  Two supported arguments have the same name or abbreviation")
	} else if name[0] == '-' || (len(abbrev) > 0 && abbrev[0] == '-') {
		panic("There is a bug. Option names, and abbreviations should not start with -")
	} else if strings.IndexAny(name, optNameValDelimChars) != -1 {
		panic("There is a bug.  Option name contains an invalid character")
	}

	ap.Supported = append(ap.Supported, opt)
	ap.nameOrAbbrevToOpt[name] = opt

	if abbrev != "" {
		ap.nameOrAbbrevToOpt[abbrev] = opt
	}
}

// SupportsFlag adds support for a new flag (argument with no value). See SupportOption for details on params.
func (ap *ArgParser) SupportsFlag(name, abbrev, desc string) *ArgParser {
	opt := &Option{name, abbrev, "", OptionalFlag, desc, nil}
	ap.SupportOption(opt)

	return ap
}

// SupportsString adds support for a new string argument with the description given. See SupportOption for
// details on params.
func (ap *ArgParser) SupportsString(name, abbrev, valDesc, desc string) *ArgParser {
	opt := &Option{name, abbrev, valDesc, OptionalValue, desc, nil}
	ap.SupportOption(opt)

	return ap
}

// SupportsValidatedString adds support for a new string argument checked by the given validation function.
func (ap *ArgParser) SupportsValidatedString(name, abbrev, valDesc, desc string, validator ValidationFunc) *ArgParser {
	opt := &Option{name, abbrev, valDesc, OptionalValue, desc, validator}
	ap.SupportOption(opt)

	return ap
}

// SupportsUint adds support for a new uint argument with the description given. See SupportOption for details
// on params.
func (ap *ArgParser) SupportsUint(name, abbrev, valDesc, desc string) *ArgParser {
	opt := &Option{name, abbrev, valDesc, OptionalValue, desc, isUintStr}
	ap.SupportOption(opt)

	return ap
}

// Parse parses the string args given using the configuration previously specified with calls to the various
// Supports* methods. Any unrecognized arguments or incorrect types will result in an appropriate error being
// returned. If the universal --help or -h flag is found, an ErrHelp error is returned.
func (ap *ArgParser) Parse(args []string) (*ArgParseResults, error) {
	positionalArgs := make([]string, 0, 16)
	namedArgs := make(map[string]string)
	onlyPositionalArgsLeft := false

	for index := 0; index < len(args); index++ {
		arg := args[index]

		// empty strings get passed through like other naked words
		if len(arg) == 0 || arg[0] != '-' || onlyPositionalArgsLeft {
			positionalArgs = append(positionalArgs, arg)
			continue
		}

		if arg == "--" {
			onlyPositionalArgsLeft = true
			continue
		}

		name := strings.TrimLeft(arg, "-")

		if name == helpFlag || name == helpFlagAbbrev {
			return nil, ErrHelp
		}

		name, inlineValue := splitInlineValue(name)

		opt, ok := ap.nameOrAbbrevToOpt[name]
		if !ok {
			return nil, UnknownArgumentParam{name: name}
		}

		if _, exists := namedArgs[opt.Name]; exists {
			return nil, errors.New("error: multiple values provided for `" + opt.Name + "'")
		}

		if opt.OptType == OptionalFlag {
			if inlineValue != nil {
				return nil, errors.New("error: the flag `" + opt.Name + "' does not take a value")
			}

			namedArgs[opt.Name] = ""
			continue
		}

		value := inlineValue
		if value == nil {
			index++
			if index >= len(args) {
				return nil, errors.New("error: no value for option `" + opt.Name + "'")
			}
			value = &args[index]
		}

		if opt.Validator != nil {
			if err := opt.Validator(*value); err != nil {
				return nil, err
			}
		}

		namedArgs[opt.Name] = *value
	}

	if ap.MaxArgs != -1 && len(positionalArgs) > ap.MaxArgs {
		return nil, ap.tooManyArgsErr(positionalArgs)
	}

	return &ArgParseResults{namedArgs, positionalArgs, ap}, nil
}

// splitInlineValue splits "name=value" style arguments, leaving value nil
// when the argument is just a name.
func splitInlineValue(arg string) (name string, value *string) {
	idx := strings.IndexAny(arg, optNameValDelimChars)
	if idx == -1 {
		return arg, nil
	}

	v := arg[idx+1:]
	return arg[:idx], &v
}

func (ap *ArgParser) tooManyArgsErr(receivedArgs []string) error {
	args := strings.Join(receivedArgs, ", ")
	if ap.MaxArgs == 0 {
		return fmt.Errorf("error: %s does not take positional arguments, but found %d: %s", ap.Name, len(receivedArgs), args)
	}
	return fmt.Errorf("error: %s has too many positional arguments. Expected at most %d, found %d: %s", ap.Name, ap.MaxArgs, len(receivedArgs), args)
}
