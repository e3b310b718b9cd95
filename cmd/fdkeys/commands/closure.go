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

package commands

import (
	"context"

	"github.com/fatih/color"

	"github.com/dolthub/fdkeys/cmd/fdkeys/cli"
	"github.com/dolthub/fdkeys/libraries/errhand"
	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

var closureShortDesc = "Compute the closure of an attribute set"
var closureLongDesc = "Computes the set of all attributes functionally determined by the given seed " +
	"attributes under the schema's dependencies, and reports whether the seed is a superkey. The seed is a " +
	"comma separated list of attribute names, e.g. 'A,C' or 'id,email' for a yaml schema."
var closureSynopsis = []string{
	"[--strategy=<strategy>] [-v] <dependency file> <attributes>",
}

type ClosureCmd struct{}

func (cmd ClosureCmd) Name() string {
	return "closure"
}

func (cmd ClosureCmd) Description() string {
	return closureShortDesc
}

func (cmd ClosureCmd) createArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 2)
	ap.ArgListHelp = append(ap.ArgListHelp,
		[2]string{"dependency file", "file describing the schema's functional dependencies"},
		[2]string{"attributes", "comma separated seed attributes"})
	supportsStrategyFlag(ap)
	supportsVerboseFlag(ap)
	return ap
}

func (cmd ClosureCmd) Exec(ctx context.Context, commandStr string, args []string) int {
	ap := cmd.createArgParser()
	help, usage := cli.HelpAndUsagePrinters(commandStr, closureShortDesc, closureLongDesc, closureSynopsis, ap)
	apr := cli.ParseArgs(ap, args, help)

	if apr.NArg() != 2 {
		usage()
		return 1
	}

	setupLogging(apr)

	sch, verr := loadSchema(apr.Arg(0))
	if verr != nil {
		cli.PrintErrln(verr.Verbose())
		return 1
	}

	seed, err := sch.ParseAttrList(apr.Arg(1))
	if err != nil {
		verr = errhand.BuildDError("Invalid attribute list.").AddCause(err).Build()
		cli.PrintErrln(verr.Verbose())
		return 1
	}

	comp := computerForStrategy(apr, sch.Deps)
	cl := comp.Closure(seed)

	cli.Printf("{%s}+ = {%s}\n", sch.FormatSet(seed), sch.FormatSet(cl))

	if cl.IsFull(sch.NumAttributes()) {
		cli.Println(color.GreenString("{%s} is a superkey", sch.FormatSet(seed)))
	} else {
		cli.Printf("{%s} is not a superkey\n", sch.FormatSet(seed))
	}

	return 0
}
