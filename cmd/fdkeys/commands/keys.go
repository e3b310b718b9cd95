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

	"github.com/dolthub/fdkeys/cmd/fdkeys/cli"
	"github.com/dolthub/fdkeys/libraries/fdcore/keys"
	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

var keysShortDesc = "Compute all candidate keys of a schema"
var keysLongDesc = "Reads a dependency file and enumerates every candidate key of the schema: the minimal " +
	"attribute sets that functionally determine all attributes. Keys are printed in discovery order, each " +
	"exactly once."
var keysSynopsis = []string{
	"[--strategy=<strategy>] [-v] <dependency file>",
}

type KeysCmd struct{}

func (cmd KeysCmd) Name() string {
	return "keys"
}

func (cmd KeysCmd) Description() string {
	return keysShortDesc
}

func (cmd KeysCmd) createArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"dependency file", "file describing the schema's functional dependencies"})
	supportsStrategyFlag(ap)
	supportsVerboseFlag(ap)
	return ap
}

func (cmd KeysCmd) Exec(ctx context.Context, commandStr string, args []string) int {
	ap := cmd.createArgParser()
	help, usage := cli.HelpAndUsagePrinters(commandStr, keysShortDesc, keysLongDesc, keysSynopsis, ap)
	apr := cli.ParseArgs(ap, args, help)

	if apr.NArg() != 1 {
		usage()
		return 1
	}

	setupLogging(apr)

	sch, verr := loadSchema(apr.Arg(0))
	if verr != nil {
		cli.PrintErrln(verr.Verbose())
		return 1
	}

	comp := computerForStrategy(apr, sch.Deps)
	enum := keys.NewEnumerator(comp, sch.Deps)

	count := 0
	for k, ok := enum.Next(); ok; k, ok = enum.Next() {
		cli.Printf("{%s}\n", sch.FormatSet(k))
		count++
	}

	if count == 1 {
		cli.Println("1 candidate key")
	} else {
		cli.Println(count, "candidate keys")
	}

	return 0
}
