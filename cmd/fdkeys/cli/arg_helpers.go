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

package cli

import (
	"os"

	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

type UsagePrinter func()

// ParseArgs parses args, printing usage and exiting the process on a parse
// error or a help request.
func ParseArgs(ap *argparser.ArgParser, args []string, usagePrinter UsagePrinter) *argparser.ArgParseResults {
	apr, err := ap.Parse(args)

	if err != nil {
		if err != argparser.ErrHelp {
			PrintErrln(err.Error())
			usagePrinter()
			os.Exit(1)
		}

		// --help param
		usagePrinter()
		os.Exit(0)
	}

	return apr
}

func HelpAndUsagePrinters(commandStr, shortDesc, longDesc string, synopsis []string, ap *argparser.ArgParser) (UsagePrinter, UsagePrinter) {
	return func() {
			PrintHelpText(commandStr, shortDesc, longDesc, synopsis, ap)
		}, func() {
			PrintUsage(commandStr, synopsis, ap)
		}
}
