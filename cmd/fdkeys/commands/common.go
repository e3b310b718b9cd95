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
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/fdkeys/cmd/fdkeys/cli"
	"github.com/dolthub/fdkeys/libraries/errhand"
	"github.com/dolthub/fdkeys/libraries/fdcore/closure"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdep"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdparse"
	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

const (
	verboseFlag  = "verbose"
	strategyFlag = "strategy"

	strategyDirect = "direct"
	strategyGraph  = "graph"
)

func supportsVerboseFlag(ap *argparser.ArgParser) {
	ap.SupportsFlag(verboseFlag, "v", "log the engine's progress to stderr")
}

func supportsStrategyFlag(ap *argparser.ArgParser) {
	ap.SupportsValidatedString(strategyFlag, "s", "strategy",
		"closure strategy to use, either '"+strategyDirect+"' or '"+strategyGraph+"' (the default)",
		argparser.ValidatorFromStrList(strategyFlag, []string{strategyDirect, strategyGraph}))
}

func setupLogging(apr *argparser.ArgParseResults) {
	logrus.SetOutput(cli.CliErr)
	if apr.Contains(verboseFlag) {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func loadSchema(path string) (*fdparse.Schema, errhand.VerboseError) {
	sch, err := fdparse.LoadFile(path)

	if err != nil {
		return nil, errhand.BuildDError("Failed to read dependency file.").AddCause(err).Build()
	}

	return sch, nil
}

func computerForStrategy(apr *argparser.ArgParseResults, fds *fdep.Collection) closure.Computer {
	if strings.ToLower(apr.GetValueOrDefault(strategyFlag, strategyGraph)) == strategyDirect {
		return closure.NewDirect(fds)
	}

	return closure.NewGraph(fds)
}
