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
	"fmt"
	"strings"

	"github.com/dolthub/fdkeys/cmd/fdkeys/cli"
	"github.com/dolthub/fdkeys/libraries/fdcore/closure"
	"github.com/dolthub/fdkeys/libraries/fdcore/fdparse"
	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

var graphShortDesc = "Print a schema's closure graph"
var graphLongDesc = "Builds the closure graph of the schema and prints its adjacency list. Attribute vertices " +
	"are shown by name; each dependency with a multi-attribute determinant contributes a numbered gate vertex " +
	"that fires once all of its determinant attributes are reachable."
var graphSynopsis = []string{
	"[-v] <dependency file>",
}

type GraphCmd struct{}

func (cmd GraphCmd) Name() string {
	return "graph"
}

func (cmd GraphCmd) Description() string {
	return graphShortDesc
}

func (cmd GraphCmd) createArgParser() *argparser.ArgParser {
	ap := argparser.NewArgParserWithMaxArgs(cmd.Name(), 1)
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"dependency file", "file describing the schema's functional dependencies"})
	supportsVerboseFlag(ap)
	return ap
}

func (cmd GraphCmd) Exec(ctx context.Context, commandStr string, args []string) int {
	ap := cmd.createArgParser()
	help, usage := cli.HelpAndUsagePrinters(commandStr, graphShortDesc, graphLongDesc, graphSynopsis, ap)
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

	g := closure.NewGraph(sch.Deps)

	for v := 0; v < g.NumVertices(); v++ {
		targets := make([]string, 0, len(g.OutEdges(v)))
		for _, w := range g.OutEdges(v) {
			targets = append(targets, vertexLabel(g, sch, w))
		}

		label := vertexLabel(g, sch, v)
		if g.Kind(v) == closure.GateVertex {
			label = fmt.Sprintf("%s (threshold %d)", label, g.Threshold(v))
		}

		cli.Printf("%s > %s\n", label, strings.Join(targets, " "))
	}

	return 0
}

func vertexLabel(g *closure.Graph, sch *fdparse.Schema, v int) string {
	if g.Kind(v) == closure.AttrVertex {
		return sch.AttrName(v)
	}

	return fmt.Sprintf("#%d", v)
}
