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

package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/fdkeys/cmd/fdkeys/cli"
	"github.com/dolthub/fdkeys/cmd/fdkeys/commands"
)

const Version = "0.1.0"

var fdkeysCommand = cli.NewSubCommandHandler("fdkeys", "candidate key analysis for relational schemas", []cli.Command{
	commands.KeysCmd{},
	commands.ClosureCmd{},
	commands.GraphCmd{},
	commands.VersionCmd{VersionStr: Version},
})

func main() {
	cli.InitIO()
	logrus.SetLevel(logrus.WarnLevel)

	res := fdkeysCommand.Exec(context.Background(), "fdkeys", os.Args[1:])
	os.Exit(res)
}
