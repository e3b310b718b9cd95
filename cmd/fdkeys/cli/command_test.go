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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

type testCommand struct {
	name     string
	execArgs []string
	ran      bool
}

func (cmd *testCommand) Name() string {
	return cmd.name
}

func (cmd *testCommand) Description() string {
	return "a test command"
}

func (cmd *testCommand) Exec(ctx context.Context, commandStr string, args []string) int {
	cmd.ran = true
	cmd.execArgs = args
	return 0
}

func TestSubCommandHandlerDispatch(t *testing.T) {
	var buf bytes.Buffer
	savedOut, savedErr := CliOut, CliErr
	CliOut, CliErr = &buf, &buf
	defer func() {
		CliOut, CliErr = savedOut, savedErr
	}()

	sub := &testCommand{name: "run"}
	handler := NewSubCommandHandler("tool", "a test tool", []Command{sub})

	res := handler.Exec(context.Background(), "tool", []string{"run", "arg1", "arg2"})
	assert.Equal(t, 0, res)
	assert.True(t, sub.ran)
	assert.Equal(t, []string{"arg1", "arg2"}, sub.execArgs)

	res = handler.Exec(context.Background(), "tool", []string{"bogus"})
	assert.Equal(t, 1, res)
	assert.Contains(t, buf.String(), "Unknown Command bogus")

	buf.Reset()
	res = handler.Exec(context.Background(), "tool", nil)
	assert.Equal(t, 1, res)
	assert.Contains(t, buf.String(), "Valid commands for tool are")
	assert.Contains(t, buf.String(), "run")
}

func TestOptionsUsage(t *testing.T) {
	ap := argparser.NewArgParserWithVariableArgs("test")
	ap.ArgListHelp = append(ap.ArgListHelp, [2]string{"input", "the input file"})
	ap.SupportsFlag("quick", "q", "go fast")
	ap.SupportsString("output", "o", "file", "where to write results")

	usage := OptionsUsage(ap, "  ", 80)
	assert.Contains(t, usage, "<input>")
	assert.Contains(t, usage, "the input file")
	assert.Contains(t, usage, "-q, --quick")
	assert.Contains(t, usage, "-o <file>, --output=<file>")
	assert.Contains(t, usage, "where to write results")
}

func TestToParagraphLines(t *testing.T) {
	lines := toParagraphLines("short line", 80)
	assert.Equal(t, []string{"short line"}, lines)

	lines = toParagraphLines("aaa bbb ccc", 7)
	assert.Equal(t, []string{"aaa", "bbb ccc"}, lines)

	lines = toParagraphLines("one\n\ntwo", 80)
	assert.Equal(t, []string{"one", "", "two"}, lines)
}
