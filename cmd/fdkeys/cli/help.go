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
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dolthub/fdkeys/libraries/utils/argparser"
)

const helpWidth = 110

var underline = color.New(color.Underline)
var bold = color.New(color.Bold)

func PrintHelpText(commandStr, shortDesc, longDesc string, synopsis []string, parser *argparser.ArgParser) {
	indent := "\t"

	Println(bold.Sprint("NAME"))
	Printf("%s%s - %s\n", indent, commandStr, shortDesc)

	if len(synopsis) > 0 {
		Println()
		Println(bold.Sprint("SYNOPSIS"))

		for _, curr := range synopsis {
			Printf(indent+"%s %s\n", underline.Sprint(commandStr), curr)
		}
	}

	Println()
	Println(bold.Sprint("DESCRIPTION"))
	Println(toIndentedParagraph(longDesc, indent, helpWidth))

	if len(parser.Supported) > 0 || len(parser.ArgListHelp) > 0 {
		Println()
		Println(bold.Sprint("OPTIONS"))
		Println(OptionsUsage(parser, indent, helpWidth))
	}
}

func PrintUsage(commandStr string, synopsis []string, parser *argparser.ArgParser) {
	if len(synopsis) > 0 {
		for i, curr := range synopsis {
			if i == 0 {
				Println("usage:", commandStr, curr)
			} else {
				Println("   or:", commandStr, curr)
			}
		}
	}

	if len(parser.Supported) > 0 || len(parser.ArgListHelp) > 0 {
		Println()
		Println("Specific", commandStr, "options")
		Println(OptionsUsage(parser, "    ", helpWidth))
	}
}

// OptionsUsage returns the text of the OPTIONS section for the options and
// arguments supported by |ap|.
func OptionsUsage(ap *argparser.ArgParser, indent string, lineLen int) string {
	var lines []string

	for _, help := range ap.ArgListHelp {
		lines = append(lines, "<"+help[0]+">")
		lines = append(lines, descriptionLines(help[1], lineLen)...)
	}

	for _, supOpt := range ap.Supported {
		argHelpFmt := "--%[2]s"

		if supOpt.Abbrev != "" && supOpt.ValDesc != "" {
			argHelpFmt = "-%[1]s <%[3]s>, --%[2]s=<%[3]s>"
		} else if supOpt.Abbrev != "" {
			argHelpFmt = "-%[1]s, --%[2]s"
		} else if supOpt.ValDesc != "" {
			argHelpFmt = "--%[2]s=<%[3]s>"
		}

		lines = append(lines, fmt.Sprintf(argHelpFmt, supOpt.Abbrev, supOpt.Name, supOpt.ValDesc))
		lines = append(lines, descriptionLines(supOpt.Desc, lineLen)...)
	}

	return strings.Join(indentLines(lines, indent), "\n")
}

func descriptionLines(desc string, lineLen int) []string {
	lines := toParagraphLines(desc, lineLen)
	lines = indentLines(lines, "  ")
	return append(lines, "")
}

func toIndentedParagraph(inStr, indent string, lineLen int) string {
	lines := toParagraphLines(inStr, lineLen)
	return strings.Join(indentLines(lines, indent), "\n")
}

func toParagraphLines(inStr string, lineLen int) []string {
	var lines []string
	for _, descLine := range strings.Split(inStr, "\n") {
		if len(descLine) == 0 {
			lines = append(lines, "")
			continue
		}

		for remaining := descLine; len(remaining) > 0; {
			if len(remaining) <= lineLen {
				lines = append(lines, remaining)
				break
			}

			splitPt := strings.LastIndexAny(remaining[:lineLen], " \t")
			if splitPt == -1 {
				splitPt = lineLen
			}

			lines = append(lines, remaining[:splitPt])
			remaining = remaining[splitPt+1:]
		}
	}

	return lines
}

func indentLines(lines []string, indentation string) []string {
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = indentation + line
	}
	return indented
}
