// Copyright © 2016 NAME HERE <EMAIL ADDRESS>
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

package cmd

import (
	"strings"

	"github.com/hpcloud/termui"
	"github.com/spf13/cobra"

	"github.com/bo1led-owl/checker/lib"
)

// Flags from the command line are set in these variables
var (
	solutionCommand string
	buildRule       string
	suiteFile       string
	inputFile       string
	answerFile      string
	outputFile      string
	fullOutput      bool
	allLines        bool
	jsonOutput      bool
	timings         bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] -- COMMAND [ARGS...]",
	Short: "Runs the solution against every test and checks its answers",
	Long: `Runs the solution once per test, feeding the test input on stdin and
comparing stdout against the expected answer line by line. Wrong answers are
reported but do not make checker exit non-zero; only harness failures do.`,
	Run: func(cmd *cobra.Command, args []string) {
		command := solutionCommand
		if command == "" {
			command = strings.Join(args, " ")
		}
		if strings.TrimSpace(command) == "" {
			termui.PrintAndExit(ui, lib.NewCheckerError("No solution command given", nil))
		}

		options := lib.CheckerOptions{
			SolutionCommand: command,
			BuildRule:       buildRule,
			SuiteFile:       suiteFile,
			InputFile:       inputFile,
			AnswerFile:      answerFile,
			OutputFile:      outputFile,
			FullOutput:      fullOutput,
			AllLines:        allLines,
			JSONOutput:      jsonOutput,
			Timings:         timings,
		}
		if err := applyConfigDefaults(cmd, &options); err != nil {
			termui.PrintAndExit(ui, err)
		}

		checker := lib.NewChecker(ui, ui, options)
		if err := checker.Run(); err != nil {
			termui.PrintAndExit(ui, err)
		}
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&solutionCommand, "command", "c", "", "Command to run the solution")
	checkCmd.Flags().StringVarP(&buildRule, "build", "b", "", "Command to build the solution before tests")
	checkCmd.Flags().StringVarP(&suiteFile, "suite", "s", "", "Path to the test suite file")
	checkCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to the file with test input (single-test mode)")
	checkCmd.Flags().StringVarP(&answerFile, "answer", "a", "", "Path to the file with the correct answer (single-test mode)")
	checkCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "Read the solution's answer from this file instead of stdout")
	checkCmd.Flags().BoolVarP(&fullOutput, "full-output", "f", false, "Print full output of the solution for every test")
	checkCmd.Flags().BoolVar(&allLines, "all-lines", false, "Show matched lines in the diff, not only mismatches")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	checkCmd.Flags().BoolVar(&timings, "timings", false, "Print per-test wall-clock time")
}
