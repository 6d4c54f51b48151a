package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hpcloud/termui"
	"github.com/spf13/cobra"

	"github.com/bo1led-owl/checker/lib"
)

var (
	addSuiteFile  string
	addInputFile  string
	addAnswerFile string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Appends a new test to the suite file",
	Long: `Reads a test input and its correct answer from two files, renders them
as a suite record and appends it to the suite file, creating the file when
it does not exist yet.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, err := os.ReadFile(addInputFile)
		if err != nil {
			termui.PrintAndExit(ui, lib.NewCheckerError(fmt.Sprintf("Error reading test input from %s:", addInputFile), err))
		}
		answer, err := os.ReadFile(addAnswerFile)
		if err != nil {
			termui.PrintAndExit(ui, lib.NewCheckerError(fmt.Sprintf("Error reading correct answer from %s:", addAnswerFile), err))
		}

		test := lib.Test{
			Input:  strings.TrimSpace(string(input)),
			Answer: strings.TrimSpace(string(answer)),
		}
		if err := lib.AppendTest(addSuiteFile, test); err != nil {
			termui.PrintAndExit(ui, err)
		}
		ui.Printf("Added test to %s\n", addSuiteFile)
	},
}

func init() {
	RootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addSuiteFile, "suite", "s", "", "Path to the test suite file")
	addCmd.Flags().StringVarP(&addInputFile, "input", "i", "", "Path to the file with test input")
	addCmd.Flags().StringVarP(&addAnswerFile, "answer", "a", "", "Path to the file with the correct answer")
	addCmd.MarkFlagRequired("suite")
	addCmd.MarkFlagRequired("input")
	addCmd.MarkFlagRequired("answer")
}
