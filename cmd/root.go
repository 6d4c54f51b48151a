package cmd

import (
	"os"

	"github.com/hpcloud/termui"
	"github.com/hpcloud/termui/termpassword"
	"github.com/spf13/cobra"
)

// This variable is set by Execute, from the build-time version string.
var version string

var ui *termui.UI

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "checker",
	Short: "Checks solutions to competitive programming problems",
	Long: `checker runs a solution against a suite of input/answer tests and
reports, per test, whether its output matches the expected answer up to
incidental whitespace.`,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute(versionString string) {
	version = versionString
	ui = termui.New(os.Stdin, os.Stdout, termpassword.NewReader())
	if err := RootCmd.Execute(); err != nil {
		termui.PrintAndExit(ui, err)
	}
}
