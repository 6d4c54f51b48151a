package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bo1led-owl/checker/lib"
)

const defaultConfigPath = "checker.yaml"

// fileConfig holds per-project defaults read from checker.yaml, so repeated
// runs in a problem directory don't need the same flags every time.
type fileConfig struct {
	Build      string `yaml:"build"`
	Suite      string `yaml:"suite"`
	OutputFile string `yaml:"outputFile"`
	FullOutput bool   `yaml:"fullOutput"`
	AllLines   bool   `yaml:"allLines"`
	Timings    bool   `yaml:"timings"`
}

// loadFileConfig returns nil without error when the file does not exist; a
// file that exists but cannot be read or parsed is fatal.
func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, lib.NewCheckerError(fmt.Sprintf("Error reading config from %s:", path), err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, lib.NewCheckerError(fmt.Sprintf("Error parsing config %s:", path), err)
	}
	return &cfg, nil
}

// applyConfigDefaults fills the options the user did not set on the command
// line from checker.yaml.
// Precedence:
// 1) CLI flags
// 2) project config (checker.yaml)
// 3) built-in defaults
func applyConfigDefaults(cmd *cobra.Command, options *lib.CheckerOptions) error {
	cfg, err := loadFileConfig(defaultConfigPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}
	applyFileConfig(cmd, cfg, options)
	return nil
}

func applyFileConfig(cmd *cobra.Command, cfg *fileConfig, options *lib.CheckerOptions) {
	if !cmd.Flags().Changed("build") {
		options.BuildRule = cfg.Build
	}
	if !cmd.Flags().Changed("suite") {
		options.SuiteFile = cfg.Suite
	}
	if !cmd.Flags().Changed("output-file") {
		options.OutputFile = cfg.OutputFile
	}
	if !cmd.Flags().Changed("full-output") {
		options.FullOutput = cfg.FullOutput
	}
	if !cmd.Flags().Changed("all-lines") {
		options.AllLines = cfg.AllLines
	}
	if !cmd.Flags().Changed("timings") {
		options.Timings = cfg.Timings
	}
}
