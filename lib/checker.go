package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// CheckerOptions represents options passed to the Checker.
type CheckerOptions struct {
	SolutionCommand string
	BuildRule       string
	SuiteFile       string
	InputFile       string
	AnswerFile      string
	OutputFile      string
	FullOutput      bool
	AllLines        bool
	JSONOutput      bool
	Timings         bool
}

// Checker runs a candidate solution against a test suite and displays the
// per-test verdicts.
type Checker struct {
	stdout io.Writer
	stderr io.Writer

	options CheckerOptions

	testResults []TestResult
}

// NewChecker constructs a new Checker.
func NewChecker(
	stdout io.Writer,
	stderr io.Writer,
	options CheckerOptions,
) *Checker {
	return &Checker{
		stdout:  stdout,
		stderr:  stderr,
		options: options,
	}
}

// Run is the public entrypoint of the Checker. It loads the tests, runs the
// build rule, then checks every test in suite order. Per-test failures are
// reported and never stop the remaining tests; the returned error is
// non-nil only for fatal harness errors.
func (c *Checker) Run() error {
	tests, err := c.loadTests()
	if err != nil {
		return err
	}
	if !c.options.JSONOutput {
		fmt.Fprintf(c.stdout, "Found %d tests\n", len(tests))
	}

	if c.options.BuildRule != "" {
		if err := RunBuildRule(c.options.BuildRule); err != nil {
			return err
		}
	}

	for i, test := range tests {
		result := c.runSingleTest(i+1, test)
		c.printTestResult(result)
		c.testResults = append(c.testResults, result)
	}

	if c.options.JSONOutput {
		return c.outputResultsJSON()
	}
	c.outputResults()
	return nil
}

// loadTests returns the suite's tests, or a one-test suite synthesized from
// the input/answer files when no suite file is configured. A missing input
// or answer file path just leaves that block empty.
func (c *Checker) loadTests() ([]Test, error) {
	if c.options.SuiteFile != "" {
		return LoadSuiteFile(c.options.SuiteFile)
	}

	var test Test
	if c.options.InputFile != "" {
		input, err := os.ReadFile(c.options.InputFile)
		if err != nil {
			return nil, NewCheckerError(fmt.Sprintf("Error reading test input from %s:", c.options.InputFile), err)
		}
		test.Input = string(input)
	}
	if c.options.AnswerFile != "" {
		answer, err := os.ReadFile(c.options.AnswerFile)
		if err != nil {
			return nil, NewCheckerError(fmt.Sprintf("Error reading correct answer from %s:", c.options.AnswerFile), err)
		}
		test.Answer = string(answer)
	}
	return []Test{test}, nil
}

func (c *Checker) runSingleTest(index int, test Test) TestResult {
	var stdin []byte
	if test.Input != "" {
		stdin = []byte(test.Input)
	}

	start := time.Now()
	outcome, err := RunProcess(c.options.SolutionCommand, stdin)
	elapsed := time.Since(start)
	if err != nil {
		headline := fmt.Sprintf("Error running the solution %s:", c.options.SolutionCommand)
		return ErrorTestResult(index, NewCheckerError(headline, err))
	}

	result := TestResult{Index: index, ExitCode: outcome.ExitCode}
	if c.options.Timings {
		result.Seconds = elapsed.Seconds()
	}

	if outcome.Kind != OutcomeSuccess {
		result.Verdict = VerdictError
		result.Error = outcome.Describe()
		return result
	}

	actual, err := c.actualOutput(outcome)
	if err != nil {
		return ErrorTestResult(index, err)
	}
	result.Output = actual

	opts := DefaultComparatorOptions()
	opts.ReportMatches = c.options.AllLines
	comparison := Compare(test.Answer, actual, opts)
	result.Comparison = &comparison
	if comparison.Correct {
		result.Verdict = VerdictPassed
	} else {
		result.Verdict = VerdictWrongAnswer
	}
	return result
}

// actualOutput is what the comparator sees: the captured stdout, or the
// contents of the redirected output file when one is configured. Reading
// that file can fail per-test without aborting the run.
func (c *Checker) actualOutput(outcome ProcessOutcome) (string, error) {
	if c.options.OutputFile == "" {
		return string(outcome.Stdout), nil
	}
	data, err := os.ReadFile(c.options.OutputFile)
	if err != nil {
		return "", NewCheckerError(fmt.Sprintf("Error reading solution output from %s:", c.options.OutputFile), err)
	}
	return string(data), nil
}

func (c *Checker) printTestResult(result TestResult) {
	if c.options.JSONOutput {
		return
	}

	fmt.Fprintf(c.stdout, "Test %d: ", result.Index)
	switch result.Verdict {
	case VerdictPassed:
		fmt.Fprintln(c.stdout, GreenBold("Passed"))
	case VerdictWrongAnswer:
		fmt.Fprintln(c.stdout, RedBold("Wrong answer"))
	default:
		fmt.Fprintln(c.stdout, RedBold("Failed"))
	}
	if c.options.Timings && result.Seconds > 0 {
		fmt.Fprintf(c.stdout, "Took %.3fs\n", result.Seconds)
	}
	if result.Error != "" {
		fmt.Fprintln(c.stderr, Red("%s", result.Error))
	}
	if c.options.FullOutput && result.Output != "" {
		fmt.Fprintf(c.stdout, "Output:\n%s\n", strings.TrimSpace(result.Output))
	}
	if result.Comparison != nil && !result.Comparison.Correct {
		fmt.Fprint(c.stdout, result.Comparison.Render())
	}
}

func (c *Checker) passedCount() int {
	passed := 0
	for _, result := range c.testResults {
		if result.Verdict == VerdictPassed {
			passed++
		}
	}
	return passed
}

func (c *Checker) outputResults() {
	passed := c.passedCount()
	failed := len(c.testResults) - passed
	summary := fmt.Sprintf("\nTests complete: %d Passed, %d Failed", passed, failed)
	if failed > 0 {
		fmt.Fprintln(c.stderr, RedBold("%s", summary))
	} else {
		fmt.Fprintln(c.stdout, GreenBold("%s", summary))
	}
}

func (c *Checker) outputResultsJSON() error {
	passed := c.passedCount()

	// This is the only place where we need this struct, so anonymous struct seems appropriate.
	jsonOutputStruct := struct {
		Passed  int          `json:"passed"`
		Failed  int          `json:"failed"`
		Results []TestResult `json:"results"`
	}{
		Passed:  passed,
		Failed:  len(c.testResults) - passed,
		Results: c.testResults,
	}

	jsonEncoder := json.NewEncoder(c.stdout)
	if err := jsonEncoder.Encode(jsonOutputStruct); err != nil {
		return NewCheckerError("Error trying to marshal JSON output", err)
	}
	return nil
}
