package lib

// Per-test verdicts as they appear in reports.
const (
	VerdictPassed      = "passed"
	VerdictWrongAnswer = "wrong answer"
	VerdictError       = "error"
)

// TestResult is the recorded outcome of one suite test.
type TestResult struct {
	Index      int               `json:"test"`
	Verdict    string            `json:"verdict"`
	ExitCode   int               `json:"exitcode"`
	Output     string            `json:"output,omitempty"`
	Error      string            `json:"error,omitempty"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
	Seconds    float64           `json:"seconds,omitempty"`
}

// ErrorTestResult returns a TestResult for tests that failed to execute at
// all (spawn error, unreadable output file, etc.).
func ErrorTestResult(index int, err error) TestResult {
	return TestResult{
		Index:    index,
		Verdict:  VerdictError,
		ExitCode: -1,
		Error:    err.Error(),
	}
}
