package lib

import (
	"fmt"
	"os"
	"strings"
)

const (
	testMarker   = "[test]\n"
	inputMarker  = "[input]\n"
	answerMarker = "[answer]\n"
)

// Test is one input/expected-answer pair of a suite. Both fields are trimmed
// of surrounding whitespace by the parser and read-only afterwards.
type Test struct {
	Input  string
	Answer string
}

// MalformedSuiteError reports a suite source that violates the record format.
type MalformedSuiteError struct {
	Record int // 1-based index of the offending record
	Reason string
}

func (e *MalformedSuiteError) Error() string {
	return fmt.Sprintf("malformed test suite: record %d: %s", e.Record, e.Reason)
}

// ParseSuite parses a suite source into its ordered test list. The source is
// split strictly on the "[test]" marker; empty split segments are discarded.
// Each record must begin with an "[input]" header and contain an "[answer]"
// header further down: text between the two is the input, text after is the
// answer.
func ParseSuite(source string) ([]Test, error) {
	var tests []Test
	for _, record := range strings.Split(source, testMarker) {
		if record == "" {
			continue
		}
		body, ok := strings.CutPrefix(record, inputMarker)
		if !ok {
			return nil, &MalformedSuiteError{Record: len(tests) + 1, Reason: "missing [input] header"}
		}
		input, answer, ok := strings.Cut(body, answerMarker)
		if !ok {
			return nil, &MalformedSuiteError{Record: len(tests) + 1, Reason: "missing [answer] header"}
		}
		tests = append(tests, Test{
			Input:  strings.TrimSpace(input),
			Answer: strings.TrimSpace(answer),
		})
	}
	return tests, nil
}

// SerializeTest renders a test as one suite record. Each block gets a
// trailing newline if it lacks one, so appended records always re-parse
// cleanly.
func SerializeTest(t Test) string {
	var b strings.Builder
	b.WriteString(testMarker)
	b.WriteString(inputMarker)
	b.WriteString(t.Input)
	if !strings.HasSuffix(t.Input, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(answerMarker)
	b.WriteString(t.Answer)
	if !strings.HasSuffix(t.Answer, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// LoadSuiteFile reads and parses the suite file at path.
func LoadSuiteFile(path string) ([]Test, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, NewCheckerError(fmt.Sprintf("Error reading test suite from %s:", path), err)
	}
	tests, err := ParseSuite(string(source))
	if err != nil {
		return nil, NewCheckerError(fmt.Sprintf("Error parsing test suite %s:", path), err)
	}
	return tests, nil
}

// AppendTest appends a serialized test record to the suite file, creating
// the file if it does not exist yet.
func AppendTest(path string, t Test) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return NewCheckerError(fmt.Sprintf("Error opening test suite %s:", path), err)
	}
	defer f.Close()
	if _, err := f.WriteString(SerializeTest(t)); err != nil {
		return NewCheckerError(fmt.Sprintf("Error appending test to %s:", path), err)
	}
	return nil
}
