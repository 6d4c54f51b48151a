package lib

import (
	"fmt"
	"strings"
)

// ComparatorOptions selects the normalization and reporting behavior of
// Compare.
type ComparatorOptions struct {
	TrimLines      bool // strip leading/trailing whitespace from every line
	DropBlankLines bool // ignore lines that are empty after trimming
	ReportMatches  bool // keep matched lines in the diff, not only mismatches
}

// DefaultComparatorOptions is the whitespace-insensitive policy used for
// judge-style output: trailing spaces and extra blank lines never matter.
func DefaultComparatorOptions() ComparatorOptions {
	return ComparatorOptions{TrimLines: true, DropBlankLines: true}
}

// LineDiff is one position of the expected/actual comparison. A side that
// has no line at this position holds the empty string.
type LineDiff struct {
	Number   int    `json:"line"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Match    bool   `json:"match"`
}

// ComparisonResult is the verdict for one test's output.
type ComparisonResult struct {
	Correct       bool       `json:"correct"`
	ExpectedLines int        `json:"expectedLines"`
	ActualLines   int        `json:"actualLines"`
	Lines         []LineDiff `json:"diff,omitempty"`
}

// Compare checks actual against expected line by line. Both sides are split
// into lines and normalized per opts; when one side is shorter, the missing
// positions compare as empty lines, so a length mismatch degrades into
// ordinary diff entries instead of a hard failure.
func Compare(expected, actual string, opts ComparatorOptions) ComparisonResult {
	expectedLines := splitLines(expected, opts)
	actualLines := splitLines(actual, opts)

	result := ComparisonResult{
		Correct:       true,
		ExpectedLines: len(expectedLines),
		ActualLines:   len(actualLines),
	}

	n := len(expectedLines)
	if len(actualLines) > n {
		n = len(actualLines)
	}
	for i := 0; i < n; i++ {
		entry := LineDiff{Number: i + 1, Match: true}
		if i < len(expectedLines) {
			entry.Expected = expectedLines[i]
		}
		if i < len(actualLines) {
			entry.Actual = actualLines[i]
		}
		if entry.Expected != entry.Actual {
			entry.Match = false
			result.Correct = false
		}
		if !entry.Match || opts.ReportMatches {
			result.Lines = append(result.Lines, entry)
		}
	}
	return result
}

func splitLines(text string, opts ComparatorOptions) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if opts.TrimLines {
			line = strings.TrimSpace(line)
		}
		if opts.DropBlankLines && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Render formats the diff for terminal display. Line numbers are 1-based and
// left-aligned to the width of the largest number so the columns line up.
// A differing line count is surfaced once, ahead of the per-line entries.
func (r ComparisonResult) Render() string {
	var b strings.Builder
	if r.ExpectedLines != r.ActualLines {
		b.WriteString(Yellow("Number of lines differs: expected %d, got %d\n", r.ExpectedLines, r.ActualLines))
	}
	if len(r.Lines) == 0 {
		return b.String()
	}
	width := len(fmt.Sprintf("%d", r.Lines[len(r.Lines)-1].Number))
	for _, line := range r.Lines {
		if line.Match {
			b.WriteString(fmt.Sprintf("%-*d  %s\n", width, line.Number, line.Expected))
			continue
		}
		b.WriteString(Red("%-*d  expected: %q, got: %q\n", width, line.Number, line.Expected, line.Actual))
	}
	return b.String()
}
