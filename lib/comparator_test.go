package lib

import (
	"reflect"
	"strings"
	"testing"
)

func TestCompare_Idempotence(t *testing.T) {
	t.Parallel()

	samples := []string{
		"",
		"42",
		"1\n2\n3",
		"a b c\nd e f\n",
	}
	for _, sample := range samples {
		result := Compare(sample, sample, DefaultComparatorOptions())
		if !result.Correct {
			t.Errorf("Expected %q to compare equal to itself:\n%v", sample, result.Lines)
		}
	}
}

func TestCompare_WhitespaceInsensitivity(t *testing.T) {
	t.Parallel()

	result := Compare("1\n2", "\t1 \n  2  \n\n\n", DefaultComparatorOptions())
	if !result.Correct {
		t.Errorf("Expected a correct result, have %v", result.Lines)
	}
}

func TestCompare_MismatchDetection(t *testing.T) {
	t.Parallel()

	result := Compare("1\n2", "1\n55", DefaultComparatorOptions())
	if result.Correct {
		t.Fatal("Expected an incorrect result")
	}
	expected := []LineDiff{{Number: 2, Expected: "2", Actual: "55", Match: false}}
	if !reflect.DeepEqual(result.Lines, expected) {
		t.Errorf("\nExpected:\n%v\nHave:\n%v\n", expected, result.Lines)
	}
}

func TestCompare_LineCountTolerance(t *testing.T) {
	t.Parallel()

	result := Compare("1\n2", "1\n2\n3", DefaultComparatorOptions())
	if result.Correct {
		t.Fatal("Expected an incorrect result")
	}
	expected := []LineDiff{{Number: 3, Expected: "", Actual: "3", Match: false}}
	if !reflect.DeepEqual(result.Lines, expected) {
		t.Errorf("\nExpected:\n%v\nHave:\n%v\n", expected, result.Lines)
	}
	if result.ExpectedLines != 2 || result.ActualLines != 3 {
		t.Errorf("Expected line counts 2 and 3, have %d and %d", result.ExpectedLines, result.ActualLines)
	}
}

func TestCompare_MissingActualLine(t *testing.T) {
	t.Parallel()

	result := Compare("1\n2\n3", "1\n2", DefaultComparatorOptions())
	expected := []LineDiff{{Number: 3, Expected: "3", Actual: "", Match: false}}
	if !reflect.DeepEqual(result.Lines, expected) {
		t.Errorf("\nExpected:\n%v\nHave:\n%v\n", expected, result.Lines)
	}
}

func TestCompare_ReportMatches(t *testing.T) {
	t.Parallel()

	opts := DefaultComparatorOptions()
	opts.ReportMatches = true
	result := Compare("1\n2", "1\n55", opts)
	expected := []LineDiff{
		{Number: 1, Expected: "1", Actual: "1", Match: true},
		{Number: 2, Expected: "2", Actual: "55", Match: false},
	}
	if !reflect.DeepEqual(result.Lines, expected) {
		t.Errorf("\nExpected:\n%v\nHave:\n%v\n", expected, result.Lines)
	}
}

func TestCompare_ExactMode(t *testing.T) {
	t.Parallel()

	opts := ComparatorOptions{TrimLines: false, DropBlankLines: false}
	result := Compare("a", "a ", opts)
	if result.Correct {
		t.Error("Expected trailing whitespace to matter without trimming")
	}
}

func TestRender_CorrectEmitsNothing(t *testing.T) {
	t.Parallel()

	result := Compare("1\n2", "1\n2", DefaultComparatorOptions())
	if rendered := result.Render(); rendered != "" {
		t.Errorf("Expected no diff text, have %q", rendered)
	}
}

func TestRender_AlignsLineNumbers(t *testing.T) {
	t.Parallel()

	expected := strings.Repeat("x\n", 10)
	actual := strings.Repeat("x\n", 9) + "y\n"
	result := Compare(expected, actual, DefaultComparatorOptions())

	rendered := result.Render()
	want := Red("%-*d  expected: %q, got: %q\n", 2, 10, "x", "y")
	if !strings.Contains(rendered, want) {
		t.Errorf("\nExpected to find:\n%q\nHave:\n%q\n", want, rendered)
	}
}

func TestRender_LineCountWarning(t *testing.T) {
	t.Parallel()

	result := Compare("1\n2", "1\n2\n3", DefaultComparatorOptions())
	rendered := result.Render()
	want := Yellow("Number of lines differs: expected %d, got %d\n", 2, 3)
	if !strings.Contains(rendered, want) {
		t.Errorf("\nExpected to find:\n%q\nHave:\n%q\n", want, rendered)
	}
}
