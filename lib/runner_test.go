package lib

import (
	"errors"
	"strings"
	"testing"
)

func TestRunProcess_Success(t *testing.T) {
	t.Parallel()

	outcome, err := RunProcess("testdata/cat.sh", []byte("hello"))
	if err != nil {
		t.Fatalf("Error running process: %s", err)
	}
	if outcome.Kind != OutcomeSuccess {
		t.Errorf("Expected a success outcome, have %v", outcome.Kind)
	}
	if string(outcome.Stdout) != "hello" {
		t.Errorf("Expected stdout %q, have %q", "hello", outcome.Stdout)
	}
}

func TestRunProcess_SplitsCommandOnWhitespace(t *testing.T) {
	t.Parallel()

	outcome, err := RunProcess("testdata/echo_args.sh  a \t b", nil)
	if err != nil {
		t.Fatalf("Error running process: %s", err)
	}
	if string(outcome.Stdout) != "a b\n" {
		t.Errorf("Expected stdout %q, have %q", "a b\n", outcome.Stdout)
	}
}

func TestRunProcess_NonZeroExit(t *testing.T) {
	t.Parallel()

	outcome, err := RunProcess("testdata/fail.sh", nil)
	if err != nil {
		t.Fatalf("Error running process: %s", err)
	}
	if outcome.Kind != OutcomeNonZeroExit {
		t.Fatalf("Expected a non-zero-exit outcome, have %v", outcome.Kind)
	}
	if outcome.ExitCode != 3 {
		t.Errorf("Expected exit code 3, have %d", outcome.ExitCode)
	}
	if !strings.Contains(outcome.Stderr, "something went wrong") {
		t.Errorf("Expected captured stderr, have %q", outcome.Stderr)
	}
	if !strings.Contains(outcome.Describe(), "exit status 3") {
		t.Errorf("Unexpected description %q", outcome.Describe())
	}
}

func TestRunProcess_Segfault(t *testing.T) {
	t.Parallel()

	outcome, err := RunProcess("testdata/segfault.sh", nil)
	if err != nil {
		t.Fatalf("Error running process: %s", err)
	}
	if outcome.Kind != OutcomeSignaled {
		t.Fatalf("Expected a signaled outcome, have %v", outcome.Kind)
	}
	if outcome.Describe() != "Segmentation fault" {
		t.Errorf("Expected %q, have %q", "Segmentation fault", outcome.Describe())
	}
}

func TestRunProcess_EmptyCommand(t *testing.T) {
	t.Parallel()

	for _, command := range []string{"", "   ", " \t\n "} {
		_, err := RunProcess(command, nil)
		if !errors.Is(err, ErrEmptyCommand) {
			t.Errorf("Expected ErrEmptyCommand for %q, have %v", command, err)
		}
	}
}

func TestRunProcess_SpawnFailure(t *testing.T) {
	t.Parallel()

	_, err := RunProcess("testdata/does_not_exist.sh", nil)
	if err == nil {
		t.Fatal("Expected an error for a missing executable")
	}
	if errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Unexpected ErrEmptyCommand: %v", err)
	}
}

func TestRunBuildRule(t *testing.T) {
	t.Parallel()

	if err := RunBuildRule("true"); err != nil {
		t.Errorf("Expected a passing build, have %s", err)
	}
}

func TestRunBuildRule_Failure(t *testing.T) {
	t.Parallel()

	err := RunBuildRule("testdata/fail.sh")
	if err == nil {
		t.Fatal("Expected a failing build")
	}
	if !strings.Contains(err.Error(), "Build didn't complete successfully:") {
		t.Errorf("Unexpected error %q", err)
	}
	if !strings.Contains(err.Error(), "something went wrong") {
		t.Errorf("Expected the build's stderr in the error, have %q", err)
	}
}

func TestRunBuildRule_EmptyRule(t *testing.T) {
	t.Parallel()

	err := RunBuildRule(" \t ")
	if err == nil {
		t.Fatal("Expected an error for an empty build rule")
	}
	if !strings.Contains(err.Error(), "Cannot use empty build rule") {
		t.Errorf("Unexpected error %q", err)
	}
}
