package lib

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
)

// ErrEmptyCommand is returned when a command string trims down to nothing.
var ErrEmptyCommand = errors.New("cannot run an empty command")

// OutcomeKind classifies how a candidate process terminated.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeNonZeroExit
	OutcomeSignaled
)

// ProcessOutcome is the captured result of one candidate run. Exactly one
// kind holds per invocation; spawn failures are reported through the error
// return of RunProcess instead.
type ProcessOutcome struct {
	Kind     OutcomeKind
	Stdout   []byte
	Stderr   string
	ExitCode int
	Signal   syscall.Signal
}

// Describe returns the human-readable failure label for a non-success
// outcome.
func (o ProcessOutcome) Describe() string {
	switch o.Kind {
	case OutcomeSignaled:
		return "Segmentation fault"
	case OutcomeNonZeroExit:
		if o.Stderr == "" {
			return fmt.Sprintf("exit status %d", o.ExitCode)
		}
		return fmt.Sprintf("exit status %d\n%s", o.ExitCode, strings.TrimRight(o.Stderr, "\n"))
	}
	return ""
}

// RunProcess runs command with stdin as its standard input and classifies
// the result. The command is split on whitespace: the first token is the
// executable, the rest are its arguments. A non-nil stdin is written in full
// and closed, so a child blocked reading standard input sees EOF. Both
// output streams are captured fully in memory; the wait for the child is
// unbounded.
func RunProcess(command string, stdin []byte) (ProcessOutcome, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ProcessOutcome{}, ErrEmptyCommand
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return ProcessOutcome{Kind: OutcomeSuccess, Stdout: stdout.Bytes()}, nil
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		// The command never ran: bad path, permissions, broken stdin pipe.
		return ProcessOutcome{}, fmt.Errorf("error running %s: %w", fields[0], err)
	}

	outcome := ProcessOutcome{
		Stderr:   stderr.String(),
		ExitCode: exitErr.ExitCode(),
	}
	// See https://golang.org/pkg/os/#ProcessState.Sys
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() && status.Signal() == syscall.SIGSEGV {
		outcome.Kind = OutcomeSignaled
		outcome.Signal = status.Signal()
		return outcome, nil
	}
	outcome.Kind = OutcomeNonZeroExit
	return outcome, nil
}

// RunBuildRule runs the configured build command once, through the same
// spawn-and-classify path as the candidate. Any failure is fatal to the
// whole run.
func RunBuildRule(command string) error {
	outcome, err := RunProcess(command, nil)
	if err != nil {
		if errors.Is(err, ErrEmptyCommand) {
			return NewCheckerError("Cannot use empty build rule", nil)
		}
		return NewCheckerError("Error running build:", err)
	}
	if outcome.Kind != OutcomeSuccess {
		return &CheckerError{
			Headline:    "Build didn't complete successfully:",
			Description: outcome.Describe(),
		}
	}
	return nil
}
