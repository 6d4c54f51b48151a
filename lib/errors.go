package lib

import "fmt"

// CheckerError is a fatal harness error: a short headline naming the failing
// stage, plus the underlying cause when there is one.
type CheckerError struct {
	Headline    string
	Description string

	cause error
}

func (e *CheckerError) Error() string {
	if e.Description == "" {
		return Red("%s", e.Headline)
	}
	return fmt.Sprintf("%s\n%s", Red("%s", e.Headline), e.Description)
}

func (e *CheckerError) Unwrap() error {
	return e.cause
}

// NewCheckerError wraps err under a headline. A nil err keeps just the
// headline.
func NewCheckerError(headline string, err error) *CheckerError {
	description := ""
	if err != nil {
		description = err.Error()
	}
	return &CheckerError{Headline: headline, Description: description, cause: err}
}
