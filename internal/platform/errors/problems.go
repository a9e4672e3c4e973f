package errors

import (
	"fmt"
	"strings"
)

// ProblemList collects validation messages so every problem is reported at once
type ProblemList struct {
	items []string
}

// Add appends a formatted problem
func (p *ProblemList) Add(msg string) { p.items = append(p.items, msg) }

// Addf appends a problem built from format and args
func (p *ProblemList) Addf(format string, a ...any) {
	p.Add(fmt.Sprintf(format, a...))
}

// Err returns nil when nothing was collected, else a Validation error carrying every problem
func (p *ProblemList) Err(msg string) error {
	if len(p.items) == 0 {
		return nil
	}
	return NewProblems(msg, p.items)
}

// NewProblems returns a Validation error carrying the individual problem messages
func NewProblems(msg string, problems []string) error {
	cp := make([]string, len(problems))
	copy(cp, problems)
	if msg == "" {
		msg = strings.Join(cp, "; ")
	}
	return &Error{code: ErrorCodeValidation, msg: msg, problems: cp}
}

// ProblemsOf extracts the problem list from err, if any
func ProblemsOf(err error) []string {
	if e, ok := As(err); ok {
		return e.problems
	}
	return nil
}
