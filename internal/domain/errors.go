package domain

import "fmt"

// InvalidDifficultyError reports a difficulty label outside the recognized
// set. It is returned before any grid work happens.
type InvalidDifficultyError struct {
	Label string
}

func (e *InvalidDifficultyError) Error() string {
	return fmt.Sprintf("unknown difficulty %q (want easy, medium or hard)", e.Label)
}

// UnreachableGridError reports a backtracking search that exceeded its safety
// bound. It indicates a logic defect, not a runtime condition to retry.
type UnreachableGridError struct {
	Nodes int
}

func (e *UnreachableGridError) Error() string {
	return fmt.Sprintf("backtracking search did not terminate within %d nodes", e.Nodes)
}
