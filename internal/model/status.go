package model

import "fmt"

// Status is the closed set of task states. The column stores the string
// form; anything outside the set is rejected at decode time.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProgress  Status = "progress"
	StatusCompleted Status = "completed"
)

// ParseStatus decodes a status from its string form, failing explicitly on
// unrecognized values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("accept only 'progress', 'pending' or 'completed', got %q", s)
}
