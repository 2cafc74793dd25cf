package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidEnum reports a priority or status string that names no variant.
var ErrInvalidEnum = errors.New("invalid enum value")

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists every priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority maps a case-insensitive name onto a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("%w: priority %q", ErrInvalidEnum, s)
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// ParseStatus maps a case-insensitive name onto a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidEnum, s)
}

type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Date        string // free-form, stored verbatim
	Priority    Priority
	Status      Status
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplyStatus sets the status and derives Completed from it.
func (t *Todo) ApplyStatus(s Status) {
	t.Status = s
	t.Completed = s == StatusCompleted
}
