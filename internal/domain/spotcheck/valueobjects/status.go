package valueobjects

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusInProgress,
		StatusCompleted,
	},
	StatusInProgress: {
		StatusCompleted,
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid spot check status: %s", s)
	}
	return st, nil
}
