package wsapi_dto

import "strings"

// Task status codes reported by the WS-API
const (
	TaskStatusNotAssigned = "11"
	TaskStatusNotDone     = "12"
	TaskStatusDone        = "13"
)

// StatusClassifier decides the life-cycle phase of a task from its status.
type StatusClassifier interface {
	IsOpen(status string) bool
	IsClosed(status string) bool
	IsExpired(status string) bool
	IsCancelled(status string) bool
}

// StatusSets classifies statuses by case-insensitive membership.
type StatusSets struct {
	Open      []string
	Closed    []string
	Expired   []string
	Cancelled []string
}

var DefaultStatusSets = StatusSets{
	Open:      []string{TaskStatusNotAssigned, TaskStatusNotDone, "NOT_ASSIGNED", "NOT_DONE", "OPEN", "PENDING"},
	Closed:    []string{TaskStatusDone, "DONE", "CLOSED"},
	Expired:   []string{"EXPIRED"},
	Cancelled: []string{"CANCELLED", "CANCELED"},
}

func (s StatusSets) IsOpen(status string) bool      { return contains(s.Open, status) }
func (s StatusSets) IsClosed(status string) bool    { return contains(s.Closed, status) }
func (s StatusSets) IsExpired(status string) bool   { return contains(s.Expired, status) }
func (s StatusSets) IsCancelled(status string) bool { return contains(s.Cancelled, status) }

func contains(set []string, status string) bool {
	status = strings.TrimSpace(status)
	if status == "" {
		return false
	}
	for _, candidate := range set {
		if strings.EqualFold(candidate, status) {
			return true
		}
	}
	return false
}
