package wsapi_dto

import (
	"strings"

	"github.com/goccy/go-json"
)

const (
	FilterObjectTasks  = "TASKS"
	FilterObjectEvents = "EVENTS"
)

// TaskFilter restricts the task lists of an admission or a case.
type TaskFilter struct {
	ObjectType string `json:"object_type,omitempty"`
	FromDate   string `json:"from_date,omitempty"`
	ToDate     string `json:"to_date,omitempty"`
	TaskCodes  string `json:"task_codes,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (f *TaskFilter) SetTaskCodes(codes ...string) {
	f.TaskCodes = strings.Join(codes, ",")
}

// String is the JSON form expected by the task list functions. A nil
// filter is the empty string.
func (f *TaskFilter) String() string {
	if f == nil {
		return ""
	}
	encoded, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	return string(encoded)
}
