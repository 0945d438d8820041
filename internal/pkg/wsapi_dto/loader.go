// Package wsapi_dto holds the records exchanged with the WS-API together with
// their XML parsing and serialization.
package wsapi_dto

import "context"

// LoadState tells whether a lazily fetched collection has been retrieved.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loaded
)

// FormLoader fetches the full content of a FORM. It is satisfied by the
// WS-API client.
type FormLoader interface {
	FormGetSummary(ctx context.Context, formID string, withQuestions, asClosed bool) (*Form, error)
}

// ActivityLoader fetches the FORMs of a TASK. It is satisfied by the WS-API
// client.
type ActivityLoader interface {
	TaskActivityList(ctx context.Context, taskID string) ([]*Form, error)
}
