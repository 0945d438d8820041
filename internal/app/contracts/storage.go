package contracts

import (
	"context"
)

// ReportArchive keeps a copy of the reports produced by the training rules.
type ReportArchive interface {
	Store(ctx context.Context, objectName string, report interface{}) error
}
