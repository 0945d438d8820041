package contracts

import (
	"context"

	"linkcare-service/internal/pkg/wsapi_dto"
)

// SessionStore remembers the WS-API session of a service user between runs.
type SessionStore interface {
	Load(ctx context.Context, user string) (*wsapi_dto.Session, error)
	Save(ctx context.Context, user string, session *wsapi_dto.Session) error
	Forget(ctx context.Context, user string) error
}
