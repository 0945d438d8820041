package session

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/wsapi_dto"
)

type sessionStore struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

// NewSessionStore keeps WS-API sessions in redis for ttl so that restarts
// can join the previous session instead of opening a new one.
func NewSessionStore(repo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionStore {
	return &sessionStore{
		redisRepo: repo,
		ttl:       ttl,
		Log:       logger,
	}
}

func sessionKey(user string) string {
	return constvars.WSAPISessionCachePrefix + user
}

// Load returns nil without error when nothing is cached for user.
func (s *sessionStore) Load(ctx context.Context, user string) (*wsapi_dto.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, err := s.redisRepo.Get(ctx, sessionKey(user))
	if err != nil {
		s.Log.Error("sessionStore.Load error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(wsapi_dto.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		s.Log.Warn("sessionStore.Load discarding unreadable session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserKey, user),
			zap.Error(err),
		)
		return nil, exceptions.ErrWSAPIParse(err, constvars.ResourceSession)
	}
	return session, nil
}

func (s *sessionStore) Save(ctx context.Context, user string, session *wsapi_dto.Session) error {
	return s.redisRepo.Set(ctx, sessionKey(user), session, s.ttl)
}

func (s *sessionStore) Forget(ctx context.Context, user string) error {
	return s.redisRepo.Delete(ctx, sessionKey(user))
}
