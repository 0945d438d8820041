package wsapi

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// ConnectOptions describes how the service authenticates against the WS-API.
type ConnectOptions struct {
	Endpoint             string
	Token                string
	User                 string
	Password             string
	Role                 string
	Team                 string
	Timezone             string
	ReuseExistingSession bool
	MaxCallsPerSecond    float64
}

// NewConnectOptions reads the service user settings.
func NewConnectOptions(cfg config.AppWSAPI) ConnectOptions {
	return ConnectOptions{
		Endpoint:             cfg.Endpoint,
		Token:                cfg.Token,
		User:                 cfg.User,
		Password:             cfg.Password,
		Role:                 cfg.Role,
		Team:                 cfg.Team,
		Timezone:             cfg.Timezone,
		ReuseExistingSession: cfg.ReuseExistingSession,
		MaxCallsPerSecond:    cfg.MaxCallsPerSecond,
	}
}

// Connect configures the endpoint and returns a client with an active
// session. An explicit token is joined; otherwise a cached token from store
// is tried before opening a new session. The session is then switched to
// the requested team and role.
func Connect(ctx context.Context, options ConnectOptions, store contracts.SessionStore, logger *zap.Logger, serviceLog *logrus.Logger, clientOptions ...Option) (*Client, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	transport, err := NewSOAPTransport(options.Endpoint, options.MaxCallsPerSecond, logger)
	if err != nil {
		logger.Error("wsapi.Connect invalid endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWSAPIEndpointKey, options.Endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	clientOptions = append([]Option{WithServiceLog(serviceLog)}, clientOptions...)
	client := NewClient(transport, logger, clientOptions...)

	session, err := client.openSession(ctx, options, store)
	if err != nil {
		return nil, err
	}

	if options.Team != "" && !session.HasTeam(options.Team) {
		if err := client.SessionSetTeam(ctx, options.Team); err != nil {
			return nil, err
		}
	}
	if options.Role != "" && client.Session().RoleID != options.Role {
		if err := client.SessionRole(ctx, options.Role); err != nil {
			return nil, err
		}
	}

	if store != nil && options.Token == "" {
		if err := store.Save(ctx, options.User, client.Session()); err != nil {
			logger.Warn("wsapi.Connect could not cache session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	logger.Info("wsapi.Connect succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWSAPIEndpointKey, options.Endpoint),
		zap.String(constvars.LoggingTeamKey, client.Session().TeamID),
		zap.String(constvars.LoggingRoleKey, client.Session().RoleID),
	)
	return client, nil
}

func (c *Client) openSession(ctx context.Context, options ConnectOptions, store contracts.SessionStore) (*wsapi_dto.Session, error) {
	if options.Token != "" {
		return c.SessionJoin(ctx, options.Token)
	}

	if store != nil {
		cached, err := store.Load(ctx, options.User)
		if err == nil && cached != nil && cached.Token != "" {
			session, err := c.SessionJoin(ctx, cached.Token)
			if err == nil {
				return session, nil
			}
			c.Log.Info("wsapi.Connect cached session rejected, starting a new one", zap.Error(err))
			_ = store.Forget(ctx, options.User)
		}
	}

	return c.SessionInit(ctx, options.User, options.Password, options.Timezone, options.ReuseExistingSession)
}
