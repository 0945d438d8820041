package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/pkg/constvars"
)

var (
	ErrSecretMissing  = errors.New("jwt secret is empty")
	ErrSubjectMissing = errors.New("subject is required")
	ErrTokenMissing   = errors.New("token is required")
)

// JWTManager issues and verifies the HS256 bearer tokens accepted by the
// outward training API.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type CreateTokenInput struct {
	Subject string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput carries the subject of a valid token.
type VerifyTokenOutput struct {
	Valid   bool
	Subject string
	Claims  map[string]interface{}
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.Auth.JWTSecret)
	if secret == "" {
		return nil, ErrSecretMissing
	}

	ttl := time.Duration(cfg.Auth.JWTTokenTTLInMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		issuer: cfg.Auth.JWTIssuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// CreateToken signs a token for subject valid from now until now + ttl.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, ErrSubjectMissing
	}

	now := j.now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   in.Subject,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		j.log.Error("JWTManager.CreateToken error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	j.log.Info("JWTManager.CreateToken succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken checks signature, algorithm, issuer and time claims. An
// invalid token is not an error, it is reported through Valid.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, ErrTokenMissing
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(in.Token, claims, keyFunc)
	if err != nil || !parsed.Valid {
		j.log.Info("JWTManager.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}
	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	subject, _ := claims["sub"].(string)
	return &VerifyTokenOutput{Valid: true, Subject: subject, Claims: claims}, nil
}
