package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/exceptions"
)

var errLockHeld = errors.New("lock is held by another request")

// AdmissionKey is the lock key guarding the summary forms of an admission.
func AdmissionKey(admissionID string) string {
	return fmt.Sprintf(constvars.LockKeyAdmissionFormat, admissionID)
}

// RunExclusive runs fn while holding the lock on key. A nil locker runs fn
// directly. When the lock is taken by someone else fn is not run and an
// ErrLockBusy error is returned.
func RunExclusive(ctx context.Context, locker contracts.LockerService, logger *zap.Logger, key string, expiration time.Duration, fn func(ctx context.Context) error) error {
	if locker == nil {
		return fn(ctx)
	}

	acquired, lockValue, err := locker.TryLock(ctx, key, expiration)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrLockBusy(errLockHeld, key)
	}

	defer func() {
		if unlockErr := locker.Unlock(context.WithoutCancel(ctx), key, lockValue); unlockErr != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			logger.Warn("locker.RunExclusive could not release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(unlockErr),
			)
		}
	}()

	return fn(ctx)
}
