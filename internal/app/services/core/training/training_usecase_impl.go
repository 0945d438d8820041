package training

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/app/services/shared/locker"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/requests"
	"linkcare-service/internal/pkg/dto/responses"
	"linkcare-service/internal/pkg/exceptions"
)

const summaryArchiveFormat = "training-summary/%s/%s.json"

type trainingUsecase struct {
	WSAPI          contracts.TrainingAPI
	Locker         contracts.LockerService
	Publisher      contracts.EventPublisher
	Archive        contracts.ReportArchive
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

func NewTrainingUsecase(
	wsapiClient contracts.TrainingAPI,
	lockerService contracts.LockerService,
	publisher contracts.EventPublisher,
	archive contracts.ReportArchive,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TrainingUsecase {
	return &trainingUsecase{
		WSAPI:          wsapiClient,
		Locker:         lockerService,
		Publisher:      publisher,
		Archive:        archive,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *trainingUsecase) TrainingSummary(ctx context.Context, request *requests.TrainingSummary) (*responses.TrainingSummaryReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trainingUsecase.TrainingSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.String(constvars.LoggingFormIDKey, request.SummaryForm),
	)

	var report *responses.TrainingSummaryReport
	err := uc.exclusive(ctx, request.Admission, func(ctx context.Context) error {
		var err error
		report, err = GenerateTrainingSummary(ctx, uc.WSAPI, uc.InternalConfig.Training,
			request.Admission, request.SummaryForm, request.FromDate, request.ToDate)
		return err
	})
	if err != nil {
		uc.Log.Error("trainingUsecase.TrainingSummary error generating summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
			zap.Error(err),
		)
		return nil, err
	}

	objectName := fmt.Sprintf(summaryArchiveFormat, request.Admission, uc.now().UTC().Format("20060102T150405Z"))
	if uc.Archive != nil {
		if err := uc.Archive.Store(ctx, objectName, report); err != nil {
			uc.Log.Warn("trainingUsecase.TrainingSummary could not archive report",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, objectName),
				zap.Error(err),
			)
		}
	}
	uc.publish(ctx, requestID, constvars.EventTrainingSummaryUpdated, report)

	uc.Log.Info("trainingUsecase.TrainingSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.Int(constvars.LoggingCountKey, len(report.Days)),
	)
	return report, nil
}

func (uc *trainingUsecase) CalculateCompliance(ctx context.Context, request *requests.Compliance) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trainingUsecase.CalculateCompliance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
	)

	compliance, err := CalculateCompliance(ctx, uc.WSAPI, uc.InternalConfig.Training, request.Admission, request.Date)
	if err != nil {
		uc.Log.Error("trainingUsecase.CalculateCompliance error calculating compliance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
			zap.Error(err),
		)
		return constvars.ComplianceNotEnoughData, err
	}

	uc.publish(ctx, requestID, constvars.EventComplianceCalculated, map[string]interface{}{
		"admission":  request.Admission,
		"date":       request.Date,
		"compliance": compliance,
	})

	uc.Log.Info("trainingUsecase.CalculateCompliance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.Int(constvars.LoggingResultKey, compliance),
	)
	return compliance, nil
}

func (uc *trainingUsecase) CalculatePerformance(ctx context.Context, request *requests.Performance) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trainingUsecase.CalculatePerformance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
	)

	performance, err := CalculatePerformance(ctx, uc.WSAPI, uc.InternalConfig.Training, request.Admission, request.FromDate, request.ToDate)
	if err != nil {
		uc.Log.Error("trainingUsecase.CalculatePerformance error calculating performance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
			zap.Error(err),
		)
		return "", err
	}

	encoded, err := json.Marshal(performance)
	if err != nil {
		uc.Log.Error("trainingUsecase.CalculatePerformance error marshaling performance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	uc.publish(ctx, requestID, constvars.EventPerformanceCalculated, map[string]interface{}{
		"admission":   request.Admission,
		"from_date":   request.FromDate,
		"to_date":     request.ToDate,
		"performance": performance,
	})

	uc.Log.Info("trainingUsecase.CalculatePerformance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.String(constvars.LoggingResultKey, string(encoded)),
	)
	return string(encoded), nil
}

// exclusive serializes the runs that write into the forms of an admission.
func (uc *trainingUsecase) exclusive(ctx context.Context, admissionID string, fn func(ctx context.Context) error) error {
	expiration := time.Duration(uc.InternalConfig.App.LockExpiryInSeconds) * time.Second
	return locker.RunExclusive(ctx, uc.Locker, uc.Log, locker.AdmissionKey(admissionID), expiration, fn)
}

// publish only logs failures.
func (uc *trainingUsecase) publish(ctx context.Context, requestID, eventType string, payload interface{}) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.Publish(ctx, eventType, payload); err != nil {
		uc.Log.Warn("trainingUsecase could not publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventType),
			zap.Error(err),
		)
	}
}
