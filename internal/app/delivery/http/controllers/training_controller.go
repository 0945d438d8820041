package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/requests"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/utils"
)

// TrainingController exposes the training operations. Every answer is a
// 200 carrying result and ErrorMsg, failures leave result empty.
type TrainingController struct {
	Log             *zap.Logger
	TrainingUsecase contracts.TrainingUsecase
	InternalConfig  *config.InternalConfig
}

func NewTrainingController(logger *zap.Logger, trainingUsecase contracts.TrainingUsecase, internalConfig *config.InternalConfig) *TrainingController {
	return &TrainingController{
		Log:             logger,
		TrainingUsecase: trainingUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *TrainingController) TrainingSummary(w http.ResponseWriter, r *http.Request) {
	request := new(requests.TrainingSummary)
	if !ctrl.decode(w, r, request) {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	report, err := ctrl.TrainingUsecase.TrainingSummary(ctx, request)
	if err != nil {
		ctrl.fail(w, r, "training_summary", err)
		return
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.LogBusinessEvent(ctrl.Log, "training_summary_generated", requestID,
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.String(constvars.LoggingFormIDKey, request.SummaryForm),
		zap.Int("exercise_rows", report.ExerciseRows),
		zap.Int("stretching_rows", report.StretchingRows),
	)
	utils.BuildOperationResponse(w, report, "")
}

func (ctrl *TrainingController) CalculateCompliance(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Compliance)
	if !ctrl.decode(w, r, request) {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	compliance, err := ctrl.TrainingUsecase.CalculateCompliance(ctx, request)
	if err != nil {
		ctrl.fail(w, r, "calculate_compliance", err)
		return
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.LogBusinessEvent(ctrl.Log, "compliance_calculated", requestID,
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.Int(constvars.LoggingResultKey, compliance),
	)
	utils.BuildOperationResponse(w, compliance, "")
}

func (ctrl *TrainingController) CalculatePerformance(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Performance)
	if !ctrl.decode(w, r, request) {
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	performance, err := ctrl.TrainingUsecase.CalculatePerformance(ctx, request)
	if err != nil {
		ctrl.fail(w, r, "calculate_performance", err)
		return
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	utils.LogBusinessEvent(ctrl.Log, "performance_calculated", requestID,
		zap.String(constvars.LoggingAdmissionIDKey, request.Admission),
		zap.String(constvars.LoggingResultKey, performance),
	)
	utils.BuildOperationResponse(w, performance, "")
}

func (ctrl *TrainingController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = constvars.DefaultRequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *TrainingController) decode(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.fail(w, r, "decode", exceptions.ErrInvalidRequestPayload(err))
		return false
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.fail(w, r, "validate", exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func (ctrl *TrainingController) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Error("TrainingController operation failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Error(err),
	)
	utils.BuildOperationResponse(w, "", exceptions.ErrorMessage(err))
}
