// Package soap serves the training operations as RPC SOAP calls, answering
// with the same map layout the WS-API uses.
package soap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/requests"
	"linkcare-service/internal/pkg/exceptions"
	soapcodec "linkcare-service/internal/pkg/soap"
	"linkcare-service/internal/pkg/utils"
)

const (
	FunctionTrainingSummary      = "training_summary"
	FunctionCalculateCompliance  = "calculate_compliance"
	FunctionCalculatePerformance = "calculate_performance"

	maxEnvelopeSize = 1 << 20
)

type operation func(ctx context.Context, params map[string]string) (string, error)

type Handler struct {
	Log             *zap.Logger
	TrainingUsecase contracts.TrainingUsecase
	InternalConfig  *config.InternalConfig
	Namespace       string

	operations map[string]operation
}

func NewHandler(logger *zap.Logger, trainingUsecase contracts.TrainingUsecase, internalConfig *config.InternalConfig, namespace string) *Handler {
	h := &Handler{
		Log:             logger,
		TrainingUsecase: trainingUsecase,
		InternalConfig:  internalConfig,
		Namespace:       namespace,
	}
	h.operations = map[string]operation{
		FunctionTrainingSummary:      h.trainingSummary,
		FunctionCalculateCompliance:  h.calculateCompliance,
		FunctionCalculatePerformance: h.calculatePerformance,
	}
	return h
}

// ServeHTTP answers every known function with a result and an ErrorMsg.
// Only envelopes that cannot be understood get a SOAP fault.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEnvelopeSize))
	if err != nil {
		h.fault(w, requestID, "Client", err.Error())
		return
	}

	function, params, err := soapcodec.ParseRequest(body)
	if err != nil {
		h.fault(w, requestID, "Client", err.Error())
		return
	}

	op, ok := h.operations[function]
	if !ok {
		h.fault(w, requestID, "Client", fmt.Sprintf("Function '%s' doesn't exist", function))
		return
	}

	named := make(map[string]string, len(params))
	for _, param := range params {
		if !param.Null {
			named[param.Name] = param.Value
		}
	}

	timeout := time.Duration(h.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = constvars.DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	h.Log.Info("soap.Handler called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, function),
	)

	result, err := op(ctx, named)
	errorMsg := ""
	if err != nil {
		result = ""
		errorMsg = exceptions.ErrorMessage(err)
		h.Log.Error("soap.Handler operation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, function),
			zap.Error(err),
		)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextXML)
	w.WriteHeader(constvars.StatusOK)
	io.WriteString(w, soapcodec.BuildResponse(h.Namespace, function, []soapcodec.Field{
		{Key: "result", Value: result},
		{Key: "ErrorMsg", Value: errorMsg},
	}))
}

func (h *Handler) fault(w http.ResponseWriter, requestID, code, message string) {
	h.Log.Warn("soap.Handler rejected envelope",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingErrorMessageKey, message),
	)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextXML)
	w.WriteHeader(constvars.StatusInternalServerError)
	io.WriteString(w, soapcodec.BuildFault(code, message))
}

func validate(request interface{}) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func (h *Handler) trainingSummary(ctx context.Context, params map[string]string) (string, error) {
	request := &requests.TrainingSummary{
		Admission:   params["admission"],
		SummaryForm: params["summary_form"],
		FromDate:    params["from_date"],
		ToDate:      params["to_date"],
	}
	if err := validate(request); err != nil {
		return "", err
	}

	report, err := h.TrainingUsecase.TrainingSummary(ctx, request)
	if err != nil {
		return "", err
	}
	encoded, err := json.Marshal(report)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(encoded), nil
}

func (h *Handler) calculateCompliance(ctx context.Context, params map[string]string) (string, error) {
	request := &requests.Compliance{
		Admission: params["admission"],
		Date:      params["date"],
	}
	if err := validate(request); err != nil {
		return "", err
	}

	compliance, err := h.TrainingUsecase.CalculateCompliance(ctx, request)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(compliance), nil
}

func (h *Handler) calculatePerformance(ctx context.Context, params map[string]string) (string, error) {
	request := &requests.Performance{
		Admission: params["admission"],
		FromDate:  params["from_date"],
		ToDate:    params["to_date"],
	}
	if err := validate(request); err != nil {
		return "", err
	}
	return h.TrainingUsecase.CalculatePerformance(ctx, request)
}
