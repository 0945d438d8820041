package soap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/requests"
	"linkcare-service/internal/pkg/dto/responses"
	"linkcare-service/internal/pkg/exceptions"
	soapcodec "linkcare-service/internal/pkg/soap"
)

type stubTrainingUsecase struct {
	compliance  int
	performance string
	err         error

	complianceRequest *requests.Compliance
}

func (s *stubTrainingUsecase) TrainingSummary(ctx context.Context, request *requests.TrainingSummary) (*responses.TrainingSummaryReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &responses.TrainingSummaryReport{AdmissionID: request.Admission, ExerciseRows: 1}, nil
}

func (s *stubTrainingUsecase) CalculateCompliance(ctx context.Context, request *requests.Compliance) (int, error) {
	s.complianceRequest = request
	return s.compliance, s.err
}

func (s *stubTrainingUsecase) CalculatePerformance(ctx context.Context, request *requests.Performance) (string, error) {
	return s.performance, s.err
}

func call(t *testing.T, handler http.Handler, function string, params ...soapcodec.Param) (int, map[string]string, error) {
	t.Helper()
	envelope := soapcodec.BuildRequest(constvars.TrainingServiceNamespace, function, params)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/soap", strings.NewReader(envelope)))

	fields, err := soapcodec.ParseResponse(rr.Body.Bytes())
	return rr.Code, fields, err
}

func newTestHandler(usecase *stubTrainingUsecase) *Handler {
	return NewHandler(zap.NewNop(), usecase, &config.InternalConfig{}, constvars.TrainingServiceNamespace)
}

func TestHandler_CalculateCompliance(t *testing.T) {
	usecase := &stubTrainingUsecase{compliance: constvars.ComplianceRed}

	code, fields, err := call(t, newTestHandler(usecase), FunctionCalculateCompliance,
		soapcodec.Param{Name: "admission", Value: "A1"},
		soapcodec.Param{Name: "date", Value: "2024-03-31"},
	)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3", fields["result"])
	assert.Empty(t, fields["ErrorMsg"])
	require.NotNil(t, usecase.complianceRequest)
	assert.Equal(t, "A1", usecase.complianceRequest.Admission)
}

func TestHandler_CalculatePerformance(t *testing.T) {
	usecase := &stubTrainingUsecase{performance: `{"performance":"KO","difficulty":"0"}`}

	_, fields, err := call(t, newTestHandler(usecase), FunctionCalculatePerformance,
		soapcodec.Param{Name: "admission", Value: "A1"},
		soapcodec.Param{Name: "from_date", Value: "2024-03-01"},
		soapcodec.Param{Name: "to_date", Value: "2024-03-31"},
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{"performance":"KO","difficulty":"0"}`, fields["result"])
}

func TestHandler_TrainingSummary(t *testing.T) {
	_, fields, err := call(t, newTestHandler(&stubTrainingUsecase{}), FunctionTrainingSummary,
		soapcodec.Param{Name: "admission", Value: "A1"},
		soapcodec.Param{Name: "summary_form", Value: "SF1"},
		soapcodec.Param{Name: "from_date", Null: true},
		soapcodec.Param{Name: "to_date", Null: true},
	)
	require.NoError(t, err)
	assert.Contains(t, fields["result"], `"admission_id":"A1"`)
	assert.Empty(t, fields["ErrorMsg"])
}

func TestHandler_ErrorsTravelInErrorMsg(t *testing.T) {
	usecase := &stubTrainingUsecase{err: exceptions.NewAPIError("FORM_NOT_FOUND", "The form does not exist", "")}

	code, fields, err := call(t, newTestHandler(usecase), FunctionTrainingSummary,
		soapcodec.Param{Name: "admission", Value: "A1"},
		soapcodec.Param{Name: "summary_form", Value: "SF404"},
	)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, fields["result"])
	assert.Equal(t, "The form does not exist", fields["ErrorMsg"])
}

func TestHandler_ValidationErrorsTravelInErrorMsg(t *testing.T) {
	usecase := &stubTrainingUsecase{}

	_, fields, err := call(t, newTestHandler(usecase), FunctionCalculateCompliance,
		soapcodec.Param{Name: "admission", Value: "A1"},
		soapcodec.Param{Name: "date", Value: "yesterday"},
	)
	require.NoError(t, err)
	assert.Empty(t, fields["result"])
	assert.NotEmpty(t, fields["ErrorMsg"])
	assert.Nil(t, usecase.complianceRequest)
}

func TestHandler_UnknownFunctionFaults(t *testing.T) {
	code, _, err := call(t, newTestHandler(&stubTrainingUsecase{}), "drop_tables")

	assert.Equal(t, http.StatusInternalServerError, code)
	var fault *soapcodec.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "Client", fault.Code)
	assert.Contains(t, fault.String, "drop_tables")
}

func TestHandler_MalformedEnvelopeFaults(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler(&stubTrainingUsecase{}).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/soap", strings.NewReader("not xml")))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	_, err := soapcodec.ParseResponse(rr.Body.Bytes())
	var fault *soapcodec.Fault
	assert.ErrorAs(t, err, &fault)
}
