package contracts

import (
	"context"

	"linkcare-service/internal/pkg/soap"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// WSAPIParam is a named argument of a remote call.
type WSAPIParam = soap.Param

// WSAPIResponse is the associative structure answered by every remote call.
type WSAPIResponse struct {
	Result    string
	ErrorCode string
	ErrorMsg  string
	Fields    map[string]string
}

// WSAPITransport performs one remote procedure call. Transport-level
// failures are returned as errors, service errors travel in the response.
type WSAPITransport interface {
	Call(ctx context.Context, function string, params []WSAPIParam) (*WSAPIResponse, error)
	Endpoint() string
}

// TrainingAPI is the part of the WS-API used by the training rules.
type TrainingAPI interface {
	wsapi_dto.FormLoader
	wsapi_dto.ActivityLoader
	AdmissionGet(ctx context.Context, admissionID string) (*wsapi_dto.Admission, error)
	AdmissionGetTaskList(ctx context.Context, admissionID string, maxRes, offset int, filter *wsapi_dto.TaskFilter, ascending bool) ([]*wsapi_dto.Task, error)
	FormSetAllAnswers(ctx context.Context, formID string, questions []*wsapi_dto.Question, closeForm bool) error
}

type WSAPIClient interface {
	TrainingAPI

	Session() *wsapi_dto.Session
	Invoke(ctx context.Context, function string, params ...WSAPIParam) (*WSAPIResponse, error)
	InvokeRaw(ctx context.Context, function string, params ...WSAPIParam) *WSAPIResponse

	SessionInit(ctx context.Context, user, password, timezone string, reuseExistingSession bool) (*wsapi_dto.Session, error)
	SessionJoin(ctx context.Context, token string) (*wsapi_dto.Session, error)
	SessionSetTeam(ctx context.Context, team string) error
	SessionRole(ctx context.Context, role string) error

	ProgramGet(ctx context.Context, programID, subscriptionID string) (*wsapi_dto.Program, error)
	TeamGet(ctx context.Context, teamID string) (*wsapi_dto.Team, error)
	SubscriptionGet(ctx context.Context, programID, teamID, subscriptionID string) (*wsapi_dto.Subscription, error)
	SubscriptionList(ctx context.Context, filter map[string]string) ([]*wsapi_dto.Subscription, error)

	AdmissionCreate(ctx context.Context, caseID, subscriptionID, date, teamID string, allowIncomplete bool, setupValues map[string]string) (*wsapi_dto.Admission, error)
	AdmissionDelete(ctx context.Context, admissionID string) error

	TaskGet(ctx context.Context, taskID string) (*wsapi_dto.Task, error)
	TaskSet(ctx context.Context, task *wsapi_dto.Task) error
	TaskInsertByTaskCode(ctx context.Context, admissionID, taskCode, date string) (string, error)

	CaseInsert(ctx context.Context, contact *wsapi_dto.Contact, subscriptionID string, allowIncomplete bool) (string, error)
	CaseGet(ctx context.Context, caseID, admissionID string) (*wsapi_dto.Case, error)
	CaseGetContact(ctx context.Context, caseID, subscriptionID, admissionID string) (*wsapi_dto.Contact, error)
	CaseSetContact(ctx context.Context, caseID string, contact *wsapi_dto.Contact, admissionID string) error
	CaseDelete(ctx context.Context, caseID string) error
	CaseSearch(ctx context.Context, searchText string) ([]*wsapi_dto.Case, error)
	CaseAdmissionList(ctx context.Context, caseID string, get bool, subscriptionID, searchText string) ([]*wsapi_dto.Admission, error)
	CaseGetTaskList(ctx context.Context, caseID string, maxRes, offset int, filter *wsapi_dto.TaskFilter, ascending bool) ([]*wsapi_dto.Task, error)

	FormSetAnswer(ctx context.Context, formID, questionID, value, optionID, eventID string, closeForm bool) error
}
