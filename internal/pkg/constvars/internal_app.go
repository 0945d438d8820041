package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_SUBJECT_KEY         ContextKey = "auth_subject"
)

const (
	REQUEST_ID_PREFIX = "LC_SVC_"
)

const (
	DefaultRequestTimeout = 120 * time.Second
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceTrainingSummary = "training-summary"
	ResourceCompliance      = "compliance"
	ResourcePerformance     = "performance"
	ResourceHealth          = "health"
	ResourceSession         = "session"
	ResourceAdmission       = "admission"
	ResourceForm            = "form"
)
