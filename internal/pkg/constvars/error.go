package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"datetime": "must be a date formatted as %s",
	"numeric":  "must be numeric",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientRemoteServiceUnavailable      = "the clinical service is not available right now"
	ErrClientOperationInProgress           = "another operation on the same admission is in progress"
	ErrClientResourceNotFound              = "%s %s not found"
)

// Error messages for developers
const (
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevInvalidAPIKey          = "invalid API key"
	ErrDevAuthTokenInvalid       = "invalid token"
	ErrDevAuthCredentialsMissing = "API key or bearer token missing"
	ErrDevWSAPICall              = "WS-API call failed"
	ErrDevWSAPISession           = "WS-API session bootstrap failed"
	ErrDevWSAPIParse             = "cannot parse WS-API %s response"
	ErrDevWSAPINotFound          = "WS-API returned no %s"
	ErrDevRedisSet               = "failed to set value in redis"
	ErrDevRedisGet               = "failed to get value of key %s from redis"
	ErrDevRedisDelete            = "failed to delete key from redis"
	ErrDevRedisSetNX             = "failed to set-if-absent value in redis"
	ErrDevRedisUnlock            = "failed to release redis lock"
	ErrDevLockBusy               = "lock %s already held"
	ErrDevPublishMessage         = "failed to publish message to queue %s"
	ErrDevUploadObject           = "failed to upload object %s"
)
