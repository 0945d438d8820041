package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingErrorCodeKey          = "error_code"
	LoggingErrorMessageKey       = "error_message"
	LoggingOperationKey          = "operation"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingWSAPIFunctionKey      = "wsapi_function"
	LoggingWSAPIEndpointKey      = "wsapi_endpoint"
	LoggingAdmissionIDKey        = "admission_id"
	LoggingCaseIDKey             = "case_id"
	LoggingTaskIDKey             = "task_id"
	LoggingFormIDKey             = "form_id"
	LoggingTeamKey               = "team"
	LoggingRoleKey               = "role"
	LoggingUserKey               = "user"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectKey             = "object"
	LoggingCountKey              = "count"
	LoggingResultKey             = "result"
	LoggingEventKey              = "event"
)
