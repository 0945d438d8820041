package constvars

// WS-API client constants
const (
	WSAPIVersion            = "2.7.20"
	WSAPIConnectTimeout     = 10
	WSAPIDefaultNamespace   = "urn:linkcare"
	WSAPISessionParamName   = "session"
	WSAPIDateTimeLayout     = "2006-01-02 15:04:05"
	WSAPIDateLayout         = "2006-01-02"
	WSAPISessionCachePrefix = "wsapi:session:"
	WSAPIRoleService        = "47"
)

// Remote error codes produced locally by the client
const (
	WSAPIErrEndpointMissing = "ENDPOINT_MISSING"
	WSAPIErrSOAPFault       = "SOAP_FAULT"
	WSAPIErrSOAPError       = "SOAP_ERROR"
)

// Remote function names
const (
	WSAPIFnSessionInit          = "session_init"
	WSAPIFnSessionGet           = "session_get"
	WSAPIFnSessionSetTeam       = "session_set_team"
	WSAPIFnSessionRole          = "session_role"
	WSAPIFnProgramGet           = "program_get"
	WSAPIFnTeamGet              = "team_get"
	WSAPIFnSubscriptionGet      = "subscription_get"
	WSAPIFnSubscriptionList     = "subscription_list"
	WSAPIFnAdmissionCreate      = "admission_create"
	WSAPIFnAdmissionGet         = "admission_get"
	WSAPIFnAdmissionDelete      = "admission_delete"
	WSAPIFnAdmissionGetTaskList = "admission_get_task_list"
	WSAPIFnTaskGet              = "task_get"
	WSAPIFnTaskSet              = "task_set"
	WSAPIFnTaskActivityList     = "task_activity_list"
	WSAPIFnTaskInsertByTaskCode = "task_insert_by_task_code"
	WSAPIFnCaseInsert           = "case_insert"
	WSAPIFnCaseGet              = "case_get"
	WSAPIFnCaseGetContact       = "case_get_contact"
	WSAPIFnCaseSetContact       = "case_set_contact"
	WSAPIFnCaseDelete           = "case_delete"
	WSAPIFnCaseSearch           = "case_search"
	WSAPIFnCaseAdmissionList    = "case_admission_list"
	WSAPIFnCaseGetTaskList      = "case_get_task_list"
	WSAPIFnFormGetSummary       = "form_get_summary"
	WSAPIFnFormSetAnswer        = "form_set_answer"
	WSAPIFnFormSetAllAnswers    = "form_set_all_answers"
)
