package constvars

// Compliance indicator values
const (
	ComplianceNotEnoughData = 0
	ComplianceGreen         = 1
	ComplianceYellow        = 2
	ComplianceRed           = 3
)

// Performance indicator values
const (
	PerformanceOK         = "OK"
	PerformanceOK1        = "OK1"
	PerformanceOK2        = "OK2"
	PerformanceOK3        = "OK3"
	PerformanceOnePending = "ONE_PENDING"
	PerformanceKO         = "KO"
	PerformanceEmpty      = ""
	PerformanceNoData     = "NO_DATA"
)

// Difficulty flag values in the performance payload
const (
	DifficultyNone     = "0"
	DifficultyReported = "1"
	DifficultyUnknown  = ""
)

const (
	ComplianceTaskLimit  = 2
	PerformanceTaskLimit = 25
	SummaryTaskLimit     = 1000
)

// Outbound event types
const (
	EventTrainingSummaryUpdated = "training_summary.updated"
	EventComplianceCalculated   = "compliance.calculated"
	EventPerformanceCalculated  = "performance.calculated"
)

const (
	LockKeyAdmissionFormat = "lock:admission:%s"
)

// Namespace of the outward SOAP service
const TrainingServiceNamespace = "urn:linkcare:training"
