package config

import "linkcare-service/internal/pkg/wsapi_dto"

type InternalConfig struct {
	App        App
	WSAPI      AppWSAPI
	Training   AppTraining
	TaskStatus AppTaskStatus
	Auth       AppAuth
	RabbitMQ   AppRabbitMQ
	Minio      AppMinio
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	RequestTimeoutInSeconds  int
	LockExpiryInSeconds      int
	SessionCacheTTLInMinutes int
}

// AppWSAPI holds the endpoint and the service user credentials.
type AppWSAPI struct {
	Endpoint             string
	Token                string
	User                 string
	Password             string
	Team                 string
	Role                 string
	Timezone             string
	ReuseExistingSession bool
	MaxCallsPerSecond    float64
}

// AppTraining names the codes the training rules look for in the program
// and the effort thresholds of the VAS scale.
type AppTraining struct {
	TrainingTaskCode    string
	SummaryFormCode     string
	ExercisesArrayItem  string
	StretchingArrayItem string
	StretchingPrefix    string
	EffortItemCode      string
	EffortFormPattern   string
	EffortLow           float64
	EffortHigh          float64
	EffortVeryHigh      float64
}

type AppTaskStatus struct {
	Open      []string
	Closed    []string
	Expired   []string
	Cancelled []string
}

// StatusSets converts the configured status lists into a task classifier.
func (s AppTaskStatus) StatusSets() wsapi_dto.StatusSets {
	return wsapi_dto.StatusSets{
		Open:      s.Open,
		Closed:    s.Closed,
		Expired:   s.Expired,
		Cancelled: s.Cancelled,
	}
}

// AppAuth protects the outward surface. With both values empty every
// request is accepted.
type AppAuth struct {
	APIKey               string
	JWTSecret            string
	JWTIssuer            string
	JWTTokenTTLInMinutes int
}

type AppRabbitMQ struct {
	Enabled        bool
	IndicatorQueue string
}

type AppMinio struct {
	Enabled    bool
	BucketName string
}
