package constvars

const (
	HealthCheckSuccessMessage = "service is healthy"
)
