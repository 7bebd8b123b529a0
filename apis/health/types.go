package health

// HealthResponse represents the health check response structure.
type HealthResponse struct {
	// Status is always "OK" while the process can serve requests
	Status string `json:"status"`

	// Timestamp is when the health check was performed (ISO-8601, UTC)
	Timestamp string `json:"timestamp"`

	// Service is the fixed service identifier
	Service string `json:"service"`

	// Version is the configured service version
	Version string `json:"version"`
}

const (
	// StatusOK is the only status the endpoint reports
	StatusOK = "OK"

	// ServiceName identifies this service in health responses
	ServiceName = "my-microservice"
)
