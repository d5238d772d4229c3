package pkg

// Common API path constants.
const (
	// BasePath is the root path for the API.
	BasePath = "/v1"

	// HealthCheckPath is the endpoint for health checks.
	HealthCheckPath = BasePath + "/health"
)
