package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
}

// NewComponentHealth builds a component status carrying err's message when err is set.
func NewComponentHealth(err error) ComponentHealthStatus {
	if err != nil {
		return ComponentHealthStatus{
			Status:  StatusDown,
			Details: map[string]string{"message": err.Error()},
		}
	}
	return ComponentHealthStatus{
		Status:  StatusUp,
		Details: map[string]string{"message": string(StatusUp)},
	}
}
