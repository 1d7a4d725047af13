package dto

const (
	HealthStatusUp   = "UP"
	HealthStatusDown = "DOWN"
)

type Health struct {
	Status     string            `json:"status"`
	Error      string            `json:"error,omitempty"`
	Components map[string]Health `json:"components,omitempty"`
}
