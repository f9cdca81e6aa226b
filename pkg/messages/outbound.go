// Package messages defines the JSON payloads the server writes
package messages

// RootMessage is the fixed message returned by the root endpoint
const RootMessage = "Backend is running"

// StatusOK is the health status reported while the process is serving
const StatusOK = "ok"

// RootPayload represents the response of GET /
type RootPayload struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// HealthPayload represents the response of GET /health
type HealthPayload struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"` // Whole seconds since process start
	Timestamp     int64  `json:"timestamp"`     // Milliseconds since the Unix epoch
}

// NewRootPayload returns the root endpoint payload
func NewRootPayload() RootPayload {
	return RootPayload{
		OK:      true,
		Message: RootMessage,
	}
}

// NewHealthPayload builds a health payload from an uptime and a timestamp
func NewHealthPayload(uptimeSeconds, timestamp int64) HealthPayload {
	return HealthPayload{
		Status:        StatusOK,
		UptimeSeconds: uptimeSeconds,
		Timestamp:     timestamp,
	}
}
