package api

import "time"

// Report describes one generated report file served over the HTTP API.
type Report struct {
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}
