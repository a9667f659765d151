package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/dictlookup/internal/language"
)

// languageReporter is the slice of the dictionary client the health check reads.
type languageReporter interface {
	PreferredLanguage() language.Code
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict    languageReporter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict languageReporter, version string) *HealthHandler {
	return &HealthHandler{dict: dict, version: version}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Language string `json:"language,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports version and the dictionary adapter's configuration.
// The upstream service is not probed; its availability is not ours to report.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Components: map[string]CompStatus{
			"dictionary": {Status: "ok", Language: h.dict.PreferredLanguage().String()},
		},
		Timestamp: time.Now(),
	})
}
