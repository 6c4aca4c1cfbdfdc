package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

const serviceName = "budgetpilot"

type HealthHandler struct {
	version   string
	startTime time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, startTime: time.Now()}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "healthy",
		"service": serviceName,
		"version": h.version,
		"uptime":  time.Since(h.startTime).String(),
	})
}

func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service": serviceName,
		"version": h.version,
	})
}
