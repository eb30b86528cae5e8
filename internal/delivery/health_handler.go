package delivery

import "net/http"

type HealthHandler struct {
	speechAvailable bool
}

func NewHealthHandler(speechAvailable bool) *HealthHandler {
	return &HealthHandler{speechAvailable: speechAvailable}
}

func (h *HealthHandler) Check(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":            "healthy",
		"message":           "Next Gen Indian Banking Voice Assistant is running",
		"service":           "Next Gen Indian Banking Voice Assistant API",
		"version":           "1.0.0",
		"whisper_available": h.speechAvailable,
	})
}
