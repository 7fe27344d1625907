package handlers

import (
	"net/http"
	"time"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status":           "OK",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"environment":      a.Config.AppEnv,
		"apiKeyConfigured": a.Config.NvidiaAPIKey != "",
		"apiKeyLength":     len(a.Config.NvidiaAPIKey),
	})
}
