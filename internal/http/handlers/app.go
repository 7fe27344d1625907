package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"server/internal/bloggen"
	"server/internal/domain"
	"server/internal/infra"
)

// BlogGenerator runs the generation pipeline. Satisfied by
// *bloggen.Service; tests substitute a stub.
type BlogGenerator interface {
	Generate(ctx context.Context, req domain.BlogRequest) *bloggen.Result
}

// App carries the dependencies shared by all handlers.
type App struct {
	SQL       infra.SQLExecutor
	Config    *infra.Config
	Logger    infra.Logger
	Generator BlogGenerator
}

func NewApp(sql infra.SQLExecutor, cfg *infra.Config, logger infra.Logger, generator BlogGenerator) *App {
	return &App{SQL: sql, Config: cfg, Logger: logger, Generator: generator}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the uniform failure envelope. The code is optional; only
// stable machine-readable codes (such as the missing-credential one) set it.
func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	payload := map[string]any{"success": false, "error": message}
	if code != "" {
		payload["code"] = code
	}
	a.json(w, status, payload)
}
