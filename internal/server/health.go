package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse reports the status of backend dependencies.
type HealthResponse struct {
	SQLite string `json:"sqlite"`
	KV     string `json:"kv"`
}

func handleHealth(logger *slog.Logger, docs *DocStore, profiles *ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		resp := HealthResponse{SQLite: "ok", KV: "ok"}
		status := http.StatusOK

		if err := docs.Ping(ctx); err != nil {
			logger.Error("health check failed", "name", "sqlite", "error", err)
			resp.SQLite = "error"
			status = http.StatusServiceUnavailable
		}
		if err := profiles.Ping(); err != nil {
			logger.Error("health check failed", "name", "kv", "error", err)
			resp.KV = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	}
}
