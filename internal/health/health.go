// Package health provides the HTTP liveness, readiness and status
// handlers served alongside the metrics endpoint.
//
// The package exposes three endpoints:
//
//   - /healthz — liveness probe; always returns 200 OK.
//   - /readyz  — readiness probe; returns 200 only when all registered
//     [Checker] functions pass.
//   - /statusz — current engine state: case mode, held keys, config file.
//
// Responses are JSON objects with a top-level "status" field ("ok" or
// "fail") plus endpoint-specific detail fields.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// checkTimeout is the maximum time a single readiness check may take before
// the context is cancelled.
const checkTimeout = 5 * time.Second

// Checker is a named readiness check. Check returns nil when the dependency
// is healthy and an error describing the failure otherwise.
type Checker struct {
	// Name is a short label for this check (e.g. "config", "shell"). It
	// appears as a key in the JSON response.
	Name string

	// Check probes the dependency. It must respect context cancellation.
	Check func(ctx context.Context) error
}

// Engine is the view of the interpreter the status endpoint reports. The
// interpreter satisfies it.
type Engine interface {
	// CaseModeName is the display name of the active dictation case mode.
	CaseModeName() string

	// HeldKeyNames lists the keys currently held by repeat tasks.
	HeldKeyNames() []string

	// ConfigPath is the configuration file in use, empty when running on
	// defaults.
	ConfigPath() string
}

// result is the JSON response body for the health endpoints.
type result struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks,omitempty"`
	CaseMode string            `json:"case_mode,omitempty"`
	HeldKeys []string          `json:"held_keys,omitempty"`
	Config   string            `json:"config,omitempty"`
}

// Handler serves the health endpoints. Safe for concurrent use; the
// checker list is fixed at construction time.
type Handler struct {
	engine   Engine
	checkers []Checker
}

// New creates a [Handler] reporting on engine and evaluating the given
// checkers on each /readyz request, sequentially in the order provided.
func New(engine Engine, checkers ...Checker) *Handler {
	c := make([]Checker, len(checkers))
	copy(c, checkers)
	return &Handler{engine: engine, checkers: c}
}

// Healthz is a liveness probe that always returns 200 OK. A running
// process that can serve HTTP is considered alive.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, result{Status: "ok"})
}

// Readyz is a readiness probe that returns 200 only when every registered
// [Checker] passes. Each checker gets a context with a [checkTimeout]
// deadline derived from the request context.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, len(h.checkers))
	allOK := true

	for _, c := range h.checkers {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := c.Check(ctx)
		cancel()

		if err != nil {
			checks[c.Name] = "fail: " + err.Error()
			allOK = false
		} else {
			checks[c.Name] = "ok"
		}
	}

	res := result{Status: "ok", Checks: checks}
	status := http.StatusOK
	if !allOK {
		res.Status = "fail"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}

// Statusz reports the live engine state.
func (h *Handler) Statusz(w http.ResponseWriter, _ *http.Request) {
	res := result{Status: "ok"}
	if h.engine != nil {
		res.CaseMode = h.engine.CaseModeName()
		res.HeldKeys = h.engine.HeldKeyNames()
		res.Config = h.engine.ConfigPath()
	}
	writeJSON(w, http.StatusOK, res)
}

// Register adds the health routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
	mux.HandleFunc("GET /statusz", h.Statusz)
}

// writeJSON encodes v as JSON and writes it with the given status code. On
// encoding failure it falls back to a plain-text 500 response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"status":"error"}`, http.StatusInternalServerError)
	}
}
