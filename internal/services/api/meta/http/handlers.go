// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"sort"
	"time"

	"spamjar/internal/core/classifier"
	"spamjar/internal/core/version"
	"spamjar/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// ClassifierInfo is satisfied by the loaded classifier
type ClassifierInfo interface {
	Info() classifier.Info
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Classifier  ClassifierInfo
	// Checks are pinged by /ready; a nil entry is reported as skipped
	Checks map[string]Pinger
	// ReadyTimeout bounds the whole readiness probe, default 2s
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

func newHandlers(d Deps) *handlers {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	return &handlers{deps: d, now: time.Now}
}

// RegisterHealth mounts the liveness route at the api root
func RegisterHealth(r httpkit.Router) {
	httpkit.Get(r, "/health", health)
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := newHandlers(d)

	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/classifier", h.classifier)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the liveness payload
type HealthResponse struct {
	Version string `json:"version" example:"0.1.0"`
	Status  string `json:"status"  example:"ok"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"cache"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:6379: connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"spamjar-api"`
	Started string `json:"started" example:"2026-10-19T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ClassifierResponse reports what the detect endpoints run
type ClassifierResponse struct {
	Kind      string            `json:"kind"      example:"model"`
	Threshold float64           `json:"threshold" example:"0.5"`
	Detail    string            `json:"detail,omitempty" example:"model=spam-tfidf-v1 terms=5000"`
	Build     version.BuildInfo `json:"build"`
}

// @Summary Liveness and version
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func health(_ *http.Request) (any, error) {
	return HealthResponse{Version: version.Version, Status: "ok"}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	checks := make([]ReadyCheck, 0, len(h.deps.Checks)+1)

	cls := ReadyCheck{Name: "classifier", Status: "ok"}
	if h.deps.Classifier == nil {
		cls = ReadyCheck{Name: "classifier", Status: "fail", Error: "classifier not loaded"}
	}
	checks = append(checks, cls)

	names := make([]string, 0, len(h.deps.Checks))
	for name := range h.deps.Checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := h.deps.Checks[name]
		switch {
		case p == nil:
			checks = append(checks, ReadyCheck{Name: name, Status: "skipped"})
		default:
			if err := p.Ping(ctx); err != nil {
				checks = append(checks, ReadyCheck{Name: name, Status: "fail", Error: err.Error()})
				continue
			}
			checks = append(checks, ReadyCheck{Name: name, Status: "ok"})
		}
	}

	overall := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			// a dead optional dependency only degrades; no classifier means no service
			if c.Name == "classifier" {
				overall = "fail"
				break
			}
			overall = "degraded"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Classifier kind and threshold
// @Tags Meta
// @Produce json
// @Success 200 {object} ClassifierResponse "ok"
// @Router /meta/classifier [get]
func (h *handlers) classifier(_ *http.Request) (any, error) {
	resp := ClassifierResponse{Build: version.Info()}
	if h.deps.Classifier != nil {
		info := h.deps.Classifier.Info()
		resp.Kind = string(info.Kind)
		resp.Threshold = info.Threshold
		resp.Detail = info.Detail
	}
	return resp, nil
}
