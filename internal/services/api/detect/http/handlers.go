// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"spamjar/internal/modkit/httpkit"
	"spamjar/internal/services/api/detect/domain"
	svc "spamjar/internal/services/api/detect/service"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// single comment verdict
	httpkit.PostJSON[domain.DetectionRequest](r, "/", h.detect)
}

type handlers struct{ svc svc.Service }

// @Summary Classify one comment
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectionRequest true "Comment"
// @Success 200 {object} domain.DetectionResult "verdict"
// @Failure 422 {object} phttp.ErrorBody "empty content or malformed body"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectionRequest) (any, error) {
	return h.svc.Detect(r.Context(), in)
}
