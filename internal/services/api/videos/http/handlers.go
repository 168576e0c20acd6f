// Package http provides http transport for videos
package http

import (
	stdhttp "net/http"

	"spamjar/internal/modkit/httpkit"
	"spamjar/internal/services/api/videos/domain"
	svc "spamjar/internal/services/api/videos/service"
)

// Register mounts videos endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetRequest[domain.ProcessPageInput](r, "/{video_id}", h.processPage)
}

type handlers struct{ svc svc.Service }

// @Summary Classify one page of a video's comments
// @Tags Videos
// @Produce json
// @Param video_id path string true "YouTube video id"
// @Param max_results query int false "Comments to fetch (1-100)" default(50)
// @Success 200 {object} domain.VideoBatchResult "verdicts in source order"
// @Failure 422 {object} phttp.ErrorBody "bad video id, bad max_results or unknown video"
// @Failure 500 {object} phttp.ErrorBody "upstream or classifier failure"
// @Router /process_page/{video_id} [get]
func (h *handlers) processPage(r *stdhttp.Request, in domain.ProcessPageInput) (any, error) {
	return h.svc.ProcessVideo(r.Context(), in)
}
