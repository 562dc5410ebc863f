// Package http provides conversation endpoints
package http

import (
	stdhttp "net/http"

	"chatexport/internal/modkit/httpkit"
	"chatexport/internal/services/conversations/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Exporter domain.ExporterPort
}

type handlers struct {
	deps Deps
}

// Register mounts the conversation routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON[ExportRequest](r, "/export", h.export)
}

// ExportRequest names the conversation to export
type ExportRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"amy"`
	Out  string `json:"out,omitempty" validate:"omitempty,max=4096" example:"exports/amy.json"`
}

// ExportResponse reports the written artifact
type ExportResponse struct {
	Path     string `json:"path" example:"exports/amy_2025-04-16_123456.json"`
	Messages int    `json:"messages" example:"128"`
	ExportID string `json:"export_id" example:"7d8e86fc-4a65-4a34-9c97-1c0f2f5cbfa2"`
}

// @Summary Export the direct conversation with a contact to a JSON artifact
// @Tags Conversations
// @Accept json
// @Produce json
// @Param payload body ExportRequest true "Export request"
// @Success 200 {object} ExportResponse "ok"
// @Failure 404 {object} httpkit.Envelope "no match, no direct chat, or empty conversation"
// @Router /conversations/export [post]
func (h *handlers) export(r *stdhttp.Request, in ExportRequest) (any, error) {
	res, err := h.deps.Exporter.Export(r.Context(), domain.ExportInput{
		Name: in.Name,
		Out:  in.Out,
	})
	if err != nil {
		return nil, err
	}
	return ExportResponse{
		Path:     res.Path,
		Messages: res.Messages,
		ExportID: res.ExportID,
	}, nil
}
