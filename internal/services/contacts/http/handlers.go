// Package http provides contact endpoints
package http

import (
	stdhttp "net/http"

	"chatexport/internal/modkit/httpkit"
	"chatexport/internal/services/contacts/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Resolver  domain.ResolverPort
	Refresher domain.RefresherPort
}

type handlers struct {
	deps Deps
}

// Register mounts the contact routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Post(r, "/refresh", h.refresh)
	httpkit.PostJSON[LookupRequest](r, "/lookup", h.lookup)
}

// LookupRequest asks for the closest contact to a free text name
type LookupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"amy"`
}

// LookupResponse carries the resolved identity, empty when nothing matched
type LookupResponse struct {
	Phone string `json:"phone" example:"+15551234567"`
}

// RefreshResponse reports where the regenerated snapshot lives
type RefreshResponse struct {
	Snapshot string `json:"snapshot" example:"contacts_output.csv"`
}

// @Summary Refresh the address book snapshot
// @Tags Contacts
// @Produce json
// @Success 200 {object} RefreshResponse "ok"
// @Router /contacts/refresh [post]
func (h *handlers) refresh(r *stdhttp.Request) (any, error) {
	path, err := h.deps.Refresher.Refresh(r.Context())
	if err != nil {
		return nil, err
	}
	return RefreshResponse{Snapshot: path}, nil
}

// @Summary Fuzzy lookup of a contact identity by name
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body LookupRequest true "Query"
// @Success 200 {object} LookupResponse "ok, empty phone means no match"
// @Router /contacts/lookup [post]
func (h *handlers) lookup(r *stdhttp.Request, in LookupRequest) (any, error) {
	phone, err := h.deps.Resolver.Resolve(r.Context(), in.Name)
	if err != nil {
		return nil, err
	}
	return LookupResponse{Phone: phone}, nil
}
