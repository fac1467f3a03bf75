package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-collector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-collector/internal/ports"
)

// FormHandler exposes the form engine over HTTP. Every successful response
// carries the full form state so clients never reconstruct it.
type FormHandler struct {
	service ports.FormService
}

// NewFormHandler creates a new FormHandler with the given service port.
func NewFormHandler(service ports.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// Snapshot handles GET /api/v1/form.
func (h *FormHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	respondState(w, r, h.service.Snapshot(r.Context()))
}

// SetField handles PUT /api/v1/form/fields/{field}.
func (h *FormHandler) SetField(w http.ResponseWriter, r *http.Request) {
	field, err := parseField(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetFieldRequest
	if !bind(w, r, &req) {
		return
	}

	state, err := h.service.SetField(r.Context(), field, *req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respondState(w, r, state)
}

// BlurField handles POST /api/v1/form/fields/{field}/blur.
func (h *FormHandler) BlurField(w http.ResponseWriter, r *http.Request) {
	field, err := parseField(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.service.BlurField(r.Context(), field)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respondState(w, r, state)
}

// AddResource handles POST /api/v1/form/resources.
func (h *FormHandler) AddResource(w http.ResponseWriter, r *http.Request) {
	item, state := h.service.AddResource(r.Context())

	respondJSON(w, r, http.StatusCreated, dto.AddResourceResponse{
		Item:  dto.ToResourceResponse(item),
		State: dto.ToFormStateResponse(state),
	})
}

// UpdateResource handles PATCH /api/v1/form/resources/{id}. Remark is
// applied before link; the response reflects both.
func (h *FormHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateResourceRequest
	if !bind(w, r, &req) {
		return
	}

	var state ports.FormState
	for _, change := range req.Changes() {
		state, err = h.service.UpdateResource(r.Context(), id, change.Field, change.Value)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	respondState(w, r, state)
}

// BlurResource handles POST /api/v1/form/resources/{id}/blur.
func (h *FormHandler) BlurResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.service.BlurResource(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respondState(w, r, state)
}

// MoveResource handles POST /api/v1/form/resources/{id}/move.
func (h *FormHandler) MoveResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveResourceRequest
	if !bind(w, r, &req) {
		return
	}

	state, err := h.service.MoveResource(r.Context(), id, *req.Position)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respondState(w, r, state)
}

// RemoveResource handles DELETE /api/v1/form/resources/{id}.
func (h *FormHandler) RemoveResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.service.RemoveResource(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respondState(w, r, state)
}

// Submit handles POST /api/v1/form/submit. Failures still carry the form
// state, which holds the validation messages or the failed result.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Submit(r.Context())
	if err != nil {
		resp := dto.ToFormStateResponse(state)
		dto.WriteStateErrorResponse(w, r, err, &resp)
		return
	}

	respondState(w, r, state)
}

// ResetAll handles DELETE /api/v1/form.
func (h *FormHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	respondState(w, r, h.service.ResetAll(r.Context()))
}

// ResetProjectFields handles DELETE /api/v1/form/project.
func (h *FormHandler) ResetProjectFields(w http.ResponseWriter, r *http.Request) {
	respondState(w, r, h.service.ResetProjectFields(r.Context()))
}
