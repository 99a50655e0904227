// Package handlers provides HTTP request handlers for the stage board API.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// StageHandler serves the ordered stage list and per-stage operations.
type StageHandler struct {
	svc ports.StageService
}

// NewStageHandler creates a StageHandler backed by svc.
func NewStageHandler(svc ports.StageService) *StageHandler {
	return &StageHandler{svc: svc}
}

// ListStages handles GET /api/v1/stages.
func (h *StageHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.svc.ListStages(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToStageListResponse(stages))
}

// CreateStage handles POST /api/v1/stages.
func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateStage(r.Context(), req.Name, *req.Position)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToStageResponse(created))
}

// GetStage handles GET /api/v1/stages/{id}.
func (h *StageHandler) GetStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.GetStage(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToStageResponse(s))
}

// RenameStage handles PATCH /api/v1/stages/{id}.
func (h *StageHandler) RenameStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.RenameStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	renamed, err := h.svc.RenameStage(r.Context(), id, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToStageResponse(renamed))
}

// DeleteStage handles DELETE /api/v1/stages/{id}. Stages that still hold
// projects answer 409.
func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteStage(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveStage handles POST /api/v1/stages/{id}/move. The body carries the
// 0-based index the stage was dropped at; the response is the full list in
// its new order.
func (h *StageHandler) MoveStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.MoveStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	stages, err := h.svc.MoveStage(r.Context(), id, *req.Index)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToStageListResponse(stages))
}

// ListProjects handles GET /api/v1/stages/{id}/projects.
func (h *StageHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	projects, err := h.svc.ListProjectsInStage(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// DrainStage handles POST /api/v1/stages/{id}/drain.
func (h *StageHandler) DrainStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.DrainStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.DrainStage(r.Context(), id, req.TargetStageID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDrainResponse(result))
}
