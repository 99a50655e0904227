package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// ProjectHandler serves project-to-stage assignment. Project records
// themselves belong to the project store and are not edited here.
type ProjectHandler struct {
	svc ports.StageService
}

// NewProjectHandler creates a ProjectHandler backed by svc.
func NewProjectHandler(svc ports.StageService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// AssignStage handles PUT /api/v1/projects/{id}/stage. The body names the
// destination stage by ID; no index conversion applies.
func (h *ProjectHandler) AssignStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.AssignStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AssignProject(r.Context(), id, req.StageID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AssignmentResponse{ProjectID: id, StageID: req.StageID})
}

// UnassignStage handles DELETE /api/v1/projects/{id}/stage.
func (h *ProjectHandler) UnassignStage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.UnassignProject(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
