package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// BoardHandler serves the combined board view.
type BoardHandler struct {
	svc ports.StageService
}

// NewBoardHandler creates a BoardHandler backed by svc.
func NewBoardHandler(svc ports.StageService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Board handles GET /api/v1/board.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	columns, err := h.svc.Board(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBoardResponse(columns))
}
