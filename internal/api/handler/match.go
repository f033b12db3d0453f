package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/match"
)

// MatchHandler handles match and turn endpoints
type MatchHandler struct {
	controller *match.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(controller *match.Controller) *MatchHandler {
	return &MatchHandler{controller: controller}
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

func (h *MatchHandler) view(m *model.Match) response.Match {
	return response.MatchFromModel(m, h.controller.TurnSource(m))
}

// writeResult writes a transition outcome. Rejected transitions are not
// errors, the caller inspects accepted
func (h *MatchHandler) writeResult(w http.ResponseWriter, result *match.Result, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Transition{
		Accepted: result.Accepted,
		Match:    h.view(result.Match),
	})
}

type playerTransition func(ctx context.Context, id model.MatchID, player model.PlayerIndex) (*match.Result, error)

// playerOnly adapts a controller method whose only argument is the player
func (h *MatchHandler) playerOnly(fn playerTransition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request.PlayerRequest
		if err := decode(r, &req); err != nil {
			WriteError(w, err)
			return
		}
		result, err := fn(r.Context(), matchID(r), model.PlayerIndex(req.Player))
		h.writeResult(w, result, err)
	}
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	m, err := h.controller.CreateMatch(r.Context(), match.CreateParams{
		Players:    req.Players,
		Locale:     req.Locale,
		TurnSource: req.TurnSource,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.view(m))
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.controller.ListMatches(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.MatchList{Matches: make([]response.MatchSummary, len(summaries))}
	for i, s := range summaries {
		resp.Matches[i] = response.MatchSummaryFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.controller.GetMatch(r.Context(), matchID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.view(m))
}

// Delete handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteMatch(r.Context(), matchID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// StartPlacing handles POST /api/v1/matches/{id}/placing
func (h *MatchHandler) StartPlacing(w http.ResponseWriter, r *http.Request) {
	var req request.StartPlacingRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	result, err := h.controller.StartPlacing(r.Context(), matchID(r),
		model.PlayerIndex(req.Player), model.Point{X: req.X, Y: req.Y})
	h.writeResult(w, result, err)
}

// TogglePlace handles POST /api/v1/matches/{id}/placing/toggle
func (h *MatchHandler) TogglePlace(w http.ResponseWriter, r *http.Request) {
	var req request.TileRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	result, err := h.controller.TogglePlace(r.Context(), matchID(r),
		model.PlayerIndex(req.Player), model.TileID(req.TileID))
	h.writeResult(w, result, err)
}

// ApplyPlacing handles POST /api/v1/matches/{id}/placing/apply
func (h *MatchHandler) ApplyPlacing(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.ApplyPlacing)(w, r)
}

// CancelPlacing handles POST /api/v1/matches/{id}/placing/cancel
func (h *MatchHandler) CancelPlacing(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.CancelPlacing)(w, r)
}

// StartSwapping handles POST /api/v1/matches/{id}/swap
func (h *MatchHandler) StartSwapping(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.StartSwapping)(w, r)
}

// ToggleSwap handles POST /api/v1/matches/{id}/swap/toggle
func (h *MatchHandler) ToggleSwap(w http.ResponseWriter, r *http.Request) {
	var req request.TileRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	result, err := h.controller.ToggleSwapChoice(r.Context(), matchID(r),
		model.PlayerIndex(req.Player), model.TileID(req.TileID))
	h.writeResult(w, result, err)
}

// InvertSwap handles POST /api/v1/matches/{id}/swap/invert
func (h *MatchHandler) InvertSwap(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.InvertSwap)(w, r)
}

// CancelSwap handles POST /api/v1/matches/{id}/swap/cancel
func (h *MatchHandler) CancelSwap(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.CancelSwap)(w, r)
}

// ApplySwap handles POST /api/v1/matches/{id}/swap/apply
func (h *MatchHandler) ApplySwap(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.StartSwap)(w, r)
}

// Reveal handles POST /api/v1/matches/{id}/reveals
func (h *MatchHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req request.RevealRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	result, err := h.controller.Reveal(r.Context(), matchID(r), model.PlayerIndex(req.Player), req.Slot)
	h.writeResult(w, result, err)
}

// Pass handles POST /api/v1/matches/{id}/pass
func (h *MatchHandler) Pass(w http.ResponseWriter, r *http.Request) {
	h.playerOnly(h.controller.PassTurn)(w, r)
}
