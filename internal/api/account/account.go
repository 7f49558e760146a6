package account

import (
	"net/http"

	"slot_backend/internal/api"
	dto "slot_backend/internal/api/dto/account"
	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.serv.LoginOrCreate(r.Context(), payload.StudentID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLoginResponse(*result))
}

func (h *Handler) UpdateChips(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateChipsRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acc, err := h.serv.ApplyResult(r.Context(), payload.StudentID, payload.Chips, payload.IsWin)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.UpdateChipsResponse{
		Success: true,
		Chips:   acc.Chips,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentID")

	stats, err := h.serv.Stats(r.Context(), studentID)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}

func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Leaderboard(r.Context(), 0)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRankingResponse(entries))
}
