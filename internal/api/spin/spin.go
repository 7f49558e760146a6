package spin

import (
	"net/http"

	"slot_backend/internal/api"
	dto "slot_backend/internal/api/dto/spin"
	"slot_backend/internal/converter"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SpinService
}

type Handler struct {
	serv service.SpinService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin settles one server-resolved spin. The request carries either a
// student identifier (persisted account) or a guest session identifier.
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var result *model.SpinResult
	switch {
	case payload.StudentID != "":
		result, err = h.serv.SpinAccount(r.Context(), payload.StudentID, payload.Bet)
	case payload.GuestID != "":
		result, err = h.serv.SpinGuest(r.Context(), payload.GuestID, payload.Bet)
	default:
		api.WriteError(w, model.NewValidationError("studentId", "either studentId or guestId is required"))
		return
	}
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// StartGuest opens a new ephemeral session for unauthenticated play.
func (h *Handler) StartGuest(w http.ResponseWriter, r *http.Request) {
	sess, err := h.serv.StartGuest(r.Context())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGuestResponse(*sess))
}
