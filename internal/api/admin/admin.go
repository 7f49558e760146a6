package admin

import (
	"crypto/subtle"
	"net/http"

	dto "slot_backend/internal/api/dto/admin"
	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

const secretHeader = "X-Admin-Secret"

type HandlerDeps struct {
	Settings repository.SettingsRepository
	Spins    service.SpinService
	Cfg      config.AdminConfig
}

type Handler struct {
	settings repository.SettingsRepository
	spins    service.SpinService
	cfg      config.AdminConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		settings: deps.Settings,
		spins:    deps.Spins,
		cfg:      deps.Cfg,
	}
}

// RequireSecret gates the admin routes behind a shared-secret header. This
// is a classroom toggle, not an authentication scheme; an empty configured
// secret disables the routes entirely.
func (h *Handler) RequireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := h.cfg.Secret()
		if secret == "" {
			resp.WriteErrorResponse(w, http.StatusForbidden, "admin endpoints disabled")
			return
		}
		given := r.Header.Get(secretHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			resp.WriteErrorResponse(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) GetProbability(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.ProbabilityResponse{
		WinProbability: h.settings.WinProbability(),
	})
}

// SetProbability stores a new win probability, clamped to the configured
// admin range.
func (h *Handler) SetProbability(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetProbabilityRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	applied := h.settings.SetWinProbability(payload.WinProbability)
	resp.WriteJSONResponse(w, http.StatusOK, dto.ProbabilityResponse{
		WinProbability: applied,
	})
}

// TestProbability runs the win/lose draw N times and reports the observed
// win count, without touching any balance.
func (h *Handler) TestProbability(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ProbabilityTestRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wins, trials, probability := h.spins.ProbabilityTest(payload.Trials)
	resp.WriteJSONResponse(w, http.StatusOK, dto.ProbabilityTestResponse{
		Trials:         trials,
		Wins:           wins,
		WinProbability: probability,
	})
}
