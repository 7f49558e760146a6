package spin

import (
	"slices"

	"slot_backend/internal/config"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	"slot_backend/internal/slot"
	"slot_backend/pkg/keymutex"
	"slot_backend/pkg/rng"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	machine   *slot.Machine
	accounts  repository.AccountRepository
	guests    repository.GuestRepository
	settings  repository.SettingsRepository
	cfg       config.SlotConfig
	txManager trm.Manager
	locks     *keymutex.KeyMutex
	src       rng.Source
	log       *zap.SugaredLogger
}

// NewSpinService builds the server-authoritative settlement service. The
// guest path never touches the database, so guest play keeps working when
// persistence is down.
func NewSpinService(
	machine *slot.Machine,
	accounts repository.AccountRepository,
	guests repository.GuestRepository,
	settings repository.SettingsRepository,
	cfg config.SlotConfig,
	txManager trm.Manager,
	locks *keymutex.KeyMutex,
	src rng.Source,
	log *zap.SugaredLogger,
) service.SpinService {
	return &serv{
		machine:   machine,
		accounts:  accounts,
		guests:    guests,
		settings:  settings,
		cfg:       cfg,
		txManager: txManager,
		locks:     locks,
		src:       src,
		log:       log,
	}
}

func (s *serv) validateBet(bet int) error {
	if bet <= 0 {
		return model.NewValidationError("bet", "must be positive")
	}
	if !slices.Contains(s.cfg.Bets(), bet) {
		return model.NewValidationError("bet", "not an allowed bet size")
	}
	return nil
}

// settledBalance computes the balance after a spin for either variant of
// player state.
func settledBalance(h model.BalanceHolder, bet int, o model.SpinOutcome) int {
	return h.CurrentBalance() - bet + o.Payout
}
