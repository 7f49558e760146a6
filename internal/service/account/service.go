package account

import (
	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	"slot_backend/pkg/keymutex"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	repo      repository.AccountRepository
	cfg       config.SlotConfig
	txManager trm.Manager
	locks     *keymutex.KeyMutex
	log       *zap.SugaredLogger
}

// NewAccountService builds the ledger service. All mutating operations are
// serialized per player through the keyed mutex and wrapped in a
// transaction by the manager.
func NewAccountService(
	repo repository.AccountRepository,
	cfg config.SlotConfig,
	txManager trm.Manager,
	locks *keymutex.KeyMutex,
	log *zap.SugaredLogger,
) service.AccountService {
	return &serv{
		repo:      repo,
		cfg:       cfg,
		txManager: txManager,
		locks:     locks,
		log:       log,
	}
}
