package app

import (
	"context"

	accountAPI "slot_backend/internal/api/account"
	adminAPI "slot_backend/internal/api/admin"
	spinAPI "slot_backend/internal/api/spin"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/account_repo"
	"slot_backend/internal/repository/guest_repo"
	"slot_backend/internal/repository/settings_repo"
	"slot_backend/internal/service"
	accountServ "slot_backend/internal/service/account"
	spinServ "slot_backend/internal/service/spin"
	"slot_backend/internal/slot"
	"slot_backend/pkg/keymutex"
	"slot_backend/pkg/logger"
	"slot_backend/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Machine bits
	slotCfg config.SlotConfig
	machine *slot.Machine
	rngSrc  rng.Source

	// Account bits
	accountRepo repository.AccountRepository
	accountServ service.AccountService
	accountHand *accountAPI.Handler

	// Spin bits
	guestRepo    repository.GuestRepository
	settingsRepo repository.SettingsRepository
	spinServ     service.SpinService
	spinHand     *spinAPI.Handler

	// Admin bits
	adminCfg  config.AdminConfig
	adminHand *adminAPI.Handler

	// Shared infrastructure
	locks *keymutex.KeyMutex
	log   *zap.SugaredLogger

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *zap.SugaredLogger {
	if sp.log == nil {
		l, err := logger.New(logLevelFromEnv())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) Machine() *slot.Machine {
	if sp.machine == nil {
		sp.machine = slot.NewMachine(sp.SlotCfg())
	}
	return sp.machine
}

func (sp *ServiceProvider) RNGSource() rng.Source {
	if sp.rngSrc == nil {
		sp.rngSrc = rng.NewCrypto()
	}
	return sp.rngSrc
}

func (sp *ServiceProvider) Locks() *keymutex.KeyMutex {
	if sp.locks == nil {
		sp.locks = keymutex.New()
	}
	return sp.locks
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) GuestRepository() repository.GuestRepository {
	if sp.guestRepo == nil {
		sp.guestRepo = guest_repo.NewGuestRepository(sp.SlotCfg())
	}
	return sp.guestRepo
}

func (sp *ServiceProvider) SettingsRepository() repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.SlotCfg())
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = accountServ.NewAccountService(
			sp.AccountRepository(ctx),
			sp.SlotCfg(),
			sp.TXManager(ctx),
			sp.Locks(),
			sp.Logger(),
		)
	}
	return sp.accountServ
}

func (sp *ServiceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spinServ.NewSpinService(
			sp.Machine(),
			sp.AccountRepository(ctx),
			sp.GuestRepository(),
			sp.SettingsRepository(),
			sp.SlotCfg(),
			sp.TXManager(ctx),
			sp.Locks(),
			sp.RNGSource(),
			sp.Logger(),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{
			Serv: sp.AccountService(ctx),
		})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) SpinHandler(ctx context.Context) *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{
			Serv: sp.SpinService(ctx),
		})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Settings: sp.SettingsRepository(),
			Spins:    sp.SpinService(ctx),
			Cfg:      sp.AdminCfg(),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Secret"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", healthHandler)

		accountHandler := sp.AccountHandler(ctx)
		spinHandler := sp.SpinHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)

		r.Route("/api", func(rr chi.Router) {
			rr.Post("/login", accountHandler.Login)
			rr.Post("/update-chips", accountHandler.UpdateChips)
			rr.Get("/stats/{studentID}", accountHandler.Stats)
			rr.Get("/ranking", accountHandler.Ranking)

			rr.Post("/spin", spinHandler.Spin)
			rr.Post("/guest", spinHandler.StartGuest)

			rr.Route("/admin", func(ar chi.Router) {
				ar.Use(adminHandler.RequireSecret)
				ar.Get("/probability", adminHandler.GetProbability)
				ar.Put("/probability", adminHandler.SetProbability)
				ar.Post("/probability/test", adminHandler.TestProbability)
			})
		})

		sp.router = r
	}
	return sp.router
}
