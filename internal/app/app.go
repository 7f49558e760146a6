package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slot_backend/internal/config"
	"slot_backend/pkg/resp"
)

const (
	shutdownTimeout    = 10 * time.Second
	guestSweepInterval = 5 * time.Minute
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

// Run wires everything, bootstraps the schema and serves HTTP until
// SIGINT/SIGTERM, then drains the server and closes the database pool.
func (a *App) Run() error {
	// Missing .env is fine, plain environment variables also work.
	_ = config.Load(".env")
	a.initServiceProvider()
	sp := a.ServiceProvider
	log := sp.Logger()
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sp.AccountRepository(ctx).EnsureSchema(ctx); err != nil {
		return err
	}

	go a.sweepGuests(ctx)

	srv := &http.Server{
		Addr:    sp.HTTPCfg().Address(),
		Handler: sp.Router(ctx),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorw("server shutdown", "err", err)
		}
	}

	if sp.dbClient != nil {
		sp.dbClient.Close()
		log.Infow("database pool closed")
	}
	return nil
}

// sweepGuests periodically drops idle guest sessions.
func (a *App) sweepGuests(ctx context.Context) {
	ticker := time.NewTicker(guestSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.ServiceProvider.GuestRepository().Sweep(); n > 0 {
				a.ServiceProvider.Logger().Debugw("guest sessions swept", "removed", n)
			}
		}
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func logLevelFromEnv() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
