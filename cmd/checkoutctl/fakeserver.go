package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/paylane/paylane-go/internal/adapters/fakeapi"
	memidempotency "github.com/paylane/paylane-go/internal/adapters/memory/idempotency"
	memsessionrepo "github.com/paylane/paylane-go/internal/adapters/memory/sessionrepo"
	"github.com/paylane/paylane-go/internal/adapters/postgres"
	pgidempotency "github.com/paylane/paylane-go/internal/adapters/postgres/idempotency"
	pgsessionrepo "github.com/paylane/paylane-go/internal/adapters/postgres/sessionrepo"
	"github.com/paylane/paylane-go/internal/adapters/sqlite"
	sqliteidempotency "github.com/paylane/paylane-go/internal/adapters/sqlite/idempotency"
	sqlitesessionrepo "github.com/paylane/paylane-go/internal/adapters/sqlite/sessionrepo"
	"github.com/paylane/paylane-go/internal/app/checkouts"
	platformclock "github.com/paylane/paylane-go/internal/platform/clock"
	"github.com/paylane/paylane-go/internal/platform/config"
	idempotencyport "github.com/paylane/paylane-go/internal/ports/out/idempotency"
	sessionrepoport "github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

func newFakeServerCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Run a local fake of the provider API",
		Long: `Runs the checkout-session endpoints against in-memory, SQLite or Postgres
storage. Configuration comes from PORT, STORAGE_BACKEND, DATABASE_URL,
SQLITE_PATH, FAKE_API_KEY (comma separated), CHECKOUT_BASE_URL and
IDEMPOTENCY_TTL; flags win over the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFakeServerConfigFromEnv()
			if err != nil {
				return fmt.Errorf("invalid fake-server config: %w", err)
			}
			if f := cmd.Flags().Lookup("port"); f.Changed {
				cfg.Port = f.Value.String()
			}
			if f := cmd.Flags().Lookup("storage"); f.Changed {
				cfg.StorageBackend = f.Value.String()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runFakeServer(ctx, cfg, c.logger, func(addr string) {
				c.ok.Fprintf(cmd.OutOrStdout(), "fake provider listening on http://%s\n", addr)
			})
		},
	}
	cmd.Flags().String("port", "", "listen port (env PORT, default 8080)")
	cmd.Flags().String("storage", "", "memory, sqlite or postgres (env STORAGE_BACKEND)")
	return cmd
}

// runFakeServer serves until ctx is done, then shuts down gracefully. ready is
// called with the bound address once the listener is open.
func runFakeServer(ctx context.Context, cfg config.FakeServerConfig, logger *slog.Logger, ready func(addr string)) error {
	var (
		sessionRepo sessionrepoport.Repository
		idemStore   idempotencyport.Store
		cleanup     func()
	)

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			return fmt.Errorf("invalid postgres config: %w", err)
		}
		cleanup = pool.Close
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return err
		}
		logger.Info("postgres migrations applied", "count", n)
		sessionRepo = pgsessionrepo.NewRepo(pool)
		idemStore = pgidempotency.NewStore(pool)
	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		cleanup = func() { _ = db.Close() }
		sessionRepo = sqlitesessionrepo.NewRepo(db)
		idemStore = sqliteidempotency.NewStore(db)
	case config.StorageMemory:
		sessionRepo = memsessionrepo.NewRepo()
		idemStore = memidempotency.NewStore()
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if cleanup != nil {
		defer cleanup()
	}

	clk := platformclock.NewSystemClock()
	svc := checkouts.NewService(sessionRepo, clk)
	if cfg.CheckoutBaseURL != "" {
		svc.CheckoutBaseURL = cfg.CheckoutBaseURL
	}
	api := fakeapi.NewServer(svc, idemStore, clk).WithLogger(logger)
	api.IdempotencyTTL = cfg.IdempotencyTTL
	handler := fakeapi.NewRouterWithOptions(api, fakeapi.RouterOptions{
		AuthMiddleware: fakeapi.NewAuthMiddleware(cfg.APIKeys...),
		Logger:         logger,
	})

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("fake provider listening", "addr", ln.Addr().String(), "storage", cfg.StorageBackend)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	if ready != nil {
		ready(ln.Addr().String())
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
