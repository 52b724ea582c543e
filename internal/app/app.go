package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/myenglish-practice/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-practice/internal/adapter/postgres/reviewstate"
	"github.com/heartmarshall/myenglish-practice/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/myenglish-practice/internal/auth"
	"github.com/heartmarshall/myenglish-practice/internal/config"
	"github.com/heartmarshall/myenglish-practice/internal/service/practice"
	wordlistsvc "github.com/heartmarshall/myenglish-practice/internal/service/wordlist"
	"github.com/heartmarshall/myenglish-practice/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-practice/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler := NewHandler(logger, cfg, Deps{
		DB:     pool,
		Lists:  wordlist.New(pool),
		States: reviewstate.New(pool),
		Tx:     postgres.NewTxManager(pool),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// Deps are the storage dependencies of the HTTP application.
type Deps struct {
	DB     pinger
	Lists  *wordlist.Repo
	States *reviewstate.Repo
	Tx     *postgres.TxManager
}

type pinger interface {
	Ping(ctx context.Context) error
}

// NewHandler wires services, handlers and the middleware chain.
func NewHandler(logger *slog.Logger, cfg *config.Config, deps Deps) http.Handler {
	registry := practice.NewRegistry(logger, cfg.Practice.MaxSessions, cfg.Practice.SessionIdleTTL)
	practiceSvc := practice.NewService(
		logger,
		deps.Lists,
		deps.States,
		registry,
		cfg.SRS.Domain(),
		practice.SystemClock{},
		practice.RandomShuffle,
	)
	listSvc := wordlistsvc.NewService(
		logger,
		deps.Lists,
		deps.States,
		deps.Tx,
		practiceSvc,
		cfg.Practice.MaxWordsPerList,
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxClients)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(deps.DB, registry, BuildVersion()),
		Lists:    rest.NewListHandler(listSvc, logger),
		Practice: rest.NewPracticeHandler(practiceSvc, logger),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(mux)
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
