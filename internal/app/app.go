package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dictlookup/internal/adapter/provider/freedict"
	"github.com/heartmarshall/dictlookup/internal/config"
	"github.com/heartmarshall/dictlookup/internal/transport/middleware"
	"github.com/heartmarshall/dictlookup/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// dictionary client and the HTTP server, and serves until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("language", cfg.Dictionary.PreferredLanguage),
	)

	dict, err := NewDictionary(cfg.Dictionary, logger)
	if err != nil {
		return err
	}

	srv := NewServer(cfg, logger, dict)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	return Serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// NewDictionary creates the FreeDictionary client with the configured
// request timeout and preferred language.
func NewDictionary(cfg config.DictionaryConfig, logger *slog.Logger) (*freedict.Client, error) {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	dict := freedict.NewClient(logger, httpClient)
	if err := dict.SetPreferredLanguage(cfg.PreferredLanguage); err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return dict, nil
}

// NewServer assembles the REST router and middleware into an *http.Server.
func NewServer(cfg *config.Config, logger *slog.Logger, dict *freedict.Client) *http.Server {
	router := rest.NewRouter(
		rest.NewHealthHandler(dict, BuildVersion()),
		rest.NewDictionaryHandler(dict, logger),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Serve runs srv on ln until ctx is canceled, then shuts it down within
// shutdownTimeout. A server that stops on its own returns its error.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("http server stopped")
	return nil
}
