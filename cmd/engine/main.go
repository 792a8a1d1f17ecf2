package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"goodjob-engine/internal/config"
	"goodjob-engine/internal/events"
	"goodjob-engine/internal/extract"
	"goodjob-engine/internal/extract/sites"
	"goodjob-engine/internal/fetch"
	"goodjob-engine/internal/httpapi"
	"goodjob-engine/internal/ingest/email"
	"goodjob-engine/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("engine exited")
	}
}

func run(log zerolog.Logger) error {
	// Data dir: env if the host app passes one, else a local folder.
	dataDir := os.Getenv("GOODJOB_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// One engine per data dir. A second instance would race on sqlite and
	// double-poll email.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("data dir lock: %w", err)
	}
	if !locked {
		return errors.New("another engine instance holds this data dir")
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}

	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = config.Normalized(cfg)
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, err
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}
	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "goodjob.db"))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	if err := store.Migrate(db.Pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	reg := sites.NewRegistry()
	if cfg.SitesPath != "" {
		if err := reg.LoadOverlay(cfg.SitesPath); err != nil {
			log.Warn().Str("path", cfg.SitesPath).Err(err).Msg("site overlay not loaded")
		}
	}

	hub := events.NewHub()
	ex := extract.New(reg, log)
	fetcher := fetch.New(ex, fetch.Options{
		RenderDelay: time.Duration(cfg.Fetch.RenderDelayMS) * time.Millisecond,
		Timeout:     time.Duration(cfg.Fetch.TimeoutS) * time.Second,
		ReqPerSec:   cfg.Fetch.ReqPerSec,
		Burst:       cfg.Fetch.Burst,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := &email.Poller{
		DB:      db.Pool,
		Fetcher: fetcher,
		Hub:     hub,
		Log:     log,
		CfgVal:  &cfgVal,
	}
	go poller.Loop(ctx)

	handler := httpapi.Chain(
		httpapi.NewMux(httpapi.Deps{
			DB:          db.Pool,
			Hub:         hub,
			Log:         log,
			CfgVal:      &cfgVal,
			UserCfgPath: userCfgPath,
			LoadCfg:     loadCfg,
			Extractor:   ex,
			Fetcher:     fetcher,
		}),
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
		httpapi.Cors,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("config", userCfgPath).Msg("engine listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
