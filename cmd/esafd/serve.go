package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"esafd/internal/config"
	"esafd/internal/httpapi"
	"esafd/internal/plugin"
	"esafd/internal/registry"
)

type serveOptions struct {
	addr         string
	configPath   string
	logLevel     string
	maxBodyBytes int64
	eventBuffer  int
	corsEnabled  bool
	corsOrigins  string
}

// defaultServeOptions seeds flag defaults from the environment.
// Precedence: config file < env < explicit flags.
func defaultServeOptions() *serveOptions {
	return &serveOptions{
		addr:        envStr("ESAFD_ADDR", ":8080"),
		configPath:  envStr("ESAFD_CONFIG", ""),
		logLevel:    envStr("ESAFD_LOG_LEVEL", "info"),
		corsOrigins: envStr("ESAFD_CORS_ORIGINS", ""),
	}
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	logger := newLogger(opts.logLevel)

	cfg := config.Config{
		Addr:         opts.addr,
		LogLevel:     opts.logLevel,
		MaxBodyBytes: opts.maxBodyBytes,
		EventBuffer:  opts.eventBuffer,
		CORSEnabled:  opts.corsEnabled,
		CORSOrigins:  splitCSV(opts.corsOrigins),
	}
	if opts.configPath != "" {
		fileCfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = mergeConfig(fileCfg, cfg, cmd)
		logger = newLogger(cfg.LogLevel)
	}

	bus := registry.NewBus(cfg.EventBuffer)
	defer bus.Close()
	reg := registry.NewWithConfig(registry.Config{Publisher: bus})

	plugins := plugin.NewSet()
	if err := plugin.RegisterBuiltins(plugins); err != nil {
		return err
	}
	if err := plugins.InitAll(cmd.Context()); err != nil {
		return err
	}
	defer func() {
		if err := plugins.CloseAll(); err != nil {
			logger.Warn().Err(err).Msg("plugin close")
		}
	}()
	logger.Info().Strs("plugins", plugins.Names()).Msg("host plugins registered")

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		[]string{"Accept", "Content-Type", "X-Log-Level"})

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMuxWithOptions(reg, httpapi.Options{Events: bus, Plugins: plugins})
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("esafd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	logger.Info().Msg("shutting down")
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown")
		return err
	}
	return nil
}

// mergeConfig overlays flag values on top of file values. A flag wins only
// when the user set it explicitly.
func mergeConfig(file, flags config.Config, cmd *cobra.Command) config.Config {
	out := file
	if out.Addr == "" || cmd.Flags().Changed("addr") {
		out.Addr = flags.Addr
	}
	if out.LogLevel == "" || cmd.Flags().Changed("log-level") {
		out.LogLevel = flags.LogLevel
	}
	if out.MaxBodyBytes == 0 || cmd.Flags().Changed("max-body-bytes") {
		out.MaxBodyBytes = flags.MaxBodyBytes
	}
	if out.EventBuffer == 0 || cmd.Flags().Changed("event-buffer") {
		out.EventBuffer = flags.EventBuffer
	}
	if cmd.Flags().Changed("cors") {
		out.CORSEnabled = flags.CORSEnabled
	}
	if len(out.CORSOrigins) == 0 || cmd.Flags().Changed("cors-origins") {
		out.CORSOrigins = flags.CORSOrigins
	}
	return out
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
