package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"URLAnalyzer/internal/classifier"
	"URLAnalyzer/internal/config"
	"URLAnalyzer/internal/infrastructure/chart"
	"URLAnalyzer/internal/infrastructure/console"
	"URLAnalyzer/internal/infrastructure/input"
	"URLAnalyzer/internal/infrastructure/scheduler"
	"URLAnalyzer/internal/infrastructure/web"
	"URLAnalyzer/internal/logging"
	"URLAnalyzer/internal/metrics"
	"URLAnalyzer/internal/ports"
	"URLAnalyzer/internal/usecase"
	"URLAnalyzer/pkg/logger"
)

// Application wires configs to the analyzer and its two front-ends.
type Application struct {
	cfg       config.Config
	logger    zerolog.Logger
	analyzer  *usecase.Analyzer
	collector *input.Collector
	server    *web.Server
}

// PromptOptions selects the prompt's terminal and an optional input file.
type PromptOptions struct {
	InputFile string
	In        io.Reader
	Out       io.Writer
}

// New builds the application. A nil baseLogger is replaced by one built from cfg.Logging.
func New(cfg config.Config, baseLogger *zerolog.Logger) *Application {
	if baseLogger == nil {
		l := logging.New(cfg.Logging)
		baseLogger = &l
	}
	log := *baseLogger

	collector := input.NewCollector(
		input.NewDefaultRegistry(),
		log.With().Str("component", "collector").Logger(),
	)
	recorder := metrics.NewRecorder()

	analyzer := usecase.NewAnalyzer(usecase.AnalyzerDeps{
		Classifier: classifier.New(cfg.Classifier.Rules()),
		Chart:      chart.NewPieRenderer(cfg.Chart),
		Recorder:   recorder,
		Logger:     log.With().Str("component", "analyzer").Logger(),
	})

	server := web.NewServer(web.ServerDeps{
		Analyzer:  analyzer,
		Collector: collector,
		Metrics:   recorder.Handler(),
		Config:    cfg.Server,
		Logger:    log.With().Str("component", "http").Logger(),
	})

	return &Application{
		cfg:       cfg,
		logger:    log,
		analyzer:  analyzer,
		collector: collector,
		server:    server,
	}
}

// Handler exposes the web front-end's router.
func (a *Application) Handler() http.Handler {
	return a.server.Handler()
}

// RunPrompt runs the command-line front-end once.
func (a *Application) RunPrompt(ctx context.Context, opts PromptOptions) error {
	prompt := console.NewPrompt(console.PromptDeps{
		Analyzer:  a.analyzer,
		Collector: a.collector,
		In:        opts.In,
		Out:       opts.Out,
		ChartPath: a.cfg.Chart.OutputPath,
		Logger:    a.logger.With().Str("component", "prompt").Logger(),
	})

	if opts.InputFile != "" {
		return prompt.RunFile(ctx, opts.InputFile)
	}
	return prompt.Run(ctx)
}

// Serve listens on the configured address until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.cfg.Server.Addr, err)
	}
	return a.ServeListener(ctx, ln)
}

// ServeListener serves the web front-end on ln and shuts down gracefully
// once ctx is cancelled.
func (a *Application) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.server.Handler(),
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		ErrorLog:          logger.New("http", a.logger, zerolog.ErrorLevel),
	}

	g, gctx := errgroup.WithContext(ctx)

	janitor := a.limiterJanitor()
	if janitor != nil {
		idle := a.cfg.Server.RateLimit.IdleTimeout
		if err := janitor.Start(gctx, func(now time.Time) { a.server.PruneIdleClients(now, idle) }); err != nil {
			return fmt.Errorf("start limiter cleanup: %w", err)
		}
	}

	g.Go(func() error {
		a.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := a.cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		a.logger.Info().Dur("timeout", timeout).Msg("Shutting down HTTP server")
		if janitor != nil {
			if err := janitor.Stop(shutdownCtx); err != nil {
				a.logger.Warn().Err(err).Msg("Limiter cleanup did not stop")
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// limiterJanitor returns the scheduler that forgets idle rate-limited clients,
// or nil when there is nothing to clean.
func (a *Application) limiterJanitor() ports.Scheduler {
	rl := a.cfg.Server.RateLimit
	if !a.server.RateLimited() || rl.CleanupInterval <= 0 || rl.IdleTimeout <= 0 {
		return nil
	}
	return scheduler.NewTickerScheduler(rl.CleanupInterval)
}
