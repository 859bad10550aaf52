package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/metrics"
	"github.com/imamik/azdns/internal/orchestration"
	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/provisioning/compute"
	"github.com/imamik/azdns/internal/telemetry"
	"github.com/imamik/azdns/internal/ui"
)

// flushTimeout bounds the trace flush and metrics push after a run.
const flushTimeout = 10 * time.Second

// RunOptions holds the flags of the run command.
type RunOptions struct {
	ConfigPath    string
	Pause         bool
	StrictCleanup bool
	Version       string
}

// Factory function variables for run - can be replaced in tests.
var (
	// loadDotEnv loads .env from the working directory when present.
	loadDotEnv = func() { _ = godotenv.Load() }

	// loadConfig loads and validates the configuration.
	loadConfig = config.Load

	// newInfraClient creates the Azure client for cfg.
	newInfraClient = func(cfg *config.Config) (azure.InfrastructureManager, error) {
		cred, err := azure.NewCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret)
		if err != nil {
			return nil, err
		}
		return azure.NewRealClient(cfg.SubscriptionID, cred, azure.WithTimeouts(cfg.Timeouts))
	}

	// setupTelemetry creates the tracer.
	setupTelemetry = telemetry.Setup

	// newPauser picks the pauser for the root-zone step.
	newPauser = func(enabled bool) provisioning.Pauser {
		return ui.NewPauser(enabled, ui.IsInteractive())
	}

	// stdout receives the record table and the summary.
	stdout io.Writer = os.Stdout

	// logOutput receives log lines.
	logOutput io.Writer = os.Stderr
)

// Run handles the run command.
//
// It provisions the full resource graph, always attempts to delete the
// run's resource group, prints a summary and returns an *ExitError whose
// code reflects the outcome.
func Run(ctx context.Context, opts RunOptions) error {
	loadDotEnv()

	cfg, err := loadConfig(ctx, opts.ConfigPath)
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}
	if opts.Pause {
		cfg.Pause = true
	}

	logger := newLogger(cfg, logOutput)
	observer := provisioning.NewConsoleObserver(logger)
	observer.Printf("Starting run: %s", cfg)

	tracer, shutdown, err := setupTelemetry(ctx, cfg.OTLPEndpoint, opts.Version)
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: &config.ConfigError{Field: "otlp_endpoint", Reason: err.Error()}}
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	adminKey, err := resolveAdminKey(cfg, observer)
	if err != nil {
		return &ExitError{Code: ExitConfig, Err: err}
	}

	infra, err := newInfraClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create Azure client: %w", err)
	}

	m := metrics.New()
	orchestrationOpts := []orchestration.Option{
		orchestration.WithObserver(observer),
		orchestration.WithPauser(newPauser(cfg.Pause)),
		orchestration.WithTracer(tracer),
		orchestration.WithRecorder(m),
		orchestration.WithListingRenderer(ui.ListingPrinter(stdout)),
	}
	if adminKey != "" {
		orchestrationOpts = append(orchestrationOpts, orchestration.WithHostOptions(compute.WithAdminKey(adminKey)))
	}

	result := orchestration.New(infra, cfg, orchestrationOpts...).Run(ctx)

	m.ObserveRun(runResult(result), result.Duration, result.Cleanup)
	if cfg.PushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		if err := m.Push(pushCtx, cfg.PushgatewayURL, result.RunID); err != nil {
			logger.Warn().Err(err).Str("url", cfg.PushgatewayURL).Msg("push metrics")
		}
		cancel()
	}

	_, _ = fmt.Fprint(stdout, ui.RenderSummary(result))

	return resultError(result, opts.StrictCleanup)
}

func runResult(result *orchestration.Result) string {
	switch {
	case result.Succeeded():
		return metrics.ResultSuccess
	case result.TimedOut():
		return metrics.ResultTimeout
	default:
		return metrics.ResultError
	}
}
