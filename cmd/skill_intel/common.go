package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/skill-intel/internal/config"
	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/engine"
	"github.com/jonathan/skill-intel/internal/fetch"
	"github.com/jonathan/skill-intel/internal/ingestion"
	"github.com/jonathan/skill-intel/internal/intel"
	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/observability"
	"github.com/jonathan/skill-intel/internal/schemas"
	"github.com/jonathan/skill-intel/internal/trends"
	"github.com/jonathan/skill-intel/internal/types"
)

// newClient builds the model client; tests swap it for a mock.
var newClient = llm.NewClient

// app holds what every command shares.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	svc     *intel.Service
}

// setup loads configuration and builds the logger, metrics and engine service.
// Without --offline a missing credential fails with *llm.ConfigurationError.
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := observability.NewLogger(cfg.LogLevel, verbose || cfg.Verbose)
	if err != nil {
		return nil, err
	}
	metrics := observability.NewMetrics()

	var client llm.Client
	if !offline {
		llmCfg := cfg.LLMConfig()
		llmCfg.Retry.OnRetry = metrics.RecordLLMRetry
		client, err = newClient(ctx, llmCfg, logger)
		if err != nil {
			return nil, err
		}
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		svc:     intel.NewService(client, engine.WithLogger(logger), engine.WithMetrics(metrics)),
	}, nil
}

// Close releases the model client and flushes the logger.
func (a *app) Close() {
	if err := a.svc.Close(); err != nil {
		a.logger.Warn("closing model client", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// openStore connects to the configured database and applies the schema.
func (a *app) openStore(ctx context.Context) (*db.DB, error) {
	if a.cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%s environment variable is required", config.EnvDatabaseURL)
	}
	store, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// trendAnalyzer builds an analyzer over the configured trend endpoint, or nil
// when none is configured.
func (a *app) trendAnalyzer() *trends.Analyzer {
	if a.cfg.TrendsAPIURL == "" {
		return nil
	}
	source := trends.NewHTTPSource(a.cfg.TrendsAPIURL, a.cfg.TrendsAPIKey, a.cfg.TrendsPerSecond)
	fetcher := trends.NewFetcher(source,
		trends.WithRegion(a.cfg.TrendsRegion),
		trends.WithTimeframe(a.cfg.TrendsTimeframe),
		trends.WithFetcherLogger(a.logger),
	)
	return trends.NewAnalyzer(fetcher, trends.DefaultConcurrency)
}

// printer returns the verbose summary printer, or nil when not verbose.
func printer(cmd *cobra.Command) *observability.Printer {
	if !verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// emit validates v against schema (when named) and writes it as indented JSON
// to --out or stdout. A schema that fails to load only warns.
func emit(cmd *cobra.Command, schema string, v any) error {
	if schema != "" {
		if err := schemas.Validate(schema, v); err != nil {
			var loadErr *schemas.SchemaLoadError
			if !errors.As(err, &loadErr) {
				return fmt.Errorf("result does not validate against %s schema: %w", schema, err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not validate output: %v\n", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if outputFile == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readText returns inline when set, stdin for "-", the fetched text of an
// http(s) URL, else the extracted text of the file at path.
func (a *app) readText(cmd *cobra.Command, path, inline string) (string, error) {
	switch {
	case inline != "":
		return inline, nil
	case fetch.IsURL(path):
		doc, err := fetch.Document(cmd.Context(), path, &fetch.Options{Browser: browserRender, Logger: a.logger})
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	case path == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return ingestion.CleanText(string(data)), nil
	case path != "":
		doc, err := ingestion.ReadFile(path)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	default:
		return "", fmt.Errorf("no input: use --in or --text")
	}
}

// splitList parses a comma-separated skill list.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return types.DedupeSkills(strings.Split(s, ","))
}
