package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/skill-intel/internal/server"
	"github.com/jonathan/skill-intel/internal/server/ratelimit"
)

var (
	serveAddr string
	serveSeed bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the skill, roadmap, curriculum and analytics endpoints. Requires DATABASE_URL.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default from config, :8000)")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "Seed the skill catalogue before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if serveSeed {
		n, err := store.SeedSkills(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("seeded skill catalogue", zap.Int("inserted", n))
	}

	addr := serveAddr
	if addr == "" {
		addr = a.cfg.ListenAddr
	}
	opts := []server.Option{server.WithLogger(a.logger), server.WithMetrics(a.metrics)}
	if analyzer := a.trendAnalyzer(); analyzer != nil {
		opts = append(opts, server.WithTrendAnalyzer(analyzer))
	}

	srv := server.New(server.Config{Addr: addr, RateLimit: ratelimit.LoadConfig()}, store, a.svc, opts...)
	defer srv.Close()

	if !a.svc.Online() {
		a.logger.Warn("no model client configured, serving heuristic results only")
	}
	return srv.Start(ctx)
}
