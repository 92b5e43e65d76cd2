// Package cli expõe as ferramentas do seokit na linha de comando e o
// subcomando serve, que sobe a API HTTP.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"seokit/config"
	"seokit/toolkit/application"
	"seokit/toolkit/domain"
	"seokit/toolkit/infra"
)

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	logLevel   string
	jsonOut    bool
	seed       uint64
}

func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "seokit",
		Short:        "SEO and webmaster utilities, as a CLI or an HTTP API",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&g.jsonOut, "json", false, "print results as JSON instead of cards")
	cmd.PersistentFlags().Uint64Var(&g.seed, "seed", 0, "seed for the simulated generators (overrides RANDOM_SEED)")

	cmd.AddCommand(
		serveCmd(g),
		rewriteCmd(g),
		reverseCmd(g),
		canonicalCmd(g),
		readabilityCmd(g),
		hashtagsCmd(g),
		earningsCmd(g),
		authorityCmd(g),
		backlinksCmd(g),
		userAgentCmd(g),
	)
	return cmd
}

func (g *globalFlags) load() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.seed != 0 {
		cfg.RandomSeed = g.seed
	}
	return cfg, nil
}

// newToolkit monta o toolkit sem latência simulada; o serve liga a espera.
func newToolkit(cfg config.Config) application.Toolkit {
	return application.Toolkit{
		Gen: application.Generator{
			Rand:        infra.NewRand(cfg.RandomSeed),
			Clock:       domain.SystemClock,
			BulkWorkers: cfg.BulkWorkers,
		},
		Sanitize: infra.StripMarkup,
	}
}
