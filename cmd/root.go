package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konkred/valuation-cli/internal/config"
	"github.com/konkred/valuation-cli/internal/judge"
	"github.com/konkred/valuation-cli/internal/store"
	"github.com/konkred/valuation-cli/internal/valuation"
	"github.com/konkred/valuation-cli/pkg/anthropic"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "konkred",
	Short: "Prompt valuation protocol engine",
	Long:  "Estimates the economic and qualitative value of a prompt under six valuation methodologies (DLA, PVC, SCOPE, EAVP, PRICE, VECTOR) and awards threshold-gated achievement badges.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newEngine builds the valuation engine. Without an API key the judge
// is nil and only the numeric methods can run.
func newEngine() *valuation.Engine {
	var j judge.Judge
	if cfg.Anthropic.Key != "" {
		client := anthropic.NewClient(cfg.Anthropic.Key)
		j = judge.NewClaude(client, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens, cfg.Anthropic.RequestsPerSecond)
	}
	return valuation.NewEngine(j)
}

// openStore opens and migrates the local report archive.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(cmd.Context()); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
