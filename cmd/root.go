package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/priyamshah/greenroute/app"
	"github.com/priyamshah/greenroute/config"
	"github.com/priyamshah/greenroute/infra/fleet"
	"github.com/priyamshah/greenroute/infra/logger"
)

var (
	cfgPath  string
	planPath string
	outPath  string
	format   string
)

var rootCmd = &cobra.Command{
	Use:   "greenroute",
	Short: "Multi-objective delivery route decision engine",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.Flags().StringVarP(&planPath, "plan", "p", "fleet.yaml", "delivery plan file")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "write results to file instead of stdout")
	rootCmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or csv")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	plan, err := fleet.Load(planPath)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	results, err := svc.RunPlan(ctx, plan)
	if err != nil {
		return err
	}
	return writeResults(cmd, results)
}
