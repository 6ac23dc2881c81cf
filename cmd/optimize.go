package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/priyamshah/greenroute/app"
	"github.com/priyamshah/greenroute/config"
	"github.com/priyamshah/greenroute/core/model"
	"github.com/priyamshah/greenroute/core/optimizer"
	"github.com/priyamshah/greenroute/infra/fleet"
	"github.com/priyamshah/greenroute/pkg/export"
)

var (
	orderOrigin      string
	orderDestination string
	orderWeight      float64
	orderPriority    string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rank route and vehicle options for a single order",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&orderOrigin, "from", "", "order origin")
	optimizeCmd.Flags().StringVar(&orderDestination, "to", "", "order destination")
	optimizeCmd.Flags().Float64Var(&orderWeight, "weight", 0, "shipment weight in kg")
	optimizeCmd.Flags().StringVar(&orderPriority, "priority", "Standard", "Express, Standard or Economy")
	optimizeCmd.Flags().StringVarP(&planPath, "plan", "p", "fleet.yaml", "delivery plan file")
	optimizeCmd.Flags().StringVarP(&outPath, "out", "o", "", "write results to file instead of stdout")
	optimizeCmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or csv")
	_ = optimizeCmd.MarkFlagRequired("from")
	_ = optimizeCmd.MarkFlagRequired("to")
	_ = optimizeCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
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
	priority, err := model.ParsePriority(orderPriority)
	if err != nil {
		return err
	}
	order := model.OrderRequest{
		Origin:      orderOrigin,
		Destination: orderDestination,
		WeightKg:    orderWeight,
		Priority:    priority,
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	vehicles, err := plan.VehicleRecords()
	if err != nil {
		return err
	}
	res, err := svc.OptimizeOrder(ctx, order, plan.RouteRecords(), vehicles, plan.LocationIndex())
	if err != nil {
		return err
	}
	return writeResults(cmd, []optimizer.RankedResult{*res})
}

// writeResults renders results to outPath or the command's stdout.
func writeResults(cmd *cobra.Command, results []optimizer.RankedResult) error {
	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	switch format {
	case "json":
		return export.WriteJSON(w, results)
	case "csv":
		return export.WriteCSV(w, results)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
