package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/lagerkoll/backend-go/internal/cache"
	"github.com/lagerkoll/backend-go/internal/centra"
	"github.com/lagerkoll/backend-go/internal/config"
	"github.com/lagerkoll/backend-go/internal/export"
	"github.com/lagerkoll/backend-go/internal/reorder"
	"github.com/lagerkoll/backend-go/internal/service"
	"github.com/lagerkoll/backend-go/pkg/logger"
)

const dateLayout = "2006-01-02"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	now := time.Now().UTC()

	app := &cli.App{
		Name:  "reorder-export",
		Usage: "Build the inventory/sales reorder report and write it to a spreadsheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Usage:   "Centra GraphQL endpoint",
				EnvVars: []string{"CENTRA_API_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Centra API bearer token",
				EnvVars: []string{"CENTRA_API_TOKEN"},
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Sales window start date (YYYY-MM-DD)",
				Value: now.AddDate(0, 0, -30).Format(dateLayout),
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Sales window end date (YYYY-MM-DD)",
				Value: now.Format(dateLayout),
			},
			&cli.IntFlag{
				Name:  "lead-time",
				Usage: "Replenishment lead time in days",
				Value: 7,
			},
			&cli.IntFlag{
				Name:  "safety-stock",
				Usage: "Safety stock quantity",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "only-shipped",
				Usage: "Restrict sales aggregation to SHIPPED orders",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "active-only",
				Usage: "Keep only products with ACTIVE status",
			},
			&cli.BoolFlag{
				Name:  "exclude-bundles",
				Usage: "Drop bundle products from the report",
			},
			&cli.StringFlag{
				Name:  "exclude-supplier",
				Usage: "Drop rows belonging to this supplier",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Destination XLSX file",
				Value: fmt.Sprintf("reorder_report_%s.xlsx", now.Format("20060102_150405")),
			},
		},
		Action: runExport,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("export failed")
	}
}

func runExport(c *cli.Context) error {
	endpoint := c.String("endpoint")
	token := c.String("token")
	if endpoint == "" || token == "" {
		return fmt.Errorf("endpoint and token must be provided (flags or CENTRA_API_* env)")
	}

	from, err := time.Parse(dateLayout, c.String("from"))
	if err != nil {
		return fmt.Errorf("invalid --from date: %w", err)
	}
	to, err := time.Parse(dateLayout, c.String("to"))
	if err != nil {
		return fmt.Errorf("invalid --to date: %w", err)
	}

	cfg := config.Load()
	client := centra.NewClient(endpoint, token,
		centra.WithTimeout(cfg.Centra.HTTPTimeout),
		centra.WithLogger(logger.Log),
	)

	// One-shot run, no memoization wanted.
	svc := service.NewInventoryService(client, cache.NewNoopReportCache(), cfg.Centra, logger.Log)

	rows, err := svc.FetchInventoryWithSales(c.Context, service.Request{
		From:         from,
		To:           to,
		LeadTimeDays: c.Int("lead-time"),
		SafetyStock:  c.Int("safety-stock"),
		OnlyShipped:  c.Bool("only-shipped"),
	})
	if err != nil {
		return err
	}

	filter := reorder.Filter{
		ActiveOnly:      c.Bool("active-only"),
		ExcludeBundles:  c.Bool("exclude-bundles"),
		ExcludeSupplier: c.String("exclude-supplier"),
	}
	rows = filter.Apply(rows)

	output := c.String("output")
	if err := export.WriteXLSX(output, rows); err != nil {
		return err
	}

	logger.Log.Info().Str("file", output).Int("rows", len(rows)).Msg("report exported")
	return nil
}
