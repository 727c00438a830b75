package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/lagerkoll/backend-go/internal/cache"
	"github.com/lagerkoll/backend-go/internal/centra"
	"github.com/lagerkoll/backend-go/internal/config"
	"github.com/lagerkoll/backend-go/internal/inventory"
	"github.com/lagerkoll/backend-go/internal/reorder"
	"github.com/lagerkoll/backend-go/internal/sales"
)

// CatalogClient is the slice of the Centra client the pipeline needs.
type CatalogClient interface {
	Suppliers(ctx context.Context) ([]centra.Supplier, error)
	SupplierVariants(ctx context.Context, supplierID, limit int) ([]centra.SuppliedVariant, error)
	WarehouseStock(ctx context.Context, limit int) ([]centra.StockEntry, error)
	ProductCosts(ctx context.Context, limit int) ([]centra.ProductCost, error)
	Orders(ctx context.Context, from, to time.Time, onlyShipped bool, limit int) ([]centra.Order, error)
}

// Request are the caller-supplied parameters of one pipeline invocation.
type Request struct {
	From         time.Time
	To           time.Time
	LeadTimeDays int
	SafetyStock  int
	OnlyShipped  bool
}

// InventoryService runs the full fetch-reconcile-merge pipeline and memoizes
// finished reports per request parameters.
type InventoryService struct {
	client CatalogClient
	cache  cache.ReportCache
	limits config.CentraConfig
	log    zerolog.Logger
}

func NewInventoryService(client CatalogClient, reportCache cache.ReportCache, limits config.CentraConfig, log zerolog.Logger) *InventoryService {
	if reportCache == nil {
		reportCache = cache.NewNoopReportCache()
	}
	return &InventoryService{client: client, cache: reportCache, limits: limits, log: log}
}

// FetchInventoryWithSales is the caller-facing entry point: it aggregates the
// inventory, cost and sales subsystems concurrently, joins them and derives
// the reorder metrics. An empty catalog yields an empty report; any fetch
// failure aborts the whole invocation.
func (s *InventoryService) FetchInventoryWithSales(ctx context.Context, req Request) ([]reorder.Row, error) {
	if req.From.After(req.To) {
		return nil, fmt.Errorf("invalid date range: from %s is after to %s",
			req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))
	}

	key := cacheKey(req)
	if rows, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		s.log.Debug().Int("rows", len(rows)).Msg("report served from cache")
		return rows, nil
	} else if err != nil {
		s.log.Warn().Err(err).Msg("report cache get failed")
	}

	var (
		table   *inventory.Table
		costs   map[string]decimal.Decimal
		summary sales.Summary
	)

	// The three subsystems have no data dependency on each other; the join
	// happens only after all of them complete.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		suppliers, err := s.client.Suppliers(gctx)
		if err != nil {
			return err
		}
		t, err := inventory.FromSuppliers(gctx, s.client, suppliers, s.limits.VariantLimit, s.log)
		if err != nil {
			return err
		}
		entries, err := s.client.WarehouseStock(gctx, s.limits.ProductLimit)
		if err != nil {
			return err
		}
		t.MergeWarehouseStock(entries)
		table = t
		return nil
	})

	g.Go(func() error {
		products, err := s.client.ProductCosts(gctx, s.limits.VariantLimit)
		if err != nil {
			return err
		}
		costs = inventory.CostMap(products)
		return nil
	})

	g.Go(func() error {
		orders, err := s.client.Orders(gctx, req.From, req.To, req.OnlyShipped, s.limits.OrderLimit)
		if err != nil {
			return err
		}
		summary = sales.Summarize(sales.Flatten(orders, req.OnlyShipped), req.From, req.To)
		return nil
	})

	if err := g.Wait(); err != nil {
		if fe, ok := centra.AsFetchError(err); ok {
			s.log.Error().Str("stage", fe.Stage).Int("page", fe.Page).Err(fe.Err).Msg("pipeline fetch failed")
		}
		return nil, err
	}

	table.ApplyCosts(costs)

	rows := reorder.BuildReport(table.Records(), summary, reorder.Params{
		LeadTimeDays: req.LeadTimeDays,
		SafetyStock:  req.SafetyStock,
	})

	if err := s.cache.Set(ctx, key, rows); err != nil {
		s.log.Warn().Err(err).Msg("report cache set failed")
	}

	s.log.Info().
		Int("inventory_keys", table.Len()).
		Int("sales_keys", len(summary)).
		Int("rows", len(rows)).
		Msg("reorder report built")

	return rows, nil
}

// InvalidateCache drops every memoized report.
func (s *InventoryService) InvalidateCache(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}

func cacheKey(req Request) cache.ReportKey {
	return cache.ReportKey{
		From:         req.From.Format("2006-01-02"),
		To:           req.To.Format("2006-01-02"),
		LeadTimeDays: req.LeadTimeDays,
		SafetyStock:  req.SafetyStock,
		OnlyShipped:  req.OnlyShipped,
	}
}
