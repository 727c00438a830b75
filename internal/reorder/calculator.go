package reorder

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/lagerkoll/backend-go/internal/inventory"
	"github.com/lagerkoll/backend-go/internal/sales"
)

// Params are the caller-supplied replenishment inputs.
type Params struct {
	LeadTimeDays int
	SafetyStock  int
}

// Row is one merged inventory/sales record with the derived reorder metrics.
// It is produced once by BuildReport and handed off read-only.
type Row struct {
	ProductID       string          `json:"product_id"`
	ProductNumber   string          `json:"product_number"`
	Size            string          `json:"size"`
	ProductName     string          `json:"product_name"`
	Status          string          `json:"status"`
	IsBundle        bool            `json:"is_bundle"`
	Supplier        string          `json:"supplier"`
	QuantitySold    int             `json:"quantity_sold"`
	StockBalance    int             `json:"stock_balance"`
	AvgDailySales   float64         `json:"avg_daily_sales"`
	DaysToZero      *int            `json:"days_to_zero"`
	ReorderLevel    float64         `json:"reorder_level"`
	QuantityToOrder float64         `json:"quantity_to_order"`
	NeedToOrder     string          `json:"need_to_order"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// BuildReport left-joins the inventory table with the sales summary on
// (product, size) and computes the reorder metrics per row. Inventory keys
// without sales get zero quantity and zero average; sales keys without an
// inventory match contribute nothing. An empty inventory table yields an
// empty report without invoking the join.
func BuildReport(records []inventory.Record, summary sales.Summary, params Params) []Row {
	rows := make([]Row, 0, len(records))
	if len(records) == 0 {
		return rows
	}

	for _, rec := range records {
		line := summary[inventory.Key{ProductID: rec.ProductID, Size: rec.Size}]

		reorderLevel := line.AvgDailySales*float64(params.LeadTimeDays) + float64(params.SafetyStock)
		quantityToOrder := math.Max(reorderLevel-float64(rec.StockBalance), 0)

		needToOrder := "No"
		if quantityToOrder > 0 {
			needToOrder = "Yes"
		}

		// Days to zero is defined only for rows with sales and a
		// non-negative balance.
		var daysToZero *int
		if line.AvgDailySales > 0 && rec.StockBalance >= 0 {
			days := int(math.Round(float64(rec.StockBalance) / line.AvgDailySales))
			daysToZero = &days
		}

		rows = append(rows, Row{
			ProductID:       rec.ProductID,
			ProductNumber:   rec.ProductNumber,
			Size:            rec.Size,
			ProductName:     rec.ProductName,
			Status:          rec.Status,
			IsBundle:        rec.IsBundle,
			Supplier:        rec.Supplier,
			QuantitySold:    line.QuantitySold,
			StockBalance:    rec.StockBalance,
			AvgDailySales:   line.AvgDailySales,
			DaysToZero:      daysToZero,
			ReorderLevel:    reorderLevel,
			QuantityToOrder: quantityToOrder,
			NeedToOrder:     needToOrder,
			UnitCost:        rec.UnitCost,
		})
	}

	return rows
}
