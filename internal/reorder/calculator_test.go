package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagerkoll/backend-go/internal/inventory"
	"github.com/lagerkoll/backend-go/internal/sales"
)

func TestBuildReportWithSales(t *testing.T) {
	records := []inventory.Record{{
		ProductID:    "P1",
		Size:         "M",
		Supplier:     "A",
		StockBalance: 20,
	}}
	summary := sales.Summary{
		inventory.NewKey("P1", "M"): {QuantitySold: 100, AvgDailySales: 10.0},
	}

	rows := BuildReport(records, summary, Params{LeadTimeDays: 7, SafetyStock: 10})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 100, row.QuantitySold)
	assert.InDelta(t, 10.0, row.AvgDailySales, 1e-9)
	assert.InDelta(t, 80.0, row.ReorderLevel, 1e-9)
	assert.InDelta(t, 60.0, row.QuantityToOrder, 1e-9)
	assert.Equal(t, "Yes", row.NeedToOrder)
	require.NotNil(t, row.DaysToZero)
	assert.Equal(t, 2, *row.DaysToZero)
}

func TestBuildReportWithoutSales(t *testing.T) {
	records := []inventory.Record{{
		ProductID:    "P1",
		Size:         "M",
		Supplier:     "A",
		StockBalance: 20,
	}}

	rows := BuildReport(records, sales.Summary{}, Params{LeadTimeDays: 7, SafetyStock: 10})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 0, row.QuantitySold)
	assert.InDelta(t, 0.0, row.AvgDailySales, 1e-9)
	assert.InDelta(t, 10.0, row.ReorderLevel, 1e-9)
	assert.InDelta(t, 0.0, row.QuantityToOrder, 1e-9)
	assert.Equal(t, "No", row.NeedToOrder)
	assert.Nil(t, row.DaysToZero, "days to zero is empty without sales")
}

func TestBuildReportQuantityToOrderNeverNegative(t *testing.T) {
	records := []inventory.Record{{ProductID: "P1", Size: "M", StockBalance: 500}}
	summary := sales.Summary{
		inventory.NewKey("P1", "M"): {QuantitySold: 10, AvgDailySales: 1.0},
	}

	rows := BuildReport(records, summary, Params{LeadTimeDays: 7, SafetyStock: 10})
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.0, rows[0].QuantityToOrder, 1e-9)
	assert.Equal(t, "No", rows[0].NeedToOrder)
}

func TestBuildReportIsLeftJoin(t *testing.T) {
	records := []inventory.Record{
		{ProductID: "P1", Size: "M", StockBalance: 5},
		{ProductID: "P2", Size: "L", StockBalance: 3},
	}
	summary := sales.Summary{
		inventory.NewKey("P1", "M"): {QuantitySold: 4, AvgDailySales: 0.4},
		// Sales for a key the inventory never saw: contributes nothing.
		inventory.NewKey("GHOST", "XL"): {QuantitySold: 99, AvgDailySales: 9.9},
	}

	rows := BuildReport(records, summary, Params{LeadTimeDays: 7, SafetyStock: 0})
	require.Len(t, rows, 2)
	assert.Equal(t, "P1", rows[0].ProductID)
	assert.Equal(t, "P2", rows[1].ProductID)
	assert.Equal(t, 0, rows[1].QuantitySold)
}

func TestBuildReportEmptyInventory(t *testing.T) {
	rows := BuildReport(nil, sales.Summary{
		inventory.NewKey("P1", "M"): {QuantitySold: 4, AvgDailySales: 0.4},
	}, Params{LeadTimeDays: 7, SafetyStock: 10})

	require.NotNil(t, rows)
	assert.Empty(t, rows, "empty inventory yields an empty, well-formed report")
}

func TestFilterApply(t *testing.T) {
	rows := []Row{
		{ProductID: "P1", Status: "ACTIVE", Supplier: "Acme"},
		{ProductID: "P2", Status: "INACTIVE", Supplier: "Acme"},
		{ProductID: "P3", Status: "ACTIVE", IsBundle: true, Supplier: "Acme"},
		{ProductID: "P4", Status: "ACTIVE", Supplier: "Utgående produkt"},
	}

	filtered := Filter{
		ActiveOnly:      true,
		ExcludeBundles:  true,
		ExcludeSupplier: "Utgående produkt",
	}.Apply(rows)

	require.Len(t, filtered, 1)
	assert.Equal(t, "P1", filtered[0].ProductID)

	assert.Len(t, Filter{}.Apply(rows), 4)
}

func TestColumnsContract(t *testing.T) {
	expected := []string{
		"ProductID",
		"Product Number",
		"Size",
		"Product Name",
		"Status",
		"Is Bundle",
		"Supplier",
		"Quantity Sold",
		"Stock Balance",
		"Avg Daily Sales",
		"Days to Zero",
		"Reorder Level",
		"Quantity to Order",
		"Need to Order",
	}
	assert.Equal(t, expected, Columns)
}
