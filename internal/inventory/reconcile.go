package inventory

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lagerkoll/backend-go/internal/centra"
)

// VariantSource yields a supplier's product variant pages. Satisfied by
// *centra.Client; tests provide stubs.
type VariantSource interface {
	SupplierVariants(ctx context.Context, supplierID, limit int) ([]centra.SuppliedVariant, error)
}

// FromSuppliers builds the initial keyed inventory table from the supplier
// listing and each supplier's product variants. A supplier whose identifier
// does not parse as an integer is skipped with a warning; a failed variant
// fetch aborts the whole build.
func FromSuppliers(ctx context.Context, src VariantSource, suppliers []centra.Supplier, variantLimit int, log zerolog.Logger) (*Table, error) {
	table := NewTable()

	for _, supplier := range suppliers {
		supplierID, err := supplier.ID.Int()
		if err != nil {
			log.Warn().Str("supplier_id", supplier.ID.String()).Str("supplier", supplier.Name).
				Msg("invalid supplier id, skipping")
			continue
		}

		variants, err := src.SupplierVariants(ctx, supplierID, variantLimit)
		if err != nil {
			return nil, err
		}
		if len(variants) == 0 {
			log.Info().Str("supplier", supplier.Name).Msg("no product variants for supplier")
			continue
		}

		for _, variant := range variants {
			addVariant(table, supplier.Name, variant)
		}
	}

	return table, nil
}

func addVariant(table *Table, supplierName string, variant centra.SuppliedVariant) {
	product := variant.ProductVariant.Product
	seed := Seed{
		ProductName:   product.Name,
		ProductNumber: product.ProductNumber,
		Status:        product.Status,
		IsBundle:      product.IsBundle,
		Supplier:      supplierName,
	}

	sizes := variant.ProductVariant.ProductSizes
	if len(sizes) == 0 {
		// A variant without a size dimension contributes a single N/A row.
		table.Accumulate(NewKey(product.ID.String(), NoSize), seed, 0)
		return
	}

	for _, size := range sizes {
		for _, stock := range size.Stock {
			key := NewKey(product.ID.String(), stock.ProductSize.Description)
			table.Accumulate(key, seed, stock.Quantity)
		}
	}
}

// MergeWarehouseStock folds the flat warehouse stock listing into the table.
// Known keys accumulate quantity without touching supplier or name; unknown
// keys become "No Supplier" records.
func (t *Table) MergeWarehouseStock(entries []centra.StockEntry) {
	for _, entry := range entries {
		product := entry.ProductSize.ProductVariant.Product
		key := NewKey(product.ID.String(), entry.SizeName())
		seed := Seed{
			ProductName:   product.Name,
			ProductNumber: product.ProductNumber,
			Status:        product.Status,
			IsBundle:      product.IsBundle,
			Supplier:      NoSupplier,
		}
		t.Accumulate(key, seed, entry.ProductSize.Quantity)
	}
}

// CostMap turns the product cost listing into a ProductID -> unit cost map
// using the first-variant-only policy.
func CostMap(products []centra.ProductCost) map[string]decimal.Decimal {
	costs := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		costs[NormalizeProductID(p.ID.String())] = p.FirstVariantCost()
	}
	return costs
}
