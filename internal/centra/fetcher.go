package centra

import (
	"context"
	"time"
)

// Stage names used in FetchError reporting.
const (
	StageSuppliers        = "suppliers"
	StageSupplierVariants = "supplier_variants"
	StageWarehouseStock   = "warehouse_stock"
	StageProductCosts     = "product_costs"
	StageOrders           = "orders"
)

// Suppliers fetches the full supplier list. The listing is small and unpaged.
func (c *Client) Suppliers(ctx context.Context) ([]Supplier, error) {
	var data struct {
		Suppliers []Supplier `json:"suppliers"`
	}
	if err := c.Query(ctx, suppliersQuery, nil, &data); err != nil {
		return nil, &FetchError{Stage: StageSuppliers, Page: 1, Err: err}
	}
	c.log.Debug().Int("count", len(data.Suppliers)).Msg("fetched suppliers")
	return data.Suppliers, nil
}

// SupplierVariants pages through one supplier's suppliedProductVariants.
func (c *Client) SupplierVariants(ctx context.Context, supplierID, limit int) ([]SuppliedVariant, error) {
	var variants []SuppliedVariant

	err := ForEachPage(ctx, StageSupplierVariants, limit, func(ctx context.Context, page int) (int, error) {
		var data struct {
			Supplier *struct {
				SuppliedProductVariants []SuppliedVariant `json:"suppliedProductVariants"`
			} `json:"supplier"`
		}
		variables := map[string]any{"id": supplierID, "limit": limit, "page": page}
		if err := c.Query(ctx, supplierVariantsQuery, variables, &data); err != nil {
			return 0, err
		}
		if data.Supplier == nil {
			return 0, nil
		}
		variants = append(variants, data.Supplier.SuppliedProductVariants...)
		return len(data.Supplier.SuppliedProductVariants), nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("supplier_id", supplierID).Int("count", len(variants)).Msg("fetched supplier variants")
	return variants, nil
}

// WarehouseStock pages through the flat warehouse stock listing. A page's
// size is the total number of stock entries across all warehouses in that
// response.
func (c *Client) WarehouseStock(ctx context.Context, limit int) ([]StockEntry, error) {
	var entries []StockEntry

	err := ForEachPage(ctx, StageWarehouseStock, limit, func(ctx context.Context, page int) (int, error) {
		var data struct {
			Warehouses []struct {
				Stock []StockEntry `json:"stock"`
			} `json:"warehouses"`
		}
		variables := map[string]any{"limit": limit, "page": page}
		if err := c.Query(ctx, warehouseStockQuery, variables, &data); err != nil {
			return 0, err
		}
		count := 0
		for _, warehouse := range data.Warehouses {
			entries = append(entries, warehouse.Stock...)
			count += len(warehouse.Stock)
		}
		return count, nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("count", len(entries)).Msg("fetched warehouse stock")
	return entries, nil
}

// ProductCosts pages through all products and their variant unit costs.
func (c *Client) ProductCosts(ctx context.Context, limit int) ([]ProductCost, error) {
	var products []ProductCost

	err := ForEachPage(ctx, StageProductCosts, limit, func(ctx context.Context, page int) (int, error) {
		var data struct {
			Products []ProductCost `json:"products"`
		}
		variables := map[string]any{"limit": limit, "page": page}
		if err := c.Query(ctx, productCostsQuery, variables, &data); err != nil {
			return 0, err
		}
		products = append(products, data.Products...)
		return len(data.Products), nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("count", len(products)).Msg("fetched product costs")
	return products, nil
}

// Orders pages through orders whose order date falls in [from, to] inclusive.
// With onlyShipped the query itself restricts to SHIPPED orders.
func (c *Client) Orders(ctx context.Context, from, to time.Time, onlyShipped bool, limit int) ([]Order, error) {
	var orders []Order
	query := ordersQuery(onlyShipped)

	err := ForEachPage(ctx, StageOrders, limit, func(ctx context.Context, page int) (int, error) {
		var data struct {
			Orders []Order `json:"orders"`
		}
		variables := map[string]any{
			"limit": limit,
			"page":  page,
			"from":  from.Format("2006-01-02") + "T00:00:00Z",
			"to":    to.Format("2006-01-02") + "T23:59:59Z",
		}
		if err := c.Query(ctx, query, variables, &data); err != nil {
			return 0, err
		}
		orders = append(orders, data.Orders...)
		return len(data.Orders), nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("count", len(orders)).Msg("fetched orders")
	return orders, nil
}
