package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagerkoll/backend-go/internal/centra"
)

type stubVariantSource struct {
	variantsBySupplier map[int][]centra.SuppliedVariant
	err                error
}

func (s *stubVariantSource) SupplierVariants(_ context.Context, supplierID, _ int) ([]centra.SuppliedVariant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.variantsBySupplier[supplierID], nil
}

func decodeVariants(t *testing.T, raw string) []centra.SuppliedVariant {
	t.Helper()
	var variants []centra.SuppliedVariant
	require.NoError(t, json.Unmarshal([]byte(raw), &variants))
	return variants
}

func decodeStockEntries(t *testing.T, raw string) []centra.StockEntry {
	t.Helper()
	var entries []centra.StockEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	return entries
}

func TestFromSuppliersBuildsKeyedTable(t *testing.T) {
	suppliers := []centra.Supplier{
		{ID: "1", Name: "Acme", Status: "ACTIVE"},
		{ID: "not-a-number", Name: "Broken", Status: "ACTIVE"},
	}

	src := &stubVariantSource{variantsBySupplier: map[int][]centra.SuppliedVariant{
		1: decodeVariants(t, `[
			{"productVariant":{
				"product":{"id":" p1 ","name":"Tee","status":"ACTIVE","productNumber":"T-1","isBundle":false},
				"productSizes":[
					{"stock":[
						{"quantity":4,"productSize":{"description":"M"}},
						{"quantity":2,"productSize":{"description":"M"}},
						{"quantity":1,"productSize":{"description":"L"}}
					]}
				]}},
			{"productVariant":{
				"product":{"id":"p2","name":"Poster","status":"ACTIVE","productNumber":"P-2","isBundle":false},
				"productSizes":[]}}
		]`),
	}}

	table, err := FromSuppliers(context.Background(), src, suppliers, 100, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	m, ok := table.Get(NewKey("P1", "M"))
	require.True(t, ok)
	assert.Equal(t, 6, m.StockBalance, "stock entries for the same size accumulate")
	assert.Equal(t, "Acme", m.Supplier)
	assert.Equal(t, "Tee", m.ProductName)

	l, ok := table.Get(NewKey("P1", "L"))
	require.True(t, ok)
	assert.Equal(t, 1, l.StockBalance)

	// A variant without size entries contributes a single N/A row with zero stock.
	noSize, ok := table.Get(NewKey("P2", NoSize))
	require.True(t, ok)
	assert.Equal(t, 0, noSize.StockBalance)
}

func TestFromSuppliersSkipsUnparsableSupplierIDs(t *testing.T) {
	suppliers := []centra.Supplier{{ID: "abc", Name: "Broken", Status: "ACTIVE"}}
	src := &stubVariantSource{err: errors.New("must not be called")}

	table, err := FromSuppliers(context.Background(), src, suppliers, 100, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestFromSuppliersAbortsOnFetchFailure(t *testing.T) {
	suppliers := []centra.Supplier{{ID: "1", Name: "Acme", Status: "ACTIVE"}}
	src := &stubVariantSource{err: &centra.FetchError{Stage: centra.StageSupplierVariants, Page: 2, Err: errors.New("boom")}}

	table, err := FromSuppliers(context.Background(), src, suppliers, 100, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, table)

	fe, ok := centra.AsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, 2, fe.Page)
}

func TestMergeWarehouseStock(t *testing.T) {
	table := NewTable()
	table.Accumulate(NewKey("P1", "M"), Seed{ProductName: "Tee", Supplier: "Acme"}, 6)

	entries := decodeStockEntries(t, `[
		{"productSize":{"quantity":10,"size":{"name":"M"},"productVariant":{"product":{"id":"p1","name":"Tee","status":"ACTIVE","productNumber":"T-1","isBundle":false}}}},
		{"productSize":{"quantity":3,"size":null,"productVariant":{"product":{"id":"p9","name":"Mug","status":"ACTIVE","productNumber":"M-9","isBundle":false}}}}
	]`)

	table.MergeWarehouseStock(entries)

	existing, _ := table.Get(NewKey("P1", "M"))
	assert.Equal(t, 16, existing.StockBalance)
	assert.Equal(t, "Acme", existing.Supplier, "supplier untouched when key already known")

	created, ok := table.Get(NewKey("P9", NoSize))
	require.True(t, ok)
	assert.Equal(t, 3, created.StockBalance)
	assert.Equal(t, NoSupplier, created.Supplier)
}

func TestCostMapUsesFirstVariant(t *testing.T) {
	var products []centra.ProductCost
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":" p1 ","productNumber":"T-1","variants":[{"unitCost":{"value":12.5}},{"unitCost":{"value":99}}]},
		{"id":"p2","productNumber":"P-2","variants":[]}
	]`), &products))

	costs := CostMap(products)
	assert.True(t, decimal.NewFromFloat(12.5).Equal(costs["P1"]))
	assert.True(t, costs["P2"].IsZero())
}
