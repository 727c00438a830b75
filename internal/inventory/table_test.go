package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyNormalizesIdentity(t *testing.T) {
	key := NewKey("  p-100 ", "")
	assert.Equal(t, "P-100", key.ProductID)
	assert.Equal(t, NoSize, key.Size)

	assert.Equal(t, NewKey("p-100", "M"), NewKey("P-100 ", "M"))
}

func TestAccumulateSumsContributionsPerKey(t *testing.T) {
	table := NewTable()
	key := NewKey("P1", "M")
	seed := Seed{ProductName: "Tee", Supplier: "Acme"}

	table.Accumulate(key, seed, 5)
	table.Accumulate(key, Seed{ProductName: "other", Supplier: "other"}, 3)

	rec, ok := table.Get(key)
	require.True(t, ok)
	assert.Equal(t, 8, rec.StockBalance)
	// First observation wins for descriptive attributes.
	assert.Equal(t, "Tee", rec.ProductName)
	assert.Equal(t, "Acme", rec.Supplier)
	assert.Equal(t, 1, table.Len())
}

func TestAccumulateIsOrderIndependent(t *testing.T) {
	contributions := []int{7, 0, 12, 1}
	key := NewKey("P1", "L")

	forward := NewTable()
	for _, q := range contributions {
		forward.Accumulate(key, Seed{Supplier: "Acme"}, q)
	}

	backward := NewTable()
	for i := len(contributions) - 1; i >= 0; i-- {
		backward.Accumulate(key, Seed{Supplier: NoSupplier}, contributions[i])
	}

	a, _ := forward.Get(key)
	b, _ := backward.Get(key)
	assert.Equal(t, 20, a.StockBalance)
	assert.Equal(t, a.StockBalance, b.StockBalance)
}

func TestRecordsPreserveFirstObservationOrder(t *testing.T) {
	table := NewTable()
	table.Accumulate(NewKey("B", "M"), Seed{}, 1)
	table.Accumulate(NewKey("A", "M"), Seed{}, 1)
	table.Accumulate(NewKey("B", "M"), Seed{}, 1)

	records := table.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "B", records[0].ProductID)
	assert.Equal(t, "A", records[1].ProductID)
}

func TestApplyCostsDefaultsToZero(t *testing.T) {
	table := NewTable()
	table.Accumulate(NewKey("P1", "M"), Seed{}, 1)
	table.Accumulate(NewKey("P2", "M"), Seed{}, 1)

	table.ApplyCosts(map[string]decimal.Decimal{
		"P1": decimal.NewFromFloat(12.5),
	})

	withCost, _ := table.Get(NewKey("P1", "M"))
	assert.True(t, decimal.NewFromFloat(12.5).Equal(withCost.UnitCost))

	withoutCost, _ := table.Get(NewKey("P2", "M"))
	assert.True(t, withoutCost.UnitCost.IsZero())
}
