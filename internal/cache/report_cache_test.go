package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagerkoll/backend-go/internal/config"
)

func TestReportKeyHashIsStable(t *testing.T) {
	key := ReportKey{From: "2024-01-01", To: "2024-01-31", LeadTimeDays: 7, SafetyStock: 10, OnlyShipped: true}

	assert.Equal(t, reportKeyHash(key), reportKeyHash(key))
	assert.Equal(t, reportKeyHash(key), reportKeyHash(ReportKey{
		From: " 2024-01-01 ", To: "2024-01-31", LeadTimeDays: 7, SafetyStock: 10, OnlyShipped: true,
	}), "whitespace in dates does not change the key")
}

func TestReportKeyHashDistinguishesParameters(t *testing.T) {
	base := ReportKey{From: "2024-01-01", To: "2024-01-31", LeadTimeDays: 7, SafetyStock: 10, OnlyShipped: true}

	variants := []ReportKey{
		{From: "2024-01-02", To: base.To, LeadTimeDays: 7, SafetyStock: 10, OnlyShipped: true},
		{From: base.From, To: base.To, LeadTimeDays: 14, SafetyStock: 10, OnlyShipped: true},
		{From: base.From, To: base.To, LeadTimeDays: 7, SafetyStock: 0, OnlyShipped: true},
		{From: base.From, To: base.To, LeadTimeDays: 7, SafetyStock: 10, OnlyShipped: false},
	}
	for _, v := range variants {
		assert.NotEqual(t, reportKeyHash(base), reportKeyHash(v))
	}
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c, err := NewReportCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	key := ReportKey{From: "2024-01-01", To: "2024-01-31"}
	require.NoError(t, c.Set(context.Background(), key, nil))

	rows, ok, err := c.Get(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rows)
}
