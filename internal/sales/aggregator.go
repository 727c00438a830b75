package sales

import (
	"math"
	"time"

	"github.com/lagerkoll/backend-go/internal/centra"
	"github.com/lagerkoll/backend-go/internal/inventory"
)

const shippedStatus = "SHIPPED"

// Item is one flattened order line: a (product, size, quantity) tuple.
type Item struct {
	Key      inventory.Key
	Quantity int
}

// Line is the per-key sales summary over the requested window.
type Line struct {
	QuantitySold  int     `json:"quantity_sold"`
	AvgDailySales float64 `json:"avg_daily_sales"`
}

// Summary maps each observed (product, size) key to its sales line.
type Summary map[inventory.Key]Line

// Flatten turns fetched orders into sale items. Lines without a resolvable
// product variant are dropped; a line without a quantity counts as one unit.
// With onlyShipped, orders in any other status are skipped even if the query
// already filtered server-side.
func Flatten(orders []centra.Order, onlyShipped bool) []Item {
	var items []Item
	for _, order := range orders {
		if onlyShipped && order.Status != shippedStatus {
			continue
		}
		for _, line := range order.Lines {
			if line.ProductVariant == nil || line.ProductVariant.Product == nil {
				continue
			}
			quantity := 1
			if line.Quantity != nil {
				quantity = *line.Quantity
			}
			items = append(items, Item{
				Key:      inventory.NewKey(line.ProductVariant.Product.ID.String(), line.Size),
				Quantity: quantity,
			})
		}
	}
	return items
}

// DaysInRange returns the inclusive day count of [from, to]. Both bounds are
// calendar dates; time-of-day is ignored.
func DaysInRange(from, to time.Time) int {
	from = truncateToDate(from)
	to = truncateToDate(to)
	return int(to.Sub(from).Hours()/24) + 1
}

// Summarize groups items by key, sums quantities and derives the average
// daily sales over the window, rounded to one decimal.
func Summarize(items []Item, from, to time.Time) Summary {
	summary := make(Summary)
	if len(items) == 0 {
		return summary
	}

	days := DaysInRange(from, to)
	totals := make(map[inventory.Key]int)
	for _, item := range items {
		totals[item.Key] += item.Quantity
	}

	for key, total := range totals {
		summary[key] = Line{
			QuantitySold:  total,
			AvgDailySales: roundTo1(float64(total) / float64(days)),
		}
	}
	return summary
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
