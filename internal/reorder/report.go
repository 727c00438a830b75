package reorder

// Columns is the fixed, ordered field set of the report handed to sinks.
// Order and presence are a stable contract; exporters rely on it.
var Columns = []string{
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

const activeStatus = "ACTIVE"

// Filter narrows a finished report for display or export. Filtering is
// strictly downstream of the merge; records are never dropped during
// aggregation.
type Filter struct {
	ActiveOnly      bool
	ExcludeBundles  bool
	ExcludeSupplier string
}

// Apply returns the rows passing the filter, preserving order.
func (f Filter) Apply(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if f.ActiveOnly && row.Status != activeStatus {
			continue
		}
		if f.ExcludeBundles && row.IsBundle {
			continue
		}
		if f.ExcludeSupplier != "" && row.Supplier == f.ExcludeSupplier {
			continue
		}
		out = append(out, row)
	}
	return out
}
