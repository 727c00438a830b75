package inventory

import "github.com/shopspring/decimal"

// Record is one (product, size) row of the aggregated inventory table.
type Record struct {
	ProductID     string          `json:"product_id"`
	Size          string          `json:"size"`
	ProductName   string          `json:"product_name"`
	ProductNumber string          `json:"product_number"`
	Status        string          `json:"status"`
	IsBundle      bool            `json:"is_bundle"`
	Supplier      string          `json:"supplier"`
	StockBalance  int             `json:"stock_balance"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// Table is the keyed inventory map built up by the reconcilers. It keeps
// first-observation order so downstream output is deterministic.
type Table struct {
	records map[Key]*Record
	order   []Key
}

func NewTable() *Table {
	return &Table{records: make(map[Key]*Record)}
}

// Seed carries the descriptive attributes applied when a key is first
// observed. Later observations of the same key never overwrite them.
type Seed struct {
	ProductName   string
	ProductNumber string
	Status        string
	IsBundle      bool
	Supplier      string
}

// Accumulate adds quantity to the record under key, creating it from seed on
// first observation. Stock balance is the running sum of every contribution
// for the key, whichever reconciler observed it first.
func (t *Table) Accumulate(key Key, seed Seed, quantity int) {
	rec, ok := t.records[key]
	if !ok {
		rec = &Record{
			ProductID:     key.ProductID,
			Size:          key.Size,
			ProductName:   seed.ProductName,
			ProductNumber: seed.ProductNumber,
			Status:        seed.Status,
			IsBundle:      seed.IsBundle,
			Supplier:      seed.Supplier,
			UnitCost:      decimal.Zero,
		}
		t.records[key] = rec
		t.order = append(t.order, key)
	}
	rec.StockBalance += quantity
}

// Len returns the number of distinct (product, size) keys.
func (t *Table) Len() int { return len(t.records) }

// Get returns a copy of the record under key.
func (t *Table) Get(key Key) (Record, bool) {
	rec, ok := t.records[key]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// ApplyCosts attaches a unit cost to every record by product identifier.
// Products without a known cost keep the zero default.
func (t *Table) ApplyCosts(costs map[string]decimal.Decimal) {
	for _, rec := range t.records {
		if cost, ok := costs[rec.ProductID]; ok {
			rec.UnitCost = cost
		}
	}
}

// Records returns the table rows in first-observation order.
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, *t.records[key])
	}
	return out
}
