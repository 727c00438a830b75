package centra

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID decodes from either a JSON string or a JSON number. The catalog API is
// not consistent about which one it emits for identifiers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Int parses the identifier as a base-10 integer.
func (id ID) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(id)))
}

func (id ID) String() string { return string(id) }

// Supplier is one entry of the unpaged suppliers listing.
type Supplier struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Product carries the product attributes shared by the variant and
// warehouse stock listings.
type Product struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	ProductNumber string `json:"productNumber"`
	IsBundle      bool   `json:"isBundle"`
}

// VariantStock is a per-size stock contribution nested under a supplied
// product variant.
type VariantStock struct {
	Quantity    int `json:"quantity"`
	ProductSize struct {
		Description string `json:"description"`
	} `json:"productSize"`
}

// VariantSize groups the stock entries of one size dimension.
type VariantSize struct {
	Stock []VariantStock `json:"stock"`
}

// SuppliedVariant is one page item of a supplier's suppliedProductVariants.
type SuppliedVariant struct {
	ProductVariant struct {
		Product      Product       `json:"product"`
		ProductSizes []VariantSize `json:"productSizes"`
	} `json:"productVariant"`
}

// StockEntry is one warehouse stock line. Size may be null for products
// without a size dimension.
type StockEntry struct {
	ProductSize struct {
		Quantity int `json:"quantity"`
		Size     *struct {
			Name string `json:"name"`
		} `json:"size"`
		ProductVariant struct {
			Product Product `json:"product"`
		} `json:"productVariant"`
	} `json:"productSize"`
}

// SizeName returns the size descriptor or "N/A" when the entry has none.
func (e StockEntry) SizeName() string {
	if e.ProductSize.Size == nil || e.ProductSize.Size.Name == "" {
		return "N/A"
	}
	return e.ProductSize.Size.Name
}

// ProductCost is one page item of the product cost listing.
type ProductCost struct {
	ID            ID     `json:"id"`
	ProductNumber string `json:"productNumber"`
	Variants      []struct {
		UnitCost *struct {
			Value decimal.Decimal `json:"value"`
		} `json:"unitCost"`
	} `json:"variants"`
}

// FirstVariantCost implements the first-variant-only cost policy: variants of
// a product are assumed cost-homogeneous, so only the first listed variant is
// consulted. Missing or null costs default to zero.
func (p ProductCost) FirstVariantCost() decimal.Decimal {
	if len(p.Variants) == 0 || p.Variants[0].UnitCost == nil {
		return decimal.Zero
	}
	return p.Variants[0].UnitCost.Value
}

// Order is one order within the sales date window.
type Order struct {
	OrderDate string      `json:"orderDate"`
	Status    string      `json:"status"`
	Lines     []OrderLine `json:"lines"`
}

// OrderLine is a single sold line. ProductVariant or its product may be
// missing for discontinued items; such lines are skipped by the aggregator.
type OrderLine struct {
	ProductVariant *struct {
		Product *struct {
			ID   ID     `json:"id"`
			Name string `json:"name"`
		} `json:"product"`
	} `json:"productVariant"`
	Size     string `json:"size"`
	Quantity *int   `json:"quantity"`
}
