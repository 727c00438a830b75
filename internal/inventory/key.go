package inventory

import "strings"

// Sentinels used when a dimension is absent in the source data.
const (
	NoSize     = "N/A"
	NoSupplier = "No Supplier"
)

// Key is the composite identity of an inventory record. Exactly one record
// exists per key; both reconcilers accumulate into the same key space.
type Key struct {
	ProductID string
	Size      string
}

// NewKey builds a key from a raw product identifier and size descriptor,
// normalizing the identifier and substituting the N/A sentinel for a missing
// size.
func NewKey(productID, size string) Key {
	if size == "" {
		size = NoSize
	}
	return Key{ProductID: NormalizeProductID(productID), Size: size}
}

// NormalizeProductID trims and uppercases a product identifier so the same
// product keys identically regardless of which query reported it.
func NormalizeProductID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
