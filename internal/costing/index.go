// Package costing joins order lines to catalog cost data.
package costing

import (
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
)

// Cost is the per-unit cost pair a SKU resolves to.
type Cost struct {
	UnitCost           decimal.Decimal
	AverageFreightCost decimal.Decimal
}

// Conflict records a SKU claimed by more than one product. Winner is the
// product whose cost the index keeps.
type Conflict struct {
	SKU      string
	Previous string
	Winner   string
}

// Index maps canonical and alias SKUs to their cost pair. It is immutable
// once built.
type Index struct {
	bySKU     map[string]Cost
	owner     map[string]string
	conflicts []Conflict
}

// BuildIndex builds a cost index from the full product set. Products are
// processed in the given order and a later product overwrites the entry of
// an earlier one claiming the same SKU.
func BuildIndex(products []entity.Product) *Index {
	idx := &Index{
		bySKU: make(map[string]Cost, len(products)),
		owner: make(map[string]string, len(products)),
	}
	for i := range products {
		p := &products[i]
		c := Cost{
			UnitCost:           p.UnitCost,
			AverageFreightCost: p.AverageFreightCost,
		}
		idx.put(p.SKU, p.ID, c)
		for _, alias := range p.AliasSKUs {
			idx.put(alias, p.ID, c)
		}
	}
	return idx
}

func (idx *Index) put(sku, productID string, c Cost) {
	if sku == "" {
		return
	}
	if prev, ok := idx.owner[sku]; ok && prev != productID {
		idx.conflicts = append(idx.conflicts, Conflict{SKU: sku, Previous: prev, Winner: productID})
	}
	idx.bySKU[sku] = c
	idx.owner[sku] = productID
}

// Lookup returns the cost pair of sku. Unknown and empty SKUs resolve to a
// zero cost with ok=false.
func (idx *Index) Lookup(sku string) (Cost, bool) {
	if idx == nil || sku == "" {
		return Cost{}, false
	}
	c, ok := idx.bySKU[sku]
	return c, ok
}

// Len returns the number of SKU keys in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.bySKU)
}

// Conflicts returns SKUs claimed by more than one product, in build order.
func (idx *Index) Conflicts() []Conflict {
	if idx == nil {
		return nil
	}
	return idx.conflicts
}
