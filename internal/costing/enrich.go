package costing

import (
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/shopspring/decimal"
)

// Costs is the enrichment result of one order.
type Costs struct {
	ProductCost     decimal.Decimal
	OperationalCost decimal.Decimal

	SaleFees          decimal.Decimal
	Shipping          decimal.Decimal
	FreightOverridden bool
}

// Enrich computes product and operational costs of o against idx.
//
// productCost is the sum of unit cost times quantity. operationalCost is the
// sum of marketplace sale fees plus shipping, where shipping is the manual
// freight override when set and the average freight cost times quantity
// otherwise. Neither o nor idx is modified.
func Enrich(o *entity.Order, idx *Index) Costs {
	var (
		productCost = decimal.Zero
		saleFees    = decimal.Zero
		freight     = decimal.Zero
	)
	for _, it := range o.Items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		c, _ := idx.Lookup(it.SKU)
		productCost = productCost.Add(c.UnitCost.Mul(qty))
		freight = freight.Add(c.AverageFreightCost.Mul(qty))
		saleFees = saleFees.Add(it.SaleFee)
	}

	res := Costs{
		ProductCost: productCost,
		SaleFees:    saleFees,
		Shipping:    freight,
	}
	if o.ManualFreightOverride.Valid {
		res.Shipping = o.ManualFreightOverride.Decimal
		res.FreightOverridden = true
	}
	res.OperationalCost = res.SaleFees.Add(res.Shipping)
	return res
}

// Apply stores c on o.
func (c Costs) Apply(o *entity.Order) {
	o.ProductCost = c.ProductCost
	o.OperationalCost = c.OperationalCost
}

// Changed reports whether the persisted costs of o differ from c.
func (c Costs) Changed(o *entity.Order) bool {
	return !o.ProductCost.Equal(c.ProductCost) || !o.OperationalCost.Equal(c.OperationalCost)
}

// EnrichAll returns copies of orders with costs recomputed against idx.
func EnrichAll(orders []entity.Order, idx *Index) []entity.Order {
	res := make([]entity.Order, len(orders))
	for i := range orders {
		res[i] = orders[i]
		Enrich(&orders[i], idx).Apply(&res[i])
	}
	return res
}
