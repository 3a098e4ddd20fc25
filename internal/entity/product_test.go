package entity

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductInsertNormalize(t *testing.T) {
	pi := &ProductInsert{
		Name:      "  caneca de porcelana ",
		SKU:       " A1 ",
		AliasSKUs: []string{" A1-OLD", "B2 "},
	}
	pi.Normalize()
	assert.Equal(t, "Caneca De Porcelana", pi.Name)
	assert.Equal(t, "A1", pi.SKU)
	assert.Equal(t, []string{"A1-OLD", "B2"}, pi.AliasSKUs)
}

func TestProductInsertValidate(t *testing.T) {
	valid := func() *ProductInsert {
		return &ProductInsert{
			Name:               "Cup",
			SKU:                "A1",
			AliasSKUs:          []string{"A1-OLD"},
			UnitCost:           decimal.NewFromInt(10),
			AverageFreightCost: decimal.Zero,
		}
	}
	assert.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(pi *ProductInsert)
	}{
		{"empty name", func(pi *ProductInsert) { pi.Name = "" }},
		{"empty sku", func(pi *ProductInsert) { pi.SKU = "" }},
		{"long sku", func(pi *ProductInsert) { pi.SKU = strings.Repeat("x", 256) }},
		{"negative unit cost", func(pi *ProductInsert) { pi.UnitCost = decimal.NewFromInt(-1) }},
		{"negative freight", func(pi *ProductInsert) { pi.AverageFreightCost = decimal.NewFromInt(-1) }},
		{"unit cost below a cent", func(pi *ProductInsert) { pi.UnitCost = decimal.RequireFromString("10.005") }},
		{"unit cost too large", func(pi *ProductInsert) { pi.UnitCost = decimal.New(1, 10) }},
		{"freight too large", func(pi *ProductInsert) { pi.AverageFreightCost = decimal.RequireFromString("1e20") }},
		{"empty alias", func(pi *ProductInsert) { pi.AliasSKUs = []string{""} }},
		{"duplicate alias", func(pi *ProductInsert) { pi.AliasSKUs = []string{"X", "X"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi := valid()
			tt.mutate(pi)
			assert.Error(t, pi.Validate())
		})
	}
}

func TestOrderProfit(t *testing.T) {
	o := &Order{
		TotalAmount:     decimal.NewFromInt(100),
		ProductCost:     decimal.NewFromInt(15),
		OperationalCost: decimal.NewFromInt(7),
	}
	assert.Equal(t, "22", o.TotalCost().String())
	assert.Equal(t, "78", o.Profit().String())
}

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"0", "12.5", "12.50", "9999999999.99", "1.2000"} {
		assert.NoError(t, ValidateAmount(decimal.RequireFromString(ok)), ok)
	}
	for _, bad := range []string{"-0.01", "12.345", "10000000000", "1e20"} {
		assert.Error(t, ValidateAmount(decimal.RequireFromString(bad)), bad)
	}
}
