package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Product is a catalog entry used for cost lookup only.
type Product struct {
	ID                 string          `db:"id"`
	Name               string          `db:"name"`
	SKU                string          `db:"sku"`
	AliasSKUs          []string        `db:"-"`
	UnitCost           decimal.Decimal `db:"unit_cost"`
	AverageFreightCost decimal.Decimal `db:"average_freight_cost"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// ProductInsert holds the enumerated set of writable product fields.
type ProductInsert struct {
	Name               string          `valid:"required,runelength(1|255)"`
	SKU                string          `valid:"required,runelength(1|255)"`
	AliasSKUs          []string        `valid:"-"`
	UnitCost           decimal.Decimal `valid:"-"`
	AverageFreightCost decimal.Decimal `valid:"-"`
}

// Normalize trims whitespace and title-cases the product name.
func (pi *ProductInsert) Normalize() {
	pi.Name = cases.Title(language.Und, cases.NoLower).String(strings.TrimSpace(pi.Name))
	pi.SKU = strings.TrimSpace(pi.SKU)
	for i, a := range pi.AliasSKUs {
		pi.AliasSKUs[i] = strings.TrimSpace(a)
	}
}

// maxAmount is the exclusive upper bound of a DECIMAL(12,2) column.
var maxAmount = decimal.New(1, 10)

// ValidateAmount reports whether d can be stored in a DECIMAL(12,2) money
// column without rounding: non-negative, at most two decimal places and
// below 10^10.
func ValidateAmount(d decimal.Decimal) error {
	switch {
	case d.IsNegative():
		return fmt.Errorf("must not be negative")
	case !d.Equal(d.Truncate(2)):
		return fmt.Errorf("%s has more than two decimal places", d.String())
	case d.GreaterThanOrEqual(maxAmount):
		return fmt.Errorf("%s exceeds %s", d.String(), maxAmount.String())
	}
	return nil
}

// Validate validates the ProductInsert struct
func (pi *ProductInsert) Validate() error {
	if _, err := govalidator.ValidateStruct(pi); err != nil {
		return err
	}
	if err := ValidateAmount(pi.UnitCost); err != nil {
		return fmt.Errorf("unitCost: %w", err)
	}
	if err := ValidateAmount(pi.AverageFreightCost); err != nil {
		return fmt.Errorf("averageFreightCost: %w", err)
	}
	seen := make(map[string]struct{}, len(pi.AliasSKUs))
	for _, a := range pi.AliasSKUs {
		if a == "" {
			return fmt.Errorf("aliasSkus: empty sku")
		}
		if !govalidator.IsByteLength(a, 1, 255) {
			return fmt.Errorf("aliasSkus: %q is too long", a)
		}
		if _, ok := seen[a]; ok {
			return fmt.Errorf("aliasSkus: duplicate sku %q", a)
		}
		seen[a] = struct{}{}
	}
	return nil
}
