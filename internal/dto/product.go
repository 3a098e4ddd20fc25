package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/shopspring/decimal"
)

// Product is the JSON view of a catalog product.
type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	SKU                string          `json:"sku"`
	AliasSKUs          []string        `json:"aliasSkus"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	AverageFreightCost decimal.Decimal `json:"averageFreightCost"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ProductRequest carries the writable product fields. On update, omitted
// fields keep their stored value.
type ProductRequest struct {
	Name               *string          `json:"name"`
	SKU                *string          `json:"sku"`
	AliasSKUs          *[]string        `json:"aliasSkus"`
	UnitCost           *decimal.Decimal `json:"unitCost"`
	AverageFreightCost *decimal.Decimal `json:"averageFreightCost"`
}

// DecodeProductRequest decodes a product body, rejecting fields outside the
// writable set.
func DecodeProductRequest(body []byte) (*ProductRequest, error) {
	var req ProductRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.BadRequest, err)
	}
	return &req, nil
}

// ToInsert builds a ProductInsert on top of base (nil for a new product).
func (pr *ProductRequest) ToInsert(base *entity.Product) *entity.ProductInsert {
	pi := &entity.ProductInsert{}
	if base != nil {
		pi.Name = base.Name
		pi.SKU = base.SKU
		pi.AliasSKUs = append([]string(nil), base.AliasSKUs...)
		pi.UnitCost = base.UnitCost
		pi.AverageFreightCost = base.AverageFreightCost
	}
	if pr.Name != nil {
		pi.Name = *pr.Name
	}
	if pr.SKU != nil {
		pi.SKU = *pr.SKU
	}
	if pr.AliasSKUs != nil {
		pi.AliasSKUs = append([]string(nil), (*pr.AliasSKUs)...)
	}
	if pr.UnitCost != nil {
		pi.UnitCost = *pr.UnitCost
	}
	if pr.AverageFreightCost != nil {
		pi.AverageFreightCost = *pr.AverageFreightCost
	}
	return pi
}

func ConvertEntityProductToDto(p *entity.Product) Product {
	aliases := p.AliasSKUs
	if aliases == nil {
		aliases = []string{}
	}
	return Product{
		ID:                 p.ID,
		Name:               p.Name,
		SKU:                p.SKU,
		AliasSKUs:          aliases,
		UnitCost:           p.UnitCost,
		AverageFreightCost: p.AverageFreightCost,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func ConvertEntityProductsToDto(products []entity.Product) []Product {
	res := make([]Product, 0, len(products))
	for i := range products {
		res = append(res, ConvertEntityProductToDto(&products[i]))
	}
	return res
}
