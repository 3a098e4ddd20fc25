package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/shopspring/decimal"
)

// FreightOverrideRequest is the body of PUT /api/orders/{id}/freight.
// The raw value distinguishes an omitted field from an explicit null.
type FreightOverrideRequest struct {
	ManualFreightOverride json.RawMessage `json:"manualFreightOverride"`
}

// FreightUpdate is a validated freight override change: either Remove or set Value.
type FreightUpdate struct {
	Remove bool
	Value  decimal.Decimal
}

// ParseFreightOverride validates the request body. A number >= 0 with at most
// two decimal places and below 10^10 sets the override, null removes it,
// anything else is rejected.
func ParseFreightOverride(body []byte) (*FreightUpdate, error) {
	var req FreightOverrideRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.InvalidFreight, err)
	}
	raw := bytes.TrimSpace(req.ManualFreightOverride)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: field is missing", gerr.InvalidFreight)
	}
	if bytes.Equal(raw, []byte("null")) {
		return &FreightUpdate{Remove: true}, nil
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return nil, fmt.Errorf("%w: got %s", gerr.InvalidFreight, raw)
	}
	v, err := decimal.NewFromString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.InvalidFreight, err)
	}
	if err := entity.ValidateAmount(v); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.InvalidFreight, err)
	}
	return &FreightUpdate{Value: v}, nil
}
