package gerr

import (
	"errors"
	"net/http"
)

var (
	OrderNotFound   = errors.New("order not found")
	ProductNotFound = errors.New("product not found")

	// BadRequest marks invalid input rejected before persistence.
	BadRequest             = errors.New("bad request")
	InvalidFreight         = errors.New("manualFreightOverride must be a non-negative number or null")
	InvalidDateRange       = errors.New("invalid date range")
	InvalidMarketplace     = errors.New("invalid marketplace payload")
	MarketplaceUnavailable = errors.New("marketplace unavailable")
	TooManyRequests        = errors.New("too many requests")
)

// HTTPStatus maps an error chain to the status code returned by the API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, OrderNotFound), errors.Is(err, ProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, BadRequest),
		errors.Is(err, InvalidFreight),
		errors.Is(err, InvalidDateRange),
		errors.Is(err, InvalidMarketplace):
		return http.StatusBadRequest
	case errors.Is(err, TooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, MarketplaceUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
