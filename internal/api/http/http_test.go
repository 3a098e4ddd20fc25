package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/sales-panel/internal/apisrv/admin"
	"github.com/jekabolt/sales-panel/internal/auth/jwt"
	"github.com/jekabolt/sales-panel/internal/dependency/mocks"
	"github.com/jekabolt/sales-panel/internal/dto"
	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
	"github.com/jekabolt/sales-panel/internal/ingest"
	"github.com/jekabolt/sales-panel/internal/metrics"
	"github.com/jekabolt/sales-panel/internal/ratelimit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fixture struct {
	repo        *mocks.Repository
	orders      *mocks.Orders
	products    *mocks.Products
	marketplace *mocks.Marketplace
	handler     http.Handler
	token       string
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:        mocks.NewRepository(t),
		orders:      mocks.NewOrders(t),
		products:    mocks.NewProducts(t),
		marketplace: mocks.NewMarketplace(t),
	}
	f.repo.EXPECT().Orders().Return(f.orders).Maybe()
	f.repo.EXPECT().Products().Return(f.products).Maybe()

	adminServer, err := admin.New(&admin.Config{TimeZone: "UTC"}, f.repo, nil)
	require.NoError(t, err)

	s := New(&Config{
		JWTSecret:      testSecret,
		WebhookTimeout: time.Second,
		RateLimit:      ratelimit.Config{Window: time.Minute, ReadMax: 100, WriteMax: 100, WebhookMax: 100},
	}, adminServer, ingest.New(f.repo, f.marketplace, nil), f.repo, metrics.NewRegistry())
	t.Cleanup(s.limiter.Close)
	f.handler = s.Handler()

	f.token, err = jwt.NewTokenWithSubject(jwt.New(testSecret), time.Hour, "ana")
	require.NoError(t, err)
	return f
}

func (f *fixture) do(method, path, body string, auth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func sameTime(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "", false).Code)

	f.repo.EXPECT().Ping(mock.Anything).Return(errors.New("conn refused")).Once()
	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodGet, "/healthz", "", false).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/metrics", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/orders", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListOrders(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().ListOrders(mock.Anything).Return([]entity.Order{{
		ID:          "2000001",
		CreatedAt:   time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString("100"),
		Items: []entity.OrderItem{
			{Title: "Cup", SKU: "A1", Quantity: 2, UnitPrice: decimal.RequireFromString("50")},
		},
	}}, nil)
	f.products.EXPECT().ListProducts(mock.Anything).Return([]entity.Product{
		{ID: "p1", Name: "Cup", SKU: "A1", UnitCost: decimal.RequireFromString("10"), AverageFreightCost: decimal.RequireFromString("4")},
	}, nil)

	rec := f.do(http.MethodGet, "/api/orders", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []dto.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.True(t, orders[0].ProductCost.Equal(decimal.RequireFromString("20")))
	assert.True(t, orders[0].OperationalCost.Equal(decimal.RequireFromString("8")))
}

func TestStoreFailureHidesDetails(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().ListOrders(mock.Anything).Return(nil, errors.New("dial tcp: secret host"))
	f.products.EXPECT().ListProducts(mock.Anything).Return(nil, nil).Maybe()

	rec := f.do(http.MethodGet, "/api/orders", "", true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorBody(t, rec))
}

func TestGetProductNotFound(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().GetProductById(mock.Anything, "nope").
		Return(nil, fmt.Errorf("%w: nope", gerr.ProductNotFound))

	rec := f.do(http.MethodGet, "/api/products/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, errorBody(t, rec), "product not found")
}

func TestUpdateFreightRejectsNegative(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPut, "/api/orders/1/freight", `{"manualFreightOverride": -1}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec), "manualFreightOverride")
}

func TestAddProductRejectsUnknownField(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/products", `{"name":"Cup","sku":"A1","unitCost":1,"averageFreightCost":1,"color":"red"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(t)
	f.products.EXPECT().DeleteProductById(mock.Anything, "p1").Return(nil)
	f.orders.EXPECT().ListOrders(mock.Anything).Return(nil, nil)
	f.products.EXPECT().ListProducts(mock.Anything).Return(nil, nil)

	rec := f.do(http.MethodDelete, "/api/products/p1", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSalesSeries(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().ListOrdersCreatedBetween(mock.Anything,
		sameTime(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
		sameTime(time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)),
	).Return([]entity.Order{
		{ID: "1", CreatedAt: time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC), TotalAmount: decimal.RequireFromString("30")},
	}, nil)

	rec := f.do(http.MethodGet, "/api/reports/daily?startDate=2025-09-01&endDate=2025-09-02", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var series dto.SalesSeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &series))
	assert.Equal(t, []string{"01/09", "02/09"}, series.Labels)
	assert.Equal(t, []int{0, 1}, series.Datasets.Count)
}

func TestSalesSeriesBadRange(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/reports/daily?startDate=2025-09-05&endDate=2025-09-01", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/reports/daily?startDate=2025-09-01&endDate=2025-09-05&granularity=year", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookAlwaysAcknowledges(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/webhooks/marketplace", `not json`, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/webhooks/marketplace", `{"topic":"questions","resource":"/questions/1"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.marketplace.EXPECT().GetOrder(mock.Anything, "/orders/123").
		RunAndReturn(func(ctx context.Context, _ string) (*dto.MarketplaceOrder, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil, gerr.MarketplaceUnavailable
		})
	rec = f.do(http.MethodPost, "/webhooks/marketplace", `{"topic":"orders_v2","resource":"/orders/123"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://panel.example.com"}
	assert.True(t, isOriginAllowed("https://panel.example.com", allowed))
	assert.True(t, isOriginAllowed("https://localhost:5173", allowed))
	assert.False(t, isOriginAllowed("https://evil.example.com", allowed))
}
