package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/sales-panel/internal/dto"
	"github.com/jekabolt/sales-panel/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Orders interface {
		// UpsertOrder inserts the order or replaces its marketplace fields, costs and items.
		// A stored manual freight override is never touched.
		UpsertOrder(ctx context.Context, o *entity.Order) error
		// GetOrderById returns an order with its items.
		GetOrderById(ctx context.Context, id string) (*entity.Order, error)
		// ListOrders returns all orders with items, oldest first.
		ListOrders(ctx context.Context) ([]entity.Order, error)
		// ListOrdersCreatedBetween returns orders with from <= created_at < to, oldest first.
		ListOrdersCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.Order, error)
		SetFreightOverride(ctx context.Context, id string, value decimal.Decimal) error
		RemoveFreightOverride(ctx context.Context, id string) error
		// UpdateOrderCosts rewrites the persisted enrichment result of an order.
		UpdateOrderCosts(ctx context.Context, id string, productCost, operationalCost decimal.Decimal) error
	}

	Products interface {
		ContextStore
		// AddProduct creates a product with a generated id.
		AddProduct(ctx context.Context, prd *entity.ProductInsert) (*entity.Product, error)
		// UpdateProduct replaces every writable field of a product, aliases included.
		UpdateProduct(ctx context.Context, id string, prd *entity.ProductInsert) (*entity.Product, error)
		GetProductById(ctx context.Context, id string) (*entity.Product, error)
		// ListProducts returns the whole catalog ordered by creation time and id.
		ListProducts(ctx context.Context) ([]entity.Product, error)
		DeleteProductById(ctx context.Context, id string) error
	}

	Repository interface {
		Orders() Orders
		Products() Products
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Marketplace reads resources from the marketplace API.
	Marketplace interface {
		// GetOrder fetches the order detail behind a notification resource such as /orders/123.
		GetOrder(ctx context.Context, resource string) (*dto.MarketplaceOrder, error)
	}
)
