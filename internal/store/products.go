package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/sales-panel/internal/dependency"
	"github.com/jekabolt/sales-panel/internal/entity"
	gerr "github.com/jekabolt/sales-panel/internal/errors"
)

type productStore struct {
	*MYSQLStore
}

// Products returns an object implementing product interface
func (ms *MYSQLStore) Products() dependency.Products {
	return &productStore{
		MYSQLStore: ms,
	}
}

const selectProduct = `
	SELECT id, name, sku, unit_cost, average_freight_cost, created_at, updated_at
	FROM product`

type aliasRow struct {
	ProductID string `db:"product_id"`
	Position  int    `db:"position"`
	SKU       string `db:"sku"`
}

func insertAliases(ctx context.Context, rep dependency.Repository, productID string, aliases []string) error {
	rows := make([][]any, 0, len(aliases))
	for i, a := range aliases {
		rows = append(rows, []any{productID, i, a})
	}
	if err := BulkInsert(ctx, rep.DB(), "product_alias_sku", []string{"product_id", "position", "sku"}, rows); err != nil {
		return fmt.Errorf("can't insert alias skus: %w", err)
	}
	return nil
}

func deleteAliases(ctx context.Context, rep dependency.Repository, productID string) error {
	query := `DELETE FROM product_alias_sku WHERE product_id = :productId`
	_, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
		"productId": productID,
	})
	if err != nil {
		return fmt.Errorf("can't delete alias skus: %w", err)
	}
	return nil
}

// attachAliases fills AliasSKUs of every product. With no ids it loads the aliases of the whole catalog.
func attachAliases(ctx context.Context, rep dependency.Repository, products []entity.Product, ids ...string) error {
	query := `SELECT product_id, position, sku FROM product_alias_sku`
	params := map[string]any{}
	if len(ids) > 0 {
		query += ` WHERE product_id IN (:productIds)`
		params["productIds"] = ids
	}
	query += ` ORDER BY product_id, position`

	rows, err := QueryListNamed[aliasRow](ctx, rep.DB(), query, params)
	if err != nil {
		return fmt.Errorf("can't get alias skus: %w", err)
	}
	byProduct := make(map[string][]string)
	for _, r := range rows {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r.SKU)
	}
	for i := range products {
		products[i].AliasSKUs = byProduct[products[i].ID]
		if products[i].AliasSKUs == nil {
			products[i].AliasSKUs = []string{}
		}
	}
	return nil
}

func getProductById(ctx context.Context, rep dependency.Repository, id string) (*entity.Product, error) {
	query := selectProduct + ` WHERE id = :id`
	prd, err := QueryNamedOne[entity.Product](ctx, rep.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", gerr.ProductNotFound, id)
		}
		return nil, fmt.Errorf("can't get product %s: %w", id, err)
	}
	products := []entity.Product{prd}
	if err := attachAliases(ctx, rep, products, id); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// AddProduct stores a new product under a random UUID.
func (ms *MYSQLStore) AddProduct(ctx context.Context, prd *entity.ProductInsert) (*entity.Product, error) {
	var res *entity.Product
	err := ms.txOrCurrent(ctx, func(ctx context.Context, rep dependency.Repository) error {
		id := uuid.New().String()
		now := rep.Now().UTC()
		query := `
		INSERT INTO product (id, name, sku, unit_cost, average_freight_cost, created_at, updated_at)
		VALUES (:id, :name, :sku, :unitCost, :averageFreightCost, :createdAt, :updatedAt)`
		_, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
			"id":                 id,
			"name":               prd.Name,
			"sku":                prd.SKU,
			"unitCost":           prd.UnitCost,
			"averageFreightCost": prd.AverageFreightCost,
			"createdAt":          now,
			"updatedAt":          now,
		})
		if err != nil {
			return fmt.Errorf("can't insert product: %w", err)
		}
		if err := insertAliases(ctx, rep, id, prd.AliasSKUs); err != nil {
			return err
		}
		res, err = getProductById(ctx, rep, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateProduct overwrites the writable fields and the alias list of a product.
func (ms *MYSQLStore) UpdateProduct(ctx context.Context, id string, prd *entity.ProductInsert) (*entity.Product, error) {
	var res *entity.Product
	err := ms.txOrCurrent(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if _, err := getProductById(ctx, rep, id); err != nil {
			return err
		}
		query := `
		UPDATE product
		SET name = :name, sku = :sku, unit_cost = :unitCost,
			average_freight_cost = :averageFreightCost, updated_at = :updatedAt
		WHERE id = :id`
		_, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
			"id":                 id,
			"name":               prd.Name,
			"sku":                prd.SKU,
			"unitCost":           prd.UnitCost,
			"averageFreightCost": prd.AverageFreightCost,
			"updatedAt":          rep.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("can't update product %s: %w", id, err)
		}
		if err := deleteAliases(ctx, rep, id); err != nil {
			return err
		}
		if err := insertAliases(ctx, rep, id, prd.AliasSKUs); err != nil {
			return err
		}
		res, err = getProductById(ctx, rep, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (ms *MYSQLStore) GetProductById(ctx context.Context, id string) (*entity.Product, error) {
	return getProductById(ctx, ms, id)
}

// ListProducts returns products in creation order, which is the order the
// cost index resolves SKU collisions in.
func (ms *MYSQLStore) ListProducts(ctx context.Context) ([]entity.Product, error) {
	query := selectProduct + ` ORDER BY created_at, id`
	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}
	if err := attachAliases(ctx, ms, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (ms *MYSQLStore) DeleteProductById(ctx context.Context, id string) error {
	query := `DELETE FROM product WHERE id = :id`
	n, err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete product %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", gerr.ProductNotFound, id)
	}
	return nil
}
