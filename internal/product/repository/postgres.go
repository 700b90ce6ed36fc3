package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

var _ product.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (id, name, sku, category, price, cost, supplier, created_at, updated_at)
        VALUES (:id, :name, :sku, :category, :price, :cost, :supplier, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return apperror.FromDB("products.insert", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.FromDB("products.get", err)
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	var products []model.Product

	query := `SELECT * FROM products ORDER BY created_at ASC, name ASC`
	args := []any{}
	if f != nil && f.IDs != nil {
		if len(f.IDs) == 0 {
			return []model.Product{}, nil
		}
		q, a, err := sqlx.In(`SELECT * FROM products WHERE id IN (?) ORDER BY created_at ASC, name ASC`, f.IDs)
		if err != nil {
			return nil, err
		}
		query, args = r.DB.Rebind(q), a
	}

	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, apperror.FromDB("products.list", err)
	}
	return products, nil
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.GetContext(ctx, &n, `SELECT count(*) FROM products`); err != nil {
		return 0, apperror.FromDB("products.count", err)
	}
	return n, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return apperror.FromDB("products.delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.FromDB("products.delete", err)
	}
	if n == 0 {
		return apperror.NotFound("products.delete")
	}
	return nil
}
