package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

var _ location.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, l *model.Location) error {
	query := `
        INSERT INTO locations (id, name, type, address, capacity, manager, contact, created_at, updated_at)
        VALUES (:id, :name, :type, :address, :capacity, :manager, :contact, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, l)
	return apperror.FromDB("locations.insert", err)
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Location, error) {
	var l model.Location
	err := r.DB.GetContext(ctx, &l, `SELECT * FROM locations WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.FromDB("locations.get", err)
	}
	return &l, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Location, error) {
	var items []model.Location
	// Warehouses first, then stores, alphabetically within each type.
	query := `SELECT * FROM locations ORDER BY type DESC, name ASC`
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, apperror.FromDB("locations.list", err)
	}
	return items, nil
}
