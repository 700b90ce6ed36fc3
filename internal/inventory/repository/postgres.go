package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

var _ inventory.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListByProduct(ctx context.Context, productID string) ([]model.InventoryRecord, error) {
	var items []model.InventoryRecord
	query := `SELECT * FROM inventory WHERE product_id = $1 ORDER BY location_id`
	if err := r.DB.SelectContext(ctx, &items, query, productID); err != nil {
		return nil, apperror.FromDB("inventory.list_by_product", err)
	}
	return items, nil
}

func (r *PGRepository) ListAll(ctx context.Context) ([]model.InventoryRecord, error) {
	var items []model.InventoryRecord
	if err := r.DB.SelectContext(ctx, &items, `SELECT * FROM inventory ORDER BY location_id, product_id`); err != nil {
		return nil, apperror.FromDB("inventory.list", err)
	}
	return items, nil
}

func (r *PGRepository) LogMovement(ctx context.Context, m *model.Movement) error {
	query := `
        INSERT INTO movements (id, date, type, from_location, to_location, items, user_name, status)
        VALUES (:id, :date, :type, :from_location, :to_location, :items, :user_name, :status)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return apperror.FromDB("movements.insert", err)
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.Movement, int, error) {
	var items []model.Movement
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Type != "" {
		conditions = append(conditions, "type = :type")
		args["type"] = f.Type
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}
	if f.StartDate != nil {
		conditions = append(conditions, "date >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "date <= :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM movements" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, apperror.FromDB("movements.count", err)
	}
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return nil, 0, apperror.FromDB("movements.count", err)
		}
	}
	rows.Close()

	query := "SELECT * FROM movements" + whereClause + " ORDER BY date DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, apperror.FromDB("movements.list", err)
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &items, args); err != nil {
		return nil, 0, apperror.FromDB("movements.list", err)
	}
	return items, count, nil
}
