package repository

import (
	"context"
	"encoding/json"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	"github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/jmoiron/sqlx"
)

// PGRepository reads and writes attributes through the stored procedures
// installed by the migrations.
type PGRepository struct {
	DB *sqlx.DB
}

var _ attribute.Repository = (*PGRepository)(nil)

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListAttributes(ctx context.Context) ([]model.Attribute, error) {
	var attrs []model.Attribute
	if err := r.DB.SelectContext(ctx, &attrs, `SELECT * FROM get_attributes()`); err != nil {
		return nil, apperror.FromDB("get_attributes", err)
	}
	return attrs, nil
}

func (r *PGRepository) ListOptions(ctx context.Context, attributeID string) ([]model.AttributeOption, error) {
	var opts []model.AttributeOption
	query := `SELECT * FROM attribute_options WHERE attribute_id = $1 ORDER BY display_order ASC`
	if err := r.DB.SelectContext(ctx, &opts, query, attributeID); err != nil {
		return nil, apperror.FromDB("attribute_options.list", err)
	}
	return opts, nil
}

func (r *PGRepository) ListValues(ctx context.Context) ([]model.ProductAttributeValue, error) {
	var values []model.ProductAttributeValue
	if err := r.DB.SelectContext(ctx, &values, `SELECT * FROM get_attribute_values()`); err != nil {
		return nil, apperror.FromDB("get_attribute_values", err)
	}
	return values, nil
}

func (r *PGRepository) InsertValues(ctx context.Context, rows []dto.AttributeValueRow) error {
	if len(rows) == 0 {
		return nil
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `SELECT insert_attribute_values($1::jsonb)`, string(payload))
	return apperror.FromDB("insert_attribute_values", err)
}
