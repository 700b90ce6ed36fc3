package model

import "time"

type AttributeType string

const (
	AttributeText    AttributeType = "text"
	AttributeNumber  AttributeType = "number"
	AttributeBoolean AttributeType = "boolean"
	AttributeSelect  AttributeType = "select"
)

func (t AttributeType) Valid() bool {
	switch t {
	case AttributeText, AttributeNumber, AttributeBoolean, AttributeSelect:
		return true
	}
	return false
}

type Attribute struct {
	ID           string        `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Code         string        `db:"code" json:"code"`
	Type         AttributeType `db:"type" json:"type"`
	IsRequired   bool          `db:"is_required" json:"is_required"`
	IsFilterable bool          `db:"is_filterable" json:"is_filterable"`
	IsVariant    bool          `db:"is_variant" json:"is_variant"`
	DisplayOrder int           `db:"display_order" json:"display_order"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// AttributeOption only exists for select attributes.
type AttributeOption struct {
	ID           string    `db:"id" json:"id"`
	AttributeID  string    `db:"attribute_id" json:"attribute_id"`
	Value        string    `db:"value" json:"value"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type ProductAttributeValue struct {
	ID          string    `db:"id" json:"id"`
	ProductID   string    `db:"product_id" json:"product_id"`
	AttributeID string    `db:"attribute_id" json:"attribute_id"`
	Value       string    `db:"value" json:"value"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
