package dto

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

const (
	CodeProductRequired = "attribute.product_required"
	CodeUnknown         = "attribute.unknown"
	CodeDuplicate       = "attribute.duplicate_value"
	CodeRequired        = "attribute.required"
	CodeInvalidNumber   = "attribute.invalid_number"
	CodeInvalidBoolean  = "attribute.invalid_boolean"
	CodeInvalidOption   = "attribute.invalid_option"
)

// ValidateInsert checks req against the attribute definitions and returns the
// rows to store. Empty values of optional attributes are dropped.
func ValidateInsert(req *InsertAttributeValuesRequest, attrs []model.Attribute, options map[string][]model.AttributeOption) ([]AttributeValueRow, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, apperror.Validation(CodeProductRequired, "product_id", "product id is required")
	}

	byID := make(map[string]model.Attribute, len(attrs))
	for _, a := range attrs {
		byID[a.ID] = a
	}

	seen := make(map[string]bool, len(req.Values))
	rows := make([]AttributeValueRow, 0, len(req.Values))
	for _, in := range req.Values {
		a, ok := byID[in.AttributeID]
		if !ok {
			return nil, apperror.Validation(CodeUnknown, in.AttributeID, "unknown attribute")
		}
		if seen[a.ID] {
			return nil, apperror.Validation(CodeDuplicate, a.Name, "attribute given more than once")
		}
		seen[a.ID] = true

		value := strings.TrimSpace(in.Value)
		if value == "" {
			if a.IsRequired {
				return nil, apperror.Validation(CodeRequired, a.Name, a.Name+" is required")
			}
			continue
		}
		if err := checkValue(a, value, options[a.ID]); err != nil {
			return nil, err
		}
		rows = append(rows, AttributeValueRow{ProductID: req.ProductID, AttributeID: a.ID, Value: value})
	}

	for _, a := range attrs {
		if a.IsRequired && !seen[a.ID] {
			return nil, apperror.Validation(CodeRequired, a.Name, a.Name+" is required")
		}
	}
	return rows, nil
}

func checkValue(a model.Attribute, value string, options []model.AttributeOption) error {
	switch a.Type {
	case model.AttributeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return apperror.Validation(CodeInvalidNumber, a.Name, a.Name+" must be a number")
		}
	case model.AttributeBoolean:
		if value != "true" && value != "false" {
			return apperror.Validation(CodeInvalidBoolean, a.Name, a.Name+" must be true or false")
		}
	case model.AttributeSelect:
		for _, o := range options {
			if o.Value == value {
				return nil
			}
		}
		return apperror.Validation(CodeInvalidOption, a.Name, value+" is not an option of "+a.Name)
	}
	return nil
}
