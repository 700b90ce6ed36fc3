package dto

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/model"
)

func TestValidateInsert(t *testing.T) {
	attrs := []model.Attribute{
		{ID: "color", Name: "Color", Type: model.AttributeSelect, IsRequired: true},
		{ID: "weight", Name: "Weight", Type: model.AttributeNumber},
		{ID: "organic", Name: "Organic", Type: model.AttributeBoolean},
		{ID: "notes", Name: "Notes", Type: model.AttributeText},
	}
	options := map[string][]model.AttributeOption{
		"color": {{AttributeID: "color", Value: "Black"}, {AttributeID: "color", Value: "White"}},
	}

	tests := []struct {
		name     string
		req      InsertAttributeValuesRequest
		wantCode string
		wantRows int
	}{
		{
			name: "valid",
			req: InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{
				{AttributeID: "color", Value: "Black"},
				{AttributeID: "weight", Value: "1.5"},
				{AttributeID: "organic", Value: "true"},
				{AttributeID: "notes", Value: ""},
			}},
			wantRows: 3,
		},
		{
			name:     "missing product",
			req:      InsertAttributeValuesRequest{Values: []AttributeValueInput{{AttributeID: "color", Value: "Black"}}},
			wantCode: CodeProductRequired,
		},
		{
			name:     "unknown attribute",
			req:      InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{{AttributeID: "nope", Value: "x"}}},
			wantCode: CodeUnknown,
		},
		{
			name: "duplicate attribute",
			req: InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{
				{AttributeID: "color", Value: "Black"},
				{AttributeID: "color", Value: "White"},
			}},
			wantCode: CodeDuplicate,
		},
		{
			name:     "required missing",
			req:      InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{{AttributeID: "weight", Value: "2"}}},
			wantCode: CodeRequired,
		},
		{
			name:     "required empty",
			req:      InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{{AttributeID: "color", Value: " "}}},
			wantCode: CodeRequired,
		},
		{
			name: "bad number",
			req: InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{
				{AttributeID: "color", Value: "Black"},
				{AttributeID: "weight", Value: "heavy"},
			}},
			wantCode: CodeInvalidNumber,
		},
		{
			name: "bad boolean",
			req: InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{
				{AttributeID: "color", Value: "Black"},
				{AttributeID: "organic", Value: "yes"},
			}},
			wantCode: CodeInvalidBoolean,
		},
		{
			name:     "bad option",
			req:      InsertAttributeValuesRequest{ProductID: "p1", Values: []AttributeValueInput{{AttributeID: "color", Value: "Purple"}}},
			wantCode: CodeInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ValidateInsert(&tt.req, attrs, options)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if len(rows) != tt.wantRows {
					t.Errorf("Expected %d rows, got %d", tt.wantRows, len(rows))
				}
				return
			}
			var ve *apperror.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if ve.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, ve.Code)
			}
		})
	}
}
