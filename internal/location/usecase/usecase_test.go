package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/location/dto"
	"github.com/fekuna/omnipos-stock-service/internal/location/repository"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
)

func TestCreateLocation(t *testing.T) {
	uc := NewLocationUseCase(repository.NewMemoryRepository(nil), logger.NewNop())
	ctx := context.Background()

	capacity := int64(5000)
	l, err := uc.CreateLocation(ctx, &dto.CreateLocationInput{
		Name:     " Main Warehouse ",
		Type:     "warehouse",
		Capacity: &capacity,
		Manager:  "John Smith",
	})
	if err != nil {
		t.Fatalf("Failed to create location: %v", err)
	}
	if l.Name != "Main Warehouse" {
		t.Errorf("Expected trimmed name, got %q", l.Name)
	}
	if l.Address != nil {
		t.Errorf("Expected empty address to be nil, got %q", *l.Address)
	}

	got, err := uc.GetLocation(ctx, l.ID)
	if err != nil {
		t.Fatalf("Failed to get location: %v", err)
	}
	if got.ID != l.ID {
		t.Errorf("Expected id %s, got %s", l.ID, got.ID)
	}

	all, _ := uc.ListLocations(ctx)
	if len(all) != 1 {
		t.Errorf("Expected 1 location, got %d", len(all))
	}
}

func TestCreateLocation_Validation(t *testing.T) {
	uc := NewLocationUseCase(repository.NewMemoryRepository(nil), logger.NewNop())
	negative := int64(-1)

	testCases := []struct {
		name  string
		input dto.CreateLocationInput
	}{
		{"short name", dto.CreateLocationInput{Name: "A", Type: "store"}},
		{"bad type", dto.CreateLocationInput{Name: "Store Alpha", Type: "depot"}},
		{"negative capacity", dto.CreateLocationInput{Name: "Store Alpha", Type: "store", Capacity: &negative}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateLocation(context.Background(), &tc.input)
			if !apperror.IsValidation(err) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestGetLocation_NotFound(t *testing.T) {
	uc := NewLocationUseCase(repository.NewMemoryRepository(nil), logger.NewNop())
	_, err := uc.GetLocation(context.Background(), "missing")
	if !apperror.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
}
