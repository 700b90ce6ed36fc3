package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	attrdto "github.com/fekuna/omnipos-stock-service/internal/attribute/dto"
	attrRepo "github.com/fekuna/omnipos-stock-service/internal/attribute/repository"
	attrUC "github.com/fekuna/omnipos-stock-service/internal/attribute/usecase"
	invRepo "github.com/fekuna/omnipos-stock-service/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-stock-service/internal/inventory/usecase"
	locRepo "github.com/fekuna/omnipos-stock-service/internal/location/repository"
	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/product/dto"
	prodRepo "github.com/fekuna/omnipos-stock-service/internal/product/repository"
	"github.com/shopspring/decimal"
)

type fixture struct {
	uc        product.UseCase
	products  *prodRepo.MemoryRepository
	inventory *invRepo.MemoryRepository
	attrs     *attrRepo.MemoryRepository
}

func newFixture(products []model.Product, records []model.InventoryRecord) *fixture {
	return newFixtureWithOptions(products, records, Options{})
}

func newFixtureWithOptions(products []model.Product, records []model.InventoryRecord, opts Options) *fixture {
	log := logger.NewNop()
	locations := locRepo.NewMemoryRepository([]model.Location{
		{ID: "W", Name: "Main Warehouse", Type: model.LocationWarehouse},
		{ID: "S1", Name: "Store Alpha", Type: model.LocationStore},
	})
	inv := invRepo.NewMemoryRepository(records, nil)
	attrs := attrRepo.NewMemoryRepository(
		[]model.Attribute{
			{ID: "color", Name: "Color", Type: model.AttributeSelect},
			{ID: "size", Name: "Size", Type: model.AttributeSelect},
		},
		[]model.AttributeOption{
			{AttributeID: "color", Value: "Black"},
			{AttributeID: "size", Value: "M"},
		},
		[]model.ProductAttributeValue{
			{ProductID: "1", AttributeID: "color", Value: "Black"},
			{ProductID: "1", AttributeID: "size", Value: "M"},
		},
	)
	repo := prodRepo.NewMemoryRepository(products)

	uc := NewProductUseCase(
		repo,
		invUC.NewInventoryUseCase(inv, locations, invUC.Options{}, log),
		attrUC.NewAttributeUseCase(attrs, log),
		opts,
		log,
	)
	return &fixture{uc: uc, products: repo, inventory: inv, attrs: attrs}
}

func premiumTShirt() model.Product {
	return model.Product{
		BaseModel: model.BaseModel{ID: "1"},
		Name:      "Premium T-Shirt",
		SKU:       "TS-PRE-M",
		Category:  "Apparel",
		Price:     decimal.RequireFromString("29.99"),
		Cost:      decimal.RequireFromString("12.50"),
	}
}

func TestListProducts_PremiumTShirtEndToEnd(t *testing.T) {
	f := newFixture([]model.Product{premiumTShirt()}, []model.InventoryRecord{
		{ID: "r1", ProductID: "1", LocationID: "W", Quantity: 100},
		{ID: "r2", ProductID: "1", LocationID: "S1", Quantity: 42},
	})

	views, err := f.uc.ListProducts(context.Background(), &dto.ProductFilters{SearchTerm: "shirt"})
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(views))
	}

	v := views[0]
	if v.InStock != 142 {
		t.Errorf("Expected 142 in stock, got %d", v.InStock)
	}
	if v.StockLevel != model.StockOK {
		t.Errorf("Expected ok stock level, got %s", v.StockLevel)
	}
	if v.Attributes["Color"] != "Black" || v.Attributes["Size"] != "M" {
		t.Errorf("Unexpected attributes %v", v.Attributes)
	}
}

func TestListProducts_FiltersKeepOrder(t *testing.T) {
	f := newFixture([]model.Product{
		{BaseModel: model.BaseModel{ID: "a"}, Name: "Denim Shirt", SKU: "DS-1", Category: "Apparel"},
		{BaseModel: model.BaseModel{ID: "b"}, Name: "Mug", SKU: "MG-1", Category: "Kitchen"},
		{BaseModel: model.BaseModel{ID: "c"}, Name: "Polo Shirt", SKU: "PS-1", Category: "Apparel"},
	}, nil)

	views, err := f.uc.ListProducts(context.Background(), &dto.ProductFilters{Categories: []string{"Apparel"}})
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(views) != 2 || views[0].ID != "a" || views[1].ID != "c" {
		t.Errorf("Expected a, c in order, got %+v", views)
	}
	for _, v := range views {
		if v.InStock != 0 || v.StockLevel != model.StockCritical {
			t.Errorf("%s: expected zero critical stock, got %d %s", v.ID, v.InStock, v.StockLevel)
		}
	}
}

func TestListProducts_InventoryFailureDegradesOneRow(t *testing.T) {
	f := newFixture([]model.Product{
		premiumTShirt(),
		{BaseModel: model.BaseModel{ID: "2"}, Name: "Mug", SKU: "MG-1", Category: "Kitchen"},
	}, []model.InventoryRecord{
		{ProductID: "1", LocationID: "W", Quantity: 100},
		{ProductID: "2", LocationID: "W", Quantity: 7},
	})
	f.inventory.FailFor = map[string]error{"1": errors.New("timeout")}

	views, err := f.uc.ListProducts(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if views[0].InStock != 0 || views[1].InStock != 7 {
		t.Errorf("Expected 0 and 7, got %d and %d", views[0].InStock, views[1].InStock)
	}
}

func TestListProducts_AttributeFailureKeepsRows(t *testing.T) {
	f := newFixture([]model.Product{premiumTShirt()}, nil)
	f.attrs.Err = errors.New("procedure missing")

	views, err := f.uc.ListProducts(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(views) != 1 || len(views[0].Attributes) != 0 {
		t.Errorf("Expected one row without attributes, got %+v", views)
	}
}

func TestListProducts_StoreFailure(t *testing.T) {
	f := newFixture(nil, nil)
	f.products.Err = apperror.Remote("products.list", apperror.KindNetwork, errors.New("dial tcp"))

	_, err := f.uc.ListProducts(context.Background(), nil)
	var re *apperror.RemoteError
	if !errors.As(err, &re) || re.Kind != apperror.KindNetwork {
		t.Errorf("Expected network RemoteError, got %v", err)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	f := newFixture(nil, nil)
	valid := dto.CreateProductInput{
		Name:     "Polo Shirt",
		SKU:      "PS-001",
		Category: "Apparel",
		Price:    decimal.NewFromInt(25),
		Cost:     decimal.NewFromInt(10),
	}

	tests := []struct {
		name   string
		mutate func(*dto.CreateProductInput)
		code   string
	}{
		{"short name", func(in *dto.CreateProductInput) { in.Name = "P" }, "product.name_required"},
		{"short sku", func(in *dto.CreateProductInput) { in.SKU = " " }, "product.sku_required"},
		{"short category", func(in *dto.CreateProductInput) { in.Category = "" }, "product.category_required"},
		{"zero price", func(in *dto.CreateProductInput) { in.Price = decimal.Zero }, "product.invalid_price"},
		{"negative cost", func(in *dto.CreateProductInput) { in.Cost = decimal.NewFromInt(-1) }, "product.invalid_cost"},
		{"bad attribute", func(in *dto.CreateProductInput) {
			in.Attributes = []attrdto.AttributeValueInput{{AttributeID: "color", Value: "Pink"}}
		}, attrdto.CodeInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := f.uc.CreateProduct(context.Background(), &in)
			var ve *apperror.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if ve.Code != tt.code {
				t.Errorf("Expected %s, got %s", tt.code, ve.Code)
			}
		})
	}

	all, _ := f.products.FindAll(context.Background(), nil)
	if len(all) != 0 {
		t.Errorf("Rejected creates must not store anything, found %d products", len(all))
	}
}

func TestCreateProduct_WithAttributes(t *testing.T) {
	f := newFixture(nil, nil)
	ctx := context.Background()

	p, err := f.uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:       "Polo Shirt",
		SKU:        "PS-001",
		Category:   "Apparel",
		Price:      decimal.NewFromInt(25),
		Cost:       decimal.NewFromInt(10),
		Attributes: []attrdto.AttributeValueInput{{AttributeID: "color", Value: "Black"}},
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	view, err := f.uc.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if view.Attributes["Color"] != "Black" {
		t.Errorf("Expected Color=Black, got %v", view.Attributes)
	}
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	f := newFixture([]model.Product{premiumTShirt()}, nil)

	_, err := f.uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:     "Another Shirt",
		SKU:      "TS-PRE-M",
		Category: "Apparel",
		Price:    decimal.NewFromInt(20),
		Cost:     decimal.NewFromInt(5),
	})
	if !apperror.IsConstraint(err) {
		t.Errorf("Expected constraint violation, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture([]model.Product{premiumTShirt()}, nil)
	ctx := context.Background()

	if err := f.uc.DeleteProduct(ctx, "1"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if err := f.uc.DeleteProduct(ctx, "1"); !apperror.IsNotFound(err) {
		t.Errorf("Expected NotFound on second delete, got %v", err)
	}
	if _, err := f.uc.GetProduct(ctx, "1"); !apperror.IsNotFound(err) {
		t.Errorf("Expected NotFound from GetProduct, got %v", err)
	}
}

func TestListCategories(t *testing.T) {
	f := newFixture([]model.Product{
		premiumTShirt(),
		{BaseModel: model.BaseModel{ID: "2"}, Name: "Mug", SKU: "MG-1", Category: "Kitchen"},
		{BaseModel: model.BaseModel{ID: "3"}, Name: "Jeans", SKU: "DJ-1", Category: "Apparel"},
	}, nil)

	cats, err := f.uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(cats) != 2 || cats[0] != "Apparel" || cats[1] != "Kitchen" {
		t.Errorf("Expected [Apparel Kitchen], got %v", cats)
	}
}
