// Package seed holds the demo catalogue served by the memory data source.
package seed

import (
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/model"
	"github.com/shopspring/decimal"
)

type Data struct {
	Products   []model.Product
	Locations  []model.Location
	Inventory  []model.InventoryRecord
	Attributes []model.Attribute
	Options    []model.AttributeOption
	Values     []model.ProductAttributeValue
	Movements  []model.Movement
}

func Demo() *Data {
	created := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)

	product := func(id, name, sku, category, price, cost, supplier string) model.Product {
		s := supplier
		return model.Product{
			BaseModel: model.BaseModel{ID: id, CreatedAt: created, UpdatedAt: created},
			Name:      name,
			SKU:       sku,
			Category:  category,
			Price:     decimal.RequireFromString(price),
			Cost:      decimal.RequireFromString(cost),
			Supplier:  &s,
		}
	}
	location := func(id, name string, typ model.LocationType, capacity int64) model.Location {
		c := capacity
		return model.Location{ID: id, Name: name, Type: typ, Capacity: &c, CreatedAt: created, UpdatedAt: created}
	}
	stock := func(id, productID, locationID string, qty int64) model.InventoryRecord {
		return model.InventoryRecord{ID: id, ProductID: productID, LocationID: locationID, Quantity: qty, CreatedAt: created, UpdatedAt: created}
	}

	d := &Data{
		Products: []model.Product{
			product("1", "Premium T-Shirt", "TS-PRE-M", "Apparel", "29.99", "12.50", "Fashion Suppliers Inc."),
			product("2", "Standard Hoodie", "HD-STD-L", "Apparel", "49.99", "22.75", "Fashion Suppliers Inc."),
			product("3", "Designer Jacket", "JK-DSG-S", "Outerwear", "129.99", "65.30", "Premium Clothiers Ltd."),
			product("4", "Casual Pants", "PT-CSL-M", "Apparel", "39.99", "18.25", "Fashion Suppliers Inc."),
			product("5", "Athletic Socks", "SK-ATH-U", "Accessories", "9.99", "3.75", "Sports Gear Co."),
		},
		Locations: []model.Location{
			location("warehouse", "Main Warehouse", model.LocationWarehouse, 5000),
			location("store-1", "Store Alpha", model.LocationStore, 500),
			location("store-2", "Store Beta", model.LocationStore, 500),
			location("store-3", "Store Gamma", model.LocationStore, 300),
		},
		Inventory: []model.InventoryRecord{
			stock("inv-1", "1", "warehouse", 100),
			stock("inv-2", "1", "store-1", 42),
			stock("inv-3", "2", "warehouse", 60),
			stock("inv-4", "2", "store-2", 27),
			stock("inv-5", "3", "warehouse", 15),
			stock("inv-6", "3", "store-3", 8),
			stock("inv-7", "4", "warehouse", 40),
			stock("inv-8", "4", "store-1", 16),
			stock("inv-9", "5", "warehouse", 150),
			stock("inv-10", "5", "store-2", 35),
			stock("inv-11", "5", "store-3", 25),
		},
		Attributes: []model.Attribute{
			{ID: "attr-size", Name: "Size", Code: "size", Type: model.AttributeSelect, IsFilterable: true, IsVariant: true, DisplayOrder: 1},
			{ID: "attr-color", Name: "Color", Code: "color", Type: model.AttributeSelect, IsFilterable: true, DisplayOrder: 2},
			{ID: "attr-material", Name: "Material", Code: "material", Type: model.AttributeText, DisplayOrder: 3},
			{ID: "attr-weight", Name: "Weight (g)", Code: "weight", Type: model.AttributeNumber, DisplayOrder: 4},
			{ID: "attr-organic", Name: "Organic", Code: "organic", Type: model.AttributeBoolean, IsFilterable: true, DisplayOrder: 5},
		},
	}

	for i, v := range []string{"S", "M", "L", "XL", "XXL", "One Size"} {
		d.Options = append(d.Options, model.AttributeOption{ID: "opt-size-" + v, AttributeID: "attr-size", Value: v, DisplayOrder: i})
	}
	for i, v := range []string{"Black", "White", "Navy", "Grey"} {
		d.Options = append(d.Options, model.AttributeOption{ID: "opt-color-" + v, AttributeID: "attr-color", Value: v, DisplayOrder: i})
	}

	value := func(productID, attributeID, v string) model.ProductAttributeValue {
		return model.ProductAttributeValue{
			ID:          productID + ":" + attributeID,
			ProductID:   productID,
			AttributeID: attributeID,
			Value:       v,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
	}
	d.Values = []model.ProductAttributeValue{
		value("1", "attr-size", "M"),
		value("1", "attr-color", "Black"),
		value("1", "attr-material", "Cotton"),
		value("1", "attr-organic", "true"),
		value("2", "attr-size", "L"),
		value("2", "attr-color", "Grey"),
		value("3", "attr-size", "S"),
		value("3", "attr-material", "Leather"),
		value("3", "attr-weight", "1450"),
		value("4", "attr-size", "M"),
		value("4", "attr-color", "Navy"),
		value("5", "attr-size", "One Size"),
		value("5", "attr-color", "White"),
	}

	movement := func(id, date string, typ model.MovementType, from, to string, items int, user string, status model.MovementStatus) model.Movement {
		t, _ := time.Parse("2006-01-02 15:04", date)
		return model.Movement{ID: id, Date: t, Type: typ, From: from, To: to, Items: items, User: user, Status: status}
	}
	d.Movements = []model.Movement{
		movement("MOV-12345", "2023-06-20 14:32", model.MovementTransfer, "Main Warehouse", "Store Alpha", 18, "John Smith", model.MovementCompleted),
		movement("MOV-12346", "2023-06-19 10:15", model.MovementAdjustment, "Store Beta", "", 5, "Sarah Johnson", model.MovementCompleted),
		movement("MOV-12347", "2023-06-18 16:45", model.MovementReturn, "Store Gamma", "Main Warehouse", 7, "Mike Brown", model.MovementPending),
		movement("MOV-12348", "2023-06-17 09:22", model.MovementTransfer, "Main Warehouse", "Store Beta", 24, "John Smith", model.MovementCompleted),
		movement("MOV-12349", "2023-06-16 11:30", model.MovementAdjustment, "Store Alpha", "", 3, "Emily Davis", model.MovementRejected),
		movement("MOV-12350", "2023-06-15 15:18", model.MovementTransfer, "Main Warehouse", "Store Gamma", 12, "Robert Wilson", model.MovementCompleted),
		movement("MOV-12351", "2023-06-14 13:45", model.MovementReturn, "Store Beta", "Main Warehouse", 4, "Sarah Johnson", model.MovementCompleted),
	}
	return d
}
