package inventory

import (
	"testing"

	"github.com/fekuna/omnipos-stock-service/internal/model"
)

func TestTotalOnHand(t *testing.T) {
	records := []model.InventoryRecord{
		{ProductID: "1", LocationID: "W", Quantity: 100},
		{ProductID: "1", LocationID: "S1", Quantity: 42},
		{ProductID: "2", LocationID: "W", Quantity: 87},
	}

	testCases := []struct {
		name      string
		productID string
		records   []model.InventoryRecord
		expected  int64
	}{
		{"sums across locations", "1", records, 142},
		{"single record", "2", records, 87},
		{"no matching records", "3", records, 0},
		{"empty record set", "1", nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalOnHand(tc.productID, tc.records); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestTotalOnHand_OrderIndependent(t *testing.T) {
	records := []model.InventoryRecord{
		{ProductID: "1", Quantity: 5},
		{ProductID: "2", Quantity: 7},
		{ProductID: "1", Quantity: 11},
	}
	reversed := []model.InventoryRecord{records[2], records[1], records[0]}

	if TotalOnHand("1", records) != TotalOnHand("1", reversed) {
		t.Error("Expected the total not to depend on record order")
	}
}

func TestQuantityAt(t *testing.T) {
	variant := "v-m"
	records := []model.InventoryRecord{
		{ProductID: "1", LocationID: "W", Quantity: 60},
		{ProductID: "1", LocationID: "W", VariantID: &variant, Quantity: 40},
		{ProductID: "1", LocationID: "S1", Quantity: 42},
	}
	if got := QuantityAt("1", "W", records); got != 100 {
		t.Errorf("Expected 100 at W, got %d", got)
	}
	if got := QuantityAt("1", "S2", records); got != 0 {
		t.Errorf("Expected 0 at S2, got %d", got)
	}
}

func TestClassifyStock(t *testing.T) {
	testCases := []struct {
		qty      int64
		expected model.StockLevel
	}{
		{0, model.StockCritical},
		{29, model.StockCritical},
		{30, model.StockLow},
		{49, model.StockLow},
		{50, model.StockOK},
		{142, model.StockOK},
	}
	for _, tc := range testCases {
		if got := ClassifyStock(tc.qty, DefaultThresholds); got != tc.expected {
			t.Errorf("ClassifyStock(%d): expected %s, got %s", tc.qty, tc.expected, got)
		}
	}
}

func TestSummarizeByLocation(t *testing.T) {
	capacity := int64(100)
	locations := []model.Location{
		{ID: "W", Name: "Main Warehouse", Capacity: &capacity},
		{ID: "S1", Name: "Store Alpha"},
		{ID: "S2", Name: "Store Beta"},
	}
	records := []model.InventoryRecord{
		{ProductID: "1", LocationID: "W", Quantity: 100},
		{ProductID: "2", LocationID: "W", Quantity: 20},
		{ProductID: "1", LocationID: "S1", Quantity: 42},
		{ProductID: "1", LocationID: "S1", Quantity: 3},
		{ProductID: "9", LocationID: "GONE", Quantity: 1},
	}

	summaries := SummarizeByLocation(records, locations)
	if len(summaries) != 4 {
		t.Fatalf("Expected 4 summaries, got %d", len(summaries))
	}

	w := summaries[0]
	if w.ProductCount != 2 || w.TotalItems != 120 {
		t.Errorf("Expected W to hold 2 products / 120 items, got %d / %d", w.ProductCount, w.TotalItems)
	}
	if !w.OverCapacity {
		t.Error("Expected W to be flagged over capacity")
	}

	s1 := summaries[1]
	if s1.ProductCount != 1 || s1.TotalItems != 45 {
		t.Errorf("Expected S1 to hold 1 product / 45 items, got %d / %d", s1.ProductCount, s1.TotalItems)
	}
	if s1.OverCapacity {
		t.Error("Expected a location without capacity never to be over capacity")
	}

	if summaries[2].TotalItems != 0 {
		t.Errorf("Expected empty S2, got %d items", summaries[2].TotalItems)
	}
	if summaries[3].LocationID != "GONE" || summaries[3].Name != "GONE" {
		t.Errorf("Expected unknown location to be grouped by id, got %+v", summaries[3])
	}
}

func TestLowStock(t *testing.T) {
	totals := map[string]int64{"a": 142, "b": 23, "c": 45, "d": 23}
	items := LowStock(totals, DefaultThresholds)

	if len(items) != 3 {
		t.Fatalf("Expected 3 low stock items, got %d", len(items))
	}
	if items[0].ProductID != "b" || items[1].ProductID != "d" || items[2].ProductID != "c" {
		t.Errorf("Unexpected order: %+v", items)
	}
	if items[0].Level != model.StockCritical || items[2].Level != model.StockLow {
		t.Errorf("Unexpected levels: %+v", items)
	}
}
