package seed

import (
	"testing"

	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	"github.com/fekuna/omnipos-stock-service/internal/inventory"
)

// The seeded records must reproduce the stock figures shown on the dashboard.
func TestDemo_StockTotals(t *testing.T) {
	d := Demo()
	want := map[string]int64{"1": 142, "2": 87, "3": 23, "4": 56, "5": 210}
	for id, qty := range want {
		if got := inventory.TotalOnHand(id, d.Inventory); got != qty {
			t.Errorf("product %s: expected %d, got %d", id, qty, got)
		}
	}
}

func TestDemo_Consistent(t *testing.T) {
	d := Demo()

	products := make(map[string]bool)
	skus := make(map[string]bool)
	for _, p := range d.Products {
		products[p.ID] = true
		if skus[p.SKU] {
			t.Errorf("duplicate SKU %s", p.SKU)
		}
		skus[p.SKU] = true
	}
	locations := make(map[string]bool)
	for _, l := range d.Locations {
		locations[l.ID] = true
	}
	for _, r := range d.Inventory {
		if !products[r.ProductID] || !locations[r.LocationID] {
			t.Errorf("dangling inventory record %+v", r)
		}
	}
	if dups := attribute.FindDuplicates(d.Values); len(dups) != 0 {
		t.Errorf("seeded attribute values contain duplicates: %+v", dups)
	}
}
