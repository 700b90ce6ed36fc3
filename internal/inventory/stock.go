package inventory

import (
	"sort"

	"github.com/fekuna/omnipos-stock-service/internal/model"
)

// TotalOnHand sums the quantity of every record that belongs to productID.
// An empty record set yields 0.
func TotalOnHand(productID string, records []model.InventoryRecord) int64 {
	var total int64
	for _, r := range records {
		if r.ProductID == productID {
			total += r.Quantity
		}
	}
	return total
}

// QuantityAt is the stock of productID held at locationID, across variants.
func QuantityAt(productID, locationID string, records []model.InventoryRecord) int64 {
	var total int64
	for _, r := range records {
		if r.ProductID == productID && r.LocationID == locationID {
			total += r.Quantity
		}
	}
	return total
}

type Thresholds struct {
	Critical int64
	Low      int64
}

// DefaultThresholds match the dashboard colour bands.
var DefaultThresholds = Thresholds{Critical: 30, Low: 50}

func ClassifyStock(qty int64, t Thresholds) model.StockLevel {
	switch {
	case qty < t.Critical:
		return model.StockCritical
	case qty < t.Low:
		return model.StockLow
	default:
		return model.StockOK
	}
}

type LocationSummary struct {
	LocationID   string `json:"location_id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
	TotalItems   int64  `json:"total_items"`
	Capacity     *int64 `json:"capacity,omitempty"`
	OverCapacity bool   `json:"over_capacity"`
}

// SummarizeByLocation counts distinct products and total units per location.
// Records pointing at unknown locations are grouped under their raw id.
// Capacity is only reported, never enforced.
func SummarizeByLocation(records []model.InventoryRecord, locations []model.Location) []LocationSummary {
	byID := make(map[string]*LocationSummary, len(locations))
	order := make([]string, 0, len(locations))
	for _, l := range locations {
		byID[l.ID] = &LocationSummary{LocationID: l.ID, Name: l.Name, Capacity: l.Capacity}
		order = append(order, l.ID)
	}

	seen := make(map[[2]string]bool)
	for _, r := range records {
		s, ok := byID[r.LocationID]
		if !ok {
			s = &LocationSummary{LocationID: r.LocationID, Name: r.LocationID}
			byID[r.LocationID] = s
			order = append(order, r.LocationID)
		}
		key := [2]string{r.LocationID, r.ProductID}
		if !seen[key] {
			seen[key] = true
			s.ProductCount++
		}
		s.TotalItems += r.Quantity
	}

	out := make([]LocationSummary, 0, len(order))
	for _, id := range order {
		s := byID[id]
		if s.Capacity != nil && s.TotalItems > *s.Capacity {
			s.OverCapacity = true
		}
		out = append(out, *s)
	}
	return out
}

type LowStockItem struct {
	ProductID string           `json:"product_id"`
	InStock   int64            `json:"in_stock"`
	Level     model.StockLevel `json:"level"`
}

// LowStock lists products whose total is below the low threshold, lowest first.
func LowStock(totals map[string]int64, t Thresholds) []LowStockItem {
	var items []LowStockItem
	for id, qty := range totals {
		if qty < t.Low {
			items = append(items, LowStockItem{ProductID: id, InStock: qty, Level: ClassifyStock(qty, t)})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].InStock != items[j].InStock {
			return items[i].InStock < items[j].InStock
		}
		return items[i].ProductID < items[j].ProductID
	})
	return items
}
