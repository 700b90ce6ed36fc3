package attribute

import (
	"sort"

	"github.com/fekuna/omnipos-stock-service/internal/model"
)

// Merge maps attribute display name to value for every attribute that has a
// recorded value for productID. Values referencing unknown attributes are
// skipped. If a (product, attribute) pair occurs twice the later value wins;
// use FindDuplicates to detect that case.
func Merge(attrs []model.Attribute, values []model.ProductAttributeValue, productID string) map[string]string {
	names := indexNames(attrs)
	out := make(map[string]string)
	for _, v := range values {
		if v.ProductID != productID {
			continue
		}
		name, ok := names[v.AttributeID]
		if !ok {
			continue
		}
		out[name] = v.Value
	}
	return out
}

// MergeAll is Merge for every product that has at least one value.
func MergeAll(attrs []model.Attribute, values []model.ProductAttributeValue) map[string]map[string]string {
	names := indexNames(attrs)
	out := make(map[string]map[string]string)
	for _, v := range values {
		name, ok := names[v.AttributeID]
		if !ok {
			continue
		}
		m, ok := out[v.ProductID]
		if !ok {
			m = make(map[string]string)
			out[v.ProductID] = m
		}
		m[name] = v.Value
	}
	return out
}

func indexNames(attrs []model.Attribute) map[string]string {
	names := make(map[string]string, len(attrs))
	for _, a := range attrs {
		names[a.ID] = a.Name
	}
	return names
}

type Pair struct {
	ProductID   string
	AttributeID string
	Count       int
}

// FindDuplicates reports every (product, attribute) pair with more than one value,
// ordered by product then attribute.
func FindDuplicates(values []model.ProductAttributeValue) []Pair {
	counts := make(map[[2]string]int)
	for _, v := range values {
		counts[[2]string{v.ProductID, v.AttributeID}]++
	}

	var pairs []Pair
	for k, n := range counts {
		if n > 1 {
			pairs = append(pairs, Pair{ProductID: k[0], AttributeID: k[1], Count: n})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ProductID != pairs[j].ProductID {
			return pairs[i].ProductID < pairs[j].ProductID
		}
		return pairs[i].AttributeID < pairs[j].AttributeID
	})
	return pairs
}

// SortByDisplayOrder orders attributes for form rendering; ties keep name order.
func SortByDisplayOrder(attrs []model.Attribute) {
	sort.SliceStable(attrs, func(i, j int) bool {
		if attrs[i].DisplayOrder != attrs[j].DisplayOrder {
			return attrs[i].DisplayOrder < attrs[j].DisplayOrder
		}
		return attrs[i].Name < attrs[j].Name
	})
}
