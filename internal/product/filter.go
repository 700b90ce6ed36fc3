package product

import (
	"slices"
	"strings"

	"github.com/fekuna/omnipos-stock-service/internal/model"
)

// MatchesSearch reports whether term is a case-insensitive substring of the
// product name, SKU or category. An empty term matches everything.
func MatchesSearch(p *model.Product, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.SKU), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

func MatchesCategory(p *model.Product, selected CategorySelection) bool {
	return len(selected) == 0 || selected.Contains(p.Category)
}

// Filter keeps the products matching both term and selected, preserving input order.
func Filter(products []model.ProductView, term string, selected CategorySelection) []model.ProductView {
	out := make([]model.ProductView, 0, len(products))
	for i := range products {
		p := &products[i].Product
		if MatchesSearch(p, term) && MatchesCategory(p, selected) {
			out = append(out, products[i])
		}
	}
	return out
}

// CategorySelection is the set of categories the list is narrowed to.
// The zero value selects nothing, which means no category filter.
type CategorySelection []string

func NewCategorySelection(categories ...string) CategorySelection {
	var s CategorySelection
	for _, c := range categories {
		if c != "" && !s.Contains(c) {
			s = append(s, c)
		}
	}
	return s
}

func (s CategorySelection) Contains(category string) bool {
	return slices.Contains(s, category)
}

// Toggle removes category when selected and adds it otherwise. s is not modified.
func (s CategorySelection) Toggle(category string) CategorySelection {
	if i := slices.Index(s, category); i >= 0 {
		return slices.Delete(slices.Clone(s), i, i+1)
	}
	return append(slices.Clone(s), category)
}

func (s CategorySelection) Clear() CategorySelection {
	return nil
}

func (s CategorySelection) Slice() []string {
	return slices.Clone(s)
}

// Equal compares as sets.
func (s CategorySelection) Equal(other CategorySelection) bool {
	if len(s) != len(other) {
		return false
	}
	for _, c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Categories lists the distinct categories of products in first-seen order.
func Categories(products []model.ProductView) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
