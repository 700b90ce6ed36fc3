package dto

// ProductFilters narrows a product listing. SearchTerm and Categories are
// applied after stock and attributes are joined; IDs restricts the store query.
type ProductFilters struct {
	SearchTerm string   `json:"search_term"`
	Categories []string `json:"categories"`
	IDs        []string `json:"ids,omitempty"`
}
