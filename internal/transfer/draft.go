package transfer

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
)

type State string

const (
	StateEmpty           State = "empty"
	StateLocationsChosen State = "locations_chosen"
	StateItemsStaged     State = "items_staged"
)

// Validation codes double as notice message ids.
const (
	CodeSourceRequired      = "transfer.source_required"
	CodeDestinationRequired = "transfer.destination_required"
	CodeSameLocation        = "transfer.same_location"
	CodeItemsRequired       = "transfer.items_required"
	CodeDuplicateItem       = "transfer.duplicate_item"
	CodeItemIndex           = "transfer.item_index"
	CodeProductRequired     = "transfer.product_required"
)

type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	// Available is the stock at the source location captured when the item was
	// staged. It bounds the quantity input and goes stale if stock moves.
	Available int64 `json:"available"`
}

// Draft is a multi-line stock movement being staged before submission.
// The zero value is an empty draft.
type Draft struct {
	ID           string `json:"id"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Items        []Item `json:"items"`
}

func (d *Draft) State() State {
	if len(d.Items) > 0 {
		return StateItemsStaged
	}
	if d.FromLocation != "" && d.ToLocation != "" {
		return StateLocationsChosen
	}
	return StateEmpty
}

// SetFrom and SetTo accept any value; from != to is only checked on submit.
func (d *Draft) SetFrom(locationID string) { d.FromLocation = strings.TrimSpace(locationID) }
func (d *Draft) SetTo(locationID string)   { d.ToLocation = strings.TrimSpace(locationID) }

func (d *Draft) Contains(productID string) bool {
	for _, it := range d.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// AddItem stages productID with quantity 1. A product already staged is rejected
// and the draft is left unchanged.
func (d *Draft) AddItem(productID string, available int64) error {
	if productID == "" {
		return apperror.Validation(CodeProductRequired, "product_id", "Please select a product")
	}
	if d.Contains(productID) {
		return apperror.Validation(CodeDuplicateItem, "product_id", "Product is already part of this transfer")
	}
	d.Items = append(d.Items, Item{ProductID: productID, Quantity: 1, Available: available})
	return nil
}

// UpdateQuantity stores qty as given. The available bound is advisory and is
// not re-checked here.
func (d *Draft) UpdateQuantity(index int, qty int64) error {
	if index < 0 || index >= len(d.Items) {
		return apperror.Validation(CodeItemIndex, "index", "No transfer item at position "+strconv.Itoa(index))
	}
	d.Items[index].Quantity = qty
	return nil
}

// RemoveItem drops the item at index; later items shift down by one.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return apperror.Validation(CodeItemIndex, "index", "No transfer item at position "+strconv.Itoa(index))
	}
	d.Items = append(d.Items[:index:index], d.Items[index+1:]...)
	return nil
}

func (d *Draft) TotalItems() int64 {
	var total int64
	for _, it := range d.Items {
		total += it.Quantity
	}
	return total
}

// Validate runs the submit checks in order and returns the first failure.
func (d *Draft) Validate() error {
	switch {
	case d.FromLocation == "":
		return apperror.Validation(CodeSourceRequired, "from_location", "Please select a source location")
	case d.ToLocation == "":
		return apperror.Validation(CodeDestinationRequired, "to_location", "Please select a destination location")
	case d.FromLocation == d.ToLocation:
		return apperror.Validation(CodeSameLocation, "to_location", "Source and destination cannot be the same")
	case len(d.Items) == 0:
		return apperror.Validation(CodeItemsRequired, "items", "Please add at least one product to transfer")
	}
	return nil
}

// Submit validates the draft and, on success, returns a snapshot of what was
// submitted and resets the draft to empty. On failure the draft is untouched.
func (d *Draft) Submit() (Draft, error) {
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	submitted := d.Clone()
	d.Reset()
	return submitted, nil
}

func (d *Draft) Reset() {
	d.FromLocation = ""
	d.ToLocation = ""
	d.Items = nil
}

func (d *Draft) Clone() Draft {
	c := *d
	c.Items = append([]Item(nil), d.Items...)
	return c
}

// ParseQuantity normalises raw quantity input: anything that is not a positive
// integer falls back to 1.
func ParseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Candidate is a product that can be staged, with its stock at the source.
type Candidate struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Available int64  `json:"available"`
}

// AvailableCandidates hides products already staged and applies the add-product
// search over name and SKU. Input order is preserved.
func AvailableCandidates(candidates []Candidate, d *Draft, term string) []Candidate {
	term = strings.ToLower(term)
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if d.Contains(c.ProductID) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.SKU), term) {
			continue
		}
		out = append(out, c)
	}
	return out
}
