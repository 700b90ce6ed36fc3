package transfer

import (
	"errors"
	"testing"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
)

func validationCode(t *testing.T, err error) string {
	t.Helper()
	var ve *apperror.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	return ve.Code
}

func TestDraft_States(t *testing.T) {
	var d Draft
	if d.State() != StateEmpty {
		t.Errorf("Expected empty, got %s", d.State())
	}

	d.SetFrom("warehouse")
	if d.State() != StateEmpty {
		t.Errorf("Expected empty with only a source, got %s", d.State())
	}

	d.SetTo("store-1")
	if d.State() != StateLocationsChosen {
		t.Errorf("Expected locations_chosen, got %s", d.State())
	}

	if err := d.AddItem("1", 142); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if d.State() != StateItemsStaged {
		t.Errorf("Expected items_staged, got %s", d.State())
	}

	if _, err := d.Submit(); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if d.State() != StateEmpty {
		t.Errorf("Expected empty after submit, got %s", d.State())
	}
}

func TestDraft_AddItemRejectsDuplicate(t *testing.T) {
	var d Draft
	if err := d.AddItem("x", 10); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	err := d.AddItem("x", 10)
	if code := validationCode(t, err); code != CodeDuplicateItem {
		t.Errorf("Expected %s, got %s", CodeDuplicateItem, code)
	}
	if len(d.Items) != 1 {
		t.Errorf("Expected items to stay at length 1, got %d", len(d.Items))
	}
	if d.Items[0].Quantity != 1 {
		t.Errorf("Expected new item quantity 1, got %d", d.Items[0].Quantity)
	}
}

func TestDraft_UpdateAndRemove(t *testing.T) {
	var d Draft
	_ = d.AddItem("a", 142)
	_ = d.AddItem("b", 87)
	_ = d.AddItem("c", 23)

	if err := d.UpdateQuantity(1, 500); err != nil {
		t.Fatalf("UpdateQuantity failed: %v", err)
	}
	if d.Items[1].Quantity != 500 {
		t.Errorf("Expected quantity accepted as given, got %d", d.Items[1].Quantity)
	}

	if err := d.RemoveItem(0); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(d.Items) != 2 || d.Items[0].ProductID != "b" || d.Items[1].ProductID != "c" {
		t.Errorf("Expected later items to shift down, got %+v", d.Items)
	}
	if d.TotalItems() != 501 {
		t.Errorf("Expected 501 total items, got %d", d.TotalItems())
	}

	for _, idx := range []int{-1, 2} {
		if code := validationCode(t, d.UpdateQuantity(idx, 1)); code != CodeItemIndex {
			t.Errorf("UpdateQuantity(%d): expected %s, got %s", idx, CodeItemIndex, code)
		}
		if code := validationCode(t, d.RemoveItem(idx)); code != CodeItemIndex {
			t.Errorf("RemoveItem(%d): expected %s, got %s", idx, CodeItemIndex, code)
		}
	}
}

func TestDraft_SubmitValidationOrder(t *testing.T) {
	testCases := []struct {
		name     string
		from     string
		to       string
		items    []string
		expected string
	}{
		{"nothing set", "", "", nil, CodeSourceRequired},
		{"missing source with items", "", "store-1", []string{"1"}, CodeSourceRequired},
		{"missing destination", "warehouse", "", []string{"1"}, CodeDestinationRequired},
		{"same location", "warehouse", "warehouse", nil, CodeSameLocation},
		{"same location with items", "store-1", "store-1", []string{"1"}, CodeSameLocation},
		{"no items", "warehouse", "store-1", nil, CodeItemsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Draft{FromLocation: tc.from, ToLocation: tc.to}
			for _, id := range tc.items {
				_ = d.AddItem(id, 10)
			}
			before := d.Clone()

			_, err := d.Submit()
			if code := validationCode(t, err); code != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, code)
			}
			if d.FromLocation != before.FromLocation || d.ToLocation != before.ToLocation || len(d.Items) != len(before.Items) {
				t.Error("Expected a failed submit to leave the draft unchanged")
			}
		})
	}
}

func TestDraft_SubmitReturnsSnapshot(t *testing.T) {
	d := Draft{ID: "t-1"}
	d.SetFrom("warehouse")
	d.SetTo("store-2")
	_ = d.AddItem("1", 142)
	_ = d.UpdateQuantity(0, 18)

	submitted, err := d.Submit()
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if submitted.FromLocation != "warehouse" || submitted.ToLocation != "store-2" {
		t.Errorf("Unexpected snapshot locations: %+v", submitted)
	}
	if len(submitted.Items) != 1 || submitted.Items[0].Quantity != 18 {
		t.Errorf("Unexpected snapshot items: %+v", submitted.Items)
	}
	if len(d.Items) != 0 || d.FromLocation != "" || d.ToLocation != "" {
		t.Errorf("Expected draft cleared, got %+v", d)
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := map[string]int64{
		"5":   5,
		" 12": 12,
		"0":   1,
		"-3":  1,
		"abc": 1,
		"":    1,
		"2.5": 1,
	}
	for raw, want := range testCases {
		if got := ParseQuantity(raw); got != want {
			t.Errorf("ParseQuantity(%q): expected %d, got %d", raw, want, got)
		}
	}
}

func TestAvailableCandidates(t *testing.T) {
	candidates := []Candidate{
		{ProductID: "1", Name: "Premium T-Shirt", SKU: "TS-PRE-M", Available: 142},
		{ProductID: "2", Name: "Standard Hoodie", SKU: "HD-STD-L", Available: 87},
		{ProductID: "3", Name: "Designer Jacket", SKU: "JK-DSG-S", Available: 23},
	}
	var d Draft
	_ = d.AddItem("2", 87)

	all := AvailableCandidates(candidates, &d, "")
	if len(all) != 2 || all[0].ProductID != "1" || all[1].ProductID != "3" {
		t.Errorf("Expected staged product hidden, got %+v", all)
	}

	bySKU := AvailableCandidates(candidates, &d, "jk-")
	if len(bySKU) != 1 || bySKU[0].ProductID != "3" {
		t.Errorf("Expected SKU search to match the jacket, got %+v", bySKU)
	}
}
