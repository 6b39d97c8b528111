package catalog

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func ptr(f float64) *float64 { return &f }

func fixtureList() []Product {
	return []Product{
		{ID: uuid.New(), Name: "Solitaire Pendant", Category: "Pendants", Material: "diamond", Karat: "18K", Price: 300},
		{ID: uuid.New(), Name: "gold bangle", Category: "Bangles", Material: "gold", Karat: "22K", Price: 100, SalePrice: ptr(50)},
		{ID: uuid.New(), Name: "Aura Ring", Category: "Rings", Material: "gold", Karat: "18K", Price: 200},
		{ID: uuid.New(), Name: "Heritage Ring", Category: "Rings", Material: "gold", Karat: "14K", Price: 200},
	}
}

func TestApply_OutputIsSubsetSatisfyingAllPredicates(t *testing.T) {
	list := fixtureList()
	f := Filters{Category: "Rings", Material: "gold", Karat: "18K", MinPrice: 0, MaxPrice: 5000}

	out := Apply(list, f, SortFeatured)

	if len(out) != 1 {
		t.Fatalf("expected 1 match got %d", len(out))
	}
	byID := map[uuid.UUID]bool{}
	for _, p := range list {
		byID[p.ID] = true
	}
	for _, p := range out {
		if !byID[p.ID] {
			t.Fatalf("result contains product not in input: %s", p.Name)
		}
		if p.Category != "Rings" || p.Material != "gold" || p.Karat != "18K" {
			t.Fatalf("result violates a predicate: %+v", p)
		}
	}
}

func TestApply_DoesNotMutateInputAndIsIdempotent(t *testing.T) {
	list := fixtureList()
	before := make([]Product, len(list))
	copy(before, list)

	f := Filters{Material: "gold"}
	first := Apply(list, f, SortPriceLow)
	second := Apply(list, f, SortPriceLow)

	if !reflect.DeepEqual(list, before) {
		t.Fatalf("input list was mutated")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Apply produced different output")
	}
}

func TestApply_PriceRangeUsesEffectivePrice(t *testing.T) {
	onSale := Product{ID: uuid.New(), Name: "Sale Ring", Price: 100, SalePrice: ptr(50)}
	list := []Product{onSale}

	if out := Apply(list, Filters{MinPrice: 60, MaxPrice: 200}, SortFeatured); len(out) != 0 {
		t.Fatalf("sale price 50 should be excluded from [60,200], got %d", len(out))
	}
	if out := Apply(list, Filters{MinPrice: 40, MaxPrice: 60}, SortFeatured); len(out) != 1 {
		t.Fatalf("sale price 50 should be included in [40,60], got %d", len(out))
	}
}

func TestApply_MaxPriceZeroIsUnbounded(t *testing.T) {
	list := fixtureList()
	out := Apply(list, Filters{}, SortFeatured)
	if len(out) != len(list) {
		t.Fatalf("empty filters should pass everything: got %d of %d", len(out), len(list))
	}
}

func TestApply_SortPriceLowUsesEffectivePrice(t *testing.T) {
	list := []Product{
		{ID: uuid.New(), Name: "a", Price: 300},
		{ID: uuid.New(), Name: "b", Price: 100, SalePrice: ptr(50)},
		{ID: uuid.New(), Name: "c", Price: 200},
	}
	out := Apply(list, Filters{}, SortPriceLow)
	got := []float64{EffectivePrice(out[0]), EffectivePrice(out[1]), EffectivePrice(out[2])}
	want := []float64{50, 200, 300}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("price-low order: got %v want %v", got, want)
	}
}

func TestApply_SortPriceHigh(t *testing.T) {
	out := Apply(fixtureList(), Filters{}, SortPriceHigh)
	for i := 1; i < len(out); i++ {
		if EffectivePrice(out[i-1]) < EffectivePrice(out[i]) {
			t.Fatalf("price-high order violated at %d", i)
		}
	}
}

func TestApply_SortTiesKeepFetchOrder(t *testing.T) {
	list := fixtureList()
	out := Apply(list, Filters{}, SortPriceLow)
	// Aura Ring and Heritage Ring are both effective price 200; the
	// fetch order has Aura first.
	var ringOrder []string
	for _, p := range out {
		if EffectivePrice(p) == 200 {
			ringOrder = append(ringOrder, p.Name)
		}
	}
	want := []string{"Aura Ring", "Heritage Ring"}
	if !reflect.DeepEqual(ringOrder, want) {
		t.Fatalf("tied products reordered: got %v want %v", ringOrder, want)
	}
}

func TestApply_SortNameIsCaseInsensitive(t *testing.T) {
	out := Apply(fixtureList(), Filters{}, SortName)
	want := []string{"Aura Ring", "gold bangle", "Heritage Ring", "Solitaire Pendant"}
	for i, p := range out {
		if p.Name != want[i] {
			t.Fatalf("name order at %d: got %q want %q", i, p.Name, want[i])
		}
	}
}

func TestApply_FeaturedKeepsFetchOrder(t *testing.T) {
	list := fixtureList()
	out := Apply(list, Filters{}, SortFeatured)
	for i := range out {
		if out[i].ID != list[i].ID {
			t.Fatalf("featured sort reordered element %d", i)
		}
	}
}

func TestEffectivePrice(t *testing.T) {
	if got := EffectivePrice(Product{Price: 100}); got != 100 {
		t.Fatalf("expected listed price, got %v", got)
	}
	if got := EffectivePrice(Product{Price: 100, SalePrice: ptr(50)}); got != 50 {
		t.Fatalf("expected sale price, got %v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	if ParseSortKey("price-low") != SortPriceLow {
		t.Fatalf("price-low not recognized")
	}
	if ParseSortKey("bogus") != SortFeatured {
		t.Fatalf("unknown keys should fall back to featured")
	}
	if ParseSortKey("") != SortFeatured {
		t.Fatalf("empty key should fall back to featured")
	}
}
