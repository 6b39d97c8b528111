package catalog

import (
	"sort"
	"strings"
)

// Apply filters and sorts a fetched catalog. It never mutates its
// input: the result is always a fresh slice. All four filter
// dimensions are ANDed; price predicates evaluate against the
// effective price. Sorting is stable, so ties and the featured key
// keep the fetch order (newest first).
func Apply(list []Product, f Filters, key SortKey) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return EffectivePrice(out[i]) < EffectivePrice(out[j])
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return EffectivePrice(out[i]) > EffectivePrice(out[j])
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}

	return out
}

func matches(p Product, f Filters) bool {
	if !dimensionMatches(f.Category, p.Category) {
		return false
	}
	if !dimensionMatches(f.Material, p.Material) {
		return false
	}
	if !dimensionMatches(f.Karat, p.Karat) {
		return false
	}
	price := EffectivePrice(p)
	if price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && price > f.MaxPrice {
		return false
	}
	return true
}

func dimensionMatches(want, have string) bool {
	return want == "" || want == FilterAll || want == have
}
