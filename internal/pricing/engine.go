package pricing

import "sort"

// Quote is the computed result of pricing a module selection.
// Invariants: Total == Subtotal - DiscountAmount and
// DiscountAmount == Subtotal * DiscountPercent / 100. Amounts are kept
// unrounded; callers round at display time only.
type Quote struct {
	Subtotal        float64  `json:"subtotal"`
	DiscountPercent float64  `json:"discountPercent"`
	DiscountAmount  float64  `json:"discountAmount"`
	Total           float64  `json:"total"`
	SelectedModules []Module `json:"selectedModules"`
}

// Calculate prices a selection of module identifiers against the
// default catalog. See Catalog.Calculate.
func Calculate(selectedIDs []string) Quote {
	return DefaultCatalog.Calculate(selectedIDs)
}

// Calculate resolves the given identifiers, drops unknown ones,
// deduplicates by first occurrence, and applies the highest qualifying
// discount tier. Pure; an empty or fully-invalid selection yields the
// all-zero quote.
func (c Catalog) Calculate(selectedIDs []string) Quote {
	seen := make(map[string]bool, len(selectedIDs))
	modules := make([]Module, 0, len(selectedIDs))

	for _, id := range selectedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if m, ok := c.ModuleByID(id); ok {
			modules = append(modules, m)
		}
	}

	var subtotal float64
	for _, m := range modules {
		subtotal += m.Price
	}

	percent := c.resolveDiscount(len(modules))
	discount := subtotal * percent / 100

	return Quote{
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discount,
		Total:           subtotal - discount,
		SelectedModules: modules,
	}
}

// resolveDiscount scans tiers from the highest threshold down and
// returns the first one the count qualifies for; 0 when none does.
func (c Catalog) resolveDiscount(moduleCount int) float64 {
	tiers := make([]DiscountTier, len(c.Tiers))
	copy(tiers, c.Tiers)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].ModuleCount > tiers[j].ModuleCount
	})

	for _, t := range tiers {
		if moduleCount >= t.ModuleCount {
			return t.Percent
		}
	}
	return 0
}
