package filter

import (
	"strings"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

// AvailabilityFunc reports whether an item is currently available. The
// pipeline never reads the overlay directly; it only sees this predicate.
type AvailabilityFunc func(itemID string) bool

// Input is the ephemeral UI filter state. It is never persisted.
type Input struct {
	Query string
	Diet  domain.Diet
	// Categories is the selected-category set; empty means no category
	// filtering.
	Categories []string
	// IncludeUnavailable passes unavailable items through the availability
	// stage. The owner gate is enforced by the caller; the pipeline itself
	// has no concept of identity.
	IncludeUnavailable bool
}

// Result is the recomputed view state. Sections is what the viewer sees;
// EligibleCategories and SelectedCategories drive the category strip.
type Result struct {
	Sections []domain.MenuSection `json:"sections"`
	// EligibleCategories are the section ids with at least one item in the
	// base-filtered result, in navigation preference order. Eligibility is
	// independent of category selection so a selection can never hide the
	// category it points at.
	EligibleCategories []string `json:"eligible_categories"`
	// SelectedCategories is the repaired selection: requested categories that
	// are still eligible, in request order.
	SelectedCategories []string `json:"selected_categories"`
}

// Apply runs the full pipeline from scratch: availability, search, diet, then
// category narrowing on top of the base result. It is pure and deterministic;
// every input change recomputes the whole thing.
func Apply(sections []domain.MenuSection, categoryOrder []string, isAvailable AvailabilityFunc, in Input) Result {
	base := sections
	base = availabilityStage(base, isAvailable, in.IncludeUnavailable)
	base = searchStage(base, in.Query)
	base = dietStage(base, in.Diet)

	eligible := eligibleCategories(base, categoryOrder)
	selected := repairSelection(in.Categories, eligible)

	return Result{
		Sections:           categoryStage(base, selected),
		EligibleCategories: eligible,
		SelectedCategories: selected,
	}
}

func availabilityStage(sections []domain.MenuSection, isAvailable AvailabilityFunc, includeUnavailable bool) []domain.MenuSection {
	if includeUnavailable {
		return sections
	}

	return filterItems(sections, func(item domain.MenuItem) bool {
		return isAvailable(item.ID)
	})
}

func searchStage(sections []domain.MenuSection, query string) []domain.MenuSection {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return sections
	}

	return filterItems(sections, func(item domain.MenuItem) bool {
		return strings.Contains(searchText(item), q)
	})
}

// searchText is the case-folded concatenation of the item name and all
// normalized variant labels.
func searchText(item domain.MenuItem) string {
	var b strings.Builder
	b.WriteString(item.Name)
	for _, v := range item.Variants {
		b.WriteByte(' ')
		b.WriteString(NormalizeVariantLabel(v.Label))
	}
	return strings.ToLower(b.String())
}

func dietStage(sections []domain.MenuSection, diet domain.Diet) []domain.MenuSection {
	if diet == "" || diet == domain.DietAll {
		return sections
	}

	return filterItems(sections, func(item domain.MenuItem) bool {
		return diet.Matches(item)
	})
}

// categoryStage narrows the base result to the selected sections. An empty
// selection passes everything through, so the category filter can only ever
// narrow, never widen.
func categoryStage(base []domain.MenuSection, selected []string) []domain.MenuSection {
	if len(selected) == 0 {
		return base
	}

	want := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}

	out := make([]domain.MenuSection, 0, len(selected))
	for _, section := range base {
		if _, ok := want[section.ID]; ok {
			out = append(out, section)
		}
	}
	return out
}

func eligibleCategories(base []domain.MenuSection, categoryOrder []string) []string {
	present := make(map[string]struct{}, len(base))
	for _, section := range base {
		present[section.ID] = struct{}{}
	}

	out := make([]string, 0, len(base))
	for _, id := range categoryOrder {
		if _, ok := present[id]; ok {
			out = append(out, id)
			delete(present, id)
		}
	}
	// sections outside the preference order keep their display order
	for _, section := range base {
		if _, ok := present[section.ID]; ok {
			out = append(out, section.ID)
		}
	}
	return out
}

// repairSelection silently drops selected categories that are no longer
// eligible, so a selection is never left pointing at a hidden section.
func repairSelection(selected, eligible []string) []string {
	if len(selected) == 0 {
		return nil
	}

	ok := make(map[string]struct{}, len(eligible))
	for _, id := range eligible {
		ok[id] = struct{}{}
	}

	var out []string
	for _, id := range selected {
		if _, eligible := ok[id]; eligible {
			out = append(out, id)
		}
	}
	return out
}

// filterItems keeps items passing the predicate and drops sections left
// empty. Item and section order is preserved.
func filterItems(sections []domain.MenuSection, keep func(domain.MenuItem) bool) []domain.MenuSection {
	out := make([]domain.MenuSection, 0, len(sections))
	for _, section := range sections {
		items := make([]domain.MenuItem, 0, len(section.Items))
		for _, item := range section.Items {
			if keep(item) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		filtered := section
		filtered.Items = items
		out = append(out, filtered)
	}
	return out
}
