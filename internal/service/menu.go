package service

import (
	"github.com/koolabhinay07/Lollyzz/internal/availability"
	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/filter"
	"go.uber.org/zap"
)

type MenuService struct {
	catalog      *catalog.Catalog
	availability *availability.Store
	logger       *zap.SugaredLogger
}

func NewMenuService(
	catalog *catalog.Catalog,
	availability *availability.Store,
	logger *zap.SugaredLogger,
) *MenuService {
	return &MenuService{
		catalog:      catalog,
		availability: availability,
		logger:       logger,
	}
}

// MenuView is the rendered menu: filtered sections with display labels and
// per-item availability, plus the category strip state.
type MenuView struct {
	Sections           []ViewSection `json:"sections"`
	EligibleCategories []string      `json:"eligible_categories"`
	SelectedCategories []string      `json:"selected_categories"`
}

type ViewSection struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Items    []ViewItem `json:"items"`
}

type ViewItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Veg       bool          `json:"veg"`
	Available bool          `json:"available"`
	Variants  []ViewVariant `json:"variants"`
}

type ViewVariant struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

// View recomputes the visible menu for the given filter inputs. Only an
// authenticated owner may include unavailable items; the flag is dropped for
// everyone else before the pipeline runs.
func (s *MenuService) View(in filter.Input, owner bool) MenuView {
	if !owner {
		in.IncludeUnavailable = false
	}

	result := filter.Apply(s.catalog.Sections(), catalog.CategoryOrder, s.availability.IsAvailable, in)

	view := MenuView{
		Sections:           make([]ViewSection, 0, len(result.Sections)),
		EligibleCategories: result.EligibleCategories,
		SelectedCategories: result.SelectedCategories,
	}

	for _, section := range result.Sections {
		vs := ViewSection{
			ID:       section.ID,
			Title:    section.Title,
			Subtitle: section.Subtitle,
			Items:    make([]ViewItem, 0, len(section.Items)),
		}
		for _, item := range section.Items {
			vs.Items = append(vs.Items, s.viewItem(item))
		}
		view.Sections = append(view.Sections, vs)
	}

	return view
}

// Categories returns the full category navigation list in preference order,
// independent of any filtering.
func (s *MenuService) Categories() []ViewSection {
	result := filter.Apply(s.catalog.Sections(), catalog.CategoryOrder, func(string) bool { return true }, filter.Input{})

	ordered := make([]ViewSection, 0, len(result.EligibleCategories))
	byID := make(map[string]domain.MenuSection, len(result.Sections))
	for _, section := range result.Sections {
		byID[section.ID] = section
	}
	for _, id := range result.EligibleCategories {
		section := byID[id]
		ordered = append(ordered, ViewSection{
			ID:       section.ID,
			Title:    section.Title,
			Subtitle: section.Subtitle,
		})
	}
	return ordered
}

func (s *MenuService) viewItem(item domain.MenuItem) ViewItem {
	vi := ViewItem{
		ID:        item.ID,
		Name:      item.Name,
		Veg:       item.Veg,
		Available: s.availability.IsAvailable(item.ID),
		Variants:  make([]ViewVariant, 0, len(item.Variants)),
	}
	for _, v := range item.Variants {
		vi.Variants = append(vi.Variants, ViewVariant{
			ID:    v.ID,
			Label: filter.NormalizeVariantLabel(v.Label),
			Price: v.Price,
		})
	}
	return vi
}
