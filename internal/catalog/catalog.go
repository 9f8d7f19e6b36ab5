package catalog

import (
	"fmt"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

// Catalog is the immutable menu. It is built once at startup (from the
// embedded data or the sheets loader) and never mutated afterwards; there are
// no create/update/delete operations on it.
type Catalog struct {
	sections      []domain.MenuSection
	itemsByID     map[string]domain.MenuItem
	sectionOfItem map[string]string
}

// New validates the menu invariants and builds the lookup maps:
// globally unique item IDs, unique section IDs, at least one variant per
// item, variant IDs unique within their item, non-negative prices.
func New(sections []domain.MenuSection) (*Catalog, error) {
	c := &Catalog{
		sections:      sections,
		itemsByID:     make(map[string]domain.MenuItem),
		sectionOfItem: make(map[string]string),
	}

	sectionIDs := make(map[string]struct{}, len(sections))
	for _, section := range sections {
		if section.ID == "" {
			return nil, fmt.Errorf("section %q has empty id", section.Title)
		}
		if _, dup := sectionIDs[section.ID]; dup {
			return nil, fmt.Errorf("duplicate section id %q", section.ID)
		}
		sectionIDs[section.ID] = struct{}{}

		for _, item := range section.Items {
			if item.ID == "" {
				return nil, fmt.Errorf("item %q in section %q has empty id", item.Name, section.ID)
			}
			if _, dup := c.itemsByID[item.ID]; dup {
				return nil, fmt.Errorf("duplicate item id %q", item.ID)
			}
			if len(item.Variants) == 0 {
				return nil, fmt.Errorf("item %q has no variants", item.ID)
			}

			variantIDs := make(map[string]struct{}, len(item.Variants))
			for _, v := range item.Variants {
				if _, dup := variantIDs[v.ID]; dup {
					return nil, fmt.Errorf("item %q has duplicate variant id %q", item.ID, v.ID)
				}
				variantIDs[v.ID] = struct{}{}

				if v.Price < 0 {
					return nil, fmt.Errorf("item %q variant %q has negative price", item.ID, v.ID)
				}
			}

			c.itemsByID[item.ID] = item
			c.sectionOfItem[item.ID] = section.ID
		}
	}

	return c, nil
}

// Sections returns the menu in display order. Callers must treat the result
// as read-only.
func (c *Catalog) Sections() []domain.MenuSection {
	return c.sections
}

func (c *Catalog) Item(id string) (domain.MenuItem, bool) {
	item, ok := c.itemsByID[id]
	return item, ok
}

func (c *Catalog) HasItem(id string) bool {
	_, ok := c.itemsByID[id]
	return ok
}

// SectionOfItem returns the id of the section the item belongs to.
func (c *Catalog) SectionOfItem(itemID string) (string, bool) {
	sectionID, ok := c.sectionOfItem[itemID]
	return sectionID, ok
}

func (c *Catalog) ItemCount() int {
	return len(c.itemsByID)
}
