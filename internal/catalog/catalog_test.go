package catalog

import (
	"testing"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SatisfiesInvariants(t *testing.T) {
	c := Default()

	require.NotEmpty(t, c.Sections())
	assert.Greater(t, c.ItemCount(), 30)

	// every item resolves back to exactly one section
	for _, section := range c.Sections() {
		for _, item := range section.Items {
			sectionID, ok := c.SectionOfItem(item.ID)
			require.True(t, ok, "item %s has no section", item.ID)
			assert.Equal(t, section.ID, sectionID)
			assert.NotEmpty(t, item.Variants, "item %s has no variants", item.ID)
		}
	}
}

func TestDefault_ContainsKnownItems(t *testing.T) {
	c := Default()

	paneer, ok := c.Item("main-paneer-punjabi")
	require.True(t, ok)
	assert.Equal(t, "Paneer Punjabi", paneer.Name)
	assert.True(t, paneer.Veg)

	momos, ok := c.Item("momo-chicken-kurkure")
	require.True(t, ok)
	assert.Equal(t, "Chicken Kurkure Momos", momos.Name)
	assert.False(t, momos.Veg)
}

func TestNew_RejectsDuplicateItemIDs(t *testing.T) {
	_, err := New([]domain.MenuSection{
		{
			ID:    "a",
			Title: "A",
			Items: []domain.MenuItem{
				{ID: "item-1", Name: "One", Variants: []domain.Variant{{ID: "v", Label: "Full", Price: 10}}},
			},
		},
		{
			ID:    "b",
			Title: "B",
			Items: []domain.MenuItem{
				{ID: "item-1", Name: "Dup", Variants: []domain.Variant{{ID: "v", Label: "Full", Price: 10}}},
			},
		},
	})

	assert.ErrorContains(t, err, "duplicate item id")
}

func TestNew_RejectsItemWithoutVariants(t *testing.T) {
	_, err := New([]domain.MenuSection{
		{
			ID:    "a",
			Title: "A",
			Items: []domain.MenuItem{{ID: "item-1", Name: "One"}},
		},
	})

	assert.ErrorContains(t, err, "no variants")
}

func TestNew_RejectsDuplicateSectionIDs(t *testing.T) {
	_, err := New([]domain.MenuSection{
		{ID: "a", Title: "A"},
		{ID: "a", Title: "A again"},
	})

	assert.ErrorContains(t, err, "duplicate section id")
}

func TestNew_RejectsNegativePrice(t *testing.T) {
	_, err := New([]domain.MenuSection{
		{
			ID:    "a",
			Title: "A",
			Items: []domain.MenuItem{
				{ID: "item-1", Name: "One", Variants: []domain.Variant{{ID: "v", Label: "Full", Price: -5}}},
			},
		},
	})

	assert.ErrorContains(t, err, "negative price")
}

func TestCategoryOrder_CoversDefaultSections(t *testing.T) {
	c := Default()

	ordered := make(map[string]struct{}, len(CategoryOrder))
	for _, id := range CategoryOrder {
		ordered[id] = struct{}{}
	}

	for _, section := range c.Sections() {
		_, ok := ordered[section.ID]
		assert.True(t, ok, "section %s missing from CategoryOrder", section.ID)
	}
}
