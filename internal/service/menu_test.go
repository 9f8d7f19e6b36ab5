package service

import (
	"context"
	"testing"

	"github.com/koolabhinay07/Lollyzz/internal/availability"
	"github.com/koolabhinay07/Lollyzz/internal/catalog"
	"github.com/koolabhinay07/Lollyzz/internal/domain"
	"github.com/koolabhinay07/Lollyzz/internal/filter"
	filestore "github.com/koolabhinay07/Lollyzz/internal/store/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMenuService(t *testing.T) (*MenuService, *availability.Store) {
	t.Helper()

	storage, err := filestore.New(filestore.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	store := availability.NewStore(context.Background(), storage, logger)

	return NewMenuService(catalog.Default(), store, logger), store
}

func viewItemNames(view MenuView) []string {
	var names []string
	for _, section := range view.Sections {
		for _, item := range section.Items {
			names = append(names, item.Name)
		}
	}
	return names
}

func TestView_PaneerVegScenario(t *testing.T) {
	svc, _ := newTestMenuService(t)

	view := svc.View(filter.Input{Query: "paneer", Diet: domain.DietVeg}, false)

	names := viewItemNames(view)
	assert.Contains(t, names, "Paneer Punjabi")
	assert.Contains(t, names, "Paneer Pakora")
	assert.NotContains(t, names, "Chicken Kurkure Momos")

	for _, section := range view.Sections {
		for _, item := range section.Items {
			assert.True(t, item.Veg, "item %s is not veg", item.Name)
		}
	}
}

func TestView_NonOwnerCannotIncludeUnavailable(t *testing.T) {
	svc, store := newTestMenuService(t)
	ctx := context.Background()

	store.SetAvailable(ctx, "main-paneer-punjabi", false)

	customer := svc.View(filter.Input{Diet: domain.DietAll, IncludeUnavailable: true}, false)
	assert.NotContains(t, viewItemNames(customer), "Paneer Punjabi")

	owner := svc.View(filter.Input{Diet: domain.DietAll, IncludeUnavailable: true}, true)
	assert.Contains(t, viewItemNames(owner), "Paneer Punjabi")
}

func TestView_MarksUnavailableItemsForOwner(t *testing.T) {
	svc, store := newTestMenuService(t)
	ctx := context.Background()

	store.SetAvailable(ctx, "main-paneer-punjabi", false)

	owner := svc.View(filter.Input{Diet: domain.DietAll, IncludeUnavailable: true}, true)

	var found bool
	for _, section := range owner.Sections {
		for _, item := range section.Items {
			if item.ID == "main-paneer-punjabi" {
				found = true
				assert.False(t, item.Available)
			}
		}
	}
	assert.True(t, found)
}

func TestView_NormalizesVariantLabels(t *testing.T) {
	svc, _ := newTestMenuService(t)

	view := svc.View(filter.Input{Query: "margherita", Diet: domain.DietAll}, false)

	require.Len(t, view.Sections, 1)
	require.Len(t, view.Sections[0].Items, 1)

	labels := make([]string, 0, 2)
	for _, v := range view.Sections[0].Items[0].Variants {
		labels = append(labels, v.Label)
	}
	assert.Equal(t, []string{"7 inches", "10 inches"}, labels)
}

func TestCategories_PreferenceOrder(t *testing.T) {
	svc, _ := newTestMenuService(t)

	categories := svc.Categories()

	require.NotEmpty(t, categories)
	assert.Equal(t, "momos", categories[0].ID)

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, catalog.CategoryOrder, ids)
}
