package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nashtto/partnerctl/internal/models"
)

func TestMapDatabaseMenuItemsToFrontendJoin(t *testing.T) {
	items := []models.DatabaseMenuItem{
		{ID: "1", Name: "Samosa", CategoryID: "c1", CategoryName: "Starters"},
		{ID: "2", Name: "Dal", CategoryID: "c2"},
		{ID: "3", Name: "Mystery"},
	}
	categoryNames := map[string]string{
		"c1": "Stale lookup value",
		"c2": "Main Course",
	}

	mapped := MapDatabaseMenuItemsToFrontend(items, categoryNames)

	require.Len(t, mapped, len(items))
	// Row join field wins over the lookup; the lookup fills gaps; nothing
	// resolvable falls back to Uncategorized.
	assert.Equal(t, "Starters", mapped[0].Category)
	assert.Equal(t, "Main Course", mapped[1].Category)
	assert.Equal(t, "Uncategorized", mapped[2].Category)
	assert.Equal(t, []string{"1", "2", "3"}, []string{mapped[0].ID, mapped[1].ID, mapped[2].ID})
}

func TestMapDatabaseMenuItemsToFrontendNilLookup(t *testing.T) {
	mapped := MapDatabaseMenuItemsToFrontend([]models.DatabaseMenuItem{{ID: "1"}}, nil)

	require.Len(t, mapped, 1)
	assert.Equal(t, "Uncategorized", mapped[0].Category)
}

func TestMapDatabaseOrdersToFrontendJoin(t *testing.T) {
	orders := []models.DatabaseOrder{
		{ID: "o1", CustomerName: "Ravi", TotalAmount: 300},
		{ID: "o2", CustomerName: "Meera", TotalAmount: 150},
	}
	itemsByOrder := map[string][]models.DatabaseOrderItem{
		"o1": {{ID: "l1", Name: "Dal", Quantity: 2, UnitPrice: 150}},
	}

	mapped := MapDatabaseOrdersToFrontend(orders, itemsByOrder)

	require.Len(t, mapped, 2)
	assert.Equal(t, "o1", mapped[0].ID)
	assert.Len(t, mapped[0].Items, 1)
	assert.Equal(t, "o2", mapped[1].ID)
	assert.Empty(t, mapped[1].Items, "orders with no resolved lines still map")
}

func TestMapDatabaseRestaurantsToFrontendJoin(t *testing.T) {
	restaurants := []models.DatabaseRestaurant{{ID: "r1"}, {ID: "r2"}}
	staff := map[string][]models.FrontendStaff{
		"r2": {{ID: "s1", Name: "Asha"}},
	}

	mapped := MapDatabaseRestaurantsToFrontend(restaurants, staff)

	require.Len(t, mapped, 2)
	assert.Empty(t, mapped[0].Staff)
	assert.Len(t, mapped[1].Staff, 1)
}

func TestBulkMappersPreserveEmptyInput(t *testing.T) {
	assert.Empty(t, MapDatabaseMenuItemsToFrontend(nil, nil))
	assert.Empty(t, MapDatabaseOrdersToFrontend(nil, nil))
	assert.Empty(t, MapDatabaseRestaurantsToFrontend(nil, nil))
}
