package mapping

import "github.com/nashtto/partnerctl/internal/models"

// Bulk mappers apply the single-record mappers across a sequence, joining in
// auxiliary data from caller-supplied lookups. Output order follows input
// order and the count is always preserved.

// MapDatabaseRestaurantsToFrontend maps restaurants, joining each with its
// staff list from staffByRestaurant (keyed by restaurant id).
func MapDatabaseRestaurantsToFrontend(restaurants []models.DatabaseRestaurant, staffByRestaurant map[string][]models.FrontendStaff) []models.FrontendRestaurant {
	mapped := make([]models.FrontendRestaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		mapped = append(mapped, MapDatabaseRestaurantToFrontend(restaurant, staffByRestaurant[restaurant.ID]))
	}
	return mapped
}

// MapDatabaseMenuItemsToFrontend maps menu items, resolving each category
// name from the row's join field first, then categoryNames (keyed by category
// id). Items with no resolvable category become "Uncategorized".
func MapDatabaseMenuItemsToFrontend(items []models.DatabaseMenuItem, categoryNames map[string]string) []models.FrontendMenuItemWithCategory {
	mapped := make([]models.FrontendMenuItemWithCategory, 0, len(items))
	for _, item := range items {
		categoryName := item.CategoryName
		if categoryName == "" {
			categoryName = categoryNames[item.CategoryID]
		}
		mapped = append(mapped, MapDatabaseMenuItemToFrontend(item, categoryName))
	}
	return mapped
}

// MapDatabaseOrdersToFrontend maps orders, joining each with its lines from
// itemsByOrder (keyed by order id).
func MapDatabaseOrdersToFrontend(orders []models.DatabaseOrder, itemsByOrder map[string][]models.DatabaseOrderItem) []models.FrontendOrder {
	mapped := make([]models.FrontendOrder, 0, len(orders))
	for _, order := range orders {
		mapped = append(mapped, MapDatabaseOrderToFrontend(order, itemsByOrder[order.ID]))
	}
	return mapped
}
