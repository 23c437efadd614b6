// Package mapping translates between the app-facing (camelCase) and
// persistence-facing (snake_case) shapes of the five partner entities.
//
// Every function here is pure and total over structurally valid input:
// to-database mappers fill only the fields derivable from the app record plus
// the supplied foreign keys, leaving server-owned fields (ids, timestamps,
// computed aggregates) at their zero value so serialized payloads omit them;
// to-frontend mappers always return a fully populated app record, defaulting
// absent optionals to empty collections or caller-supplied fallbacks.
package mapping

import "github.com/nashtto/partnerctl/internal/models"

// MapFrontendUserToDatabase builds a partial persistence user for inserts.
func MapFrontendUserToDatabase(user models.FrontendUser) models.DatabaseUser {
	return models.DatabaseUser{
		Name:         user.Name,
		Email:        user.Email,
		RestaurantID: user.RestaurantID,
	}
}

// MapDatabaseUserToFrontend converts a persistence user to the app shape.
func MapDatabaseUserToFrontend(user models.DatabaseUser) models.FrontendUser {
	return models.FrontendUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		RestaurantID: user.RestaurantID,
	}
}

// MapFrontendRestaurantToDatabase builds a partial persistence restaurant for
// inserts, attaching the owning user id.
func MapFrontendRestaurantToDatabase(restaurant models.FrontendRestaurant, ownerID string) models.DatabaseRestaurant {
	docs := restaurant.LicenseDocuments
	if docs == nil {
		docs = []string{}
	}
	return models.DatabaseRestaurant{
		Name:             restaurant.Name,
		CuisineType:      restaurant.CuisineType,
		Description:      restaurant.Description,
		Address:          restaurant.Address,
		Phone:            restaurant.Phone,
		Email:            restaurant.Email,
		ImageURL:         restaurant.ImageURL,
		LogoURL:          restaurant.LogoURL,
		CoverPhotoURL:    restaurant.CoverPhotoURL,
		IsOpen:           restaurant.IsOpen,
		OperatingHours:   restaurant.OperatingHours,
		GSTNumber:        restaurant.GSTNumber,
		FSSAINumber:      restaurant.FSSAINumber,
		LicenseDocuments: docs,
		OwnerID:          ownerID,
	}
}

// MapDatabaseRestaurantToFrontend converts a persistence restaurant to the
// app shape, joining in the staff list resolved by the caller. A nil staff
// list becomes an empty slice.
func MapDatabaseRestaurantToFrontend(restaurant models.DatabaseRestaurant, staff []models.FrontendStaff) models.FrontendRestaurant {
	if staff == nil {
		staff = []models.FrontendStaff{}
	}
	return models.FrontendRestaurant{
		ID:               restaurant.ID,
		Name:             restaurant.Name,
		CuisineType:      restaurant.CuisineType,
		Description:      restaurant.Description,
		Address:          restaurant.Address,
		Phone:            restaurant.Phone,
		Email:            restaurant.Email,
		ImageURL:         restaurant.ImageURL,
		LogoURL:          restaurant.LogoURL,
		CoverPhotoURL:    restaurant.CoverPhotoURL,
		IsOpen:           restaurant.IsOpen,
		OperatingHours:   restaurant.OperatingHours,
		GSTNumber:        restaurant.GSTNumber,
		FSSAINumber:      restaurant.FSSAINumber,
		LicenseDocuments: restaurant.LicenseDocuments,
		Staff:            staff,
	}
}

// MapFrontendStaffToDatabase builds a partial persistence staff record for
// inserts under the given restaurant.
func MapFrontendStaffToDatabase(staff models.FrontendStaff, restaurantID string) models.DatabaseStaff {
	return models.DatabaseStaff{
		RestaurantID: restaurantID,
		Name:         staff.Name,
		Role:         staff.Role,
		Phone:        staff.Phone,
		Email:        staff.Email,
	}
}

// MapDatabaseStaffToFrontend converts a persistence staff record to the app
// shape.
func MapDatabaseStaffToFrontend(staff models.DatabaseStaff) models.FrontendStaff {
	return models.FrontendStaff{
		ID:    staff.ID,
		Name:  staff.Name,
		Role:  staff.Role,
		Phone: staff.Phone,
		Email: staff.Email,
	}
}

// MapFrontendMenuItemToDatabase builds a partial persistence menu item for
// inserts. categoryID may be empty when the item is uncategorized.
func MapFrontendMenuItemToDatabase(item models.FrontendMenuItem, restaurantID, categoryID string) models.DatabaseMenuItem {
	allergens := item.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	addons := item.Addons
	if addons == nil {
		addons = []models.Addon{}
	}
	complimentary := item.ComplimentaryItems
	if complimentary == nil {
		complimentary = []models.ComplimentaryItem{}
	}
	return models.DatabaseMenuItem{
		RestaurantID:       restaurantID,
		CategoryID:         categoryID,
		Name:               item.Name,
		Description:        item.Description,
		Price:              item.Price,
		ImageURL:           item.ImageURL,
		IsAvailable:        item.IsAvailable,
		IsVegetarian:       item.IsVegetarian,
		IsVegan:            item.IsVegan,
		SpiceLevel:         item.SpiceLevel,
		PreparationTime:    item.PreparationTime,
		Allergens:          allergens,
		Tags:               tags,
		Quantity:           item.Quantity,
		Addons:             addons,
		ComplimentaryItems: complimentary,
		NutritionInfo:      item.NutritionInfo,
	}
}

// MapDatabaseMenuItemToFrontend converts a persistence menu item to the app
// shape. An empty categoryName resolves to "Uncategorized".
func MapDatabaseMenuItemToFrontend(item models.DatabaseMenuItem, categoryName string) models.FrontendMenuItemWithCategory {
	category := categoryName
	if category == "" {
		category = "Uncategorized"
	}
	return models.FrontendMenuItemWithCategory{
		FrontendMenuItem: models.FrontendMenuItem{
			ID:                 item.ID,
			Name:               item.Name,
			Description:        item.Description,
			Price:              item.Price,
			Category:           category,
			ImageURL:           item.ImageURL,
			IsAvailable:        item.IsAvailable,
			IsVegetarian:       item.IsVegetarian,
			IsVegan:            item.IsVegan,
			SpiceLevel:         item.SpiceLevel,
			PreparationTime:    item.PreparationTime,
			Allergens:          item.Allergens,
			Tags:               item.Tags,
			Quantity:           item.Quantity,
			Addons:             item.Addons,
			ComplimentaryItems: item.ComplimentaryItems,
			NutritionInfo:      item.NutritionInfo,
		},
		CategoryID:   item.CategoryID,
		CategoryName: categoryName,
		Position:     item.Position,
		IsFeatured:   item.IsFeatured,
	}
}

// MapFrontendOrderToDatabase builds a partial persistence order for inserts.
// Tax, delivery and discount amounts are left at zero until the backend
// computes them; payment starts pending and the order type defaults to
// delivery.
func MapFrontendOrderToDatabase(order models.FrontendOrder, restaurantID, orderNumber string) models.DatabaseOrder {
	return models.DatabaseOrder{
		RestaurantID:             restaurantID,
		OrderNumber:              orderNumber,
		CustomerName:             order.CustomerName,
		Status:                   NormalizeOrderStatus(string(order.Status)),
		Subtotal:                 order.Total,
		TaxAmount:                0,
		DeliveryCharge:           0,
		DiscountAmount:           0,
		TotalAmount:              order.Total,
		PaymentStatus:            models.PaymentPending,
		OrderType:                models.OrderTypeDelivery,
		EstimatedPreparationTime: order.EstimatedTime,
	}
}

// MapFrontendOrderItemToDatabase builds a partial persistence order line.
// menuItemID may be empty for ad hoc lines with no catalog reference.
func MapFrontendOrderItemToDatabase(item models.FrontendOrderItem, orderID, menuItemID string) models.DatabaseOrderItem {
	return models.DatabaseOrderItem{
		OrderID:             orderID,
		MenuItemID:          menuItemID,
		Name:                item.Name,
		Quantity:            item.Quantity,
		UnitPrice:           item.Price,
		TotalPrice:          item.Price * float64(item.Quantity),
		SpecialInstructions: item.SpecialInstructions,
	}
}

// MapDatabaseOrderToFrontend converts a persistence order and its lines to
// the app shape. A missing customer name defaults to "Unknown Customer".
func MapDatabaseOrderToFrontend(order models.DatabaseOrder, orderItems []models.DatabaseOrderItem) models.FrontendOrder {
	items := make([]models.FrontendOrderItem, 0, len(orderItems))
	for _, item := range orderItems {
		items = append(items, models.FrontendOrderItem{
			ID:                  item.ID,
			Name:                item.Name,
			Quantity:            item.Quantity,
			Price:               item.UnitPrice,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	customer := order.CustomerName
	if customer == "" {
		customer = "Unknown Customer"
	}

	return models.FrontendOrder{
		ID:            order.ID,
		CustomerName:  customer,
		Items:         items,
		Total:         order.TotalAmount,
		Status:        NormalizeOrderStatus(string(order.Status)),
		CreatedAt:     order.CreatedAt,
		EstimatedTime: order.EstimatedPreparationTime,
	}
}
