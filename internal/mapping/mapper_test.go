package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nashtto/partnerctl/internal/models"
)

func TestRestaurantRoundTrip(t *testing.T) {
	original := models.FrontendRestaurant{
		Name:        "Spice Garden",
		CuisineType: "Indian",
		Description: "Family kitchen",
		Address:     "12 MG Road, Bengaluru",
		Phone:       "+91 98765 43210",
		Email:       "owner@spicegarden.example",
		IsOpen:      true,
		OperatingHours: map[string]models.DayHours{
			"monday": {Open: "09:00", Close: "22:00", IsOpen: true},
		},
		GSTNumber:        "29ABCDE1234F1Z5",
		LicenseDocuments: []string{"/uploads/fssai.pdf"},
	}

	db := MapFrontendRestaurantToDatabase(original, "owner-1")
	back := MapDatabaseRestaurantToFrontend(db, nil)

	// Server-owned fields are absent in both directions, so the user-entered
	// content survives the full trip untouched.
	assert.Equal(t, original.Name, back.Name)
	assert.Equal(t, original.CuisineType, back.CuisineType)
	assert.Equal(t, original.Description, back.Description)
	assert.Equal(t, original.Address, back.Address)
	assert.Equal(t, original.Phone, back.Phone)
	assert.Equal(t, original.Email, back.Email)
	assert.Equal(t, original.IsOpen, back.IsOpen)
	assert.Equal(t, original.OperatingHours, back.OperatingHours)
	assert.Equal(t, original.LicenseDocuments, back.LicenseDocuments)
	assert.Equal(t, "owner-1", db.OwnerID)
}

func TestMapFrontendRestaurantToDatabaseDefaults(t *testing.T) {
	db := MapFrontendRestaurantToDatabase(models.FrontendRestaurant{Name: "Bare"}, "owner-1")

	assert.NotNil(t, db.LicenseDocuments)
	assert.Empty(t, db.LicenseDocuments)
	assert.Empty(t, db.ID, "ids are assigned by the backend")
	assert.Empty(t, db.SubscriptionStatus)
	assert.Zero(t, db.Rating)
}

func TestMapDatabaseRestaurantToFrontendStaffJoin(t *testing.T) {
	staff := []models.FrontendStaff{{ID: "s1", Name: "Asha", Role: "manager"}}

	withStaff := MapDatabaseRestaurantToFrontend(models.DatabaseRestaurant{ID: "1"}, staff)
	assert.Equal(t, staff, withStaff.Staff)

	withoutStaff := MapDatabaseRestaurantToFrontend(models.DatabaseRestaurant{ID: "1"}, nil)
	assert.NotNil(t, withoutStaff.Staff)
	assert.Empty(t, withoutStaff.Staff)
}

func TestMapFrontendMenuItemToDatabase(t *testing.T) {
	item := models.FrontendMenuItem{
		Name:            "Paneer Tikka",
		Description:     "Char-grilled cottage cheese",
		Price:           220,
		Category:        "Appetizers",
		IsAvailable:     true,
		IsVegetarian:    true,
		SpiceLevel:      models.SpiceMedium,
		PreparationTime: 20,
	}

	db := MapFrontendMenuItemToDatabase(item, "branch-7", "cat-3")

	assert.Equal(t, "branch-7", db.RestaurantID)
	assert.Equal(t, "cat-3", db.CategoryID)
	assert.Equal(t, item.Name, db.Name)
	assert.Equal(t, item.Price, db.Price)
	assert.Equal(t, item.SpiceLevel, db.SpiceLevel)

	// Absent collections become empty, never nil, so payloads serialize as [].
	assert.NotNil(t, db.Allergens)
	assert.NotNil(t, db.Tags)
	assert.NotNil(t, db.Addons)
	assert.NotNil(t, db.ComplimentaryItems)
}

func TestMapDatabaseMenuItemToFrontendCategoryFallback(t *testing.T) {
	tests := []struct {
		name         string
		categoryName string
		want         string
	}{
		{name: "resolved category", categoryName: "Main Course", want: "Main Course"},
		{name: "missing category", categoryName: "", want: "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDatabaseMenuItemToFrontend(models.DatabaseMenuItem{ID: "9", Name: "Dal"}, tt.categoryName)
			assert.Equal(t, tt.want, mapped.Category)
		})
	}
}

func TestMapFrontendOrderToDatabase(t *testing.T) {
	order := models.FrontendOrder{
		CustomerName:  "Ravi",
		Total:         480,
		Status:        models.StatusPreparing,
		EstimatedTime: 25,
	}

	db := MapFrontendOrderToDatabase(order, "branch-7", "ORD-1042")

	assert.Equal(t, "branch-7", db.RestaurantID)
	assert.Equal(t, "ORD-1042", db.OrderNumber)
	assert.Equal(t, models.StatusPreparing, db.Status)
	assert.Equal(t, order.Total, db.Subtotal)
	assert.Equal(t, order.Total, db.TotalAmount)
	assert.Zero(t, db.TaxAmount)
	assert.Zero(t, db.DeliveryCharge)
	assert.Zero(t, db.DiscountAmount)
	assert.Equal(t, models.PaymentPending, db.PaymentStatus)
	assert.Equal(t, models.OrderTypeDelivery, db.OrderType)
}

func TestMapFrontendOrderItemToDatabaseTotals(t *testing.T) {
	line := MapFrontendOrderItemToDatabase(models.FrontendOrderItem{
		Name:     "Butter Chicken",
		Quantity: 3,
		Price:    340,
	}, "order-1", "item-2")

	assert.Equal(t, "order-1", line.OrderID)
	assert.Equal(t, "item-2", line.MenuItemID)
	assert.Equal(t, 340.0, line.UnitPrice)
	assert.Equal(t, 1020.0, line.TotalPrice)
}

func TestMapDatabaseOrderToFrontend(t *testing.T) {
	order := models.DatabaseOrder{
		ID:           "o-1",
		CustomerName: "",
		Status:       "out for delivery",
		TotalAmount:  480,
		CreatedAt:    "2026-08-28T10:00:00Z",
	}
	lines := []models.DatabaseOrderItem{
		{ID: "l-1", Name: "Dal", Quantity: 2, UnitPrice: 120},
	}

	mapped := MapDatabaseOrderToFrontend(order, lines)

	assert.Equal(t, "Unknown Customer", mapped.CustomerName)
	assert.Equal(t, models.StatusOutForDelivery, mapped.Status)
	assert.Equal(t, 480.0, mapped.Total)
	require.Len(t, mapped.Items, 1)
	assert.Equal(t, "Dal", mapped.Items[0].Name)
	assert.Equal(t, 120.0, mapped.Items[0].Price)
}

func TestUserMappingRoundTrip(t *testing.T) {
	user := models.FrontendUser{Name: "Asha", Email: "asha@example.com", RestaurantID: "1"}

	back := MapDatabaseUserToFrontend(MapFrontendUserToDatabase(user))

	assert.Equal(t, user.Name, back.Name)
	assert.Equal(t, user.Email, back.Email)
	assert.Equal(t, user.RestaurantID, back.RestaurantID)
}
