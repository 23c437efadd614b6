package models

// Persistence-shape records as the backend stores and serves them:
// snake_case fields, explicit foreign keys, audit timestamps. Server-owned
// fields (ids, timestamps, computed aggregates) carry omitempty so partial
// create payloads leave them absent for the backend to assign.

// DatabaseUser is the persistence-shape user record.
type DatabaseUser struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
	RestaurantID string `json:"restaurant_id"`
	IsActive     bool   `json:"is_active,omitempty"`
	IsFirstTime  bool   `json:"is_first_time,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// SubscriptionStatus values for DatabaseRestaurant.
const (
	SubscriptionTrial   = "trial"
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
)

// DatabaseRestaurant is the persistence-shape restaurant record.
type DatabaseRestaurant struct {
	ID                    string              `json:"id,omitempty"`
	Name                  string              `json:"name"`
	CuisineType           string              `json:"cuisine_type"`
	Description           string              `json:"description"`
	Address               string              `json:"address"`
	Phone                 string              `json:"phone"`
	Email                 string              `json:"email"`
	ImageURL              string              `json:"image_url,omitempty"`
	LogoURL               string              `json:"logo_url,omitempty"`
	CoverPhotoURL         string              `json:"cover_photo_url,omitempty"`
	IsOpen                bool                `json:"is_open"`
	OperatingHours        map[string]DayHours `json:"operating_hours"`
	GSTNumber             string              `json:"gst_number,omitempty"`
	FSSAINumber           string              `json:"fssai_number,omitempty"`
	LicenseDocuments      []string            `json:"license_documents"`
	OwnerID               string              `json:"owner_id"`
	SubscriptionStatus    string              `json:"subscription_status,omitempty"`
	SubscriptionExpiresAt string              `json:"subscription_expires_at,omitempty"`
	Rating                float64             `json:"rating,omitempty"`
	TotalOrders           int                 `json:"total_orders,omitempty"`
	CreatedAt             string              `json:"created_at,omitempty"`
	UpdatedAt             string              `json:"updated_at,omitempty"`
}

// DatabaseStaff is the persistence-shape staff record.
type DatabaseStaff struct {
	ID           string `json:"id,omitempty"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsActive     bool   `json:"is_active,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// DatabaseMenuCategory is the persistence-shape menu category record.
type DatabaseMenuCategory struct {
	ID           string `json:"id,omitempty"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// DatabaseMenuItem is the persistence-shape menu item record. CategoryName
// is a join field some list endpoints include alongside the raw row.
type DatabaseMenuItem struct {
	ID                 string              `json:"id,omitempty"`
	RestaurantID       string              `json:"restaurant_id"`
	CategoryID         string              `json:"category_id,omitempty"`
	CategoryName       string              `json:"category_name,omitempty"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Price              float64             `json:"price"`
	ImageURL           string              `json:"image_url,omitempty"`
	IsAvailable        bool                `json:"is_available"`
	IsVegetarian       bool                `json:"is_vegetarian"`
	IsVegan            bool                `json:"is_vegan"`
	SpiceLevel         SpiceLevel          `json:"spice_level"`
	PreparationTime    int                 `json:"preparation_time"`
	Allergens          []string            `json:"allergens"`
	Tags               []string            `json:"tags"`
	Quantity           int                 `json:"quantity"`
	Addons             []Addon             `json:"addons"`
	ComplimentaryItems []ComplimentaryItem `json:"complimentary_items"`
	NutritionInfo      *NutritionInfo      `json:"nutrition_info,omitempty"`
	Position           int                 `json:"position,omitempty"`
	IsFeatured         bool                `json:"is_featured,omitempty"`
	CreatedAt          string              `json:"created_at,omitempty"`
	UpdatedAt          string              `json:"updated_at,omitempty"`
}

// PaymentStatus values for DatabaseOrder.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// OrderType values for DatabaseOrder.
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
	OrderTypeDineIn   = "dine-in"
)

// DatabaseOrder is the persistence-shape order record.
type DatabaseOrder struct {
	ID                       string      `json:"id,omitempty"`
	RestaurantID             string      `json:"restaurant_id"`
	OrderNumber              string      `json:"order_number"`
	CustomerName             string      `json:"customer_name,omitempty"`
	CustomerPhone            string      `json:"customer_phone,omitempty"`
	CustomerEmail            string      `json:"customer_email,omitempty"`
	OrderType                string      `json:"order_type"`
	Status                   OrderStatus `json:"status"`
	Subtotal                 float64     `json:"subtotal"`
	TaxAmount                float64     `json:"tax_amount"`
	DeliveryCharge           float64     `json:"delivery_charge"`
	DiscountAmount           float64     `json:"discount_amount"`
	TotalAmount              float64     `json:"total_amount"`
	PaymentStatus            string      `json:"payment_status"`
	PaymentMethod            string      `json:"payment_method,omitempty"`
	SpecialInstructions      string      `json:"special_instructions,omitempty"`
	DeliveryAddress          string      `json:"delivery_address,omitempty"`
	EstimatedPreparationTime int         `json:"estimated_preparation_time,omitempty"`
	ActualPreparationTime    int         `json:"actual_preparation_time,omitempty"`
	DeliveredAt              string      `json:"delivered_at,omitempty"`
	CreatedAt                string      `json:"created_at,omitempty"`
	UpdatedAt                string      `json:"updated_at,omitempty"`
}

// DatabaseOrderItem is the persistence-shape order line. Name is a snapshot
// of the menu item name at order time.
type DatabaseOrderItem struct {
	ID                  string  `json:"id,omitempty"`
	OrderID             string  `json:"order_id"`
	MenuItemID          string  `json:"menu_item_id,omitempty"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	TotalPrice          float64 `json:"total_price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
	Addons              []Addon `json:"addons,omitempty"`
	CreatedAt           string  `json:"created_at,omitempty"`
}
