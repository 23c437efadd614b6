package models

// SpiceLevel is the closed set of spice ratings a menu item can carry.
type SpiceLevel string

const (
	SpiceMild     SpiceLevel = "mild"
	SpiceMedium   SpiceLevel = "medium"
	SpiceHot      SpiceLevel = "hot"
	SpiceExtraHot SpiceLevel = "extra-hot"
)

// OrderStatus is the canonical six-value order status used everywhere
// inside the app, regardless of the spelling variant the backend sends.
type OrderStatus string

const (
	StatusNew            OrderStatus = "new"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// DayHours describes a single day's opening window.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

// Addon is a purchasable extra attached to a menu item or order item.
type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ComplimentaryItem is a free item bundled with a menu item.
type ComplimentaryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NutritionInfo holds per-serving nutrition values.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FrontendUser is the app-facing user record.
type FrontendUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RestaurantID string `json:"restaurantId"`
}

// FrontendStaff is the app-facing staff record.
type FrontendStaff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// FrontendRestaurant is the app-facing restaurant record.
type FrontendRestaurant struct {
	ID               string              `json:"id"`
	Name             string              `json:"name" validate:"notblank"`
	CuisineType      string              `json:"cuisineType"`
	Description      string              `json:"description"`
	Address          string              `json:"address" validate:"notblank"`
	Phone            string              `json:"phone" validate:"notblank"`
	Email            string              `json:"email" validate:"notblank"`
	ImageURL         string              `json:"imageUrl,omitempty"`
	LogoURL          string              `json:"logoUrl,omitempty"`
	CoverPhotoURL    string              `json:"coverPhotoUrl,omitempty"`
	IsOpen           bool                `json:"isOpen"`
	OperatingHours   map[string]DayHours `json:"operatingHours"`
	GSTNumber        string              `json:"gstNumber,omitempty"`
	FSSAINumber      string              `json:"fssaiNumber,omitempty"`
	LicenseDocuments []string            `json:"licenseDocuments,omitempty"`
	Staff            []FrontendStaff     `json:"staff"`
}

// FrontendMenuItem is the app-facing menu item record.
type FrontendMenuItem struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name" validate:"notblank"`
	Description        string              `json:"description"`
	Price              float64             `json:"price" validate:"gt=0"`
	Category           string              `json:"category" validate:"notblank"`
	ImageURL           string              `json:"imageUrl,omitempty"`
	IsAvailable        bool                `json:"isAvailable"`
	IsVegetarian       bool                `json:"isVegetarian"`
	IsVegan            bool                `json:"isVegan"`
	SpiceLevel         SpiceLevel          `json:"spiceLevel"`
	PreparationTime    int                 `json:"preparationTime"`
	Allergens          []string            `json:"allergens,omitempty"`
	Tags               []string            `json:"tags,omitempty"`
	Quantity           int                 `json:"quantity,omitempty"`
	Addons             []Addon             `json:"addons,omitempty"`
	ComplimentaryItems []ComplimentaryItem `json:"complimentaryItems,omitempty"`
	NutritionInfo      *NutritionInfo      `json:"nutritionInfo,omitempty"`
}

// FrontendMenuItemWithCategory is a menu item joined with its resolved
// category, as returned by list endpoints.
type FrontendMenuItemWithCategory struct {
	FrontendMenuItem
	CategoryID   string `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	Position     int    `json:"position"`
	IsFeatured   bool   `json:"isFeatured"`
}

// FrontendOrderItem is a single line of an app-facing order.
type FrontendOrderItem struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

// FrontendOrder is the app-facing order record.
type FrontendOrder struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customerName" validate:"notblank"`
	Items         []FrontendOrderItem `json:"items" validate:"min=1"`
	Total         float64             `json:"total" validate:"gt=0"`
	Status        OrderStatus         `json:"status"`
	CreatedAt     string              `json:"createdAt"`
	EstimatedTime int                 `json:"estimatedTime,omitempty"`
}
