package mapping

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nashtto/partnerctl/internal/models"
)

// validate backs the per-entity validators. Validation results are always
// returned as human-readable message lists, never as errors: an empty list
// means the record is valid.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Field messages keyed by struct field name. Only the fields listed here are
// checked; everything else passes through untouched.
var restaurantMessages = map[string]string{
	"Name":    "Restaurant name is required",
	"Address": "Restaurant address is required",
	"Phone":   "Restaurant phone is required",
	"Email":   "Restaurant email is required",
}

var menuItemMessages = map[string]string{
	"Name":     "Menu item name is required",
	"Price":    "Menu item price must be greater than 0",
	"Category": "Menu item category is required",
}

var orderMessages = map[string]string{
	"CustomerName": "Customer name is required",
	"Items":        "Order must have at least one item",
	"Total":        "Order total must be greater than 0",
}

// ValidateFrontendRestaurant reports missing required restaurant fields.
func ValidateFrontendRestaurant(restaurant models.FrontendRestaurant) []string {
	return collectMessages(validate.Struct(restaurant), restaurantMessages)
}

// ValidateFrontendMenuItem reports missing required menu item fields and a
// non-positive price.
func ValidateFrontendMenuItem(item models.FrontendMenuItem) []string {
	return collectMessages(validate.Struct(item), menuItemMessages)
}

// ValidateFrontendOrder reports a missing customer name, an empty item list,
// and a non-positive total.
func ValidateFrontendOrder(order models.FrontendOrder) []string {
	return collectMessages(validate.Struct(order), orderMessages)
}

func collectMessages(err error, messages map[string]string) []string {
	collected := []string{}
	if err == nil {
		return collected
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Structurally invalid input is out of contract; surface something
		// readable rather than failing.
		return append(collected, "invalid input")
	}
	for _, fieldErr := range fieldErrs {
		if msg, ok := messages[fieldErr.Field()]; ok {
			collected = append(collected, msg)
		}
	}
	return collected
}
