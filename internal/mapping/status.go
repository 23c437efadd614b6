package mapping

import "github.com/nashtto/partnerctl/internal/models"

// statusTable maps every spelling the backend has been seen to emit onto the
// canonical status set. Unknown input falls back to "new".
var statusTable = map[string]models.OrderStatus{
	"new":              models.StatusNew,
	"preparing":        models.StatusPreparing,
	"ready":            models.StatusReady,
	"out for delivery": models.StatusOutForDelivery,
	"out_for_delivery": models.StatusOutForDelivery,
	"delivered":        models.StatusDelivered,
	"cancelled":        models.StatusCancelled,
}

var denormalizeTable = map[models.OrderStatus]string{
	models.StatusNew:            "new",
	models.StatusPreparing:      "preparing",
	models.StatusReady:          "ready",
	models.StatusOutForDelivery: "out for delivery",
	models.StatusDelivered:      "delivered",
	models.StatusCancelled:      "cancelled",
}

// NormalizeOrderStatus converts an external status spelling to the canonical
// enum value. Any unrecognized input maps to StatusNew.
func NormalizeOrderStatus(status string) models.OrderStatus {
	if normalized, ok := statusTable[status]; ok {
		return normalized
	}
	return models.StatusNew
}

// DenormalizeOrderStatus converts a canonical status back to the legacy
// external spelling. Unrecognized values fall back to "new".
func DenormalizeOrderStatus(status models.OrderStatus) string {
	if external, ok := denormalizeTable[status]; ok {
		return external
	}
	return "new"
}
