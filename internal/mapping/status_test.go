package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nashtto/partnerctl/internal/models"
)

func TestNormalizeOrderStatus(t *testing.T) {
	tests := []struct {
		input string
		want  models.OrderStatus
	}{
		{input: "new", want: models.StatusNew},
		{input: "preparing", want: models.StatusPreparing},
		{input: "ready", want: models.StatusReady},
		{input: "out for delivery", want: models.StatusOutForDelivery},
		{input: "out_for_delivery", want: models.StatusOutForDelivery},
		{input: "delivered", want: models.StatusDelivered},
		{input: "cancelled", want: models.StatusCancelled},
		{input: "", want: models.StatusNew},
		{input: "shipped", want: models.StatusNew},
		{input: "READY", want: models.StatusNew},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeOrderStatus(tt.input))
		})
	}
}

func TestNormalizeIsIdempotentOverItsOwnOutput(t *testing.T) {
	for input := range statusTable {
		normalized := NormalizeOrderStatus(input)
		assert.Equal(t, normalized, NormalizeOrderStatus(string(normalized)))
	}
}

func TestDenormalizeOrderStatus(t *testing.T) {
	assert.Equal(t, "out for delivery", DenormalizeOrderStatus(models.StatusOutForDelivery))
	assert.Equal(t, "preparing", DenormalizeOrderStatus(models.StatusPreparing))
	assert.Equal(t, "new", DenormalizeOrderStatus(models.OrderStatus("bogus")))
}

func TestDenormalizeCoversEveryCanonicalStatus(t *testing.T) {
	canonical := []models.OrderStatus{
		models.StatusNew, models.StatusPreparing, models.StatusReady,
		models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled,
	}
	for _, status := range canonical {
		external := DenormalizeOrderStatus(status)
		assert.Equal(t, status, NormalizeOrderStatus(external), "denormalized %q must normalize back", status)
	}
}
