package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€100.00", FormatPrice(100))
	assert.Equal(t, "€0.01", FormatPrice(0.01))
	assert.Equal(t, "€115.20", FormatPrice(115.2))
	assert.Equal(t, "€158.95", FormatPrice(158.95))
	assert.Equal(t, "€0.00", FormatPrice(0))
}

func TestFormatDiscountPercent(t *testing.T) {
	assert.Equal(t, "10%", FormatDiscountPercent(10))
	assert.Equal(t, "15%", FormatDiscountPercent(15))
	assert.Equal(t, "0%", FormatDiscountPercent(0))
	assert.Equal(t, "12.5%", FormatDiscountPercent(12.5))
}
