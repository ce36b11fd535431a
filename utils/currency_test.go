package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPrice(t *testing.T) {
	valid := []float64{0.01, 1, 6.14, 12.00, 15.50, 999.99}
	for _, p := range valid {
		assert.True(t, ValidPrice(p), "price %v", p)
	}

	invalid := []float64{0, -1, -0.01, 1.999, 3.14159}
	for _, p := range invalid {
		assert.False(t, ValidPrice(p), "price %v", p)
	}
}

func TestFormatPrices(t *testing.T) {
	assert.Equal(t, "12.50 лв.", FormatPriceBGN(12.5))
	assert.Equal(t, "6.14 €", FormatPriceEUR(6.14))
}
