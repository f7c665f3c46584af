package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates active product", func(t *testing.T) {
		p, err := NewProduct("SHIRT-BL-M", "Blue Shirt", decimal.NewFromInt(150), decimal.NewFromInt(90))
		require.NoError(t, err)
		assert.True(t, p.Active)
		assert.Equal(t, "SHIRT-BL-M", p.SKU)
	})

	t.Run("rejects empty sku", func(t *testing.T) {
		_, err := NewProduct("", "Blue Shirt", decimal.NewFromInt(150), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("SHIRT-BL-M", "", decimal.NewFromInt(150), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		_, err := NewProduct("SHIRT-BL-M", "Blue Shirt", decimal.NewFromInt(-1), decimal.Zero)
		assert.Error(t, err)

		_, err = NewProduct("SHIRT-BL-M", "Blue Shirt", decimal.NewFromInt(150), decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestProductInStock(t *testing.T) {
	p, err := NewProduct("SHIRT-BL-M", "Blue Shirt", decimal.NewFromInt(150), decimal.NewFromInt(90))
	require.NoError(t, err)

	t.Run("active with availability", func(t *testing.T) {
		p.Available = 5
		assert.True(t, p.InStock())
	})

	t.Run("active without availability", func(t *testing.T) {
		p.Available = 0
		assert.False(t, p.InStock())
	})

	t.Run("deactivated product is never in stock", func(t *testing.T) {
		p.Available = 5
		p.Deactivate()
		assert.False(t, p.InStock())
	})
}
