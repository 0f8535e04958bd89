package order_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	price, _ := kernel.NewMoney(180)

	t.Run("creates valid item", func(t *testing.T) {
		item, err := order.NewItem("p-1", "Cola", price, 3)

		require.NoError(t, err)
		assert.Equal(t, "p-1", item.ProductID())
		assert.Equal(t, "Cola", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(540), item.Subtotal().Amount())
	})

	t.Run("rejects empty product id", func(t *testing.T) {
		_, err := order.NewItem("", "Cola", price, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem("p-1", "", price, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem("p-1", "Cola", price, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item is invalid", func(t *testing.T) {
		var item order.Item

		require.Error(t, item.Validate())
	})
}
