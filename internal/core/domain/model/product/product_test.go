package product_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"
	"pos/internal/pkg/errs"
)

func TestNewProduct(t *testing.T) {
	price, _ := kernel.NewMoney(450)

	t.Run("creates valid product", func(t *testing.T) {
		id := uuid.New()

		p, err := product.NewProduct(id, "Paracetamol 500mg", price, 40, "Medicine", product.Attributes{
			BatchNo: "B-2291",
		})

		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Paracetamol 500mg", p.Name())
		assert.Equal(t, 40, p.Stock())
		assert.Equal(t, "B-2291", p.Attrs().BatchNo)
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := product.NewProduct(uuid.Nil, "Paracetamol 500mg", price, 40, "", product.Attributes{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := product.NewProduct(uuid.New(), "", price, 40, "", product.Attributes{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := product.NewProduct(uuid.New(), "Paracetamol 500mg", price, -1, "", product.Attributes{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Update(t *testing.T) {
	price, _ := kernel.NewMoney(450)
	p, err := product.NewProduct(uuid.New(), "Brake Pad", price, 12, "Brakes", product.Attributes{
		Manufacturer: "Bosch",
		Brand:        "Bosch",
		PartNumber:   "BP-7731",
	})
	require.NoError(t, err)

	t.Run("replaces editable fields", func(t *testing.T) {
		newPrice, _ := kernel.NewMoney(520)
		expiry := time.Now().AddDate(1, 0, 0)

		err := p.Update("Brake Pad Set", newPrice, 10, "Brakes", product.Attributes{
			PartNumber: "BP-7731-S",
			ExpiryDate: &expiry,
		})

		require.NoError(t, err)
		assert.Equal(t, "Brake Pad Set", p.Name())
		assert.Equal(t, int64(520), p.Price().Amount())
		assert.Equal(t, 10, p.Stock())
		assert.Equal(t, "BP-7731-S", p.Attrs().PartNumber)
		assert.Empty(t, p.Attrs().Manufacturer)
	})

	t.Run("rejects invalid update and keeps state", func(t *testing.T) {
		before := p.Name()

		err := p.Update("", p.Price(), p.Stock(), p.Category(), p.Attrs())

		require.Error(t, err)
		assert.Equal(t, before, p.Name())
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value product is invalid", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
