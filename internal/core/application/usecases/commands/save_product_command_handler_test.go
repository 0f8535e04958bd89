package commands_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/product"
	"pos/internal/pkg/errs"
)

func TestNewSaveProductCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		id := uuid.New()

		cmd, err := commands.NewSaveProductCommand(id, "Paracetamol 500mg", 450, 40, "Medicine",
			product.Attributes{BatchNo: "B-2291"})

		require.NoError(t, err)
		assert.Equal(t, id, cmd.ProductID())
		assert.Equal(t, "B-2291", cmd.Attrs().BatchNo)
	})

	t.Run("rejects nil product id", func(t *testing.T) {
		_, err := commands.NewSaveProductCommand(uuid.Nil, "Paracetamol 500mg", 450, 40, "", product.Attributes{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := commands.NewSaveProductCommand(uuid.New(), "", 450, 40, "", product.Attributes{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSaveProductCommandHandler_Handle_CreatesNewProduct(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()
	cmd, err := commands.NewSaveProductCommand(id, "Paracetamol 500mg", 450, 40, "Medicine", product.Attributes{})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, id).Return(nil, errs.ErrObjectNotFound).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := productRepo.Calls[1].Arguments[1].(*product.Product)
	assert.Equal(t, id, added.ID())
	assert.Equal(t, int64(450), added.Price().Amount())
}

func TestSaveProductCommandHandler_Handle_UpdatesExistingProduct(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()

	existing, err := product.NewProduct(id, "Paracetamol 500mg", mustMoney(t, 450), 40, "Medicine", product.Attributes{})
	require.NoError(t, err)

	cmd, err := commands.NewSaveProductCommand(id, "Paracetamol 500mg", 480, 35, "Medicine",
		product.Attributes{BatchNo: "B-2292"})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, id).Return(existing, nil).Once(),
		productRepo.On("Update", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(480), existing.Price().Amount())
	assert.Equal(t, 35, existing.Stock())
	assert.Equal(t, "B-2292", existing.Attrs().BatchNo)
}

func TestSaveProductCommandHandler_Handle_NegativePrice(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSaveProductCommand(uuid.New(), "Paracetamol 500mg", -1, 40, "", product.Attributes{})
	require.NoError(t, err)

	factory := new(MockProductUoWFactory)
	handler := commands.NewSaveProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
