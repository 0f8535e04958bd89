package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/model/settings"
	"pos/internal/pkg/errs"
)

func deliveryCheckout(t *testing.T) commands.CheckoutCommand {
	t.Helper()
	cmd, err := commands.NewCheckoutCommand(kernel.NewID(), order.Delivery, "Sara",
		"0300-1234567", "12 Main St", cartLines(), "Cash")
	require.NoError(t, err)
	return cmd
}

func pizzaSettings(t *testing.T) *settings.CompanySettings {
	t.Helper()
	s, err := settings.NewCompanySettings("Crusty Corner", "Imran", settings.PizzaRestaurant)
	require.NoError(t, err)
	return s
}

func availableDriver(t *testing.T, id, name string) *driver.Driver {
	t.Helper()
	driverID, err := kernel.IDFromString(id)
	require.NoError(t, err)
	d, err := driver.NewDriver(driverID, name)
	require.NoError(t, err)
	return d
}

func TestCheckoutCommandHandler_Handle_DeliveryWithAssignment(t *testing.T) {
	ctx := t.Context()
	cmd := deliveryCheckout(t)

	drivers := []*driver.Driver{
		availableDriver(t, "1", "Ali Ahmed"),
		availableDriver(t, "2", "Zeeshan Khan"),
	}

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	settingsRepo := new(MockSettingsRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", ctx).Return(pizzaSettings(t), nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Twice(),
		driverRepo.On("GetAll", ctx).Return(drivers, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishDriverAssigned", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, publisher, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Tie at zero active orders breaks by ascending id.
	updatedDriver := driverRepo.Calls[1].Arguments[1].(*driver.Driver)
	assert.Equal(t, "1", updatedDriver.ID().String())
	assert.Equal(t, 1, updatedDriver.ActiveOrders())
	assert.NotNil(t, updatedDriver.LastAssignedAt())

	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	require.NotNil(t, addedOrder.Driver())
	assert.Equal(t, "1", addedOrder.Driver().String())
	assert.Equal(t, order.Pending, addedOrder.Status())
	assert.Equal(t, int64(2580), addedOrder.Total().Amount())

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	settingsRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_DeliveryNoDriverAvailable(t *testing.T) {
	ctx := t.Context()
	cmd := deliveryCheckout(t)

	busy := availableDriver(t, "1", "Ali Ahmed")
	require.NoError(t, busy.ChangeStatus(driver.Busy))

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	settingsRepo := new(MockSettingsRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", ctx).Return(pizzaSettings(t), nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{busy}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, publisher, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addedOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Nil(t, addedOrder.Driver())
	publisher.AssertNotCalled(t, "PublishDriverAssigned", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_DeliveryWithoutDeliverySupport(t *testing.T) {
	ctx := t.Context()
	cmd := deliveryCheckout(t)

	pharmacy, err := settings.NewCompanySettings("City Pharma", "Nadia", settings.Pharmacy)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	settingsRepo := new(MockSettingsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", ctx).Return(pharmacy, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "DriverRepository")
}

func TestCheckoutCommandHandler_Handle_SetupNeverCompleted(t *testing.T) {
	ctx := t.Context()
	cmd := deliveryCheckout(t)

	orderRepo := new(MockOrderRepository)
	settingsRepo := new(MockSettingsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, nil, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestCheckoutCommandHandler_Handle_DineInSkipsDispatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(kernel.NewID(), order.DineIn, "Sara", "", "", cartLines(), "Cash")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "SettingsRepository")
	uow.AssertNotCalled(t, "DriverRepository")
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCheckoutCommandHandler(factory, nil, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_DeliveryValidationError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(kernel.NewID(), order.Delivery, "Sara",
		"", "12 Main St", cartLines(), "Cash")
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewCheckoutCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrPhoneIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_PublishFailureDoesNotFailCheckout(t *testing.T) {
	ctx := t.Context()
	cmd := deliveryCheckout(t)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	settingsRepo := new(MockSettingsRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(settingsRepo).Once(),
		settingsRepo.On("Get", ctx).Return(pizzaSettings(t), nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Twice(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{availableDriver(t, "1", "Ali Ahmed")}, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishDriverAssigned", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("broker down")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, publisher, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestCheckoutCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(kernel.NewID(), order.Takeaway, "", "", "", cartLines(), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, nil, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
