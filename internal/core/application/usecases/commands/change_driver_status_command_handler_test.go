package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

func TestNewChangeDriverStatusCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		id, _ := kernel.IDFromString("1")

		cmd, err := commands.NewChangeDriverStatusCommand(id, driver.Offline)

		require.NoError(t, err)
		assert.Equal(t, driver.Offline, cmd.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		id, _ := kernel.IDFromString("1")

		_, err := commands.NewChangeDriverStatusCommand(id, driver.StatusUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestChangeDriverStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testDriver := availableDriver(t, "1", "Ali Ahmed")
	cmd, err := commands.NewChangeDriverStatusCommand(testDriver.ID(), driver.Busy)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeDriverStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, driver.Busy, testDriver.Status())
}

func TestChangeDriverStatusCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	id, _ := kernel.IDFromString("9")
	cmd, err := commands.NewChangeDriverStatusCommand(id, driver.Busy)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, id).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeDriverStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
