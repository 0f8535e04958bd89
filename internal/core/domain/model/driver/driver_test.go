package driver_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func TestNewDriver(t *testing.T) {
	t.Run("new driver starts available with no orders", func(t *testing.T) {
		d, err := driver.NewDriver(mustID(t, "1"), "Ali Ahmed")

		require.NoError(t, err)
		assert.Equal(t, driver.Available, d.Status())
		assert.Equal(t, 0, d.ActiveOrders())
		assert.Nil(t, d.LastAssignedAt())
		assert.True(t, d.IsAvailable())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := driver.NewDriver(mustID(t, "1"), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.ID{}, "Ali Ahmed")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDriver_RecordAssignment(t *testing.T) {
	d, err := driver.NewDriver(mustID(t, "1"), "Ali Ahmed")
	require.NoError(t, err)
	at := time.Now()

	d.RecordAssignment(at)
	d.RecordAssignment(at.Add(time.Minute))

	assert.Equal(t, 2, d.ActiveOrders())
	require.NotNil(t, d.LastAssignedAt())
	assert.Equal(t, at.Add(time.Minute), *d.LastAssignedAt())
	// Workload does not affect availability.
	assert.True(t, d.IsAvailable())
}

func TestDriver_ReleaseOrder(t *testing.T) {
	t.Run("decrements active orders", func(t *testing.T) {
		d, err := driver.RestoreDriver(mustID(t, "3"), "Haris Malik", driver.Busy, 2, nil)
		require.NoError(t, err)

		d.ReleaseOrder()

		assert.Equal(t, 1, d.ActiveOrders())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		d, err := driver.NewDriver(mustID(t, "1"), "Ali Ahmed")
		require.NoError(t, err)

		d.ReleaseOrder()
		d.ReleaseOrder()

		assert.Equal(t, 0, d.ActiveOrders())
	})
}

func TestDriver_ChangeStatus(t *testing.T) {
	d, err := driver.NewDriver(mustID(t, "1"), "Ali Ahmed")
	require.NoError(t, err)

	t.Run("sets valid status", func(t *testing.T) {
		require.NoError(t, d.ChangeStatus(driver.Busy))

		assert.Equal(t, driver.Busy, d.Status())
		assert.False(t, d.IsAvailable())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		err := d.ChangeStatus(driver.StatusUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		lastAssigned := time.Now().Add(-time.Hour)

		d, err := driver.RestoreDriver(mustID(t, "2"), "Zeeshan Khan", driver.Offline, 1, &lastAssigned)

		require.NoError(t, err)
		assert.Equal(t, driver.Offline, d.Status())
		assert.Equal(t, 1, d.ActiveOrders())
		require.NotNil(t, d.LastAssignedAt())
		assert.Equal(t, lastAssigned, *d.LastAssignedAt())
	})

	t.Run("rejects negative active orders", func(t *testing.T) {
		_, err := driver.RestoreDriver(mustID(t, "2"), "Zeeshan Khan", driver.Available, -1, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("zero value driver is invalid", func(t *testing.T) {
		var d driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})

	t.Run("nil driver is invalid", func(t *testing.T) {
		var d *driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}
