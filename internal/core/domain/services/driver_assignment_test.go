package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/internal/core/domain/model/driver"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/services"
)

func restoreDriver(t *testing.T, id, name string, status driver.Status, activeOrders int) *driver.Driver {
	t.Helper()
	driverID, err := kernel.IDFromString(id)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(driverID, name, status, activeOrders, nil)
	require.NoError(t, err)
	return d
}

// seedDrivers mirrors the roster a fresh store starts with: two idle
// available drivers and one busy driver already carrying orders.
func seedDrivers(t *testing.T) []*driver.Driver {
	t.Helper()
	return []*driver.Driver{
		restoreDriver(t, "1", "Ali Ahmed", driver.Available, 0),
		restoreDriver(t, "2", "Zeeshan Khan", driver.Available, 0),
		restoreDriver(t, "3", "Haris Malik", driver.Busy, 2),
	}
}

func TestDriverAssignment_PickDriver(t *testing.T) {
	assignment := services.NewDriverAssignment()

	t.Run("ties break by ascending id", func(t *testing.T) {
		picked, err := assignment.PickDriver(seedDrivers(t))

		require.NoError(t, err)
		assert.Equal(t, "1", picked.ID().String())
	})

	t.Run("fewest active orders wins", func(t *testing.T) {
		drivers := seedDrivers(t)
		drivers[0].RecordAssignment(time.Now())

		picked, err := assignment.PickDriver(drivers)

		require.NoError(t, err)
		assert.Equal(t, "2", picked.ID().String())
	})

	t.Run("busy drivers are excluded even when idle", func(t *testing.T) {
		drivers := []*driver.Driver{
			restoreDriver(t, "1", "Ali Ahmed", driver.Busy, 0),
			restoreDriver(t, "2", "Zeeshan Khan", driver.Available, 5),
		}

		picked, err := assignment.PickDriver(drivers)

		require.NoError(t, err)
		assert.Equal(t, "2", picked.ID().String())
	})

	t.Run("offline drivers are excluded", func(t *testing.T) {
		drivers := []*driver.Driver{
			restoreDriver(t, "1", "Ali Ahmed", driver.Offline, 0),
			restoreDriver(t, "2", "Zeeshan Khan", driver.Available, 1),
		}

		picked, err := assignment.PickDriver(drivers)

		require.NoError(t, err)
		assert.Equal(t, "2", picked.ID().String())
	})

	t.Run("no available driver", func(t *testing.T) {
		drivers := []*driver.Driver{
			restoreDriver(t, "1", "Ali Ahmed", driver.Busy, 0),
			restoreDriver(t, "2", "Zeeshan Khan", driver.Offline, 0),
		}

		_, err := assignment.PickDriver(drivers)

		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("empty roster", func(t *testing.T) {
		_, err := assignment.PickDriver(nil)

		require.ErrorIs(t, err, services.ErrNoDriverAvailable)
	})

	t.Run("selection is deterministic and side-effect-free", func(t *testing.T) {
		drivers := seedDrivers(t)

		first, err := assignment.PickDriver(drivers)
		require.NoError(t, err)
		second, err := assignment.PickDriver(drivers)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, 0, first.ActiveOrders())
	})

	t.Run("result does not depend on input order", func(t *testing.T) {
		drivers := []*driver.Driver{
			restoreDriver(t, "3", "Haris Malik", driver.Available, 1),
			restoreDriver(t, "2", "Zeeshan Khan", driver.Available, 0),
			restoreDriver(t, "1", "Ali Ahmed", driver.Available, 0),
		}

		picked, err := assignment.PickDriver(drivers)

		require.NoError(t, err)
		assert.Equal(t, "1", picked.ID().String())
	})

	t.Run("rejects drivers that bypass construction", func(t *testing.T) {
		drivers := []*driver.Driver{{}}

		_, err := assignment.PickDriver(drivers)

		require.ErrorIs(t, err, driver.ErrDriverIsNotConstructed)
	})

	t.Run("rotation across consecutive assignments", func(t *testing.T) {
		// Recording each assignment shifts the next pick to the other idle
		// driver, then back once counts level out.
		drivers := seedDrivers(t)

		picked, err := assignment.PickDriver(drivers)
		require.NoError(t, err)
		assert.Equal(t, "1", picked.ID().String())
		picked.RecordAssignment(time.Now())

		picked, err = assignment.PickDriver(drivers)
		require.NoError(t, err)
		assert.Equal(t, "2", picked.ID().String())
		picked.RecordAssignment(time.Now())

		picked, err = assignment.PickDriver(drivers)
		require.NoError(t, err)
		assert.Equal(t, "1", picked.ID().String())
	})
}
