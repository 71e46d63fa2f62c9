package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/memory"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
)

func newTruck(t *testing.T, maxLoadKg, maxVolumeM3 float64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), "HN-T25-001", kernel.NewUUID(),
		vehicle.VehicleTypeTruck25, maxLoadKg, maxVolumeM3,
		shipment.Dimensions{LengthCm: 420, WidthCm: 190, HeightCm: 190},
		[]string{shipment.GoodsTypeGeneral},
		geo.RouteScopeInterRegionFar, true,
	)
	require.NoError(t, err)
	return v
}

func TestCapacityTracker_ReserveAndRelease(t *testing.T) {
	t.Run("should report a never-reserved vehicle as empty", func(t *testing.T) {
		ctx := context.Background()
		tracker := memory.NewCapacityTracker()

		load, err := tracker.GetLoad(ctx, kernel.NewUUID())

		require.NoError(t, err)
		assert.Zero(t, load.CurrentLoadKg())
		assert.Zero(t, load.OrderCount())
	})

	t.Run("should accumulate reservations and return them on release", func(t *testing.T) {
		ctx := context.Background()
		tracker := memory.NewCapacityTracker()
		truck := newTruck(t, 2500, 16)

		_, err := tracker.Reserve(ctx, truck, 100, 0.5)
		require.NoError(t, err)
		load, err := tracker.Reserve(ctx, truck, 200, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 300.0, load.CurrentLoadKg(), 0.001)
		assert.Equal(t, 2, load.OrderCount())

		load, err = tracker.Release(ctx, truck.ID(), 100, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 200.0, load.CurrentLoadKg(), 0.001)
		assert.Equal(t, 1, load.OrderCount())
	})

	t.Run("should fail a reservation that exceeds capacity", func(t *testing.T) {
		ctx := context.Background()
		tracker := memory.NewCapacityTracker()
		truck := newTruck(t, 100, 1)

		_, err := tracker.Reserve(ctx, truck, 80, 0.5)
		require.NoError(t, err)

		_, err = tracker.Reserve(ctx, truck, 30, 0.1)
		require.ErrorIs(t, err, vehicle.ErrCapacityExceeded)

		load, err := tracker.GetLoad(ctx, truck.ID())
		require.NoError(t, err)
		assert.InDelta(t, 80.0, load.CurrentLoadKg(), 0.001)
	})

	t.Run("should fail a release that exceeds the load", func(t *testing.T) {
		ctx := context.Background()
		tracker := memory.NewCapacityTracker()
		truck := newTruck(t, 2500, 16)

		_, err := tracker.Release(ctx, truck.ID(), 10, 0.1)
		require.ErrorIs(t, err, vehicle.ErrReleaseExceedsLoad)
	})

	t.Run("should hand out detached snapshots", func(t *testing.T) {
		ctx := context.Background()
		tracker := memory.NewCapacityTracker()
		truck := newTruck(t, 2500, 16)

		before, err := tracker.GetLoad(ctx, truck.ID())
		require.NoError(t, err)

		_, err = tracker.Reserve(ctx, truck, 100, 0.5)
		require.NoError(t, err)

		assert.Zero(t, before.CurrentLoadKg())
	})
}

// TestCapacityTracker_ConcurrentReservations hammers one vehicle from many
// goroutines. Exactly the reservations that fit may succeed, and the final
// load must equal their sum.
func TestCapacityTracker_ConcurrentReservations(t *testing.T) {
	ctx := context.Background()
	tracker := memory.NewCapacityTracker()
	truck := newTruck(t, 100, 100)

	const workers = 50
	const weightEach = 10.0 // only 10 of 50 can fit

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tracker.Reserve(ctx, truck, weightEach, 0.01)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, vehicle.ErrCapacityExceeded) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 10, succeeded)

	load, err := tracker.GetLoad(ctx, truck.ID())
	require.NoError(t, err)
	assert.InDelta(t, 100.0, load.CurrentLoadKg(), 0.001)
	assert.Equal(t, 10, load.OrderCount())
}

func TestCapacityTracker_IndependentVehicles(t *testing.T) {
	ctx := context.Background()
	tracker := memory.NewCapacityTracker()
	first := newTruck(t, 100, 100)
	second := newTruck(t, 100, 100)

	_, err := tracker.Reserve(ctx, first, 100, 1)
	require.NoError(t, err)

	load, err := tracker.Reserve(ctx, second, 50, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, load.CurrentLoadKg(), 0.001)
}
