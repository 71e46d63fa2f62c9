package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
)

func emptyLoad(t *testing.T, v *vehicle.Vehicle) *vehicle.Load {
	t.Helper()
	load, err := vehicle.NewLoad(v.ID())
	require.NoError(t, err)
	return load
}

func loadedTo(t *testing.T, v *vehicle.Vehicle, weightKg float64, volumeM3 float64, orders int) *vehicle.Load {
	t.Helper()
	load, err := vehicle.RestoreLoad(v.ID(), weightKg, volumeM3, orders)
	require.NoError(t, err)
	return load
}

func TestAllocationRanker_Rank(t *testing.T) {
	ranker := services.NewAllocationRanker()
	general := []string{shipment.GoodsTypeGeneral}

	t.Run("smaller vehicle class always wins", func(t *testing.T) {
		bike := mustVehicle(t, "MB-001", vehicle.VehicleTypeMotorbike, 30, 0.06,
			general, geo.RouteScopeIntraProvince, true)
		truck := mustVehicle(t, "T25-001", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)

		suggestions, err := ranker.Rank([]services.Candidate{
			{Vehicle: truck, Load: emptyLoad(t, truck)},
			{Vehicle: bike, Load: emptyLoad(t, bike)},
		}, 10, 0.01)

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "MB-001", suggestions[0].VehicleCode)
		assert.Equal(t, "T25-001", suggestions[1].VehicleCode)
		assert.Less(t, suggestions[0].CostScore, suggestions[1].CostScore)
	})

	t.Run("tighter capacity fit wins within a class", func(t *testing.T) {
		roomy := mustVehicle(t, "T25-A", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)
		snug := mustVehicle(t, "T25-B", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)

		suggestions, err := ranker.Rank([]services.Candidate{
			{Vehicle: roomy, Load: emptyLoad(t, roomy)},
			{Vehicle: snug, Load: loadedTo(t, snug, 1500, 10, 0)},
		}, 500, 2)

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "T25-B", suggestions[0].VehicleCode)
	})

	t.Run("less busy vehicle wins an otherwise exact tie", func(t *testing.T) {
		first := mustVehicle(t, "T25-A", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)
		second := mustVehicle(t, "T25-B", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)

		suggestions, err := ranker.Rank([]services.Candidate{
			{Vehicle: first, Load: loadedTo(t, first, 0, 0, 7)},
			{Vehicle: second, Load: loadedTo(t, second, 0, 0, 2)},
		}, 500, 2)

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "T25-B", suggestions[0].VehicleCode)
		assert.Equal(t, 2, suggestions[0].OrderCount)
	})

	t.Run("exact ties keep candidate order", func(t *testing.T) {
		first := mustVehicle(t, "T25-A", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)
		second := mustVehicle(t, "T25-B", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)

		suggestions, err := ranker.Rank([]services.Candidate{
			{Vehicle: first, Load: emptyLoad(t, first)},
			{Vehicle: second, Load: emptyLoad(t, second)},
		}, 500, 2)

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "T25-A", suggestions[0].VehicleCode)
		assert.Equal(t, "T25-B", suggestions[1].VehicleCode)
	})

	t.Run("ranking is deterministic", func(t *testing.T) {
		truck := mustVehicle(t, "T25-A", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)
		other := mustVehicle(t, "T35-A", vehicle.VehicleTypeTruck35, 3500, 20,
			general, geo.RouteScopeIntraProvince, true)
		candidates := []services.Candidate{
			{Vehicle: truck, Load: loadedTo(t, truck, 100, 1, 3)},
			{Vehicle: other, Load: loadedTo(t, other, 200, 2, 1)},
		}

		first, err := ranker.Rank(candidates, 500, 2)
		require.NoError(t, err)
		second, err := ranker.Rank(candidates, 500, 2)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should skip candidates without remaining capacity", func(t *testing.T) {
		full := mustVehicle(t, "T25-A", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)
		free := mustVehicle(t, "T25-B", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)

		suggestions, err := ranker.Rank([]services.Candidate{
			{Vehicle: full, Load: loadedTo(t, full, 2400, 15, 4)},
			{Vehicle: free, Load: emptyLoad(t, free)},
		}, 500, 2)

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "T25-B", suggestions[0].VehicleCode)
	})

	t.Run("should fail when nothing fits", func(t *testing.T) {
		full := mustVehicle(t, "T25-A", vehicle.VehicleTypeTruck25, 2500, 16,
			general, geo.RouteScopeIntraProvince, true)

		_, err := ranker.Rank([]services.Candidate{
			{Vehicle: full, Load: loadedTo(t, full, 2400, 15, 4)},
		}, 500, 2)

		require.ErrorIs(t, err, services.ErrNoEligibleVehicle)
	})

	t.Run("should reject negative shipment weight", func(t *testing.T) {
		_, err := ranker.Rank(nil, -1, 0)

		require.Error(t, err)
	})
}
