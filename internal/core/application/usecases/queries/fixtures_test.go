package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/branch"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
)

// Reference data shared by the query handler tests: provinces in the north
// and south with real-world coordinates, plus one southern province without
// coordinates to exercise the coverage skip.
func newTestDirectory(t *testing.T) *geo.Directory {
	t.Helper()

	hanoiPoint, err := kernel.NewGeoPoint(21.0278, 105.8342)
	require.NoError(t, err)
	hcmPoint, err := kernel.NewGeoPoint(10.7769, 106.7009)
	require.NoError(t, err)
	caMauPoint, err := kernel.NewGeoPoint(9.1768, 105.1524)
	require.NoError(t, err)

	hanoi, err := geo.NewGeoUnit("01", geo.UnitLevelProvince, "Hà Nội", "Ha Noi", "",
		geo.RegionNorth, &hanoiPoint)
	require.NoError(t, err)
	hcm, err := geo.NewGeoUnit("79", geo.UnitLevelProvince, "Hồ Chí Minh", "Ho Chi Minh", "",
		geo.RegionSouth, &hcmPoint)
	require.NoError(t, err)
	caMau, err := geo.NewGeoUnit("96", geo.UnitLevelProvince, "Cà Mau", "Ca Mau", "",
		geo.RegionSouth, &caMauPoint)
	require.NoError(t, err)
	canTho, err := geo.NewGeoUnit("92", geo.UnitLevelProvince, "Cần Thơ", "Can Tho", "",
		geo.RegionSouth, nil)
	require.NoError(t, err)

	directory, err := geo.NewDirectory(
		[]*geo.GeoUnit{hanoi, hcm, caMau, canTho}, nil)
	require.NoError(t, err)
	return directory
}

func newTestNormalizer(t *testing.T) *services.AddressNormalizer {
	t.Helper()
	normalizer, err := services.NewAddressNormalizer(newTestDirectory(t))
	require.NoError(t, err)
	return normalizer
}

func newTestClassifier(t *testing.T) *services.RouteClassifier {
	t.Helper()
	classifier, err := services.NewRouteClassifier(newTestNormalizer(t))
	require.NoError(t, err)
	return classifier
}

func mustBranch(t *testing.T, code string, lat, lng float64) *branch.Branch {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	b, err := branch.NewBranch(kernel.NewUUID(), code, "Chi nhánh "+code, &point, true)
	require.NoError(t, err)
	return b
}

func newTestBranches(t *testing.T) []*branch.Branch {
	t.Helper()
	return []*branch.Branch{
		mustBranch(t, "BR-HN", 21.0300, 105.8500),
		mustBranch(t, "BR-HCM", 10.7800, 106.7000),
	}
}

func newTestManifest(t *testing.T, weightGrams int, dims shipment.Dimensions) shipment.Manifest {
	t.Helper()
	item, err := shipment.NewItem(weightGrams, dims,
		shipment.SizeBucketUnknown, 0, shipment.GoodsTypeGeneral)
	require.NoError(t, err)
	manifest, err := shipment.NewManifest([]shipment.Item{item})
	require.NoError(t, err)
	return manifest
}

func smallParcel(t *testing.T, weightGrams int) shipment.Manifest {
	t.Helper()
	return newTestManifest(t, weightGrams,
		shipment.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10})
}

func newFarTruck(t *testing.T, code string) *vehicle.Vehicle {
	t.Helper()
	return newBranchTruck(t, code, kernel.NewUUID())
}

func newBranchTruck(t *testing.T, code string, branchID kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), code, branchID,
		vehicle.VehicleTypeTruck25, 2500, 16,
		shipment.Dimensions{LengthCm: 420, WidthCm: 190, HeightCm: 190},
		[]string{shipment.GoodsTypeGeneral},
		geo.RouteScopeInterRegionFar, true,
	)
	require.NoError(t, err)
	return v
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetAllActive(ctx context.Context) ([]*branch.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*branch.Branch), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllActive(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllActiveByBranch(ctx context.Context, branchID kernel.UUID) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockCapacityTracker struct{ mock.Mock }

func (m *MockCapacityTracker) GetLoad(ctx context.Context, vehicleID kernel.UUID) (*vehicle.Load, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Load), args.Error(1)
}

func (m *MockCapacityTracker) GetLoads(ctx context.Context, vehicleIDs []kernel.UUID) ([]*vehicle.Load, error) {
	args := m.Called(ctx, vehicleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Load), args.Error(1)
}

func (m *MockCapacityTracker) Reserve(ctx context.Context, v *vehicle.Vehicle, weightKg float64, volumeM3 float64) (*vehicle.Load, error) {
	args := m.Called(ctx, v, weightKg, volumeM3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Load), args.Error(1)
}

func (m *MockCapacityTracker) Release(ctx context.Context, vehicleID kernel.UUID, weightKg float64, volumeM3 float64) (*vehicle.Load, error) {
	args := m.Called(ctx, vehicleID, weightKg, volumeM3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Load), args.Error(1)
}
