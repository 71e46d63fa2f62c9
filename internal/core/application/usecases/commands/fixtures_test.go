package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/commands"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/allocation"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/branch"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/ports"
)

// Reference data shared by the command handler tests: two provinces in
// different regions, enough to derive every route scope the handlers need.
// Neither province carries coordinates, so handlers that scope fleets by
// branch fall back to the whole active fleet unless a test names a branch.
func newTestNormalizer(t *testing.T) *services.AddressNormalizer {
	t.Helper()

	hanoi, err := geo.NewGeoUnit("01", geo.UnitLevelProvince, "Hà Nội", "Ha Noi", "",
		geo.RegionNorth, nil)
	require.NoError(t, err)
	hcm, err := geo.NewGeoUnit("79", geo.UnitLevelProvince, "Hồ Chí Minh", "Ho Chi Minh", "",
		geo.RegionSouth, nil)
	require.NoError(t, err)

	directory, err := geo.NewDirectory([]*geo.GeoUnit{hanoi, hcm}, nil)
	require.NoError(t, err)
	normalizer, err := services.NewAddressNormalizer(directory)
	require.NoError(t, err)
	return normalizer
}

func newTestClassifier(t *testing.T) *services.RouteClassifier {
	t.Helper()
	classifier, err := services.NewRouteClassifier(newTestNormalizer(t))
	require.NoError(t, err)
	return classifier
}

func newTestManifest(t *testing.T, weightGrams int) shipment.Manifest {
	t.Helper()
	item, err := shipment.NewItem(weightGrams,
		shipment.Dimensions{LengthCm: 40, WidthCm: 30, HeightCm: 20},
		shipment.SizeBucketUnknown, 0, shipment.GoodsTypeGeneral)
	require.NoError(t, err)
	manifest, err := shipment.NewManifest([]shipment.Item{item})
	require.NoError(t, err)
	return manifest
}

func newFarTruck(t *testing.T, code string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(), code, kernel.NewUUID(),
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

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, assignment *allocation.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, assignment *allocation.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByOrderID(ctx context.Context, orderID string) (*allocation.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllActive(ctx context.Context) ([]*allocation.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*allocation.Assignment), args.Error(1)
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CapacityTracker() ports.CapacityTracker {
	args := m.Called()
	return args.Get(0).(ports.CapacityTracker)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
