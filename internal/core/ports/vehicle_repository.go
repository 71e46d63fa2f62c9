package ports

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle definitions.
// Vehicle definitions are immutable during an allocation cycle; only their
// loads change, and those live behind the CapacityTracker.
type VehicleRepository interface {
	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllActive retrieves the active fleet across all branches, in a
	// stable order, for candidate matching.
	GetAllActive(ctx context.Context) ([]*vehicle.Vehicle, error)

	// GetAllActiveByBranch retrieves the active vehicles of one branch.
	GetAllActiveByBranch(ctx context.Context, branchID kernel.UUID) ([]*vehicle.Vehicle, error)
}
