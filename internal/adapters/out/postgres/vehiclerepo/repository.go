package vehiclerepo

import (
	"context"
	"errors"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the active fleet across all branches ordered by
// code, so candidate matching sees a stable order.
func (r *GormVehicleRepository) GetAllActive(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return r.findActive(ctx, r.db.WithContext(ctx))
}

// GetAllActiveByBranch retrieves the active vehicles of one branch ordered
// by code.
func (r *GormVehicleRepository) GetAllActiveByBranch(ctx context.Context, branchID kernel.UUID) ([]*vehicle.Vehicle, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}
	return r.findActive(ctx, r.db.WithContext(ctx).Where("branch_id = ?", branchID.Bytes()))
}

func (r *GormVehicleRepository) findActive(_ context.Context, tx *gorm.DB) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := tx.Where("is_active = ?", true).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
