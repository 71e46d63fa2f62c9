package loadrepo

import (
	"context"
	"errors"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/allocation"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCapacityTracker implements CapacityTracker using GORM. Reserve and
// Release must run inside a transaction; they take a SELECT ... FOR UPDATE
// lock on the vehicle's load row so the capacity check and the increment are
// one atomic step.
type GormCapacityTracker struct {
	db *gorm.DB
}

// NewGormCapacityTracker creates a new GORM capacity tracker.
func NewGormCapacityTracker(db *gorm.DB) *GormCapacityTracker {
	return &GormCapacityTracker{db: db}
}

// GetLoad returns the current load of a vehicle. A vehicle without a load
// row yet is reported as empty.
func (t *GormCapacityTracker) GetLoad(ctx context.Context, vehicleID kernel.UUID) (*vehicle.Load, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleLoadDTO
	err := t.db.WithContext(ctx).First(&dto, "vehicle_id = ?", vehicleID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vehicle.NewLoad(vehicleID)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetLoads returns the current loads of the given vehicles, in the same
// order as the ids. Vehicles without load rows are reported as empty.
func (t *GormCapacityTracker) GetLoads(ctx context.Context, vehicleIDs []kernel.UUID) ([]*vehicle.Load, error) {
	ids := make([]uuid.UUID, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []VehicleLoadDTO
	if err := t.db.WithContext(ctx).Where("vehicle_id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byVehicle := make(map[string]VehicleLoadDTO, len(dtos))
	for _, dto := range dtos {
		byVehicle[dto.VehicleID.String()] = dto
	}

	loads := make([]*vehicle.Load, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		dto, ok := byVehicle[id.String()]
		if !ok {
			load, err := vehicle.NewLoad(id)
			if err != nil {
				return nil, err
			}
			loads = append(loads, load)
			continue
		}

		load, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}

	return loads, nil
}

// Reserve atomically adds the shipment's weight and volume to the vehicle's
// load. The load row is locked until the surrounding transaction ends. Fails
// with vehicle.ErrCapacityExceeded when either limit would be crossed,
// leaving the row unchanged.
func (t *GormCapacityTracker) Reserve(ctx context.Context, v *vehicle.Vehicle, weightKg float64, volumeM3 float64) (*vehicle.Load, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	load, err := t.lockLoad(ctx, v.ID())
	if err != nil {
		return nil, err
	}

	if err := load.Reserve(v, weightKg, volumeM3); err != nil {
		return nil, err
	}

	return load, t.save(ctx, load)
}

// Release atomically subtracts a previous reservation from the vehicle's
// load. Fails with vehicle.ErrReleaseExceedsLoad when the load does not hold
// that much.
func (t *GormCapacityTracker) Release(ctx context.Context, vehicleID kernel.UUID, weightKg float64, volumeM3 float64) (*vehicle.Load, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	load, err := t.lockLoad(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := load.Release(weightKg, volumeM3); err != nil {
		return nil, err
	}

	return load, t.save(ctx, load)
}

// Reconcile rebuilds every load row from the active assignments. The
// counters are maintained transactionally by the assignment commands, so
// this only corrects drift introduced outside the application, e.g. manual
// data fixes.
func (t *GormCapacityTracker) Reconcile(ctx context.Context) error {
	active := allocation.StatusActive.String()

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(`
			INSERT INTO vehicle_loads (vehicle_id, current_load_kg, current_volume_m3, order_count)
			SELECT vehicle_id, SUM(weight_kg), SUM(volume_m3), COUNT(*)
			FROM assignments
			WHERE status = ?
			GROUP BY vehicle_id
			ON CONFLICT (vehicle_id) DO UPDATE SET
				current_load_kg   = EXCLUDED.current_load_kg,
				current_volume_m3 = EXCLUDED.current_volume_m3,
				order_count       = EXCLUDED.order_count`, active).Error
		if err != nil {
			return err
		}

		return tx.Exec(`
			UPDATE vehicle_loads
			SET current_load_kg = 0, current_volume_m3 = 0, order_count = 0
			WHERE vehicle_id NOT IN (
				SELECT vehicle_id FROM assignments WHERE status = ?)`, active).Error
	})
}

// lockLoad reads the vehicle's load row under a FOR UPDATE lock, creating an
// empty row first when the vehicle was never reserved. The insert uses ON
// CONFLICT DO NOTHING so two first-time reservations fall through to the
// lock instead of failing on the primary key.
func (t *GormCapacityTracker) lockLoad(ctx context.Context, vehicleID kernel.UUID) (*vehicle.Load, error) {
	empty := VehicleLoadDTO{VehicleID: vehicleID.Bytes()}
	if err := t.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&empty).Error; err != nil {
		return nil, err
	}

	var dto VehicleLoadDTO
	if err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "vehicle_id = ?", vehicleID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (t *GormCapacityTracker) save(ctx context.Context, load *vehicle.Load) error {
	dto := fromDomain(load)
	return t.db.WithContext(ctx).Save(&dto).Error
}
