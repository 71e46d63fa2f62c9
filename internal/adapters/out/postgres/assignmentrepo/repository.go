package assignmentrepo

import (
	"context"
	"errors"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/allocation"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *allocation.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *allocation.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrderID retrieves the active assignment of an order. Returns an
// ObjectNotFound error when the order has none.
func (r *GormAssignmentRepository) GetActiveByOrderID(ctx context.Context, orderID string) (*allocation.Assignment, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status = ?", orderID, allocation.StatusActive.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active assignment, for load reconciliation.
func (r *GormAssignmentRepository) GetAllActive(ctx context.Context) ([]*allocation.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", allocation.StatusActive.String()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	assignments := make([]*allocation.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		assignment, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}
