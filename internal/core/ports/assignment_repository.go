package ports

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/allocation"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignments.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, assignment *allocation.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, assignment *allocation.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Assignment, error)

	// GetActiveByOrderID retrieves the active assignment of an order.
	// Returns errs.ErrObjectNotFound-kind errors when the order has none.
	GetActiveByOrderID(ctx context.Context, orderID string) (*allocation.Assignment, error)

	// GetAllActive retrieves every active assignment, for load reconciliation.
	GetAllActive(ctx context.Context) ([]*allocation.Assignment, error)
}
