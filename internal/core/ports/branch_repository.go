package ports

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/branch"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branches. Branches
// are reference data owned by back-office tooling; the booking core only
// reads them.
type BranchRepository interface {
	// Get retrieves a branch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetAllActive retrieves every active branch, for coverage checks and
	// nearest-branch ranking.
	GetAllActive(ctx context.Context) ([]*branch.Branch, error)
}
