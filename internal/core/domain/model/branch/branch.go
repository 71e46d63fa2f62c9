// Package branch models the physical branches that own vehicle fleets and
// anchor the coverage check. Branch data is owned by the external branch
// directory and consumed read-only by the allocation core.
package branch

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// ErrBranchIsNotConstructed is returned when using an improperly initialized Branch.
var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")

// Branch is a physical courier branch. A branch is geo-enabled when it carries
// coordinates; only geo-enabled active branches participate in the coverage
// check and in nearest-branch ranking.
type Branch struct {
	id     kernel.UUID
	code   string
	name   string
	point  *kernel.GeoPoint
	active bool
	guard  guard.ConstructorGuard
}

// NewBranch creates a branch. ID, code and name are required; point is
// optional coordinate data.
func NewBranch(id kernel.UUID, code string, name string, point *kernel.GeoPoint, active bool) (*Branch, error) {
	b := &Branch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCode(code),
		b.setName(name),
		b.setPoint(point),
	); err != nil {
		return nil, err
	}

	b.active = active
	return b, nil
}

// IsEqual compares two branches for equality based on their unique identifiers.
func (b *Branch) IsEqual(other *Branch) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// Validate checks if the Branch was properly constructed.
func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

// ID returns the unique identifier of the branch.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Code returns the branch code.
func (b *Branch) Code() string {
	return b.code
}

// Name returns the branch display name.
func (b *Branch) Name() string {
	return b.name
}

// Point returns the branch coordinates, nil when the branch is not geo-enabled.
func (b *Branch) Point() *kernel.GeoPoint {
	return b.point
}

// IsActive reports whether the branch is operating.
func (b *Branch) IsActive() bool {
	return b.active
}

// IsGeoEnabled reports whether the branch has known coordinates.
func (b *Branch) IsGeoEnabled() bool {
	return b.point != nil
}

// DistanceKmTo returns the great-circle distance from the branch to the given
// point. Fails when the branch is not geo-enabled.
func (b *Branch) DistanceKmTo(point kernel.GeoPoint) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if b.point == nil {
		return 0, errs.NewValueIsRequiredError("branch coordinates")
	}
	return b.point.DistanceKm(point)
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Branch) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}
	b.code = code
	return nil
}

func (b *Branch) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Branch) setPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	b.point = point
	return nil
}
