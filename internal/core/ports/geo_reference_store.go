// Package ports defines the contracts between the booking core and
// infrastructure: reference-data stores, repositories, the capacity tracker
// and the unit of work. They enable dependency inversion and testability.
package ports

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
)

// GeoReferenceStore loads the administrative reference data. The data changes
// rarely, so callers load a Directory snapshot once and share it read-only
// across requests.
type GeoReferenceStore interface {
	// LoadDirectory reads every geo unit and alias and returns them indexed.
	LoadDirectory(ctx context.Context) (*geo.Directory, error)
}
