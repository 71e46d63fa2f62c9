package services

import (
	"errors"
	"sort"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/branch"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
)

// CoverageRadiusKm is how far from a geo-enabled active branch a sender may
// be before the platform refuses the shipment.
const CoverageRadiusKm = 150.0

// ErrOutOfCoverage is returned when no active branch with known coordinates
// lies within CoverageRadiusKm of the sender.
var ErrOutOfCoverage = errors.New("sender is outside the coverage radius of every active branch")

// RankedBranch is a branch paired with its great-circle distance to a point.
type RankedBranch struct {
	Branch     *branch.Branch
	DistanceKm float64
}

// BranchLocator ranks branches by distance and enforces the coverage radius.
// Only active branches with coordinates participate; branches without
// coordinates can never serve a coverage check. The locator is pure and safe
// for concurrent use.
type BranchLocator struct{}

// NewBranchLocator creates a locator.
func NewBranchLocator() *BranchLocator {
	return &BranchLocator{}
}

// RankByDistance returns the active geo-enabled branches sorted by ascending
// haversine distance to the point. Equal distances fall back to branch id so
// the ordering is deterministic.
func (l *BranchLocator) RankByDistance(
	branches []*branch.Branch,
	point kernel.GeoPoint,
) ([]RankedBranch, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedBranch, 0, len(branches))
	for _, candidate := range branches {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.IsActive() || !candidate.IsGeoEnabled() {
			continue
		}
		distanceKm, err := candidate.DistanceKmTo(point)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedBranch{Branch: candidate, DistanceKm: distanceKm})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Branch.ID().String() < ranked[j].Branch.ID().String()
	})
	return ranked, nil
}

// NearestCovering returns the closest active geo-enabled branch within the
// coverage radius, or ErrOutOfCoverage when the nearest one is too far or no
// branch has coordinates at all.
func (l *BranchLocator) NearestCovering(
	branches []*branch.Branch,
	point kernel.GeoPoint,
) (RankedBranch, error) {
	ranked, err := l.RankByDistance(branches, point)
	if err != nil {
		return RankedBranch{}, err
	}
	if len(ranked) == 0 || ranked[0].DistanceKm > CoverageRadiusKm {
		return RankedBranch{}, ErrOutOfCoverage
	}
	return ranked[0], nil
}
