package georepo

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"

	"gorm.io/gorm"
)

// GormGeoReferenceStore implements GeoReferenceStore using GORM.
type GormGeoReferenceStore struct {
	db *gorm.DB
}

// NewGormGeoReferenceStore creates a new GORM geo reference store.
func NewGormGeoReferenceStore(db *gorm.DB) *GormGeoReferenceStore {
	return &GormGeoReferenceStore{db: db}
}

// LoadDirectory reads every geo unit and alias and returns them as one
// indexed, immutable snapshot. The snapshot is loaded once at startup and
// shared read-only across requests.
func (s *GormGeoReferenceStore) LoadDirectory(ctx context.Context) (*geo.Directory, error) {
	var unitDTOs []GeoUnitDTO
	if err := s.db.WithContext(ctx).Order("code").Find(&unitDTOs).Error; err != nil {
		return nil, err
	}

	var aliasDTOs []GeoAliasDTO
	if err := s.db.WithContext(ctx).Order("priority, alias").Find(&aliasDTOs).Error; err != nil {
		return nil, err
	}

	units := make([]*geo.GeoUnit, 0, len(unitDTOs))
	for _, dto := range unitDTOs {
		unit, err := unitToDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	aliases := make([]*geo.GeoAlias, 0, len(aliasDTOs))
	for _, dto := range aliasDTOs {
		alias, err := aliasToDomain(dto)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}

	return geo.NewDirectory(units, aliases)
}
