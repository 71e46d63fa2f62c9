// Package georepo loads the administrative reference data from PostgreSQL.
// The geo_units and geo_aliases tables are seeded by back-office tooling; the
// booking core only reads them, once at startup, into an indexed Directory
// snapshot.
package georepo

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
)

// GeoUnitDTO represents the database structure for administrative units.
// Provinces, districts and wards share the table; the level column and the
// parent code encode the hierarchy.
type GeoUnitDTO struct {
	Code       string   `gorm:"type:varchar(8);primaryKey"`
	Level      int      `gorm:"type:smallint;not null"`
	Name       string   `gorm:"type:varchar(255);not null"`
	RawName    string   `gorm:"type:varchar(255)"`
	ParentCode string   `gorm:"type:varchar(8);index"`
	Region     string   `gorm:"type:varchar(16)"`
	Lat        *float64 `gorm:"type:double precision"`
	Lng        *float64 `gorm:"type:double precision"`
}

// TableName specifies the database table name for administrative units.
func (GeoUnitDTO) TableName() string {
	return "geo_units"
}

// GeoAliasDTO represents the database structure for address aliases.
type GeoAliasDTO struct {
	Alias    string `gorm:"type:varchar(255);primaryKey"`
	UnitCode string `gorm:"type:varchar(8);primaryKey;index"`
	Priority int    `gorm:"type:smallint;not null"`
}

// TableName specifies the database table name for address aliases.
func (GeoAliasDTO) TableName() string {
	return "geo_aliases"
}

// unitToDomain converts a database DTO to a GeoUnit.
func unitToDomain(dto GeoUnitDTO) (*geo.GeoUnit, error) {
	var region geo.Region
	if dto.Region != "" {
		parsed, err := geo.RegionFromString(dto.Region)
		if err != nil {
			return nil, err
		}
		region = parsed
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if err != nil {
			return nil, err
		}
		point = &p
	}

	return geo.NewGeoUnit(dto.Code, geo.UnitLevel(dto.Level), dto.Name, dto.RawName,
		dto.ParentCode, region, point)
}

// aliasToDomain converts a database DTO to a GeoAlias.
func aliasToDomain(dto GeoAliasDTO) (*geo.GeoAlias, error) {
	return geo.NewGeoAlias(dto.Alias, dto.UnitCode, dto.Priority)
}
