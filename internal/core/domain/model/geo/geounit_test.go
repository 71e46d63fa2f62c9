package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
)

func TestNewGeoUnit(t *testing.T) {
	t.Run("should create province with region", func(t *testing.T) {
		unit, err := geo.NewGeoUnit("01", geo.UnitLevelProvince, "Hà Nội", "Ha Noi", "",
			geo.RegionNorth, nil)

		require.NoError(t, err)
		assert.Equal(t, "01", unit.Code())
		assert.Equal(t, geo.RegionNorth, unit.Region())
		require.NoError(t, unit.Validate())
	})

	t.Run("should reject province without region", func(t *testing.T) {
		_, err := geo.NewGeoUnit("01", geo.UnitLevelProvince, "Hà Nội", "", "",
			geo.RegionUnknown, nil)

		require.Error(t, err)
	})

	t.Run("should reject district without parent", func(t *testing.T) {
		_, err := geo.NewGeoUnit("001", geo.UnitLevelDistrict, "Ba Đình", "", "",
			geo.RegionUnknown, nil)

		require.Error(t, err)
	})

	t.Run("district does not need a region", func(t *testing.T) {
		unit, err := geo.NewGeoUnit("001", geo.UnitLevelDistrict, "Ba Đình", "", "01",
			geo.RegionUnknown, nil)

		require.NoError(t, err)
		assert.Equal(t, geo.RegionUnknown, unit.Region())
	})

	t.Run("should reject blank code", func(t *testing.T) {
		_, err := geo.NewGeoUnit(" ", geo.UnitLevelProvince, "Hà Nội", "", "",
			geo.RegionNorth, nil)

		require.Error(t, err)
	})
}

func TestNewGeoAlias(t *testing.T) {
	t.Run("should create alias", func(t *testing.T) {
		alias, err := geo.NewGeoAlias("Sai Gon", "79", 0)

		require.NoError(t, err)
		assert.Equal(t, "Sai Gon", alias.Alias())
		assert.Equal(t, "79", alias.UnitCode())
		assert.Zero(t, alias.Priority())
	})

	t.Run("should reject negative priority", func(t *testing.T) {
		_, err := geo.NewGeoAlias("Sai Gon", "79", -1)

		require.Error(t, err)
	})
}

func TestNewDirectory(t *testing.T) {
	hanoi := func(t *testing.T) *geo.GeoUnit {
		t.Helper()
		unit, err := geo.NewGeoUnit("01", geo.UnitLevelProvince, "Hà Nội", "Ha Noi", "",
			geo.RegionNorth, nil)
		require.NoError(t, err)
		return unit
	}
	baDinh := func(t *testing.T) *geo.GeoUnit {
		t.Helper()
		unit, err := geo.NewGeoUnit("001", geo.UnitLevelDistrict, "Ba Đình", "Ba Dinh", "01",
			geo.RegionUnknown, nil)
		require.NoError(t, err)
		return unit
	}

	t.Run("should index units and aliases", func(t *testing.T) {
		alias, err := geo.NewGeoAlias("HN", "01", 5)
		require.NoError(t, err)

		directory, err := geo.NewDirectory([]*geo.GeoUnit{baDinh(t), hanoi(t)}, []*geo.GeoAlias{alias})

		require.NoError(t, err)
		require.Len(t, directory.Provinces(), 1)
		assert.Len(t, directory.ChildrenOf("01"), 1)
		assert.Len(t, directory.ProvinceAliases(), 1)

		unit, found := directory.UnitByCode("001")
		require.True(t, found)
		assert.Equal(t, "Ba Đình", unit.Name())
	})

	t.Run("should reject orphan districts", func(t *testing.T) {
		_, err := geo.NewDirectory([]*geo.GeoUnit{baDinh(t)}, nil)

		require.Error(t, err)
	})

	t.Run("should reject aliases of unknown units", func(t *testing.T) {
		alias, err := geo.NewGeoAlias("SG", "79", 0)
		require.NoError(t, err)

		_, err = geo.NewDirectory([]*geo.GeoUnit{hanoi(t)}, []*geo.GeoAlias{alias})

		require.Error(t, err)
	})

	t.Run("should reject duplicate unit codes", func(t *testing.T) {
		_, err := geo.NewDirectory([]*geo.GeoUnit{hanoi(t), hanoi(t)}, nil)

		require.Error(t, err)
	})

	t.Run("should sort aliases by priority", func(t *testing.T) {
		low, err := geo.NewGeoAlias("Thang Long", "01", 9)
		require.NoError(t, err)
		high, err := geo.NewGeoAlias("HN", "01", 1)
		require.NoError(t, err)

		directory, err := geo.NewDirectory([]*geo.GeoUnit{hanoi(t)}, []*geo.GeoAlias{low, high})

		require.NoError(t, err)
		aliases := directory.ProvinceAliases()
		require.Len(t, aliases, 2)
		assert.Equal(t, "HN", aliases[0].Alias())
	})

	t.Run("zero value directory is invalid", func(t *testing.T) {
		var directory geo.Directory
		require.Error(t, directory.Validate())
	})
}
