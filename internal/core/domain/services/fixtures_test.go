package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
)

// Province codes used across the service tests. Hanoi and Ho Chi Minh City
// are the Express-enabled major cities.
const (
	hanoiCode  = "01"
	danangCode = "48"
	hcmCode    = "79"
	canThoCode = "92"
	baDinhCode = "001"
	hoanKiem   = "002"
	thuDucCode = "769"
	phucXaCode = "00001"
)

func mustPoint(t *testing.T, lat float64, lng float64) *kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return &point
}

func mustUnit(
	t *testing.T,
	code string,
	level geo.UnitLevel,
	name string,
	rawName string,
	parentCode string,
	region geo.Region,
	point *kernel.GeoPoint,
) *geo.GeoUnit {
	t.Helper()
	unit, err := geo.NewGeoUnit(code, level, name, rawName, parentCode, region, point)
	require.NoError(t, err)
	return unit
}

func mustAlias(t *testing.T, alias string, unitCode string, priority int) *geo.GeoAlias {
	t.Helper()
	record, err := geo.NewGeoAlias(alias, unitCode, priority)
	require.NoError(t, err)
	return record
}

// newTestDirectory builds a small but realistic slice of the Vietnamese
// administrative hierarchy: three regions, four provinces, districts and a
// ward under Hanoi, plus common aliases.
func newTestDirectory(t *testing.T) *geo.Directory {
	t.Helper()

	units := []*geo.GeoUnit{
		mustUnit(t, hanoiCode, geo.UnitLevelProvince, "Hà Nội", "Ha Noi", "",
			geo.RegionNorth, mustPoint(t, 21.0278, 105.8342)),
		mustUnit(t, danangCode, geo.UnitLevelProvince, "Đà Nẵng", "Da Nang", "",
			geo.RegionCentral, mustPoint(t, 16.0544, 108.2022)),
		mustUnit(t, hcmCode, geo.UnitLevelProvince, "Hồ Chí Minh", "Ho Chi Minh", "",
			geo.RegionSouth, mustPoint(t, 10.7769, 106.7009)),
		mustUnit(t, canThoCode, geo.UnitLevelProvince, "Cần Thơ", "Can Tho", "",
			geo.RegionSouth, nil),

		mustUnit(t, baDinhCode, geo.UnitLevelDistrict, "Ba Đình", "Ba Dinh", hanoiCode,
			geo.RegionUnknown, mustPoint(t, 21.0367, 105.8342)),
		mustUnit(t, hoanKiem, geo.UnitLevelDistrict, "Hoàn Kiếm", "Hoan Kiem", hanoiCode,
			geo.RegionUnknown, nil),
		mustUnit(t, thuDucCode, geo.UnitLevelDistrict, "Thủ Đức", "Quan 9", hcmCode,
			geo.RegionUnknown, nil),

		mustUnit(t, phucXaCode, geo.UnitLevelWard, "Phúc Xá", "Phuc Xa", baDinhCode,
			geo.RegionUnknown, nil),
	}

	aliases := []*geo.GeoAlias{
		mustAlias(t, "Sai Gon", hcmCode, 0),
		mustAlias(t, "HCM", hcmCode, 1),
		mustAlias(t, "TPHCM", hcmCode, 2),
		mustAlias(t, "HN", hanoiCode, 5),
		mustAlias(t, "Badinh", baDinhCode, 3),
	}

	directory, err := geo.NewDirectory(units, aliases)
	require.NoError(t, err)
	return directory
}

func newTestNormalizer(t *testing.T) *services.AddressNormalizer {
	t.Helper()
	normalizer, err := services.NewAddressNormalizer(newTestDirectory(t))
	require.NoError(t, err)
	return normalizer
}

func newTestClassifier(t *testing.T) *services.RouteClassifier {
	t.Helper()
	classifier, err := services.NewRouteClassifier(newTestNormalizer(t))
	require.NoError(t, err)
	return classifier
}

func mustResolve(t *testing.T, normalizer *services.AddressNormalizer, raw string) geo.ResolvedAddress {
	t.Helper()
	resolved, err := normalizer.Normalize(raw)
	require.NoError(t, err)
	return resolved
}

// measuredManifest builds a single-item manifest with explicit dimensions,
// suitable for Standard pricing.
func measuredManifest(t *testing.T, weightGrams int, dims shipment.Dimensions) shipment.Manifest {
	t.Helper()
	item, err := shipment.NewItem(weightGrams, dims, shipment.SizeBucketUnknown, 0, shipment.GoodsTypeGeneral)
	require.NoError(t, err)
	manifest, err := shipment.NewManifest([]shipment.Item{item})
	require.NoError(t, err)
	return manifest
}

// bucketManifest builds a single-item manifest with a declared size bucket,
// suitable for Express pricing.
func bucketManifest(t *testing.T, weightGrams int, bucket shipment.SizeBucket) shipment.Manifest {
	t.Helper()
	item, err := shipment.NewItem(weightGrams, shipment.Dimensions{}, bucket, 0, shipment.GoodsTypeGeneral)
	require.NoError(t, err)
	manifest, err := shipment.NewManifest([]shipment.Item{item})
	require.NoError(t, err)
	return manifest
}
