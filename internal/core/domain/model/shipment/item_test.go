package shipment_test

import (
	"testing"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measuredItem(t *testing.T, weightGrams int, l, w, h float64) shipment.Item {
	t.Helper()
	item, err := shipment.NewItem(weightGrams,
		shipment.Dimensions{LengthCm: l, WidthCm: w, HeightCm: h},
		shipment.SizeBucketUnknown, 0, "general")
	require.NoError(t, err)
	return item
}

func bucketItem(t *testing.T, weightGrams int, bucket shipment.SizeBucket) shipment.Item {
	t.Helper()
	item, err := shipment.NewItem(weightGrams, shipment.Dimensions{}, bucket, 0, "general")
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with dimensions", func(t *testing.T) {
		item := measuredItem(t, 2500, 30, 20, 10)

		assert.Equal(t, 2500, item.WeightGrams())
		assert.InDelta(t, 6000, item.Dimensions().VolumeCm3(), 0.001)
	})

	t.Run("should create item with size bucket", func(t *testing.T) {
		item := bucketItem(t, 1000, shipment.SizeBucketM)

		assert.Equal(t, shipment.SizeBucketM, item.SizeBucket())
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		_, err := shipment.NewItem(0,
			shipment.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10},
			shipment.SizeBucketUnknown, 0, "general")

		require.Error(t, err)
	})

	t.Run("should reject item without volume source", func(t *testing.T) {
		_, err := shipment.NewItem(1000, shipment.Dimensions{}, shipment.SizeBucketUnknown, 0, "general")

		require.Error(t, err)
		require.ErrorIs(t, err, shipment.ErrItemHasNoVolumeSource)
	})

	t.Run("should reject partial dimensions", func(t *testing.T) {
		_, err := shipment.NewItem(1000,
			shipment.Dimensions{LengthCm: 10, WidthCm: 0, HeightCm: 10},
			shipment.SizeBucketUnknown, 0, "general")

		require.Error(t, err)
	})

	t.Run("should reject negative declared value", func(t *testing.T) {
		_, err := shipment.NewItem(1000,
			shipment.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10},
			shipment.SizeBucketUnknown, -1, "general")

		require.Error(t, err)
	})
}

func TestSizeBucket_VolumeCm3(t *testing.T) {
	testCases := []struct {
		bucket   shipment.SizeBucket
		expected float64
	}{
		{shipment.SizeBucketS, 4000},
		{shipment.SizeBucketM, 13500},
		{shipment.SizeBucketL, 32000},
		{shipment.SizeBucketXL, 62500},
		{shipment.SizeBucketUnknown, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.bucket.String(), func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.bucket.VolumeCm3(), 0.001)
		})
	}
}

func TestManifest_Aggregation(t *testing.T) {
	t.Run("empty manifest is rejected", func(t *testing.T) {
		_, err := shipment.NewManifest(nil)

		require.Error(t, err)
	})

	t.Run("actual weight sums item weights", func(t *testing.T) {
		manifest, err := shipment.NewManifest([]shipment.Item{
			measuredItem(t, 1500, 10, 10, 10),
			measuredItem(t, 2500, 20, 10, 10),
		})
		require.NoError(t, err)

		assert.InDelta(t, 4.0, manifest.ActualWeightKg(), 0.001)
	})

	t.Run("standard volume sums measured dimensions", func(t *testing.T) {
		manifest, err := shipment.NewManifest([]shipment.Item{
			measuredItem(t, 1000, 10, 10, 10), // 1000 cm³
			measuredItem(t, 1000, 20, 10, 10), // 2000 cm³
		})
		require.NoError(t, err)

		volume, err := manifest.TotalVolumeCm3(shipment.ServiceTypeStandard)
		require.NoError(t, err)
		assert.InDelta(t, 3000, volume, 0.001)
	})

	t.Run("express volume sums bucket table entries", func(t *testing.T) {
		manifest, err := shipment.NewManifest([]shipment.Item{
			bucketItem(t, 1000, shipment.SizeBucketS),
			bucketItem(t, 1000, shipment.SizeBucketM),
		})
		require.NoError(t, err)

		volume, err := manifest.TotalVolumeCm3(shipment.ServiceTypeExpress)
		require.NoError(t, err)
		assert.InDelta(t, 17500, volume, 0.001)
	})

	t.Run("chargeable weight picks volumetric for bulky shipments", func(t *testing.T) {
		// 1 kg actual, 50×40×30 = 60000 cm³ → 12 kg volumetric
		manifest, err := shipment.NewManifest([]shipment.Item{
			measuredItem(t, 1000, 50, 40, 30),
		})
		require.NoError(t, err)

		chargeable, err := manifest.ChargeableWeightKg(shipment.ServiceTypeStandard)
		require.NoError(t, err)
		assert.InDelta(t, 12.0, chargeable, 0.001)
	})

	t.Run("chargeable weight picks actual for dense shipments", func(t *testing.T) {
		// 10 kg actual, 10×10×10 = 1000 cm³ → 0.2 kg volumetric
		manifest, err := shipment.NewManifest([]shipment.Item{
			measuredItem(t, 10000, 10, 10, 10),
		})
		require.NoError(t, err)

		chargeable, err := manifest.ChargeableWeightKg(shipment.ServiceTypeStandard)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, chargeable, 0.001)
	})

	t.Run("max dimensions are per-axis maxima", func(t *testing.T) {
		manifest, err := shipment.NewManifest([]shipment.Item{
			measuredItem(t, 1000, 50, 10, 10),
			measuredItem(t, 1000, 10, 40, 20),
		})
		require.NoError(t, err)

		maxDims := manifest.MaxDimensions()
		assert.InDelta(t, 50, maxDims.LengthCm, 0.001)
		assert.InDelta(t, 40, maxDims.WidthCm, 0.001)
		assert.InDelta(t, 20, maxDims.HeightCm, 0.001)
	})
}

func TestNormalizeGoodsType(t *testing.T) {
	t.Run("maps known categories case-insensitively", func(t *testing.T) {
		assert.Equal(t, shipment.GoodsTypeFood, shipment.NormalizeGoodsType("Thuc Pham"))
		assert.Equal(t, shipment.GoodsTypeFragile, shipment.NormalizeGoodsType("FRAGILE"))
		assert.Equal(t, shipment.GoodsTypeElectronics, shipment.NormalizeGoodsType("electronics"))
		assert.Equal(t, shipment.GoodsTypeDocument, shipment.NormalizeGoodsType("documents"))
	})

	t.Run("unmapped categories pass through uppercased", func(t *testing.T) {
		assert.Equal(t, "LIVESTOCK", shipment.NormalizeGoodsType("livestock"))
	})

	t.Run("empty category defaults to general", func(t *testing.T) {
		assert.Equal(t, shipment.GoodsTypeGeneral, shipment.NormalizeGoodsType("  "))
	})
}

func TestGoodsRequirementFromManifest(t *testing.T) {
	t.Run("aggregates manifest into requirement", func(t *testing.T) {
		item, err := shipment.NewItem(4000,
			shipment.Dimensions{LengthCm: 100, WidthCm: 100, HeightCm: 100},
			shipment.SizeBucketUnknown, 0, "thuc pham")
		require.NoError(t, err)

		manifest, err := shipment.NewManifest([]shipment.Item{item})
		require.NoError(t, err)

		requirement, err := shipment.GoodsRequirementFromManifest(manifest, shipment.ServiceTypeStandard)
		require.NoError(t, err)

		assert.Equal(t, shipment.GoodsTypeFood, requirement.GoodsType())
		// 1,000,000 cm³ → 1 m³; volumetric weight 200 kg beats 4 kg actual
		assert.InDelta(t, 1.0, requirement.VolumeM3(), 0.001)
		assert.InDelta(t, 200.0, requirement.ChargeableWeightKg(), 0.001)
	})
}
