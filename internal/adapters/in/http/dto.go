package http

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/queries"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
)

// ShipmentRequest is the common payload of quote, allocation and assignment
// requests: two raw address strings, a service type and the parcel list.
type ShipmentRequest struct {
	SenderAddress   string        `json:"senderAddress"`
	ReceiverAddress string        `json:"receiverAddress"`
	ServiceType     string        `json:"serviceType"`
	Items           []ItemPayload `json:"items"`
}

// ItemPayload describes one parcel. Either the dimensions or a size bucket
// must be present; the bucket stands in when the sender cannot measure.
type ItemPayload struct {
	WeightGrams   int     `json:"weightGrams"`
	LengthCm      float64 `json:"lengthCm,omitempty"`
	WidthCm       float64 `json:"widthCm,omitempty"`
	HeightCm      float64 `json:"heightCm,omitempty"`
	SizeBucket    string  `json:"sizeBucket,omitempty"`
	DeclaredValue int64   `json:"declaredValue,omitempty"`
	GoodsCategory string  `json:"goodsCategory,omitempty"`
}

// AllocationRequest asks for a ranked allocation preview. BranchID is
// optional: when absent the fleet is scoped to the branch serving the sender
// address.
type AllocationRequest struct {
	ShipmentRequest
	BranchID string `json:"branchId,omitempty"`
}

// AssignmentRequest reserves a vehicle for the order. BranchID and VehicleID
// are optional; naming a vehicle requests direct assignment instead of
// ranked selection. AssignedBy identifies the dispatcher making the call.
type AssignmentRequest struct {
	ShipmentRequest
	BranchID   string `json:"branchId,omitempty"`
	VehicleID  string `json:"vehicleId,omitempty"`
	AssignedBy string `json:"assignedBy,omitempty"`
}

// AddressSummary reports how an address text was resolved.
type AddressSummary struct {
	ProvinceCode string  `json:"provinceCode"`
	DistrictCode string  `json:"districtCode,omitempty"`
	WardCode     string  `json:"wardCode,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// QuoteResponse is the priced quote returned to the caller.
type QuoteResponse struct {
	EstimatedFee       int64          `json:"estimatedFee"`
	BasePrice          int64          `json:"basePrice"`
	ExtraWeightPrice   int64          `json:"extraWeightPrice"`
	ChargeableWeightKg float64        `json:"chargeableWeightKg"`
	ActualWeightKg     float64        `json:"actualWeightKg"`
	VolumetricWeightKg float64        `json:"volumetricWeightKg"`
	RouteType          string         `json:"routeType"`
	ServiceType        string         `json:"serviceType"`
	SLA                string         `json:"sla"`
	Sender             AddressSummary `json:"sender"`
	Receiver           AddressSummary `json:"receiver"`
	NearestBranchCode  string         `json:"nearestBranchCode,omitempty"`
	NearestBranchKm    float64        `json:"nearestBranchKm,omitempty"`
}

// SuggestionResponse is the ranked allocation preview.
type SuggestionResponse struct {
	RouteScope  string              `json:"routeScope"`
	Suggestions []SuggestionPayload `json:"suggestions"`
}

// SuggestionPayload is one ranked vehicle option.
type SuggestionPayload struct {
	VehicleID         string  `json:"vehicleId"`
	VehicleCode       string  `json:"vehicleCode"`
	VehicleType       string  `json:"vehicleType"`
	BranchID          string  `json:"branchId"`
	RemainingWeightKg float64 `json:"remainingWeightKg"`
	RemainingVolumeM3 float64 `json:"remainingVolumeM3"`
	OrderCount        int     `json:"orderCount"`
	CostScore         float64 `json:"costScore"`
}

// AssignmentResponse reports a committed reservation.
type AssignmentResponse struct {
	AssignmentID string  `json:"assignmentId"`
	VehicleID    string  `json:"vehicleId"`
	VehicleCode  string  `json:"vehicleCode"`
	VehicleType  string  `json:"vehicleType"`
	BranchID     string  `json:"branchId"`
	AssignedBy   string  `json:"assignedBy"`
	WeightKg     float64 `json:"weightKg"`
	VolumeM3     float64 `json:"volumeM3"`
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toManifest converts the request parcels into a domain manifest.
func toManifest(payloads []ItemPayload) (shipment.Manifest, error) {
	items := make([]shipment.Item, 0, len(payloads))
	for _, payload := range payloads {
		bucket := shipment.SizeBucketUnknown
		if payload.SizeBucket != "" {
			parsed, err := shipment.SizeBucketFromString(payload.SizeBucket)
			if err != nil {
				return shipment.Manifest{}, err
			}
			bucket = parsed
		}

		dims := shipment.Dimensions{
			LengthCm: payload.LengthCm,
			WidthCm:  payload.WidthCm,
			HeightCm: payload.HeightCm,
		}

		item, err := shipment.NewItem(payload.WeightGrams, dims, bucket,
			payload.DeclaredValue, shipment.NormalizeGoodsType(payload.GoodsCategory))
		if err != nil {
			return shipment.Manifest{}, err
		}
		items = append(items, item)
	}

	return shipment.NewManifest(items)
}

func toAddressSummary(summary queries.ResolvedAddressSummary) AddressSummary {
	return AddressSummary{
		ProvinceCode: summary.ProvinceCode,
		DistrictCode: summary.DistrictCode,
		WardCode:     summary.WardCode,
		Confidence:   summary.Confidence,
	}
}
