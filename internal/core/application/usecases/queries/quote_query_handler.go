package queries

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/ports"
)

// QuoteQueryHandler computes a shipping quote: address resolution, coverage
// check against the branch network, route classification and fee
// calculation. It never reserves capacity.
//
// Example:
//
//	handler := NewQuoteQueryHandler(normalizer, classifier, engine, locator, branchRepo)
//	quote, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, services.ErrAddressNotResolved):
//	    // 422: the sender or receiver text matched no province
//	case errors.Is(err, services.ErrOutOfCoverage):
//	    // 422: no branch within 150 km of the sender
//	case errors.Is(err, services.ErrUnsupportedRoute):
//	    // 422: no tariff for this route and weight
//	}
type QuoteQueryHandler struct {
	normalizer *services.AddressNormalizer
	classifier *services.RouteClassifier
	engine     *services.PricingEngine
	locator    *services.BranchLocator
	branchRepo ports.BranchRepository
}

// NewQuoteQueryHandler creates a handler for quote queries.
func NewQuoteQueryHandler(
	normalizer *services.AddressNormalizer,
	classifier *services.RouteClassifier,
	engine *services.PricingEngine,
	locator *services.BranchLocator,
	branchRepo ports.BranchRepository,
) QuoteQueryHandler {
	return QuoteQueryHandler{
		normalizer: normalizer,
		classifier: classifier,
		engine:     engine,
		locator:    locator,
		branchRepo: branchRepo,
	}
}

// Handle executes the quote query. The coverage check anchors on the
// sender's resolved coordinates; senders resolving to units without
// coordinates skip the check rather than failing the quote.
func (h QuoteQueryHandler) Handle(ctx context.Context, query QuoteQuery) (QuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteQueryResponse{}, err
	}

	sender, err := h.normalizer.Normalize(query.SenderAddress())
	if err != nil {
		return QuoteQueryResponse{}, err
	}
	receiver, err := h.normalizer.Normalize(query.ReceiverAddress())
	if err != nil {
		return QuoteQueryResponse{}, err
	}

	response := QuoteQueryResponse{
		Sender:   summarize(sender),
		Receiver: summarize(receiver),
	}

	if sender.Point() != nil {
		branches, err := h.branchRepo.GetAllActive(ctx)
		if err != nil {
			return QuoteQueryResponse{}, err
		}
		nearest, err := h.locator.NearestCovering(branches, *sender.Point())
		if err != nil {
			return QuoteQueryResponse{}, err
		}
		response.NearestBranchCode = nearest.Branch.Code()
		response.NearestBranchDistanceKm = nearest.DistanceKm
	}

	routeType, err := h.classifier.ClassifyRouteType(sender, receiver)
	if err != nil {
		return QuoteQueryResponse{}, err
	}

	breakdown, err := h.engine.CalculateFee(
		query.ServiceType(), routeType, sender, receiver, query.Manifest())
	if err != nil {
		return QuoteQueryResponse{}, err
	}

	response.EstimatedFee = breakdown.TotalFee()
	response.Breakdown = breakdown
	response.SLA = breakdown.SLA
	return response, nil
}

func summarize(addr geo.ResolvedAddress) ResolvedAddressSummary {
	return ResolvedAddressSummary{
		ProvinceCode: addr.ProvinceCode(),
		DistrictCode: addr.DistrictCode(),
		WardCode:     addr.WardCode(),
		Confidence:   addr.OverallConfidence(),
	}
}
