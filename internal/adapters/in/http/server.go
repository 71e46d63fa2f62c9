// Package http exposes the booking core over REST. It maps request payloads
// onto commands and queries and translates domain failures into status
// codes: malformed input is 400, a request the domain understands but cannot
// serve is 422, a lost capacity race is 409.
package http

import (
	"errors"
	"net/http"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/commands"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/queries"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	quoteHandler   queries.QuoteQueryHandler
	suggestHandler queries.SuggestVehiclesQueryHandler
	assignHandler  commands.AssignVehicleCommandHandler
	releaseHandler commands.ReleaseVehicleCommandHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	quoteHandler queries.QuoteQueryHandler,
	suggestHandler queries.SuggestVehiclesQueryHandler,
	assignHandler commands.AssignVehicleCommandHandler,
	releaseHandler commands.ReleaseVehicleCommandHandler,
) *Server {
	return &Server{
		quoteHandler:   quoteHandler,
		suggestHandler: suggestHandler,
		assignHandler:  assignHandler,
		releaseHandler: releaseHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/quotes", s.CreateQuote)
	e.POST("/api/v1/orders/:orderId/allocation", s.SuggestVehicles)
	e.POST("/api/v1/orders/:orderId/assignment", s.AssignVehicle)
	e.DELETE("/api/v1/orders/:orderId/assignment", s.ReleaseVehicle)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateQuote handles POST /api/v1/quotes - prices a prospective shipment.
func (s *Server) CreateQuote(ctx echo.Context) error {
	request, serviceType, manifest, err := s.bindShipment(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewQuoteQuery(
		request.SenderAddress, request.ReceiverAddress, serviceType, manifest)
	if err != nil {
		return s.fail(ctx, err)
	}

	quote, err := s.quoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		EstimatedFee:       quote.EstimatedFee,
		BasePrice:          quote.Breakdown.BasePrice,
		ExtraWeightPrice:   quote.Breakdown.ExtraWeightPrice,
		ChargeableWeightKg: quote.Breakdown.ChargeableWeightKg,
		ActualWeightKg:     quote.Breakdown.ActualWeightKg,
		VolumetricWeightKg: quote.Breakdown.VolumetricWeightKg,
		RouteType:          quote.Breakdown.RouteType.String(),
		ServiceType:        quote.Breakdown.ServiceType.String(),
		SLA:                quote.SLA,
		Sender:             toAddressSummary(quote.Sender),
		Receiver:           toAddressSummary(quote.Receiver),
		NearestBranchCode:  quote.NearestBranchCode,
		NearestBranchKm:    quote.NearestBranchDistanceKm,
	})
}

// SuggestVehicles handles POST /api/v1/orders/:orderId/allocation - previews
// the ranked vehicle options without reserving anything. An explicit branchId
// pins the preview to that branch's fleet.
func (s *Server) SuggestVehicles(ctx echo.Context) error {
	var request AllocationRequest
	if err := ctx.Bind(&request); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	serviceType, manifest, err := s.shipmentParts(request.ShipmentRequest)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewSuggestVehiclesQuery(
		request.SenderAddress, request.ReceiverAddress, serviceType, manifest,
		request.BranchID)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.suggestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	suggestions := make([]SuggestionPayload, 0, len(response.Suggestions))
	for _, suggestion := range response.Suggestions {
		suggestions = append(suggestions, SuggestionPayload{
			VehicleID:         suggestion.VehicleID.String(),
			VehicleCode:       suggestion.VehicleCode,
			VehicleType:       suggestion.VehicleType.String(),
			BranchID:          suggestion.BranchID.String(),
			RemainingWeightKg: suggestion.RemainingWeightKg,
			RemainingVolumeM3: suggestion.RemainingVolumeM3,
			OrderCount:        suggestion.OrderCount,
			CostScore:         suggestion.CostScore,
		})
	}

	return ctx.JSON(http.StatusOK, SuggestionResponse{
		RouteScope:  response.RouteScope,
		Suggestions: suggestions,
	})
}

// AssignVehicle handles POST /api/v1/orders/:orderId/assignment - reserves
// capacity for a confirmed order. A vehicleId in the body requests direct
// assignment of that vehicle.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var request AssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	serviceType, manifest, err := s.shipmentParts(request.ShipmentRequest)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignVehicleCommand(
		ctx.Param("orderId"), request.SenderAddress, request.ReceiverAddress,
		serviceType, manifest, request.BranchID, request.VehicleID, request.AssignedBy)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.assignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AssignmentResponse{
		AssignmentID: result.AssignmentID.String(),
		VehicleID:    result.VehicleID.String(),
		VehicleCode:  result.VehicleCode,
		VehicleType:  result.VehicleType.String(),
		BranchID:     result.BranchID.String(),
		AssignedBy:   result.AssignedBy,
		WeightKg:     result.WeightKg,
		VolumeM3:     result.VolumeM3,
	})
}

// ReleaseVehicle handles DELETE /api/v1/orders/:orderId/assignment - returns
// the reservation when an order is cancelled or delivered.
func (s *Server) ReleaseVehicle(ctx echo.Context) error {
	cmd, err := commands.NewReleaseVehicleCommand(ctx.Param("orderId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.releaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindShipment decodes and converts the shared shipment payload.
func (s *Server) bindShipment(ctx echo.Context) (ShipmentRequest, shipment.ServiceType, shipment.Manifest, error) {
	var request ShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ShipmentRequest{}, shipment.ServiceTypeUnknown, shipment.Manifest{},
			errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	serviceType, manifest, err := s.shipmentParts(request)
	if err != nil {
		return ShipmentRequest{}, shipment.ServiceTypeUnknown, shipment.Manifest{}, err
	}

	return request, serviceType, manifest, nil
}

// shipmentParts converts the shared shipment fields into domain values.
func (s *Server) shipmentParts(request ShipmentRequest) (shipment.ServiceType, shipment.Manifest, error) {
	serviceType, err := shipment.ServiceTypeFromString(request.ServiceType)
	if err != nil {
		return shipment.ServiceTypeUnknown, shipment.Manifest{}, err
	}

	manifest, err := toManifest(request.Items)
	if err != nil {
		return shipment.ServiceTypeUnknown, shipment.Manifest{}, err
	}

	return serviceType, manifest, nil
}

// fail translates a domain error into the uniform error payload.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		ctx.Logger().Errorf("request failed: %v", err)
	}
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// statusForError classifies domain failures. Bad input is the caller's
// fault; a well-formed request the network cannot serve is unprocessable;
// a lost reservation race is a conflict the caller may retry.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAddressNotResolved),
		errors.Is(err, services.ErrOutOfCoverage),
		errors.Is(err, services.ErrUnsupportedRoute):
		return http.StatusUnprocessableEntity
	case errors.Is(err, vehicle.ErrCapacityExceeded),
		errors.Is(err, commands.ErrOrderAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoEligibleVehicle),
		errors.Is(err, commands.ErrAssignmentNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
