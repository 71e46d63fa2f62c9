// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

var ErrQuoteQueryIsNotConstructed = errors.New(
	"QuoteQuery must be created via NewQuoteQuery constructor",
)

// QuoteQuery prices a prospective shipment without reserving anything. It is
// entirely side-effect free; a quote is recomputed from scratch on every
// request.
//
// Example:
//
//	query, err := NewQuoteQuery(
//	    "phố Huế, Hà Nội", "Nguyễn Huệ, TPHCM",
//	    shipment.ServiceTypeStandard, manifest)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
type QuoteQuery struct {
	senderAddress   string
	receiverAddress string
	serviceType     shipment.ServiceType
	manifest        shipment.Manifest

	guard guard.ConstructorGuard
}

// NewQuoteQuery creates a validated quote query.
func NewQuoteQuery(
	senderAddress string,
	receiverAddress string,
	serviceType shipment.ServiceType,
	manifest shipment.Manifest,
) (QuoteQuery, error) {
	if strings.TrimSpace(senderAddress) == "" {
		return QuoteQuery{}, errs.NewValueIsRequiredError("senderAddress")
	}
	if strings.TrimSpace(receiverAddress) == "" {
		return QuoteQuery{}, errs.NewValueIsRequiredError("receiverAddress")
	}
	if err := serviceType.Validate(); err != nil {
		return QuoteQuery{}, err
	}
	if err := manifest.Validate(); err != nil {
		return QuoteQuery{}, err
	}

	return QuoteQuery{
		senderAddress:   senderAddress,
		receiverAddress: receiverAddress,
		serviceType:     serviceType,
		manifest:        manifest,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrQuoteQueryIsNotConstructed if validation fails.
func (q *QuoteQuery) Validate() error {
	return q.guard.Validate(ErrQuoteQueryIsNotConstructed)
}

// SenderAddress returns the raw pickup address text.
func (q *QuoteQuery) SenderAddress() string {
	return q.senderAddress
}

// ReceiverAddress returns the raw delivery address text.
func (q *QuoteQuery) ReceiverAddress() string {
	return q.receiverAddress
}

// ServiceType returns the requested delivery product.
func (q *QuoteQuery) ServiceType() shipment.ServiceType {
	return q.serviceType
}

// Manifest returns the package manifest.
func (q *QuoteQuery) Manifest() shipment.Manifest {
	return q.manifest
}

// ResolvedAddressSummary is the read model of one resolved address.
type ResolvedAddressSummary struct {
	ProvinceCode string
	DistrictCode string
	WardCode     string
	Confidence   float64
}

// QuoteQueryResponse is the read model returned for a quote.
type QuoteQueryResponse struct {
	EstimatedFee int64
	Breakdown    shipment.PricingBreakdown
	SLA          string

	Sender   ResolvedAddressSummary
	Receiver ResolvedAddressSummary

	// NearestBranchCode and NearestBranchDistanceKm report the branch that
	// anchored the coverage check; empty when the sender has no coordinates.
	NearestBranchCode       string
	NearestBranchDistanceKm float64
}
