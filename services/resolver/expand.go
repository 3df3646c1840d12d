package resolver

import (
	"context"

	"tourgate/models"

	"go.uber.org/zap"
)

// Relationship expansion is lazy and best-effort: a missing foreign key
// short-circuits to nil without an upstream call, and a failed lookup nils
// only the one relationship while the parent entity survives. Every lookup
// goes through the per-id cache key, so expanding N bookings of the same
// tour costs one upstream fetch.

func zapError(entity, id string, err error) []zap.Field {
	return []zap.Field{zap.String(entity, id), zap.Error(err)}
}

func hasExpand(expand []string, field string) bool {
	for _, f := range expand {
		if f == field {
			return true
		}
	}
	return false
}

func (s *DefaultService) expandTour(ctx context.Context, tour *models.Tour) {
	if tour.GuideID == "" {
		return
	}
	guide, err := s.GuideByID(ctx, tour.GuideID)
	if err != nil {
		s.Logger.Warn("guide expansion failed", zapError("tour", tour.ID, err)...)
		return
	}
	tour.Guide = guide
}

func (s *DefaultService) expandBooking(ctx context.Context, booking *models.Booking, expand []string) {
	if hasExpand(expand, "tour") && booking.TourID != "" {
		tour, err := s.TourByID(ctx, booking.TourID, nil)
		if err != nil {
			s.Logger.Warn("tour expansion failed", zapError("booking", booking.ID, err)...)
		} else {
			booking.Tour = tour
		}
	}
	if hasExpand(expand, "user") && booking.UserID != "" {
		user, err := s.UserByID(ctx, booking.UserID)
		if err != nil {
			s.Logger.Warn("user expansion failed", zapError("booking", booking.ID, err)...)
		} else {
			booking.User = user
		}
	}
}

func (s *DefaultService) expandRecommendation(ctx context.Context, rec *models.Recommendation) {
	if rec.UserID == "" {
		return
	}
	user, err := s.UserByID(ctx, rec.UserID)
	if err != nil {
		s.Logger.Warn("user expansion failed", zapError("recommendation", rec.ID, err)...)
		return
	}
	rec.User = user
}

func (s *DefaultService) expandContract(ctx context.Context, contract *models.Contract) {
	if contract.OfferingID == "" {
		return
	}
	offering, err := s.OfferingByID(ctx, contract.OfferingID)
	if err != nil {
		s.Logger.Warn("offering expansion failed", zapError("contract", contract.ID, err)...)
		return
	}
	contract.Offering = offering
}
