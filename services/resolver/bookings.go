package resolver

import (
	"context"

	"tourgate/cache"
	"tourgate/models"
)

func (s *DefaultService) Bookings(ctx context.Context, expand []string) ([]models.Booking, error) {
	bookings, err := cache.GetOrCompute(ctx, s.Cache, keyBookingsAll, s.TTL, func(ctx context.Context) ([]models.Booking, error) {
		return s.Catalog.Bookings(ctx), nil
	})
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		s.expandBooking(ctx, &bookings[i], expand)
	}
	return bookings, nil
}

func (s *DefaultService) BookingByID(ctx context.Context, id string, expand []string) (*models.Booking, error) {
	booking, err := cache.GetOrCompute(ctx, s.Cache, bookingKey(id), s.TTL, func(ctx context.Context) (*models.Booking, error) {
		result := s.Catalog.BookingByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		booking := result.Value
		return &booking, nil
	})
	if err != nil || booking == nil {
		return nil, err
	}
	s.expandBooking(ctx, booking, expand)
	return booking, nil
}

func (s *DefaultService) BookingsByTour(ctx context.Context, tourID string) ([]models.Booking, error) {
	return cache.GetOrCompute(ctx, s.Cache, bookingsTourKey(tourID), s.TTL, func(ctx context.Context) ([]models.Booking, error) {
		return s.Catalog.BookingsByTour(ctx, tourID), nil
	})
}

func (s *DefaultService) BookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return cache.GetOrCompute(ctx, s.Cache, bookingsUserKey(userID), s.TTL, func(ctx context.Context) ([]models.Booking, error) {
		return s.Catalog.BookingsByUser(ctx, userID), nil
	})
}

func (s *DefaultService) BookingsByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, models.ErrInvalidStatus
	}
	return cache.GetOrCompute(ctx, s.Cache, bookingsStatusKey(status), s.TTL, func(ctx context.Context) ([]models.Booking, error) {
		return s.Catalog.BookingsByStatus(ctx, status), nil
	})
}

// BookingsByRange is not cached: the argument space is unbounded and the
// range endpoint exists for reports, which carry their own caching.
func (s *DefaultService) BookingsByRange(ctx context.Context, start, end string) ([]models.Booking, error) {
	return s.Catalog.BookingsByRange(ctx, start, end), nil
}

func (s *DefaultService) CreateBooking(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	booking, err := s.Catalog.CreateBooking(ctx, in)
	if err != nil {
		return models.Booking{}, err
	}
	s.purge(ctx, PrefixBookings)
	return booking, nil
}

func (s *DefaultService) UpdateBooking(ctx context.Context, id string, in models.BookingInput) (models.Booking, error) {
	booking, err := s.Catalog.UpdateBooking(ctx, id, in)
	if err != nil {
		return models.Booking{}, err
	}
	s.purge(ctx, PrefixBookings)
	s.purgeKey(ctx, bookingKey(id))
	return booking, nil
}

func (s *DefaultService) CancelBooking(ctx context.Context, id, reason string) (models.Booking, error) {
	booking, err := s.Catalog.CancelBooking(ctx, id, reason)
	if err != nil {
		return models.Booking{}, err
	}
	s.purge(ctx, PrefixBookings)
	s.purgeKey(ctx, bookingKey(id))
	return booking, nil
}

func (s *DefaultService) ConfirmBooking(ctx context.Context, id string) (models.Booking, error) {
	booking, err := s.Catalog.ConfirmBooking(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	s.purge(ctx, PrefixBookings)
	s.purgeKey(ctx, bookingKey(id))
	return booking, nil
}
