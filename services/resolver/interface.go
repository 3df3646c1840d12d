package resolver

import (
	"context"
	"time"

	"tourgate/cache"
	"tourgate/models"
	"tourgate/upstream"

	"go.uber.org/zap"
)

// Service resolves canonical entities against the upstream adapters with
// cache-aside reads, lazy relationship expansion and write-through
// invalidation.
type Service interface {
	// Tours
	Tours(ctx context.Context, expand []string) ([]models.Tour, error)
	TourByID(ctx context.Context, id string, expand []string) (*models.Tour, error)
	ToursByCategory(ctx context.Context, category string) ([]models.Tour, error)
	ToursByPriceRange(ctx context.Context, min, max *float64) ([]models.Tour, error)
	AvailableTours(ctx context.Context) ([]models.Tour, error)
	CreateTour(ctx context.Context, in models.TourInput) (models.Tour, error)
	UpdateTour(ctx context.Context, id string, in models.TourInput) (models.Tour, error)
	DeleteTour(ctx context.Context, id string) error

	// Guides
	Guides(ctx context.Context) ([]models.Guide, error)
	GuideByID(ctx context.Context, id string) (*models.Guide, error)

	// Bookings
	Bookings(ctx context.Context, expand []string) ([]models.Booking, error)
	BookingByID(ctx context.Context, id string, expand []string) (*models.Booking, error)
	BookingsByTour(ctx context.Context, tourID string) ([]models.Booking, error)
	BookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	BookingsByStatus(ctx context.Context, status string) ([]models.Booking, error)
	BookingsByRange(ctx context.Context, start, end string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, in models.BookingInput) (models.Booking, error)
	UpdateBooking(ctx context.Context, id string, in models.BookingInput) (models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (models.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (models.Booking, error)

	// Identity
	Users(ctx context.Context) ([]models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, in models.NewUserInput) (models.User, error)
	Destinations(ctx context.Context) ([]models.Destination, error)
	DestinationByID(ctx context.Context, id string) (*models.Destination, error)
	Recommendations(ctx context.Context, expand []string) ([]models.Recommendation, error)
	RecommendationByID(ctx context.Context, id string, expand []string) (*models.Recommendation, error)
	RecommendationsByUser(ctx context.Context, userID string) ([]models.Recommendation, error)

	// Commerce
	Offerings(ctx context.Context) ([]models.Offering, error)
	OfferingByID(ctx context.Context, id string) (*models.Offering, error)
	OfferingsByType(ctx context.Context, offeringType string) ([]models.Offering, error)
	CreateOffering(ctx context.Context, in models.OfferingInput) (string, error)
	UpdateOffering(ctx context.Context, id string, in models.OfferingInput) (models.Offering, error)
	DeleteOffering(ctx context.Context, id string) error
	Contracts(ctx context.Context, expand []string) ([]models.Contract, error)
	ContractByID(ctx context.Context, id string, expand []string) (*models.Contract, error)
	ContractsByOffering(ctx context.Context, offeringID string) ([]models.Contract, error)
	ContractsByUser(ctx context.Context, userID string) ([]models.Contract, error)
	CreateContract(ctx context.Context, in models.ContractInput) (string, error)
	UpdateContract(ctx context.Context, id string, in models.ContractInput) (models.Contract, error)
	CancelContract(ctx context.Context, id string) (models.Contract, error)

	// Maintenance
	FlushCache(ctx context.Context) error
	PurgeReportCache(ctx context.Context) (int, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Cache    cache.Cache
	Catalog  *upstream.Catalog
	Identity *upstream.Identity
	Commerce *upstream.Commerce
	TTL      time.Duration
	Logger   *zap.Logger
}

// purge removes the given prefixes after a successful write. A failed purge
// is surfaced as a warning only; the write already happened and stands.
func (s *DefaultService) purge(ctx context.Context, prefixes ...string) {
	for _, prefix := range prefixes {
		if _, err := s.Cache.DeleteByPrefix(ctx, prefix); err != nil {
			s.Logger.Warn("cache purge failed after write",
				zap.String("prefix", prefix),
				zap.Error(err),
			)
		}
	}
}

// purgeKey removes a single cache key, warning on failure.
func (s *DefaultService) purgeKey(ctx context.Context, key string) {
	if err := s.Cache.Delete(ctx, key); err != nil {
		s.Logger.Warn("cache purge failed after write",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
