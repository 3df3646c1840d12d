package report

import (
	"context"
	"math"
	"sort"
	"time"

	"tourgate/cache"
	"tourgate/models"
	"tourgate/services/resolver"
	"tourgate/upstream"

	"go.uber.org/zap"
)

// Service computes cross-entity reports in process. Inputs come through the
// resolver's cached collection reads, so an entity purge is immediately
// visible to the next report; the expensive fan-out reports additionally
// cache their own result under the report key family.
type Service interface {
	PopularTours(ctx context.Context, limit int) ([]models.PopularTour, error)
	ToursByCategory(ctx context.Context) ([]models.CategoryShare, error)
	BookingsByPeriod(ctx context.Context, start, end string) (models.PeriodReport, error)
	BookingsByStatus(ctx context.Context) (models.StatusReport, error)
	GuidePerformance(ctx context.Context) ([]models.GuidePerformance, error)
	Revenue(ctx context.Context, start, end string) (models.RevenueReport, error)
	Consolidated(ctx context.Context, start, end string) (models.ConsolidatedReport, error)
	TopOfferings(ctx context.Context, limit int) ([]models.TopOffering, error)

	// Pass-throughs for the statistics the Commerce Service computes itself.
	OfferingStats(ctx context.Context) models.OfferingStats
	ContractStats(ctx context.Context, start, end string) models.ContractStats
}

// DefaultService implements Service.
type DefaultService struct {
	Resolver  resolver.Service
	Commerce  *upstream.Commerce
	Cache     cache.Cache
	ReportTTL time.Duration
	Logger    *zap.Logger
}

// DefaultLimit bounds ranked reports when the caller does not say how many
// rows it wants.
const DefaultLimit = 10

// bookingRevenue is the one revenue rule applied everywhere: cancelled
// bookings never contribute, every other status does.
func bookingRevenue(b models.Booking) float64 {
	if b.Status == models.BookingCancelled {
		return 0
	}
	return b.TotalPrice
}

// contractRevenue mirrors bookingRevenue for commerce contracts.
func contractRevenue(c models.Contract) float64 {
	if c.Status == models.ContractCancelled {
		return 0
	}
	return c.Total
}

// monthOf truncates a "YYYY-MM-DD" date to its "YYYY-MM" month.
func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

// percent returns part/whole as a percentage rounded to two decimals, and 0
// when the denominator is zero.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return round2(part / whole * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortedKeys returns map keys in ascending order so bucketed report output
// is deterministic across runs.
func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
