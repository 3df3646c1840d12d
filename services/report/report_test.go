package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourgate/cache"
	"tourgate/models"
	"tourgate/services/resolver"
	"tourgate/upstream"
)

// stubResolver serves fixed collections; only the methods reports use are
// implemented.
type stubResolver struct {
	resolver.Service
	tours        []models.Tour
	bookings     []models.Booking
	guides       []models.Guide
	destinations []models.Destination
	offerings    []models.Offering
	contracts    []models.Contract
}

func (s *stubResolver) Tours(ctx context.Context, expand []string) ([]models.Tour, error) {
	return s.tours, nil
}

func (s *stubResolver) Bookings(ctx context.Context, expand []string) ([]models.Booking, error) {
	return s.bookings, nil
}

func (s *stubResolver) BookingsByRange(ctx context.Context, start, end string) ([]models.Booking, error) {
	filtered := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.Date >= start && b.Date <= end {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *stubResolver) Guides(ctx context.Context) ([]models.Guide, error) {
	return s.guides, nil
}

func (s *stubResolver) Destinations(ctx context.Context) ([]models.Destination, error) {
	return s.destinations, nil
}

func (s *stubResolver) Offerings(ctx context.Context) ([]models.Offering, error) {
	return s.offerings, nil
}

func (s *stubResolver) Contracts(ctx context.Context, expand []string) ([]models.Contract, error) {
	return s.contracts, nil
}

// threeTourFixture: two Adventure bookings on tour A, one Culture booking on
// tour B, tour C idle.
func threeTourFixture() *stubResolver {
	return &stubResolver{
		tours: []models.Tour{
			{ID: "A", Name: "Inca Trail", Category: "Adventure", Price: 100, Available: true, GuideID: "g1"},
			{ID: "B", Name: "City Walk", Category: "Culture", Price: 50, Available: true, GuideID: "g2"},
			{ID: "C", Name: "Lake Day", Category: "Adventure", Price: 80, Available: false, GuideID: "g1"},
		},
		bookings: []models.Booking{
			{ID: "1", TourID: "A", Date: "2025-03-10", TotalPrice: 100, Status: models.BookingConfirmed},
			{ID: "2", TourID: "A", Date: "2025-04-02", TotalPrice: 100, Status: models.BookingPending},
			{ID: "3", TourID: "B", Date: "2025-03-15", TotalPrice: 100, Status: models.BookingCompleted},
		},
		guides: []models.Guide{
			{ID: "g1", Name: "Rosa Quispe", Rating: 4.8, Available: true},
			{ID: "g2", Name: "Juan Mamani", Rating: 4.2, Available: false},
		},
	}
}

func testReportService(t *testing.T, res resolver.Service) *DefaultService {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	store := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { store.Close() })
	return &DefaultService{
		Resolver:  res,
		Commerce:  upstream.NewCommerce(srv.URL, time.Second, zap.NewNop()),
		Cache:     store,
		ReportTTL: time.Minute,
		Logger:    zap.NewNop(),
	}
}

func TestPopularToursRanking(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	rows, err := svc.PopularTours(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "A", rows[0].TourID)
	assert.Equal(t, 2, rows[0].BookingCount)
	assert.Equal(t, 200.0, rows[0].TotalRevenue)
	require.Len(t, rows[0].ByMonth, 2)
	assert.Equal(t, "2025-03", rows[0].ByMonth[0].Month)
	assert.Equal(t, "2025-04", rows[0].ByMonth[1].Month)

	assert.Equal(t, "B", rows[1].TourID)
	assert.Equal(t, "C", rows[2].TourID)
	assert.Equal(t, 0, rows[2].BookingCount)
}

func TestPopularToursCancellationExcludedFromRevenue(t *testing.T) {
	fixture := threeTourFixture()
	fixture.bookings[1].Status = models.BookingCancelled
	svc := testReportService(t, fixture)

	rows, err := svc.PopularTours(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "A", rows[0].TourID)
	assert.Equal(t, 2, rows[0].BookingCount, "cancelled bookings still count")
	assert.Equal(t, 100.0, rows[0].TotalRevenue, "cancelled bookings never contribute revenue")
}

func TestPopularToursLimit(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	rows, err := svc.PopularTours(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].TourID)
}

func TestBookingsByPeriodInclusiveRange(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	report, err := svc.BookingsByPeriod(context.Background(), "2025-03-10", "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalBookings, "both boundary dates are included")
	assert.Equal(t, 1, report.Confirmed)
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 200.0, report.TotalRevenue)
	assert.Equal(t, 100.0, report.AverageRevenue)
	require.Len(t, report.ByDay, 2)
	assert.Equal(t, "2025-03-10", report.ByDay[0].Date)
}

func TestBookingsByPeriodEmptyRangeAveragesZero(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	report, err := svc.BookingsByPeriod(context.Background(), "2030-01-01", "2030-12-31")
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalBookings)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Equal(t, 0.0, report.AverageRevenue, "empty range must not divide by zero")
	assert.Empty(t, report.ByDay)
}

func TestGuidePerformanceJoins(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	rows, err := svc.GuidePerformance(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "g1", rows[0].GuideID, "g1 carries tour A's revenue")
	assert.Equal(t, 2, rows[0].TourCount)
	assert.Equal(t, 1, rows[0].AvailableTours)
	assert.Equal(t, 2, rows[0].BookingCount)
	assert.Equal(t, 200.0, rows[0].Revenue)

	assert.Equal(t, "g2", rows[1].GuideID)
	assert.Equal(t, 100.0, rows[1].Revenue)
}

func TestRevenueCategoryPercentages(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	report, err := svc.Revenue(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 300.0, report.TourRevenue)
	assert.Equal(t, 0.0, report.OfferingRevenue, "unreachable commerce degrades to zero")
	assert.Equal(t, 300.0, report.TotalRevenue)

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "Adventure", report.ByCategory[0].Category)
	assert.Equal(t, 200.0, report.ByCategory[0].Revenue)
	assert.Equal(t, 66.67, report.ByCategory[0].Percent)
	assert.Equal(t, "Culture", report.ByCategory[1].Category)
	assert.Equal(t, 33.33, report.ByCategory[1].Percent)
}

func TestRevenueEmptyCollections(t *testing.T) {
	svc := testReportService(t, &stubResolver{})

	report, err := svc.Revenue(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Empty(t, report.ByCategory, "no revenue means no percentage rows to divide")
	assert.Empty(t, report.ByMonth)
}

func TestConsolidatedSnapshot(t *testing.T) {
	fixture := threeTourFixture()
	fixture.destinations = []models.Destination{
		{ID: "d1", Country: "PE"},
		{ID: "d2", Country: "PE"},
		{ID: "d3", Country: "BO"},
	}
	fixture.offerings = []models.Offering{
		{ID: "s1", Name: "Transfer", Type: "transport", Price: 30},
		{ID: "s2", Name: "Dinner", Type: "food", Price: 20},
	}
	fixture.contracts = []models.Contract{
		{ID: "c1", OfferingID: "s1", Total: 60, Status: models.ContractActive},
		{ID: "c2", OfferingID: "s1", Total: 30, Status: models.ContractCancelled},
	}
	svc := testReportService(t, fixture)

	report, err := svc.Consolidated(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Tours.Total)
	assert.Equal(t, 2, report.Tours.Active)
	assert.Equal(t, 1, report.Tours.Inactive)
	require.Len(t, report.Tours.ByCategory, 2)
	assert.Equal(t, 66.67, report.Tours.ByCategory[0].Percent)

	assert.Equal(t, 3, report.Bookings.Total)
	assert.Equal(t, 0.0, report.Bookings.CancellationRate)
	assert.Equal(t, 33.33, report.Bookings.CompletionRate)

	assert.Equal(t, 2, report.Guides.Total)
	assert.Equal(t, 1, report.Guides.Active)
	assert.Equal(t, 4.5, report.Guides.AverageRating)

	assert.Equal(t, 3, report.Destinations.Total)
	assert.Equal(t, []models.CountryCount{{Country: "BO", Count: 1}, {Country: "PE", Count: 2}}, report.Destinations.ByCountry)

	assert.Equal(t, 2, report.Offerings.Total)
	assert.Equal(t, 2, report.Offerings.Contracted)
	assert.Equal(t, 60.0, report.Offerings.TotalRevenue, "cancelled contract revenue excluded")

	assert.Equal(t, 300.0, report.TourRevenue)
	assert.Equal(t, 360.0, report.TotalRevenue)
}

func TestConsolidatedEmptySystem(t *testing.T) {
	svc := testReportService(t, &stubResolver{})

	report, err := svc.Consolidated(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Tours.Total)
	assert.Equal(t, 0.0, report.Tours.AveragePrice)
	assert.Equal(t, 0.0, report.Bookings.CancellationRate)
	assert.Equal(t, 0.0, report.Guides.AverageRating)
	assert.Equal(t, 0.0, report.TotalRevenue)
}

func TestConsolidatedResultIsCached(t *testing.T) {
	fixture := threeTourFixture()
	svc := testReportService(t, fixture)
	ctx := context.Background()

	first, err := svc.Consolidated(ctx, "", "")
	require.NoError(t, err)

	// Mutating the fixture does not change the cached snapshot.
	fixture.tours = nil
	second, err := svc.Consolidated(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, first.Tours.Total, second.Tours.Total)
}

func TestTopOfferingsRanking(t *testing.T) {
	fixture := &stubResolver{
		offerings: []models.Offering{
			{ID: "s1", Name: "Transfer", Type: "transport"},
			{ID: "s2", Name: "Dinner", Type: "food"},
		},
		contracts: []models.Contract{
			{ID: "c1", OfferingID: "s2", Total: 40, Status: models.ContractActive},
			{ID: "c2", OfferingID: "s2", Total: 60, Status: models.ContractCompleted},
			{ID: "c3", OfferingID: "s1", Total: 30, Status: models.ContractActive},
		},
	}
	svc := testReportService(t, fixture)

	rows, err := svc.TopOfferings(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "s2", rows[0].OfferingID)
	assert.Equal(t, 2, rows[0].ContractCount)
	assert.Equal(t, 100.0, rows[0].TotalRevenue)
	assert.Equal(t, 50.0, rows[0].AveragePrice)
	assert.Equal(t, "s1", rows[1].OfferingID)
}

func TestToursByCategoryShares(t *testing.T) {
	svc := testReportService(t, threeTourFixture())

	shares, err := svc.ToursByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "Adventure", shares[0].Category)
	assert.Equal(t, 2, shares[0].Count)
	assert.Equal(t, 66.67, shares[0].Percent)
	assert.Equal(t, "Culture", shares[1].Category)
	assert.Equal(t, 33.33, shares[1].Percent)
}

func TestBookingsByStatusWholeCollection(t *testing.T) {
	fixture := threeTourFixture()
	fixture.bookings = append(fixture.bookings, models.Booking{
		ID: "4", TourID: "C", Date: "2025-05-01", TotalPrice: 80, Status: models.BookingCancelled,
	})
	svc := testReportService(t, fixture)

	report, err := svc.BookingsByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalBookings)
	assert.Equal(t, 1, report.Pending)
	assert.Equal(t, 1, report.Confirmed)
	assert.Equal(t, 1, report.Cancelled)
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 300.0, report.TotalRevenue)
	assert.Equal(t, 75.0, report.AverageRevenue)
}
