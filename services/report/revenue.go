package report

import (
	"context"

	"tourgate/models"
)

// Revenue combines booking revenue computed in process with the Commerce
// Service's own filtered contract total. When a date range is given the
// bookings come from the range endpoint and the range is forwarded to the
// Commerce Service; the gateway never re-filters what that upstream already
// filtered.
func (s *DefaultService) Revenue(ctx context.Context, start, end string) (models.RevenueReport, error) {
	var bookings []models.Booking
	var err error
	if start != "" || end != "" {
		bookings, err = s.Resolver.BookingsByRange(ctx, start, end)
	} else {
		bookings, err = s.Resolver.Bookings(ctx, nil)
	}
	if err != nil {
		return models.RevenueReport{}, err
	}
	tours, err := s.Resolver.Tours(ctx, nil)
	if err != nil {
		return models.RevenueReport{}, err
	}
	stats := s.Commerce.ContractStats(ctx, start, end)

	report := models.RevenueReport{
		OfferingRevenue: stats.TotalRevenue,
		ByMonth:         []models.MonthlySplit{},
		ByCategory:      []models.CategoryRevenue{},
	}

	categoryOf := make(map[string]string, len(tours))
	for _, tour := range tours {
		categoryOf[tour.ID] = tour.Category
	}

	months := make(map[string]*models.MonthlySplit)
	monthSplit := func(month string) *models.MonthlySplit {
		split, ok := months[month]
		if !ok {
			split = &models.MonthlySplit{Month: month}
			months[month] = split
		}
		return split
	}
	byCategory := make(map[string]float64)
	for _, b := range bookings {
		revenue := bookingRevenue(b)
		report.TourRevenue += revenue
		monthSplit(monthOf(b.Date)).Tours += revenue
		if revenue > 0 {
			byCategory[categoryOf[b.TourID]] += revenue
		}
	}
	for _, entry := range stats.ByMonth {
		monthSplit(entry.Month).Offerings += entry.Amount
	}

	report.TotalRevenue = report.TourRevenue + report.OfferingRevenue
	for _, month := range sortedKeys(months) {
		split := *months[month]
		split.Total = split.Tours + split.Offerings
		report.ByMonth = append(report.ByMonth, split)
	}
	for _, category := range sortedKeys(byCategory) {
		report.ByCategory = append(report.ByCategory, models.CategoryRevenue{
			Category: category,
			Revenue:  byCategory[category],
			Percent:  percent(byCategory[category], report.TourRevenue),
		})
	}
	return report, nil
}
