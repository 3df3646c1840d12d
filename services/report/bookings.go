package report

import (
	"context"

	"tourgate/models"
)

// BookingsByPeriod summarizes bookings inside [start, end], both ends
// inclusive. Every status counts toward the totals; only revenue skips
// cancelled bookings, and the average is taken over all bookings in range.
func (s *DefaultService) BookingsByPeriod(ctx context.Context, start, end string) (models.PeriodReport, error) {
	bookings, err := s.Resolver.BookingsByRange(ctx, start, end)
	if err != nil {
		return models.PeriodReport{}, err
	}
	report := models.PeriodReport{ByDay: []models.DayBucket{}}
	days := make(map[string]*models.DayBucket)
	for _, b := range bookings {
		report.TotalBookings++
		report.TotalRevenue += bookingRevenue(b)
		countStatus(b.Status, &report.Pending, &report.Confirmed, &report.Cancelled, &report.Completed)
		bucket, ok := days[b.Date]
		if !ok {
			bucket = &models.DayBucket{Date: b.Date}
			days[b.Date] = bucket
		}
		bucket.Count++
		bucket.Revenue += bookingRevenue(b)
	}
	if report.TotalBookings > 0 {
		report.AverageRevenue = round2(report.TotalRevenue / float64(report.TotalBookings))
	}
	for _, day := range sortedKeys(days) {
		report.ByDay = append(report.ByDay, *days[day])
	}
	return report, nil
}

// BookingsByStatus is the whole-collection variant of BookingsByPeriod.
func (s *DefaultService) BookingsByStatus(ctx context.Context) (models.StatusReport, error) {
	bookings, err := s.Resolver.Bookings(ctx, nil)
	if err != nil {
		return models.StatusReport{}, err
	}
	report := models.StatusReport{}
	for _, b := range bookings {
		report.TotalBookings++
		report.TotalRevenue += bookingRevenue(b)
		countStatus(b.Status, &report.Pending, &report.Confirmed, &report.Cancelled, &report.Completed)
	}
	if report.TotalBookings > 0 {
		report.AverageRevenue = round2(report.TotalRevenue / float64(report.TotalBookings))
	}
	return report, nil
}

func countStatus(status string, pending, confirmed, cancelled, completed *int) {
	switch status {
	case models.BookingPending:
		*pending++
	case models.BookingConfirmed:
		*confirmed++
	case models.BookingCancelled:
		*cancelled++
	case models.BookingCompleted:
		*completed++
	}
}
