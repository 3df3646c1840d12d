package report

import (
	"context"
	"sort"

	"tourgate/models"
)

// PopularTours ranks tours by booking count. Counts include every status;
// revenue excludes cancelled bookings.
func (s *DefaultService) PopularTours(ctx context.Context, limit int) ([]models.PopularTour, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	tours, err := s.Resolver.Tours(ctx, nil)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Resolver.Bookings(ctx, nil)
	if err != nil {
		return nil, err
	}

	byTour := make(map[string][]models.Booking)
	for _, b := range bookings {
		byTour[b.TourID] = append(byTour[b.TourID], b)
	}

	rows := make([]models.PopularTour, 0, len(tours))
	for _, tour := range tours {
		row := models.PopularTour{
			TourID:   tour.ID,
			TourName: tour.Name,
			Category: tour.Category,
			Rating:   tour.Rating,
			ByMonth:  []models.MonthBucket{},
		}
		months := make(map[string]*models.MonthBucket)
		for _, b := range byTour[tour.ID] {
			row.BookingCount++
			row.TotalRevenue += bookingRevenue(b)
			month := monthOf(b.Date)
			bucket, ok := months[month]
			if !ok {
				bucket = &models.MonthBucket{Month: month}
				months[month] = bucket
			}
			bucket.Count++
			bucket.Revenue += bookingRevenue(b)
		}
		for _, month := range sortedKeys(months) {
			row.ByMonth = append(row.ByMonth, *months[month])
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BookingCount != rows[j].BookingCount {
			return rows[i].BookingCount > rows[j].BookingCount
		}
		return rows[i].TourID < rows[j].TourID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ToursByCategory breaks the tour inventory down by category with each
// category's share of the total.
func (s *DefaultService) ToursByCategory(ctx context.Context) ([]models.CategoryShare, error) {
	tours, err := s.Resolver.Tours(ctx, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, tour := range tours {
		counts[tour.Category]++
	}
	shares := make([]models.CategoryShare, 0, len(counts))
	for _, category := range sortedKeys(counts) {
		shares = append(shares, models.CategoryShare{
			Category: category,
			Count:    counts[category],
			Percent:  percent(float64(counts[category]), float64(len(tours))),
		})
	}
	return shares, nil
}
