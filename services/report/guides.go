package report

import (
	"context"
	"sort"

	"tourgate/models"
)

// GuidePerformance joins guides, their tours and those tours' bookings into
// one row per guide, ranked by revenue.
func (s *DefaultService) GuidePerformance(ctx context.Context) ([]models.GuidePerformance, error) {
	guides, err := s.Resolver.Guides(ctx)
	if err != nil {
		return nil, err
	}
	tours, err := s.Resolver.Tours(ctx, nil)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Resolver.Bookings(ctx, nil)
	if err != nil {
		return nil, err
	}

	toursByGuide := make(map[string][]models.Tour)
	for _, tour := range tours {
		toursByGuide[tour.GuideID] = append(toursByGuide[tour.GuideID], tour)
	}
	bookingsByTour := make(map[string][]models.Booking)
	for _, b := range bookings {
		bookingsByTour[b.TourID] = append(bookingsByTour[b.TourID], b)
	}

	rows := make([]models.GuidePerformance, 0, len(guides))
	for _, guide := range guides {
		row := models.GuidePerformance{
			GuideID:   guide.ID,
			GuideName: guide.Name,
			Rating:    guide.Rating,
		}
		for _, tour := range toursByGuide[guide.ID] {
			row.TourCount++
			if tour.Available {
				row.AvailableTours++
			}
			for _, b := range bookingsByTour[tour.ID] {
				row.BookingCount++
				row.Revenue += bookingRevenue(b)
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].GuideID < rows[j].GuideID
	})
	return rows, nil
}
