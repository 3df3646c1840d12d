package report

import (
	"context"

	"tourgate/cache"
	"tourgate/models"
	"tourgate/services/resolver"

	"golang.org/x/sync/errgroup"
)

// Consolidated fans out to every upstream in parallel and folds the results
// into one snapshot. Inventory figures always cover the full collections;
// only booking-derived figures honor the optional date filter. The result is
// the most expensive read in the system, so it caches under its own report
// key with the longer report TTL.
func (s *DefaultService) Consolidated(ctx context.Context, start, end string) (models.ConsolidatedReport, error) {
	key := resolver.ReportKey("consolidated", start, end)
	return cache.GetOrCompute(ctx, s.Cache, key, s.ReportTTL, func(ctx context.Context) (models.ConsolidatedReport, error) {
		return s.buildConsolidated(ctx, start, end)
	})
}

func (s *DefaultService) buildConsolidated(ctx context.Context, start, end string) (models.ConsolidatedReport, error) {
	var (
		tours        []models.Tour
		bookings     []models.Booking
		guides       []models.Guide
		destinations []models.Destination
		offerings    []models.Offering
		contracts    []models.Contract
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tours, err = s.Resolver.Tours(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		if start != "" || end != "" {
			bookings, err = s.Resolver.BookingsByRange(gctx, start, end)
		} else {
			bookings, err = s.Resolver.Bookings(gctx, nil)
		}
		return err
	})
	g.Go(func() (err error) {
		guides, err = s.Resolver.Guides(gctx)
		return err
	})
	g.Go(func() (err error) {
		destinations, err = s.Resolver.Destinations(gctx)
		return err
	})
	g.Go(func() (err error) {
		offerings, err = s.Resolver.Offerings(gctx)
		return err
	})
	g.Go(func() (err error) {
		contracts, err = s.Resolver.Contracts(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ConsolidatedReport{}, err
	}

	report := models.ConsolidatedReport{Period: models.ReportPeriod{Start: start, End: end}}

	report.Tours.Total = len(tours)
	report.Tours.ByCategory = []models.CategoryShare{}
	categories := make(map[string]int)
	var priceSum float64
	for _, tour := range tours {
		if tour.Available {
			report.Tours.Active++
		} else {
			report.Tours.Inactive++
		}
		categories[tour.Category]++
		priceSum += tour.Price
	}
	for _, category := range sortedKeys(categories) {
		report.Tours.ByCategory = append(report.Tours.ByCategory, models.CategoryShare{
			Category: category,
			Count:    categories[category],
			Percent:  percent(float64(categories[category]), float64(len(tours))),
		})
	}
	if len(tours) > 0 {
		report.Tours.AveragePrice = round2(priceSum / float64(len(tours)))
	}

	report.Bookings.Total = len(bookings)
	for _, b := range bookings {
		countStatus(b.Status, &report.Bookings.Pending, &report.Bookings.Confirmed,
			&report.Bookings.Cancelled, &report.Bookings.Completed)
		report.TourRevenue += bookingRevenue(b)
	}
	report.Bookings.CancellationRate = percent(float64(report.Bookings.Cancelled), float64(report.Bookings.Total))
	report.Bookings.CompletionRate = percent(float64(report.Bookings.Completed), float64(report.Bookings.Total))

	report.Guides.Total = len(guides)
	var ratingSum float64
	for _, guide := range guides {
		if guide.Available {
			report.Guides.Active++
		}
		ratingSum += guide.Rating
	}
	if len(guides) > 0 {
		report.Guides.AverageRating = round2(ratingSum / float64(len(guides)))
	}

	report.Destinations.Total = len(destinations)
	report.Destinations.ByCountry = []models.CountryCount{}
	countries := make(map[string]int)
	for _, destination := range destinations {
		countries[destination.Country]++
	}
	for _, country := range sortedKeys(countries) {
		report.Destinations.ByCountry = append(report.Destinations.ByCountry, models.CountryCount{
			Country: country,
			Count:   countries[country],
		})
	}

	report.Offerings.Total = len(offerings)
	report.Offerings.Contracted = len(contracts)
	report.Offerings.ByType = []models.TypeCount{}
	types := make(map[string]int)
	for _, offering := range offerings {
		types[offering.Type]++
	}
	for _, offeringType := range sortedKeys(types) {
		report.Offerings.ByType = append(report.Offerings.ByType, models.TypeCount{
			Type:  offeringType,
			Count: types[offeringType],
		})
	}
	for _, contract := range contracts {
		report.Offerings.TotalRevenue += contractRevenue(contract)
	}

	report.TotalRevenue = report.TourRevenue + report.Offerings.TotalRevenue
	return report, nil
}
