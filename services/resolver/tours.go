package resolver

import (
	"context"

	"tourgate/cache"
	"tourgate/models"
)

func (s *DefaultService) Tours(ctx context.Context, expand []string) ([]models.Tour, error) {
	tours, err := cache.GetOrCompute(ctx, s.Cache, keyToursAll, s.TTL, func(ctx context.Context) ([]models.Tour, error) {
		return s.Catalog.Tours(ctx), nil
	})
	if err != nil {
		return nil, err
	}
	if hasExpand(expand, "guide") {
		for i := range tours {
			s.expandTour(ctx, &tours[i])
		}
	}
	return tours, nil
}

func (s *DefaultService) TourByID(ctx context.Context, id string, expand []string) (*models.Tour, error) {
	tour, err := cache.GetOrCompute(ctx, s.Cache, tourKey(id), s.TTL, func(ctx context.Context) (*models.Tour, error) {
		result := s.Catalog.TourByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		tour := result.Value
		return &tour, nil
	})
	if err != nil || tour == nil {
		return nil, err
	}
	if hasExpand(expand, "guide") {
		s.expandTour(ctx, tour)
	}
	return tour, nil
}

func (s *DefaultService) ToursByCategory(ctx context.Context, category string) ([]models.Tour, error) {
	return cache.GetOrCompute(ctx, s.Cache, toursCategoryKey(category), s.TTL, func(ctx context.Context) ([]models.Tour, error) {
		return s.Catalog.ToursByCategory(ctx, category), nil
	})
}

func (s *DefaultService) AvailableTours(ctx context.Context) ([]models.Tour, error) {
	return cache.GetOrCompute(ctx, s.Cache, keyToursAvailable, s.TTL, func(ctx context.Context) ([]models.Tour, error) {
		return s.Catalog.AvailableTours(ctx), nil
	})
}

// ToursByPriceRange filters the cached full collection in process; the
// Catalog Service has no price filter endpoint. Bounds are inclusive.
func (s *DefaultService) ToursByPriceRange(ctx context.Context, min, max *float64) ([]models.Tour, error) {
	return cache.GetOrCompute(ctx, s.Cache, toursPriceKey(min, max), s.TTL, func(ctx context.Context) ([]models.Tour, error) {
		tours, err := s.Tours(ctx, nil)
		if err != nil {
			return nil, err
		}
		filtered := make([]models.Tour, 0, len(tours))
		for _, tour := range tours {
			if min != nil && tour.Price < *min {
				continue
			}
			if max != nil && tour.Price > *max {
				continue
			}
			filtered = append(filtered, tour)
		}
		return filtered, nil
	})
}

func (s *DefaultService) CreateTour(ctx context.Context, in models.TourInput) (models.Tour, error) {
	tour, err := s.Catalog.CreateTour(ctx, in)
	if err != nil {
		return models.Tour{}, err
	}
	s.purge(ctx, PrefixTours)
	return tour, nil
}

func (s *DefaultService) UpdateTour(ctx context.Context, id string, in models.TourInput) (models.Tour, error) {
	tour, err := s.Catalog.UpdateTour(ctx, id, in)
	if err != nil {
		return models.Tour{}, err
	}
	s.purge(ctx, PrefixTours)
	s.purgeKey(ctx, tourKey(id))
	return tour, nil
}

func (s *DefaultService) DeleteTour(ctx context.Context, id string) error {
	if err := s.Catalog.DeleteTour(ctx, id); err != nil {
		return err
	}
	s.purge(ctx, PrefixTours)
	s.purgeKey(ctx, tourKey(id))
	return nil
}

// --- Guides ---

func (s *DefaultService) Guides(ctx context.Context) ([]models.Guide, error) {
	return cache.GetOrCompute(ctx, s.Cache, keyGuidesAll, s.TTL, func(ctx context.Context) ([]models.Guide, error) {
		return s.Catalog.Guides(ctx), nil
	})
}

func (s *DefaultService) GuideByID(ctx context.Context, id string) (*models.Guide, error) {
	return cache.GetOrCompute(ctx, s.Cache, guideKey(id), s.TTL, func(ctx context.Context) (*models.Guide, error) {
		result := s.Catalog.GuideByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		guide := result.Value
		return &guide, nil
	})
}
