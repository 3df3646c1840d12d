package resolver

import (
	"context"

	"tourgate/cache"
	"tourgate/models"
)

// Users are deliberately not cached as a collection: the Identity Service is
// the system of record for accounts and the listing is admin-facing.
func (s *DefaultService) Users(ctx context.Context) ([]models.User, error) {
	return s.Identity.Users(ctx), nil
}

func (s *DefaultService) UserByID(ctx context.Context, id string) (*models.User, error) {
	return cache.GetOrCompute(ctx, s.Cache, "user:"+id, s.TTL, func(ctx context.Context) (*models.User, error) {
		result := s.Identity.UserByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		user := result.Value
		return &user, nil
	})
}

func (s *DefaultService) CreateUser(ctx context.Context, in models.NewUserInput) (models.User, error) {
	return s.Identity.CreateUser(ctx, in)
}

func (s *DefaultService) Destinations(ctx context.Context) ([]models.Destination, error) {
	return cache.GetOrCompute(ctx, s.Cache, "destinations:all", s.TTL, func(ctx context.Context) ([]models.Destination, error) {
		return s.Identity.Destinations(ctx), nil
	})
}

func (s *DefaultService) DestinationByID(ctx context.Context, id string) (*models.Destination, error) {
	return cache.GetOrCompute(ctx, s.Cache, "destination:"+id, s.TTL, func(ctx context.Context) (*models.Destination, error) {
		result := s.Identity.DestinationByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		destination := result.Value
		return &destination, nil
	})
}

func (s *DefaultService) Recommendations(ctx context.Context, expand []string) ([]models.Recommendation, error) {
	recommendations, err := cache.GetOrCompute(ctx, s.Cache, "recommendations:all", s.TTL, func(ctx context.Context) ([]models.Recommendation, error) {
		return s.Identity.Recommendations(ctx), nil
	})
	if err != nil {
		return nil, err
	}
	if hasExpand(expand, "user") {
		for i := range recommendations {
			s.expandRecommendation(ctx, &recommendations[i])
		}
	}
	return recommendations, nil
}

func (s *DefaultService) RecommendationByID(ctx context.Context, id string, expand []string) (*models.Recommendation, error) {
	rec, err := cache.GetOrCompute(ctx, s.Cache, "recommendation:"+id, s.TTL, func(ctx context.Context) (*models.Recommendation, error) {
		result := s.Identity.RecommendationByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		rec := result.Value
		return &rec, nil
	})
	if err != nil || rec == nil {
		return nil, err
	}
	if hasExpand(expand, "user") {
		s.expandRecommendation(ctx, rec)
	}
	return rec, nil
}

func (s *DefaultService) RecommendationsByUser(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return cache.GetOrCompute(ctx, s.Cache, "recommendations:user:"+userID, s.TTL, func(ctx context.Context) ([]models.Recommendation, error) {
		return s.Identity.RecommendationsByUser(ctx, userID), nil
	})
}
