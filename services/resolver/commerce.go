package resolver

import (
	"context"

	"tourgate/cache"
	"tourgate/models"
)

func (s *DefaultService) Offerings(ctx context.Context) ([]models.Offering, error) {
	return cache.GetOrCompute(ctx, s.Cache, keyOfferingsAll, s.TTL, func(ctx context.Context) ([]models.Offering, error) {
		return s.Commerce.Offerings(ctx), nil
	})
}

func (s *DefaultService) OfferingByID(ctx context.Context, id string) (*models.Offering, error) {
	return cache.GetOrCompute(ctx, s.Cache, offeringKey(id), s.TTL, func(ctx context.Context) (*models.Offering, error) {
		result := s.Commerce.OfferingByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		offering := result.Value
		return &offering, nil
	})
}

func (s *DefaultService) OfferingsByType(ctx context.Context, offeringType string) ([]models.Offering, error) {
	return cache.GetOrCompute(ctx, s.Cache, offeringsTypeKey(offeringType), s.TTL, func(ctx context.Context) ([]models.Offering, error) {
		return s.Commerce.OfferingsByType(ctx, offeringType), nil
	})
}

// CreateOffering does not purge: the reporting cache over commerce data is
// keyed separately and refreshed on its own TTL.
func (s *DefaultService) CreateOffering(ctx context.Context, in models.OfferingInput) (string, error) {
	return s.Commerce.CreateOffering(ctx, in)
}

func (s *DefaultService) UpdateOffering(ctx context.Context, id string, in models.OfferingInput) (models.Offering, error) {
	offering, err := s.Commerce.UpdateOffering(ctx, id, in)
	if err != nil {
		return models.Offering{}, err
	}
	s.purge(ctx, "offerings:")
	s.purgeKey(ctx, offeringKey(id))
	return offering, nil
}

func (s *DefaultService) DeleteOffering(ctx context.Context, id string) error {
	if err := s.Commerce.DeleteOffering(ctx, id); err != nil {
		return err
	}
	s.purge(ctx, "offerings:")
	s.purgeKey(ctx, offeringKey(id))
	return nil
}

func (s *DefaultService) Contracts(ctx context.Context, expand []string) ([]models.Contract, error) {
	contracts, err := cache.GetOrCompute(ctx, s.Cache, keyContractsAll, s.TTL, func(ctx context.Context) ([]models.Contract, error) {
		return s.Commerce.Contracts(ctx), nil
	})
	if err != nil {
		return nil, err
	}
	if hasExpand(expand, "offering") {
		for i := range contracts {
			s.expandContract(ctx, &contracts[i])
		}
	}
	return contracts, nil
}

func (s *DefaultService) ContractByID(ctx context.Context, id string, expand []string) (*models.Contract, error) {
	contract, err := cache.GetOrCompute(ctx, s.Cache, "contract:"+id, s.TTL, func(ctx context.Context) (*models.Contract, error) {
		result := s.Commerce.ContractByID(ctx, id)
		if !result.Found {
			return nil, nil
		}
		contract := result.Value
		return &contract, nil
	})
	if err != nil || contract == nil {
		return nil, err
	}
	if hasExpand(expand, "offering") {
		s.expandContract(ctx, contract)
	}
	return contract, nil
}

func (s *DefaultService) ContractsByOffering(ctx context.Context, offeringID string) ([]models.Contract, error) {
	return cache.GetOrCompute(ctx, s.Cache, "contracts:offering:"+offeringID, s.TTL, func(ctx context.Context) ([]models.Contract, error) {
		return s.Commerce.ContractsByOffering(ctx, offeringID), nil
	})
}

func (s *DefaultService) ContractsByUser(ctx context.Context, userID string) ([]models.Contract, error) {
	return cache.GetOrCompute(ctx, s.Cache, "contracts:user:"+userID, s.TTL, func(ctx context.Context) ([]models.Contract, error) {
		return s.Commerce.ContractsByUser(ctx, userID), nil
	})
}

func (s *DefaultService) CreateContract(ctx context.Context, in models.ContractInput) (string, error) {
	return s.Commerce.CreateContract(ctx, in)
}

func (s *DefaultService) UpdateContract(ctx context.Context, id string, in models.ContractInput) (models.Contract, error) {
	contract, err := s.Commerce.UpdateContract(ctx, id, in)
	if err != nil {
		return models.Contract{}, err
	}
	s.purge(ctx, "contracts:")
	s.purgeKey(ctx, "contract:"+id)
	return contract, nil
}

func (s *DefaultService) CancelContract(ctx context.Context, id string) (models.Contract, error) {
	contract, err := s.Commerce.CancelContract(ctx, id)
	if err != nil {
		return models.Contract{}, err
	}
	s.purge(ctx, "contracts:")
	s.purgeKey(ctx, "contract:"+id)
	return contract, nil
}

// --- Maintenance ---

func (s *DefaultService) FlushCache(ctx context.Context) error {
	return s.Cache.Flush(ctx)
}

func (s *DefaultService) PurgeReportCache(ctx context.Context) (int, error) {
	return s.Cache.DeleteByPrefix(ctx, PrefixReports)
}
