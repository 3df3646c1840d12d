package report

import (
	"context"
	"sort"
	"strconv"

	"tourgate/cache"
	"tourgate/models"
	"tourgate/services/resolver"
)

// TopOfferings ranks offerings by how often they were contracted. Commerce
// data never triggers an entity purge, so the ranking caches under its own
// report key and refreshes on the report TTL.
func (s *DefaultService) TopOfferings(ctx context.Context, limit int) ([]models.TopOffering, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	key := resolver.ReportKey("offerings:top", strconv.Itoa(limit))
	return cache.GetOrCompute(ctx, s.Cache, key, s.ReportTTL, func(ctx context.Context) ([]models.TopOffering, error) {
		return s.buildTopOfferings(ctx, limit)
	})
}

func (s *DefaultService) OfferingStats(ctx context.Context) models.OfferingStats {
	return s.Commerce.OfferingStats(ctx)
}

func (s *DefaultService) ContractStats(ctx context.Context, start, end string) models.ContractStats {
	return s.Commerce.ContractStats(ctx, start, end)
}

func (s *DefaultService) buildTopOfferings(ctx context.Context, limit int) ([]models.TopOffering, error) {
	offerings, err := s.Resolver.Offerings(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.Resolver.Contracts(ctx, nil)
	if err != nil {
		return nil, err
	}

	byOffering := make(map[string][]models.Contract)
	for _, contract := range contracts {
		byOffering[contract.OfferingID] = append(byOffering[contract.OfferingID], contract)
	}

	rows := make([]models.TopOffering, 0, len(offerings))
	for _, offering := range offerings {
		row := models.TopOffering{
			OfferingID:   offering.ID,
			OfferingName: offering.Name,
			Type:         offering.Type,
		}
		for _, contract := range byOffering[offering.ID] {
			row.ContractCount++
			row.TotalRevenue += contractRevenue(contract)
		}
		if row.ContractCount > 0 {
			row.AveragePrice = round2(row.TotalRevenue / float64(row.ContractCount))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ContractCount != rows[j].ContractCount {
			return rows[i].ContractCount > rows[j].ContractCount
		}
		return rows[i].OfferingID < rows[j].OfferingID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
