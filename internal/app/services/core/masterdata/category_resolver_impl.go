package masterdata

import (
	"context"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/pkg/constvars"
)

type lookupStep func(ctx context.Context, ids []string) (map[string]string, error)

// categoryResolver resolves one category of references for a whole batch of
// records with one batched lookup per chain step. Two categories carry a
// historical fallback chain: drug ids live in the medicines category first
// and the legacy pharmacy inventory second, surgery ids in the surgeries
// category first and surgery_types second. Each step only sees the ids the
// previous steps could not resolve, so the steps of one chain are inherently
// sequential; independent categories may be resolved concurrently.
type categoryResolver struct {
	masterDataRepository   contracts.MasterDataRepository
	pharmacyItemRepository contracts.PharmacyItemRepository
}

func NewCategoryResolver(
	masterDataRepository contracts.MasterDataRepository,
	pharmacyItemRepository contracts.PharmacyItemRepository,
) contracts.CategoryResolver {
	return &categoryResolver{
		masterDataRepository:   masterDataRepository,
		pharmacyItemRepository: pharmacyItemRepository,
	}
}

func (r *categoryResolver) Resolve(ctx context.Context, category string, ids []string) (map[string]string, error) {
	unique := dedupeIDs(ids)
	resolved := make(map[string]string, len(unique))
	if len(unique) == 0 {
		return resolved, nil
	}

	remaining := unique
	for _, step := range r.chainFor(category) {
		if len(remaining) == 0 {
			break
		}
		names, err := step(ctx, remaining)
		if err != nil {
			return nil, err
		}
		unresolved := make([]string, 0, len(remaining))
		for _, id := range remaining {
			name, found := names[id]
			if !found {
				unresolved = append(unresolved, id)
				continue
			}
			resolved[id] = name
		}
		remaining = unresolved
	}
	return resolved, nil
}

func (r *categoryResolver) chainFor(category string) []lookupStep {
	switch category {
	case constvars.CategoryMedicines:
		return []lookupStep{
			r.masterDataStep(constvars.CategoryMedicines),
			r.pharmacyItemRepository.FindNamesByIDs,
		}
	case constvars.CategorySurgeries:
		return []lookupStep{
			r.masterDataStep(constvars.CategorySurgeries),
			r.masterDataStep(constvars.CategorySurgeryTypes),
		}
	default:
		return []lookupStep{r.masterDataStep(category)}
	}
}

func (r *categoryResolver) masterDataStep(category string) lookupStep {
	return func(ctx context.Context, ids []string) (map[string]string, error) {
		return r.masterDataRepository.FindNamesByCategoryAndIDs(ctx, category, ids)
	}
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
