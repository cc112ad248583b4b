package contracts

import (
	"context"

	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/dto/responses"
)

// MasterDataRepository is the gateway to the category-tagged lookup catalog.
// FindNamesByCategoryAndIDs returns only the ids that were found; an empty
// map means "no match", an error means the backend itself failed. Callers
// must never conflate the two.
type MasterDataRepository interface {
	FindNamesByCategoryAndIDs(ctx context.Context, category string, ids []string) (map[string]string, error)
	FindByCategory(ctx context.Context, category string, page, limit int) ([]models.MasterDataEntry, int64, error)
}

// PharmacyItemRepository reads the legacy inventory collection that still
// holds part of the drug vocabulary.
type PharmacyItemRepository interface {
	FindNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// CategoryResolver resolves one category of references for a whole batch:
// one batched lookup per fallback-chain step, absent keys meaning
// unresolved. Safe to invoke concurrently for independent categories.
type CategoryResolver interface {
	Resolve(ctx context.Context, category string, ids []string) (map[string]string, error)
}

type MasterDataUsecase interface {
	List(ctx context.Context, category string, page, limit int) ([]responses.MasterDataEntry, *responses.Pagination, error)
}
