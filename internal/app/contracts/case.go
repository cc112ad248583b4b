package contracts

import (
	"context"

	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/dto/requests"
	"optizen-service/internal/pkg/dto/responses"
)

// ListCasesOptions is the already-clamped, already-allowlisted query for a
// case page. Statuses empty means the soft-delete default applies (cancelled
// cases are excluded).
type ListCasesOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
	PatientID string
	Statuses  []string
}

type CaseRepository interface {
	FindAll(ctx context.Context, opts ListCasesOptions) ([]models.Case, int64, error)
	Insert(ctx context.Context, caseModel *models.Case) error
}

type CaseUsecase interface {
	List(ctx context.Context, opts ListCasesOptions) ([]responses.Case, *responses.Pagination, error)
	Create(ctx context.Context, request *requests.CreateCase) (*responses.Case, error)
}

// CaseResolver is the reference resolution engine. Both forms re-derive the
// enriched copies from the raw documents, so resolving twice is harmless.
// The batch form must never degrade to per-record lookups.
type CaseResolver interface {
	ResolveCase(ctx context.Context, caseModel *models.Case) (*responses.Case, error)
	ResolveCases(ctx context.Context, caseModels []models.Case) ([]responses.Case, error)
}
