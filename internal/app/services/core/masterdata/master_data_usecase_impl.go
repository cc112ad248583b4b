package masterdata

import (
	"context"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/pkg/dto/responses"
	"optizen-service/internal/pkg/utils"
)

type masterDataUsecase struct {
	masterDataRepository contracts.MasterDataRepository
}

func NewMasterDataUsecase(masterDataRepository contracts.MasterDataRepository) contracts.MasterDataUsecase {
	return &masterDataUsecase{
		masterDataRepository: masterDataRepository,
	}
}

func (uc *masterDataUsecase) List(ctx context.Context, category string, page, limit int) ([]responses.MasterDataEntry, *responses.Pagination, error) {
	entries, total, err := uc.masterDataRepository.FindByCategory(ctx, category, page, limit)
	if err != nil {
		return nil, nil, err
	}

	response := make([]responses.MasterDataEntry, len(entries))
	for i, entry := range entries {
		response[i] = responses.MasterDataEntry{
			ID:       entry.ID,
			Category: entry.Category,
			Name:     entry.Name,
		}
	}

	paginationData := utils.BuildPaginationResponse(total, page, limit)
	return response, paginationData, nil
}
