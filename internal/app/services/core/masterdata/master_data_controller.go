package masterdata

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"optizen-service/internal/app/config"
	"optizen-service/internal/app/contracts"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/exceptions"
	"optizen-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type MasterDataController struct {
	Log               *zap.Logger
	MasterDataUsecase contracts.MasterDataUsecase
	InternalConfig    *config.InternalConfig
}

func NewMasterDataController(logger *zap.Logger, masterDataUsecase contracts.MasterDataUsecase, internalConfig *config.InternalConfig) *MasterDataController {
	return &MasterDataController{
		Log:               logger,
		MasterDataUsecase: masterDataUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *MasterDataController) List(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCategoryParamRequired())
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = constvars.DefaultPage
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > constvars.MaxPageSize {
		limit = constvars.DefaultPageSize
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, paginationData, err := ctrl.MasterDataUsecase.List(ctx, category, page, limit)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListMasterDataSuccessMessage, paginationData, result)
}
