package cases

import (
	"context"
	"net/http"
	"time"

	"optizen-service/internal/app/config"
	"optizen-service/internal/app/contracts"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/dto/requests"
	"optizen-service/internal/pkg/exceptions"
	"optizen-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CaseController struct {
	Log            *zap.Logger
	CaseUsecase    contracts.CaseUsecase
	InternalConfig *config.InternalConfig
}

func NewCaseController(logger *zap.Logger, caseUsecase contracts.CaseUsecase, internalConfig *config.InternalConfig) *CaseController {
	return &CaseController{
		Log:            logger,
		CaseUsecase:    caseUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CaseController) List(w http.ResponseWriter, r *http.Request) {
	opts := parseListCasesOptions(r)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, paginationData, err := ctrl.CaseUsecase.List(ctx, opts)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListCasesSuccessMessage, paginationData, result)
}

func (ctrl *CaseController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateCase
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseRequestBody(err))
		return
	}

	utils.SanitizeCreateCaseRequest(&request)

	err = utils.ValidateCreateCaseRequest(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.Create(ctx, &request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCaseSuccessMessage, result)
}
