package routers

import (
	"optizen-service/internal/app/services/core/masterdata"

	"github.com/go-chi/chi/v5"
)

func attachMasterDataRoutes(r chi.Router, masterDataController *masterdata.MasterDataController) {
	r.Get("/", masterDataController.List)
}
