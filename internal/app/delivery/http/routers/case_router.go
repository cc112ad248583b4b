package routers

import (
	"optizen-service/internal/app/services/core/cases"

	"github.com/go-chi/chi/v5"
)

func attachCaseRoutes(r chi.Router, caseController *cases.CaseController) {
	r.Get("/", caseController.List)
	r.Post("/", caseController.Create)
}
