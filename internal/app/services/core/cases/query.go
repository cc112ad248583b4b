package cases

import (
	"net/http"
	"strconv"
	"strings"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/pkg/constvars"
)

var validStatuses = map[string]bool{
	constvars.CaseStatusActive:    true,
	constvars.CaseStatusCompleted: true,
	constvars.CaseStatusCancelled: true,
	constvars.CaseStatusPending:   true,
}

// parseListCasesOptions reads the list query parameters. Out-of-range or
// unrecognized values clamp to their defaults instead of erroring; the sort
// column allow-list is enforced again in the repository.
func parseListCasesOptions(r *http.Request) contracts.ListCasesOptions {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = constvars.DefaultPage
	}

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 || limit > constvars.MaxPageSize {
		limit = constvars.DefaultPageSize
	}

	sortOrder := strings.ToLower(query.Get("sortOrder"))
	if sortOrder != constvars.SortOrderAsc && sortOrder != constvars.SortOrderDesc {
		sortOrder = constvars.DefaultSortOrder
	}

	return contracts.ListCasesOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    query.Get("sortBy"),
		SortOrder: sortOrder,
		Search:    strings.TrimSpace(query.Get("search")),
		PatientID: strings.TrimSpace(query.Get("patient_id")),
		Statuses:  parseStatuses(query["status"]),
	}
}

// parseStatuses accepts both repeated status parameters and comma-delimited
// lists; unknown values are dropped so the soft-delete default cannot be
// bypassed by a typo.
func parseStatuses(values []string) []string {
	var statuses []string
	for _, value := range values {
		for _, status := range strings.Split(value, ",") {
			status = strings.TrimSpace(strings.ToLower(status))
			if validStatuses[status] {
				statuses = append(statuses, status)
			}
		}
	}
	return statuses
}
