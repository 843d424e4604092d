package api

import (
	"net/http"

	"log/slog"

	"github.com/vertiport/evtolhub/pkg/repository"
)

type SearchHandler struct {
	companies repository.CompanyRepo
}

func NewSearchHandler(companies repository.CompanyRepo) *SearchHandler {
	return &SearchHandler{companies: companies}
}

type companyResult struct {
	Name                string `json:"name"`
	Country             string `json:"country"`
	Description         string `json:"description"`
	CertificationStatus string `json:"certification_status"`
}

type searchResponse struct {
	Companies []companyResult `json:"companies"`
}

// Search matches the query as a case-insensitive substring against company
// name, country and description. No match is an empty list, not an error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	companies, err := h.companies.SearchCompanies(r.Context(), query)
	if err != nil {
		logger.Error("company search", slog.String("query", query), slog.Any("err", err))
		writeJSONError(w, "search failed", http.StatusInternalServerError)
		return
	}

	resp := searchResponse{Companies: make([]companyResult, 0, len(companies))}
	for _, c := range companies {
		resp.Companies = append(resp.Companies, companyResult{
			Name:                c.Name,
			Country:             c.Country,
			Description:         c.Description,
			CertificationStatus: c.CertificationStatus,
		})
	}

	writeJSON(w, resp, http.StatusOK)
}
