package gdc

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// CaseFields are the plain fields requested for every case record.
var CaseFields = []string{
	"case_id",
	"project.project_id",
	"project.primary_site",
	"project.disease_type",
	"submitter_id",
}

// CaseExpansions are the field groups expanded on every case record.
var CaseExpansions = []string{
	"demographic",
	"diagnoses",
}

type CasesPage struct {
	Hits  []map[string]any
	Page  int
	Pages int
	Total int
}

// Cases fetches one page of case records with demographic and diagnosis
// groups expanded. The from parameter is the one-based record offset.
func (service Service) Cases(ctx context.Context, from, size int) (CasesPage, error) {
	params := make(url.Values)
	params.Set("fields", strings.Join(CaseFields, ","))
	params.Set("expand", strings.Join(CaseExpansions, ","))
	params.Set("size", strconv.Itoa(size))
	params.Set("from", strconv.Itoa(from))

	var listing struct {
		Data struct {
			Hits       []map[string]any `json:"hits"`
			Pagination pagination       `json:"pagination"`
		} `json:"data"`
	}
	res, err := service.postForm(ctx, "/cases", params)
	if err != nil {
		return CasesPage{}, err
	}
	if err := decodeResponse(res, &listing); err != nil {
		return CasesPage{}, err
	}

	return CasesPage{
		Hits:  listing.Data.Hits,
		Page:  listing.Data.Pagination.Page,
		Pages: listing.Data.Pagination.Pages,
		Total: listing.Data.Pagination.Total,
	}, nil
}
