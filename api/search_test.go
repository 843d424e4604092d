package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/vertiport/evtolhub/pkg/models"
	"github.com/vertiport/evtolhub/pkg/repository/mock"
)

func seedCompanies(m *mock.Mocks) {
	m.Companies.Stored = []models.Company{
		{ID: 1, Name: "亿航智能", Country: "中国", Description: "全球领先的自动驾驶飞行器制造商，主打EH216系列自动驾驶航空器", CertificationStatus: "已获得中国民航局型号合格证"},
		{ID: 2, Name: "Joby Aviation", Country: "美国", Description: "领先的eVTOL开发商，已获得重要适航认证里程碑", CertificationStatus: "FAA认证最后阶段"},
		{ID: 3, Name: "Volocopter", Country: "德国", Description: "专注于城市空中交通，开发VoloCity空中出租车", CertificationStatus: "EASA认证进行中"},
	}
}

type searchBody struct {
	Companies []struct {
		Name                string `json:"name"`
		Country             string `json:"country"`
		Description         string `json:"description"`
		CertificationStatus string `json:"certification_status"`
	} `json:"companies"`
	Error string `json:"error"`
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		prepare   func(m *mock.Mocks)
		wantNames []string
	}{
		{
			name:      "MatchByName",
			query:     "亿航智能",
			wantNames: []string{"亿航智能"},
		},
		{
			name:      "MatchByCountry",
			query:     "德国",
			wantNames: []string{"Volocopter"},
		},
		{
			name:      "MatchByDescriptionSubstring",
			query:     "eVTOL",
			wantNames: []string{"Joby Aviation"},
		},
		{
			name:      "CaseInsensitive",
			query:     "joby",
			wantNames: []string{"Joby Aviation"},
		},
		{
			name:      "NoMatchIsEmptyList",
			query:     "does-not-exist",
			wantNames: []string{},
		},
		{
			name:      "EmptyQueryMatchesAll",
			query:     "",
			wantNames: []string{"亿航智能", "Joby Aviation", "Volocopter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			seedCompanies(mocks)
			if tt.prepare != nil {
				tt.prepare(mocks)
			}
			router := newTestRouter(t, mocks)

			w := get(t, router, "/search?q="+url.QueryEscape(tt.query))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
			}

			var body searchBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body.Companies == nil {
				t.Fatalf("companies must be a list, even when empty: %s", w.Body.String())
			}
			if len(body.Companies) != len(tt.wantNames) {
				t.Fatalf("expected %d companies got %d: %s", len(tt.wantNames), len(body.Companies), w.Body.String())
			}
			for i, name := range tt.wantNames {
				if body.Companies[i].Name != name {
					t.Fatalf("expected company %d to be %q got %q", i, name, body.Companies[i].Name)
				}
			}
		})
	}
}

func TestSearchReturnsAllCompanyFields(t *testing.T) {
	mocks := mock.NewMocks()
	seedCompanies(mocks)
	router := newTestRouter(t, mocks)

	w := get(t, router, "/search?q="+url.QueryEscape("亿航智能"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var body searchBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(body.Companies) != 1 {
		t.Fatalf("expected exactly one company, got %d", len(body.Companies))
	}

	got := body.Companies[0]
	if got.Name != "亿航智能" ||
		got.Country != "中国" ||
		got.Description != "全球领先的自动驾驶飞行器制造商，主打EH216系列自动驾驶航空器" ||
		got.CertificationStatus != "已获得中国民航局型号合格证" {
		t.Fatalf("unexpected company payload: %+v", got)
	}
}

func TestSearchRepositoryError(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.Companies.SearchErr = fmt.Errorf("disk on fire")
	router := newTestRouter(t, mocks)

	w := get(t, router, "/search?q=anything")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", w.Code)
	}

	var body searchBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected error field in body: %s", w.Body.String())
	}
}
