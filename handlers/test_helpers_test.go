package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/uistate"
	"proposaldesk/wizard"
)

const testSession = "test-session"

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// newFakeBackend serves a small fixed data set on the backend API shape.
// Tests that need to observe or vary specific endpoints register their own
// handlers on top.
func newFakeBackend(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/boroughs/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, apiclient.Page[apiclient.Borough]{
			Count: 2,
			Results: []apiclient.Borough{
				{ID: 1, Name: "Brooklyn", Code: "BK", NeighborhoodCount: 2},
				{ID: 2, Name: "Queens", Code: "QN", NeighborhoodCount: 1},
			},
		})
	})

	mux.HandleFunc("GET /api/neighborhoods/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, apiclient.Page[apiclient.NeighborhoodSummary]{
			Count: 2,
			Results: []apiclient.NeighborhoodSummary{
				{ID: 10, Name: "Williamsburg", BoroughName: "Brooklyn", BoroughCode: "BK", AreaSqMiles: "2.10", ProposalCount: 1},
				{ID: 11, Name: "Astoria", BoroughName: "Queens", BoroughCode: "QN", AreaSqMiles: "3.40", ProposalCount: 0},
			},
		})
	})

	mux.HandleFunc("GET /api/neighborhoods/map_data/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []apiclient.NeighborhoodMapData{
			{ID: 10, Name: "Williamsburg", BoroughName: "Brooklyn", Latitude: "40.7081", Longitude: "-73.9571", ZoningHasResidential: true, DemandScore: 78},
			{ID: 11, Name: "Astoria", BoroughName: "Queens", Latitude: "40.7644", Longitude: "-73.9235", ZoningHasCommercial: true, DemandScore: 55},
		})
	})

	mux.HandleFunc("GET /api/neighborhoods/10/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, apiclient.NeighborhoodDetail{
			NeighborhoodSummary: apiclient.NeighborhoodSummary{ID: 10, Name: "Williamsburg", BoroughName: "Brooklyn", AreaSqMiles: "2.10", ProposalCount: 1},
			Borough:             apiclient.Borough{ID: 1, Name: "Brooklyn", Code: "BK"},
			ZoningDistricts: []apiclient.ZoningDistrict{
				{ID: 1, Code: "R6", Category: "residential", MaxFAR: "2.43", MaxHeightFt: 70, ResidentialAllowed: true},
			},
		})
	})

	mux.HandleFunc("GET /api/neighborhoods/10/market_history/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []apiclient.MarketDataEntry{
			{ID: 1, Period: "2026-Q1", MedianSalePrice: "950000.00", MedianRent: "3600.00", VacancyRatePct: "3.20", PermitsIssued: 14},
		})
	})

	mux.HandleFunc("GET /api/proposals/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, apiclient.Page[apiclient.ProposalSummary]{
			Count: 1,
			Results: []apiclient.ProposalSummary{
				{ID: 100, Title: "Berry Street Lofts", Status: apiclient.StatusDraft, NeighborhoodName: "Williamsburg", BoroughName: "Brooklyn", TotalUnits: 40, LotSizeSqft: "12000.00", UpdatedAt: "2026-03-14T09:30:00Z"},
			},
		})
	})

	mux.HandleFunc("GET /api/proposals/100/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, proposalDetailFixture())
	})

	mux.HandleFunc("GET /api/analytics/rankings/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []apiclient.NeighborhoodRanking{
			{NeighborhoodID: 10, NeighborhoodName: "Williamsburg", BoroughName: "Brooklyn", MedianSalePrice: "950000.00", MedianRent: "3600.00", VacancyRatePct: "3.20", TransitScore: "92.00", DevelopmentScore: "81.50", OverallRank: 1, Quartile: 1},
			{NeighborhoodID: 11, NeighborhoodName: "Astoria", BoroughName: "Queens", MedianSalePrice: "720000.00", MedianRent: "2800.00", VacancyRatePct: "4.10", TransitScore: "88.00", DevelopmentScore: "64.00", OverallRank: 2, Quartile: 2},
		})
	})

	mux.HandleFunc("GET /api/analytics/dashboard/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []apiclient.DashboardSummary{
			{BoroughName: "Brooklyn", TotalProposals: 1, TotalUnits: 40, TotalEstimatedCost: "8000000.00", TotalProjectedRevenue: "15000000.00"},
		})
	})

	return mux
}

func proposalPageFixture() apiclient.Page[apiclient.ProposalSummary] {
	return apiclient.Page[apiclient.ProposalSummary]{
		Count: 1,
		Results: []apiclient.ProposalSummary{
			{ID: 100, Title: "Berry Street Lofts", Status: apiclient.StatusDraft, NeighborhoodName: "Williamsburg", BoroughName: "Brooklyn", TotalUnits: 40, LotSizeSqft: "12000.00", UpdatedAt: "2026-03-14T09:30:00Z"},
		},
	}
}

func proposalDetailFixture() apiclient.ProposalDetail {
	score := "72.40"
	return apiclient.ProposalDetail{
		ProposalSummary: apiclient.ProposalSummary{
			ID: 100, Title: "Berry Street Lofts", Status: apiclient.StatusDraft,
			NeighborhoodName: "Williamsburg", BoroughName: "Brooklyn",
			TotalUnits: 40, LotSizeSqft: "12000.00", FeasibilityScore: &score,
			UpdatedAt: "2026-03-14T09:30:00Z",
		},
		Neighborhood: apiclient.NeighborhoodSummary{ID: 10, Name: "Williamsburg", BoroughName: "Brooklyn"},
		UnitMix: []apiclient.UnitMix{
			{ID: 1, UnitType: apiclient.UnitStudio, Count: 40, AvgSqft: "450.00", ProjectedRent: "2400.00"},
		},
	}
}

func newTestApp(t *testing.T, handler http.Handler) *App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := apiclient.New(apiclient.Options{
		BaseURL:  srv.URL + "/api/",
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
	})
	sessions := uistate.NewRegistry(time.Hour, uistate.Default, nil)
	wizards := wizard.NewRegistry(time.Hour)
	return NewApp(api, zap.NewNop(), sessions, wizards, 20, 5*time.Millisecond)
}

// perform runs an echo handler directly with a session already attached.
func perform(t *testing.T, h echo.HandlerFunc, method, target string, form url.Values, params map[string]string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(sessionIDKey, testSession)
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		values := make([]string, 0, len(params))
		for name, value := range params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))
	return rec
}
