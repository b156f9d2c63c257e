package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposaldesk/apiclient"
	"proposaldesk/wizard"
)

func TestWizard_RendersFirstStep(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	rec := perform(t, HandleWizard(app), http.MethodGet, "/proposals/new", nil, nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Choose a neighborhood…")
	assert.Contains(t, body, "Williamsburg, Brooklyn")
}

func TestWizard_PreselectsNeighborhoodFromQuery(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	perform(t, HandleWizard(app), http.MethodGet, "/proposals/new?neighborhood=10", nil, nil, true)

	draft := app.Wizards.Get(testSession).Draft()
	assert.Equal(t, 10, draft.NeighborhoodID)
}

func TestWizard_PickerFallsBackToMirroredNeighborhoods(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})
	app := newTestApp(t, mux)
	app.Neighborhoods.SetAll([]apiclient.NeighborhoodMapData{
		{ID: 10, Name: "Williamsburg", BoroughName: "Brooklyn"},
	})

	rec := perform(t, HandleWizard(app), http.MethodGet, "/proposals/new", nil, nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Williamsburg, Brooklyn")
}

func TestWizardAdvance_BlockedWithoutNeighborhood(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	rec := perform(t, HandleWizardAdvance(app), http.MethodPost, "/proposals/new/advance", url.Values{}, nil, true)

	assert.Contains(t, rec.Body.String(), "Please select a neighborhood.")
	assert.Equal(t, wizard.StepNeighborhood, app.Wizards.Get(testSession).Step())
}

func TestWizardAdvance_AppliesFormAndMoves(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	rec := perform(t, HandleWizardAdvance(app), http.MethodPost, "/proposals/new/advance",
		url.Values{"neighborhoodId": {"10"}}, nil, true)

	assert.Equal(t, wizard.StepDetails, app.Wizards.Get(testSession).Step())
	assert.Contains(t, rec.Body.String(), "lotSizeSqft", "details step renders next")
}

func TestWizardFullFlow_SubmitRedirects(t *testing.T) {
	var created map[string]any
	mux := newFakeBackend(t)
	mux.HandleFunc("POST /api/proposals/{$}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, proposalDetailFixture())
	})
	app := newTestApp(t, mux)

	perform(t, HandleWizardAdvance(app), http.MethodPost, "/proposals/new/advance",
		url.Values{"neighborhoodId": {"10"}}, nil, true)
	perform(t, HandleWizardAdvance(app), http.MethodPost, "/proposals/new/advance",
		url.Values{"title": {"Berry Street Lofts"}, "lotSizeSqft": {"12000"}, "totalUnits": {"40"}}, nil, true)
	perform(t, HandleWizardAddUnit(app), http.MethodPost, "/proposals/new/units",
		url.Values{"unitType": {"studio"}, "count": {"40"}, "avgSqft": {"450"}, "projectedRent": {"2400"}}, nil, true)
	perform(t, HandleWizardAdvance(app), http.MethodPost, "/proposals/new/advance", url.Values{}, nil, true)
	require.Equal(t, wizard.StepReview, app.Wizards.Get(testSession).Step())

	rec := perform(t, HandleWizardSubmit(app), http.MethodPost, "/proposals/new/submit", url.Values{}, nil, true)

	assert.Equal(t, "/proposals/100", rec.Header().Get("HX-Redirect"))
	assert.Equal(t, "Berry Street Lofts", created["title"])
	assert.EqualValues(t, 10, created["neighborhood"])

	// The draft resets after a successful submit.
	m := app.Wizards.Get(testSession)
	assert.Equal(t, wizard.StepNeighborhood, m.Step())
	assert.Empty(t, m.Draft().Title)
}

func TestWizardSubmit_ValidationFailureRendersErrors(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	rec := perform(t, HandleWizardSubmit(app), http.MethodPost, "/proposals/new/submit", url.Values{}, nil, true)

	assert.Contains(t, rec.Body.String(), "Please select a neighborhood.")
}

func TestWizardSubmit_BackendFailureKeepsDraft(t *testing.T) {
	mux := newFakeBackend(t)
	mux.HandleFunc("POST /api/proposals/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"title already exists"}`, http.StatusBadRequest)
	})
	app := newTestApp(t, mux)

	m := app.Wizards.Get(testSession)
	m.SetNeighborhood(10)
	m.SetTitle("Berry Street Lofts")
	m.SetLotSize("12000")
	m.SetTotalUnits(40)
	m.AddUnit(wizard.UnitEntry{UnitType: "studio", Count: 40})

	rec := perform(t, HandleWizardSubmit(app), http.MethodPost, "/proposals/new/submit", url.Values{}, nil, true)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Berry Street Lofts", app.Wizards.Get(testSession).Draft().Title, "draft survives a failed create")
}

func TestWizardUnits_UpdateAndRemove(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))
	m := app.Wizards.Get(testSession)
	m.AddUnit(wizard.UnitEntry{UnitType: "studio", Count: 10})
	m.AddUnit(wizard.UnitEntry{UnitType: "2br", Count: 20})

	perform(t, HandleWizardUpdateUnit(app), http.MethodPost, "/proposals/new/units/0",
		url.Values{"count": {"15"}, "avgSqft": {"480"}, "projectedRent": {"2500"}},
		map[string]string{"index": "0"}, true)

	draft := app.Wizards.Get(testSession).Draft()
	require.Len(t, draft.UnitMix, 2)
	assert.Equal(t, 15, draft.UnitMix[0].Count)
	assert.EqualValues(t, "studio", draft.UnitMix[0].UnitType, "type survives a row edit")

	perform(t, HandleWizardRemoveUnit(app), http.MethodDelete, "/proposals/new/units/0",
		nil, map[string]string{"index": "0"}, true)

	draft = app.Wizards.Get(testSession).Draft()
	require.Len(t, draft.UnitMix, 1)
	assert.EqualValues(t, "2br", draft.UnitMix[0].UnitType)
}

func TestWizardDiscard(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))
	app.Wizards.Get(testSession).SetTitle("Abandoned")

	rec := perform(t, HandleWizardDiscard(app), http.MethodPost, "/proposals/new/discard", url.Values{}, nil, true)

	assert.Equal(t, "/proposals", rec.Header().Get("HX-Redirect"))
	assert.Empty(t, app.Wizards.Get(testSession).Draft().Title)
}
