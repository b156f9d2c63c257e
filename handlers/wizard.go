package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/services"
	"proposaldesk/templates"
	"proposaldesk/wizard"
)

// HandleWizard renders the proposal builder at whatever step the session's
// draft is on. A ?neighborhood=ID query preselects the starting
// neighborhood, used by the "Propose Here" links.
func HandleWizard(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		m := app.Wizards.Get(SessionID(c))

		if raw := c.QueryParam("neighborhood"); raw != "" {
			if id, err := strconv.Atoi(raw); err == nil {
				m.SetNeighborhood(id)
			}
		}

		data := buildWizardData(ctx, app, m)
		if isHTMX(c) {
			return renderView(c, templates.WizardContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/proposals/new", "New Proposal")
		return renderView(c, templates.WizardPage(data, layout))
	}
}

// HandleWizardAdvance applies any step fields present in the form, then
// moves forward when the step validates.
func HandleWizardAdvance(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		applyWizardForm(c, m)
		m.Advance()
		return renderView(c, templates.WizardContent(buildWizardData(c.Request().Context(), app, m)))
	}
}

func HandleWizardRetreat(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		m.Retreat()
		return renderView(c, templates.WizardContent(buildWizardData(c.Request().Context(), app, m)))
	}
}

// HandleWizardSetNeighborhood stores the neighborhood choice without
// rendering; the select posts on change with hx-swap: none.
func HandleWizardSetNeighborhood(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		if id, err := strconv.Atoi(c.FormValue("neighborhoodId")); err == nil {
			m.SetNeighborhood(id)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// HandleWizardSetDetails stores whichever detail fields the form carries.
func HandleWizardSetDetails(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		applyWizardForm(c, m)
		return c.NoContent(http.StatusNoContent)
	}
}

func HandleWizardSubmit(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		m := app.Wizards.Get(SessionID(c))

		created, err := m.Submit(ctx, app.API)
		if errors.Is(err, wizard.ErrValidation) {
			SetToast(c, "error", "Please fix the highlighted fields.")
			return renderView(c, templates.WizardContent(buildWizardData(ctx, app, m)))
		}
		if err != nil {
			app.Logger.Error("wizard_submit: create failed", zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Failed to submit proposal. Please try again.")
		}

		SetToast(c, "success", "Proposal created.")
		target := fmt.Sprintf("/proposals/%d", created.ID)
		if isHTMX(c) {
			c.Response().Header().Set("HX-Redirect", target)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, target)
	}
}

// HandleWizardDiscard abandons the session's draft.
func HandleWizardDiscard(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		app.Wizards.Discard(SessionID(c))
		SetToast(c, "success", "Draft discarded.")
		if isHTMX(c) {
			c.Response().Header().Set("HX-Redirect", "/proposals")
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, "/proposals")
	}
}

// applyWizardForm copies any recognized draft fields out of the request
// form. Fields the form does not carry are left untouched.
func applyWizardForm(c echo.Context, m *wizard.Machine) {
	form, err := c.FormParams()
	if err != nil {
		return
	}
	if v, ok := form["neighborhoodId"]; ok && len(v) > 0 {
		if id, err := strconv.Atoi(v[0]); err == nil {
			m.SetNeighborhood(id)
		}
	}
	if v, ok := form["title"]; ok && len(v) > 0 {
		m.SetTitle(v[0])
	}
	if v, ok := form["description"]; ok && len(v) > 0 {
		m.SetDescription(v[0])
	}
	if v, ok := form["lotSizeSqft"]; ok && len(v) > 0 {
		m.SetLotSize(v[0])
	}
	if v, ok := form["totalUnits"]; ok && len(v) > 0 {
		if n, err := strconv.Atoi(v[0]); err == nil {
			m.SetTotalUnits(n)
		}
	}
}

func buildWizardData(ctx context.Context, app *App, m *wizard.Machine) templates.WizardData {
	draft := m.Draft()

	data := templates.WizardData{
		Step:        int(m.Step()),
		StepName:    m.Step().String(),
		Errors:      make(map[string]string),
		Title:       draft.Title,
		Description: draft.Description,
		LotSizeSqft: draft.LotSizeSqft,
		TotalUnits:  draft.TotalUnits,
		UnitSum:     draft.UnitSum(),
	}
	for field, msg := range m.Errors() {
		data.Errors[string(field)] = msg
	}

	rows, err := app.API.MapData(ctx)
	if err != nil {
		app.Logger.Warn("wizard: neighborhood options unavailable", zap.Error(err))
		rows = app.Neighborhoods.All()
	} else {
		app.Neighborhoods.SetAll(rows)
	}
	for _, n := range rows {
		label := fmt.Sprintf("%s, %s", n.Name, n.BoroughName)
		data.Neighborhoods = append(data.Neighborhoods, templates.WizardOption{
			Value:    itoa(n.ID),
			Label:    label,
			Selected: draft.NeighborhoodID == n.ID,
		})
		if draft.NeighborhoodID == n.ID {
			data.NeighborhoodLabel = label
		}
	}

	for i, u := range draft.UnitMix {
		data.Units = append(data.Units, templates.WizardUnitRow{
			Index:     i,
			TypeValue: string(u.UnitType),
			TypeLabel: services.UnitTypeLabel(u.UnitType),
			Count:     u.Count,
			AvgSqft:   u.AvgSqft,
			Rent:      u.ProjectedRent,
		})
	}
	for _, t := range apiclient.UnitTypes {
		data.UnitTypes = append(data.UnitTypes, templates.WizardOption{
			Value: string(t),
			Label: services.UnitTypeLabel(t),
		})
	}

	return data
}
