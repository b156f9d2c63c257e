package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"proposaldesk/apiclient"
	"proposaldesk/templates"
	"proposaldesk/wizard"
)

// HandleWizardAddUnit appends a unit-mix row from the add form.
func HandleWizardAddUnit(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		m.AddUnit(unitEntryFromForm(c))
		return renderView(c, templates.WizardContent(buildWizardData(c.Request().Context(), app, m)))
	}
}

// HandleWizardUpdateUnit replaces the row at the path index. Out-of-range
// indexes are ignored, matching the machine's behavior.
func HandleWizardUpdateUnit(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		if index, err := strconv.Atoi(c.Param("index")); err == nil {
			entry := unitEntryFromForm(c)
			if entry.UnitType == "" {
				// The row inputs do not resubmit the type; keep the current one.
				draft := m.Draft()
				if index >= 0 && index < len(draft.UnitMix) {
					entry.UnitType = draft.UnitMix[index].UnitType
				}
			}
			m.UpdateUnit(index, entry)
		}
		return renderView(c, templates.WizardContent(buildWizardData(c.Request().Context(), app, m)))
	}
}

func HandleWizardRemoveUnit(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := app.Wizards.Get(SessionID(c))
		if index, err := strconv.Atoi(c.Param("index")); err == nil {
			m.RemoveUnit(index)
		}
		return renderView(c, templates.WizardContent(buildWizardData(c.Request().Context(), app, m)))
	}
}

func unitEntryFromForm(c echo.Context) wizard.UnitEntry {
	count, _ := strconv.Atoi(c.FormValue("count"))
	return wizard.UnitEntry{
		UnitType:      apiclient.UnitType(c.FormValue("unitType")),
		Count:         count,
		AvgSqft:       c.FormValue("avgSqft"),
		ProjectedRent: c.FormValue("projectedRent"),
	}
}
