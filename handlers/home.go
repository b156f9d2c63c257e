package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/templates"
)

// HandleHome renders the landing page. The stat strip comes from the
// cached dashboard aggregates; when the backend is unreachable the hero
// still renders, just without figures.
func HandleHome(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		data := templates.HomeData{}
		if summaries, err := app.API.DashboardSummaries(ctx); err != nil {
			app.Logger.Warn("home: stats unavailable", zap.Error(err))
		} else {
			data.HasStats = true
			data.BoroughCount = len(summaries)
			for _, s := range summaries {
				data.TotalProposals += s.TotalProposals
				data.TotalUnits += s.TotalUnits
			}
		}

		if isHTMX(c) {
			return renderView(c, templates.HomeContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/", "Home")
		return renderView(c, templates.HomePage(data, layout))
	}
}
