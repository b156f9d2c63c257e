package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/services"
	"proposaldesk/templates"
)

func HandleDashboard(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		summaries, err := app.API.DashboardSummaries(ctx)
		if err != nil {
			app.Logger.Error("dashboard: could not load summaries", zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}

		data := templates.DashboardData{}
		for _, s := range summaries {
			data.TotalProposals += s.TotalProposals
			data.TotalUnits += s.TotalUnits
			data.Cards = append(data.Cards, templates.DashboardCard{
				BoroughName:      s.BoroughName,
				TotalProposals:   s.TotalProposals,
				TotalUnits:       s.TotalUnits,
				AvgScore:         services.FormatScore(s.AvgFeasibilityScore),
				EstimatedCost:    services.FormatDecimalUSD(&s.TotalEstimatedCost),
				ProjectedRevenue: services.FormatDecimalUSD(&s.TotalProjectedRevenue),
			})
		}

		recent, err := app.API.Proposals(ctx, apiclient.ProposalQuery{Ordering: "-updated_at"})
		if err != nil {
			app.Logger.Warn("dashboard: recent proposals unavailable", zap.Error(err))
		} else {
			limit := 5
			for i, p := range recent.Results {
				if i >= limit {
					break
				}
				data.RecentProposals = append(data.RecentProposals, toProposalListItem(p))
			}
		}

		if isHTMX(c) {
			return renderView(c, templates.DashboardContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/dashboard", "Dashboard")
		return renderView(c, templates.DashboardPage(data, layout))
	}
}
