package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/services"
	"proposaldesk/templates"
)

func HandleNeighborhoodDetail(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return ErrorToast(c, http.StatusBadRequest, "Invalid neighborhood.")
		}

		detail, err := app.API.Neighborhood(ctx, id)
		if errors.Is(err, apiclient.ErrNotFound) {
			return ErrorToast(c, http.StatusNotFound, "Neighborhood not found.")
		}
		if err != nil {
			app.Logger.Error("neighborhood_detail: could not load neighborhood", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}

		data := templates.NeighborhoodDetailData{
			ID:            detail.ID,
			Name:          detail.Name,
			BoroughName:   detail.Borough.Name,
			AreaSqMiles:   detail.AreaSqMiles,
			ProposalCount: detail.ProposalCount,
			Market:        toMarketRows(detail.LatestMarketData),
		}
		for _, z := range detail.ZoningDistricts {
			data.Zoning = append(data.Zoning, templates.ZoningRow{
				Code:        z.Code,
				Category:    z.Category,
				MaxFAR:      z.MaxFAR,
				MaxHeightFt: z.MaxHeightFt,
				Residential: z.ResidentialAllowed,
			})
		}
		for _, d := range detail.LatestDemographics {
			data.Demographics = append(data.Demographics, templates.DemographicRow{
				Year:         d.Year,
				Population:   services.FormatCount(d.Population),
				MedianIncome: services.FormatDecimalUSD(&d.MedianIncome),
				GrowthPct:    d.PopulationGrowthPct,
				TransitScore: d.TransitScore,
			})
		}

		history, err := app.API.MarketHistory(ctx, id)
		if err != nil {
			app.Logger.Warn("neighborhood_detail: market history unavailable", zap.Int("id", id), zap.Error(err))
		} else {
			data.History = toMarketRows(history)
		}

		if isHTMX(c) {
			return renderView(c, templates.NeighborhoodDetailContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/neighborhoods", detail.Name)
		return renderView(c, templates.NeighborhoodDetailPage(data, layout))
	}
}
