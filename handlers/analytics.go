package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/services"
	"proposaldesk/templates"
)

func HandleAnalytics(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		rankings, err := app.API.Rankings(ctx)
		if err != nil {
			app.Logger.Error("analytics: could not load rankings", zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}

		analysis := services.BuildMarketAnalysis(rankings)

		data := templates.AnalyticsData{}
		for _, r := range analysis.Rankings {
			data.Rows = append(data.Rows, toRankingRow(r.NeighborhoodName, r.BoroughName, r.MedianSalePrice, r.MedianRent, r.VacancyRatePct, r.TransitScore, r.DevelopmentScore, r.OverallRank, r.Quartile))
		}
		for _, r := range analysis.TopQuartile {
			data.TopQuartile = append(data.TopQuartile, toRankingRow(r.NeighborhoodName, r.BoroughName, r.MedianSalePrice, r.MedianRent, r.VacancyRatePct, r.TransitScore, r.DevelopmentScore, r.OverallRank, r.Quartile))
		}
		for borough, avg := range analysis.AvgScoreByBorough {
			data.BoroughAverages = append(data.BoroughAverages, templates.BoroughAvgRow{
				BoroughName: borough,
				AvgScore:    strconv.FormatFloat(avg, 'f', 2, 64),
				Count:       len(analysis.ByBorough[borough]),
			})
		}
		sort.Slice(data.BoroughAverages, func(i, j int) bool {
			return data.BoroughAverages[i].BoroughName < data.BoroughAverages[j].BoroughName
		})

		if isHTMX(c) {
			return renderView(c, templates.AnalyticsContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/analytics", "Market Analytics")
		return renderView(c, templates.AnalyticsPage(data, layout))
	}
}

func toRankingRow(name, borough, sale, rent, vacancy, transit, score string, rank, quartile int) templates.RankingRow {
	salePtr, rentPtr := sale, rent
	return templates.RankingRow{
		Rank:            rank,
		Name:            name,
		BoroughName:     borough,
		MedianSalePrice: services.FormatDecimalUSD(&salePtr),
		MedianRent:      services.FormatDecimalUSD(&rentPtr),
		VacancyRatePct:  vacancy,
		TransitScore:    transit,
		Score:           score,
		Quartile:        quartile,
		TopQuartile:     quartile == 1,
	}
}
