package handlers

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"proposaldesk/apiclient"
	"proposaldesk/services"
	"proposaldesk/templates"
)

func itoa(n int) string { return strconv.Itoa(n) }

func renderView(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}

func toProposalListItem(p apiclient.ProposalSummary) templates.ProposalListItem {
	return templates.ProposalListItem{
		ID:               p.ID,
		Title:            p.Title,
		NeighborhoodName: p.NeighborhoodName,
		BoroughName:      p.BoroughName,
		StatusLabel:      services.StatusLabel(p.Status),
		StatusBadgeClass: services.StatusBadgeClass(p.Status),
		TotalUnits:       p.TotalUnits,
		Score:            services.FormatScore(p.FeasibilityScore),
		Cost:             services.FormatDecimalUSD(p.EstimatedCost),
		Revenue:          services.FormatDecimalUSD(p.ProjectedRevenue),
		UpdatedDate:      services.FormatDate(p.UpdatedAt),
	}
}

func statusOptions(selected string) []templates.StatusOption {
	opts := make([]templates.StatusOption, 0, len(apiclient.ProposalStatuses))
	for _, s := range apiclient.ProposalStatuses {
		opts = append(opts, templates.StatusOption{
			Value:    string(s),
			Label:    services.StatusLabel(s),
			Selected: selected == string(s),
		})
	}
	return opts
}

func toMarketRows(entries []apiclient.MarketDataEntry) []templates.MarketRow {
	rows := make([]templates.MarketRow, 0, len(entries))
	for _, m := range entries {
		rows = append(rows, templates.MarketRow{
			Period:          m.Period,
			MedianSalePrice: services.FormatDecimalUSD(&m.MedianSalePrice),
			MedianRent:      services.FormatDecimalUSD(&m.MedianRent),
			VacancyRatePct:  m.VacancyRatePct,
			PermitsIssued:   m.PermitsIssued,
		})
	}
	return rows
}

// pageNumbers resolves the prev/next page links; zero means no link.
func pageNumbers(page, pageCount int) (prev, next int) {
	if page > 1 {
		prev = page - 1
	}
	if page < pageCount {
		next = page + 1
	}
	return prev, next
}
