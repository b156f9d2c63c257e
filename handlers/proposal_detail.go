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

func HandleProposalDetail(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return ErrorToast(c, http.StatusBadRequest, "Invalid proposal.")
		}

		detail, err := app.API.Proposal(ctx, id)
		if errors.Is(err, apiclient.ErrNotFound) {
			return ErrorToast(c, http.StatusNotFound, "Proposal not found.")
		}
		if err != nil {
			app.Logger.Error("proposal_detail: could not load proposal", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}
		app.Proposals.Upsert(detail.ProposalSummary)

		data := buildProposalDetailData(detail)

		if isHTMX(c) {
			return renderView(c, templates.ProposalDetailContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/proposals", detail.Title)
		return renderView(c, templates.ProposalDetailPage(data, layout))
	}
}

func buildProposalDetailData(detail apiclient.ProposalDetail) templates.ProposalDetailData {
	data := templates.ProposalDetailData{
		ID:               detail.ID,
		Title:            detail.Title,
		Description:      detail.Description,
		NeighborhoodID:   detail.Neighborhood.ID,
		NeighborhoodName: detail.Neighborhood.Name,
		BoroughName:      detail.Neighborhood.BoroughName,
		StatusLabel:      services.StatusLabel(detail.Status),
		StatusBadgeClass: services.StatusBadgeClass(detail.Status),
		IsDraft:          detail.Status == apiclient.StatusDraft,
		TotalUnits:       detail.TotalUnits,
		LotSizeSqft:      detail.LotSizeSqft,
		Score:            services.FormatScore(detail.FeasibilityScore),
		Cost:             services.FormatDecimalUSD(detail.EstimatedCost),
		Revenue:          services.FormatDecimalUSD(detail.ProjectedRevenue),
	}
	for _, u := range detail.UnitMix {
		data.UnitMix = append(data.UnitMix, templates.UnitMixRow{
			TypeLabel: services.UnitTypeLabel(u.UnitType),
			Count:     u.Count,
			AvgSqft:   u.AvgSqft,
			Rent:      u.ProjectedRent,
		})
	}
	for _, p := range detail.FinancialProjections {
		data.Projections = append(data.Projections, templates.ProjectionRow{
			Year:      p.Year,
			Revenue:   services.FormatDecimalUSD(&p.Revenue),
			Expenses:  services.FormatDecimalUSD(&p.Expenses),
			NetIncome: services.FormatDecimalUSD(&p.NetIncome),
			ROI:       p.CumulativeROI,
		})
	}
	for _, h := range detail.StatusHistory {
		fromLabel := ""
		if h.OldStatus != "" {
			fromLabel = services.StatusLabel(apiclient.ProposalStatus(h.OldStatus))
		}
		data.History = append(data.History, templates.StatusHistoryRow{
			FromLabel:   fromLabel,
			ToLabel:     services.StatusLabel(apiclient.ProposalStatus(h.NewStatus)),
			BadgeClass:  services.StatusBadgeClass(apiclient.ProposalStatus(h.NewStatus)),
			ChangedDate: services.FormatDate(h.ChangedAt),
			ChangedBy:   h.ChangedBy,
		})
	}
	return data
}
