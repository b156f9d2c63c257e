package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/services"
)

// HandleProposalsExcelExport downloads the current filtered proposal list
// as a spreadsheet. The export walks every page so the file covers the
// whole filtered set, not just the visible page.
func HandleProposalsExcelExport(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		state := sessionStore(c, app).State()

		var all []apiclient.ProposalSummary
		for page := 1; ; page++ {
			result, err := app.API.Proposals(ctx, apiclient.ProposalQuery{
				Status:   state.FilterStatus,
				Borough:  state.FilterBorough,
				Search:   state.SearchQuery,
				Ordering: state.Ordering(),
				Page:     page,
			})
			if err != nil {
				app.Logger.Error("export_excel: could not load proposals", zap.Int("page", page), zap.Error(err))
				return ErrorToast(c, http.StatusBadGateway, "Export failed. Please try again.")
			}
			all = append(all, result.Results...)
			if result.Next == nil {
				break
			}
		}

		data := services.BuildProposalExport(all, time.Now())
		file, err := services.GenerateProposalsExcel(data)
		if err != nil {
			app.Logger.Error("export_excel: generation failed", zap.Error(err))
			return ErrorToast(c, http.StatusInternalServerError, "Export failed. Please try again.")
		}

		filename := fmt.Sprintf("proposals-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file)
	}
}

// HandleProposalPDFExport downloads one proposal's feasibility report.
func HandleProposalPDFExport(app *App) echo.HandlerFunc {
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
			app.Logger.Error("export_pdf: could not load proposal", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Export failed. Please try again.")
		}

		file, err := services.GenerateProposalPDF(detail)
		if err != nil {
			app.Logger.Error("export_pdf: generation failed", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusInternalServerError, "Export failed. Please try again.")
		}

		filename := fmt.Sprintf("proposal-%d.pdf", id)
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Blob(http.StatusOK, "application/pdf", file)
	}
}
