package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
)

// HandleCalculateScore asks the backend to recompute the feasibility score,
// then re-renders the proposal with the fresh numbers.
func HandleCalculateScore(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return ErrorToast(c, http.StatusBadRequest, "Invalid proposal.")
		}

		if _, err := app.API.CalculateScore(ctx, id); err != nil {
			if errors.Is(err, apiclient.ErrNotFound) {
				return ErrorToast(c, http.StatusNotFound, "Proposal not found.")
			}
			app.Logger.Error("calculate_score: action failed", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Could not calculate the score. Please try again.")
		}

		SetToast(c, "success", "Feasibility score updated.")
		return HandleProposalDetail(app)(c)
	}
}

// HandleGenerateProjections asks the backend to build financial projections.
// The years form field defaults to 10 when absent.
func HandleGenerateProjections(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return ErrorToast(c, http.StatusBadRequest, "Invalid proposal.")
		}

		years := 10
		if raw := c.FormValue("years"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return ErrorToast(c, http.StatusBadRequest, "Years must be a positive number.")
			}
			years = n
		}

		if _, err := app.API.GenerateProjections(ctx, id, years); err != nil {
			if errors.Is(err, apiclient.ErrNotFound) {
				return ErrorToast(c, http.StatusNotFound, "Proposal not found.")
			}
			app.Logger.Error("generate_projections: action failed", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Could not generate projections. Please try again.")
		}

		SetToast(c, "success", "Projections generated.")
		return HandleProposalDetail(app)(c)
	}
}
