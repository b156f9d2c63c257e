package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
)

func HandleProposalDelete(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return ErrorToast(c, http.StatusBadRequest, "Invalid proposal.")
		}

		if err := app.API.DeleteProposal(ctx, id); err != nil {
			if errors.Is(err, apiclient.ErrNotFound) {
				return ErrorToast(c, http.StatusNotFound, "Proposal not found.")
			}
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
				return ErrorToast(c, http.StatusForbidden, "Only draft proposals can be deleted.")
			}
			app.Logger.Error("proposal_delete: delete failed", zap.Int("id", id), zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}

		app.Proposals.Remove(id)

		SetToast(c, "success", "Proposal deleted.")
		if isHTMX(c) {
			// Re-render the list in place after the delete.
			return HandleProposalList(app)(c)
		}
		return c.Redirect(http.StatusSeeOther, "/proposals")
	}
}
