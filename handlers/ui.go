package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"proposaldesk/apiclient"
	"proposaldesk/uistate"
)

func HandleSidebarToggle(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionStore(c, app).Update(func(s uistate.State) uistate.State {
			return s.ToggleSidebar()
		})
		return c.NoContent(http.StatusNoContent)
	}
}

func HandleThemeToggle(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := sessionStore(c, app).Update(func(s uistate.State) uistate.State {
			return s.ToggleTheme()
		})
		c.SetCookie(&http.Cookie{
			Name:     "theme",
			Value:    string(state.Theme),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
		return c.NoContent(http.StatusNoContent)
	}
}

// HandleSearchInput records the header search box as the user types. The
// query lands in session state immediately; the backend prefetch that
// warms the cache goes through the per-session debouncer so only the
// settled query hits the network.
func HandleSearchInput(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.FormValue("search")
		store := sessionStore(c, app)
		state := store.Update(func(s uistate.State) uistate.State {
			return s.WithSearch(query)
		})

		ordering := state.Ordering()
		status := state.FilterStatus
		borough := state.FilterBorough
		app.Debouncer(SessionID(c)).Trigger(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_, _ = app.API.Proposals(ctx, apiclient.ProposalQuery{
				Status:   status,
				Borough:  borough,
				Search:   query,
				Ordering: ordering,
				Page:     1,
			})
		})

		return c.NoContent(http.StatusNoContent)
	}
}

// HandleResetFilters clears search and filters but keeps theme and sidebar.
func HandleResetFilters(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionStore(c, app).Update(func(s uistate.State) uistate.State {
			return s.ResetFilters()
		})
		return HandleProposalList(app)(c)
	}
}
