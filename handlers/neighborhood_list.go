package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/templates"
	"proposaldesk/uistate"
)

func HandleNeighborhoodList(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		store := sessionStore(c, app)

		// Query params override the session's remembered filters.
		if _, ok := c.QueryParams()["search"]; ok {
			store.Update(func(s uistate.State) uistate.State {
				return s.WithSearch(c.QueryParam("search"))
			})
		}
		if _, ok := c.QueryParams()["borough"]; ok {
			store.Update(func(s uistate.State) uistate.State {
				return s.WithBoroughFilter(c.QueryParam("borough"))
			})
		}
		state := store.State()

		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}

		result, err := app.API.Neighborhoods(ctx, apiclient.NeighborhoodQuery{
			Borough: state.FilterBorough,
			Search:  state.SearchQuery,
			Page:    page,
		})
		if err != nil {
			app.Logger.Error("neighborhood_list: could not load neighborhoods", zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}

		pageCount := apiclient.PageCount(result.Count, app.PageSize)
		prev, next := pageNumbers(page, pageCount)

		data := templates.NeighborhoodListData{
			TotalCount:  result.Count,
			SearchQuery: state.SearchQuery,
			Page:        page,
			PageCount:   pageCount,
			PrevPage:    prev,
			NextPage:    next,
		}
		for _, n := range result.Results {
			data.Items = append(data.Items, templates.NeighborhoodListItem{
				ID:            n.ID,
				Name:          n.Name,
				BoroughName:   n.BoroughName,
				BoroughCode:   n.BoroughCode,
				AreaSqMiles:   n.AreaSqMiles,
				ProposalCount: n.ProposalCount,
			})
		}

		if boroughs, err := app.API.Boroughs(ctx); err == nil {
			for _, b := range boroughs {
				data.Boroughs = append(data.Boroughs, templates.BoroughLink{
					ID:       b.ID,
					Name:     b.Name,
					Code:     b.Code,
					Count:    b.NeighborhoodCount,
					Selected: state.FilterBorough == itoa(b.ID),
				})
			}
		}

		if isHTMX(c) {
			return renderView(c, templates.NeighborhoodListContent(data))
		}
		layout := app.buildLayout(ctx, state, "/neighborhoods", "Neighborhoods")
		return renderView(c, templates.NeighborhoodListPage(data, layout))
	}
}
