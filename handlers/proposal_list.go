package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/templates"
	"proposaldesk/uistate"
)

func HandleProposalList(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		store := sessionStore(c, app)

		if _, ok := c.QueryParams()["search"]; ok {
			store.Update(func(s uistate.State) uistate.State {
				return s.WithSearch(c.QueryParam("search"))
			})
		}
		if _, ok := c.QueryParams()["status"]; ok {
			store.Update(func(s uistate.State) uistate.State {
				return s.WithStatusFilter(c.QueryParam("status"))
			})
		}
		if _, ok := c.QueryParams()["borough"]; ok {
			store.Update(func(s uistate.State) uistate.State {
				return s.WithBoroughFilter(c.QueryParam("borough"))
			})
		}
		if field := c.QueryParam("sort"); field != "" {
			store.Update(func(s uistate.State) uistate.State {
				// Sorting the same column again flips the direction.
				dir := uistate.SortAsc
				if s.SortField == field && s.SortDirection == uistate.SortAsc {
					dir = uistate.SortDesc
				}
				return s.WithSort(field, dir)
			})
		}
		state := store.State()

		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}

		result, err := app.API.Proposals(ctx, apiclient.ProposalQuery{
			Status:   state.FilterStatus,
			Borough:  state.FilterBorough,
			Search:   state.SearchQuery,
			Ordering: state.Ordering(),
			Page:     page,
		})
		if err != nil {
			app.Logger.Error("proposal_list: could not load proposals", zap.Error(err))
			cached := mirroredProposals(app, state)
			if len(cached) == 0 {
				return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
			}
			SetToast(c, "error", "Live data unavailable. Showing recently seen proposals.")
			data := templates.ProposalListData{
				TotalCount:    len(cached),
				SearchQuery:   state.SearchQuery,
				StatusOptions: statusOptions(state.FilterStatus),
				SortField:     state.SortField,
				SortDesc:      state.SortDirection == uistate.SortDesc,
				Page:          1,
				PageCount:     1,
			}
			for _, p := range cached {
				data.Items = append(data.Items, toProposalListItem(p))
			}
			if isHTMX(c) {
				return renderView(c, templates.ProposalListContent(data))
			}
			layout := app.buildLayout(ctx, state, "/proposals", "Proposals")
			return renderView(c, templates.ProposalListPage(data, layout))
		}
		app.Proposals.UpsertAll(result.Results)

		pageCount := apiclient.PageCount(result.Count, app.PageSize)
		prev, next := pageNumbers(page, pageCount)

		data := templates.ProposalListData{
			TotalCount:    result.Count,
			SearchQuery:   state.SearchQuery,
			StatusOptions: statusOptions(state.FilterStatus),
			SortField:     state.SortField,
			SortDesc:      state.SortDirection == uistate.SortDesc,
			Page:          page,
			PageCount:     pageCount,
			PrevPage:      prev,
			NextPage:      next,
		}
		for _, p := range result.Results {
			data.Items = append(data.Items, toProposalListItem(p))
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
			return renderView(c, templates.ProposalListContent(data))
		}
		layout := app.buildLayout(ctx, state, "/proposals", "Proposals")
		return renderView(c, templates.ProposalListPage(data, layout))
	}
}

// mirroredProposals answers the session's filters from the in-process
// mirror of already-seen proposals. Only the filters that can be resolved
// locally apply: status and free-text search. Borough filtering needs the
// borough id, which the summary record does not carry.
func mirroredProposals(app *App, state uistate.State) []apiclient.ProposalSummary {
	search := strings.ToLower(strings.TrimSpace(state.SearchQuery))

	var out []apiclient.ProposalSummary
	for _, p := range app.Proposals.All() {
		if state.FilterStatus != "" && string(p.Status) != state.FilterStatus {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.NeighborhoodName), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
