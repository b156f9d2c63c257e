// Package handlers wires HTTP routes to the backend client and the view
// templates. Each handler is a constructor taking *App, so tests can build
// an App against a fake backend.
package handlers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"proposaldesk/apiclient"
	"proposaldesk/entitycache"
	"proposaldesk/services"
	"proposaldesk/templates"
	"proposaldesk/uistate"
	"proposaldesk/wizard"
)

// App holds the shared state every handler needs.
type App struct {
	API            *apiclient.Client
	Logger         *zap.Logger
	Sessions       *uistate.Registry
	Wizards        *wizard.Registry
	PageSize       int
	SearchDebounce time.Duration

	// Mirrors of server records already seen this process, so degraded
	// renders (e.g. the wizard picker when the backend blips) have
	// something to show.
	Proposals     *entitycache.Cache[apiclient.ProposalSummary]
	Neighborhoods *entitycache.Cache[apiclient.NeighborhoodMapData]

	mu         sync.Mutex
	debouncers map[string]*uistate.Debouncer
	mapLayers  map[string][]services.MapLayer
}

// NewApp builds an App around an API client.
func NewApp(api *apiclient.Client, logger *zap.Logger, sessions *uistate.Registry, wizards *wizard.Registry, pageSize int, searchDebounce time.Duration) *App {
	return &App{
		API:            api,
		Logger:         logger,
		Sessions:       sessions,
		Wizards:        wizards,
		PageSize:       pageSize,
		SearchDebounce: searchDebounce,
		Proposals:      entitycache.New(func(p apiclient.ProposalSummary) int { return p.ID }),
		Neighborhoods:  entitycache.New(func(n apiclient.NeighborhoodMapData) int { return n.ID }),
		debouncers:     make(map[string]*uistate.Debouncer),
		mapLayers:      make(map[string][]services.MapLayer),
	}
}

// Debouncer returns the per-session search debouncer, creating one on first
// use.
func (a *App) Debouncer(sessionID string) *uistate.Debouncer {
	a.mu.Lock()
	defer a.mu.Unlock()
	d, ok := a.debouncers[sessionID]
	if !ok {
		d = uistate.NewDebouncer(a.SearchDebounce)
		a.debouncers[sessionID] = d
	}
	return d
}

// MapLayers returns the session's opportunity-map layer set, starting from
// the defaults.
func (a *App) MapLayers(sessionID string) []services.MapLayer {
	a.mu.Lock()
	defer a.mu.Unlock()
	layers, ok := a.mapLayers[sessionID]
	if !ok {
		layers = services.DefaultMapLayers()
		a.mapLayers[sessionID] = layers
	}
	return layers
}

// SetMapLayers stores the session's layer set.
func (a *App) SetMapLayers(sessionID string, layers []services.MapLayer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mapLayers[sessionID] = layers
}

// buildLayout assembles the page shell data for the current session. The
// borough list and draft count come from the cached backend reads, so
// repeat page loads stay cheap; failures degrade to an empty sidebar
// section rather than failing the page.
func (a *App) buildLayout(ctx context.Context, state uistate.State, activePath, title string) templates.LayoutData {
	layout := templates.LayoutData{
		Header: templates.HeaderData{
			Title:       title,
			Theme:       string(state.Theme),
			SearchQuery: state.SearchQuery,
		},
		Sidebar: templates.SidebarData{
			Open:       state.SidebarOpen,
			ActivePath: activePath,
		},
	}

	boroughs, err := a.API.Boroughs(ctx)
	if err != nil {
		a.Logger.Warn("sidebar boroughs unavailable", zap.Error(err))
	} else {
		for _, b := range boroughs {
			layout.Sidebar.Boroughs = append(layout.Sidebar.Boroughs, templates.BoroughLink{
				ID:       b.ID,
				Name:     b.Name,
				Code:     b.Code,
				Count:    b.NeighborhoodCount,
				Selected: state.FilterBorough == itoa(b.ID),
			})
		}
	}

	drafts, err := a.API.Proposals(ctx, apiclient.ProposalQuery{Status: string(apiclient.StatusDraft)})
	if err == nil {
		layout.Sidebar.DraftCount = drafts.Count
	}

	return layout
}
