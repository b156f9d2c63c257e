package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"proposaldesk/services"
	"proposaldesk/templates"
)

func HandleMapPage(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		layers := app.MapLayers(SessionID(c))

		rows, err := app.API.MapData(ctx)
		if err != nil {
			app.Logger.Error("map: could not load map data", zap.Error(err))
			return ErrorToast(c, http.StatusBadGateway, "Something went wrong. Please try again.")
		}
		visible := services.FilterMapRows(rows, layers)

		data := templates.MapPageData{
			VisibleCount: len(visible),
			TotalCount:   len(rows),
		}
		for _, l := range layers {
			data.Layers = append(data.Layers, templates.MapLayerToggle{ID: l.ID, Label: l.Label, Enabled: l.Enabled})
		}

		if isHTMX(c) {
			return renderView(c, templates.MapContent(data))
		}
		state := sessionStore(c, app).State()
		layout := app.buildLayout(ctx, state, "/map", "Opportunity Map")
		return renderView(c, templates.MapPage(data, layout))
	}
}

// HandleMapToggleLayer flips a layer for the session, then re-renders the
// map fragment.
func HandleMapToggleLayer(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := SessionID(c)
		layers := services.ToggleLayer(app.MapLayers(sessionID), c.Param("layer"))
		app.SetMapLayers(sessionID, layers)
		return HandleMapPage(app)(c)
	}
}

// HandleMapData serves the filtered, colored neighborhoods as GeoJSON for
// the map library.
func HandleMapData(app *App) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		layers := app.MapLayers(SessionID(c))

		rows, err := app.API.MapData(ctx)
		if err != nil {
			app.Logger.Error("map_data: could not load map data", zap.Error(err))
			return echo.NewHTTPError(http.StatusBadGateway, "map data unavailable")
		}

		fc := services.BuildFeatureCollection(services.FilterMapRows(rows, layers), layers)
		return c.JSON(http.StatusOK, fc)
	}
}
