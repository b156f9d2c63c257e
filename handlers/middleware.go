package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"proposaldesk/uistate"
)

const sessionCookieName = "session_id"
const sessionIDKey = "sessionID"

// SessionMiddleware assigns each browser a session cookie and loads its UI
// state store into the echo context. The theme cookie mirrors the session
// theme so the first paint after a reload uses the right colors.
func SessionMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     sessionCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(sessionIDKey, sessionID)

			store := app.Sessions.Get(sessionID)
			if cookie, err := c.Cookie("theme"); err == nil && cookie.Value != "" {
				theme := uistate.ParseTheme(cookie.Value)
				if store.State().Theme != theme {
					store.Update(func(s uistate.State) uistate.State {
						return s.WithTheme(theme)
					})
				}
			}

			return next(c)
		}
	}
}

// SessionID extracts the session id set by SessionMiddleware.
func SessionID(c echo.Context) string {
	if id, ok := c.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// sessionStore is the UI state store for the current request's session.
func sessionStore(c echo.Context, app *App) *uistate.Store {
	return app.Sessions.Get(SessionID(c))
}

// isHTMX reports whether the request came from an HTMX swap rather than a
// full page load.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
