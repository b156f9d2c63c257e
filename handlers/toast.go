package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// SetToast sets the HX-Trigger response header to show a toast notification
// on the client via HTMX. If an HX-Trigger header already exists, the toast
// payload is merged into the existing JSON object.
// It also sets a flash cookie so toasts survive regular (non-HTMX) redirects.
func SetToast(c echo.Context, toastType string, message string) {
	toast := map[string]any{
		"showToast": map[string]string{
			"message": message,
			"type":    toastType,
		},
	}

	header := c.Response().Header()
	existing := header.Get("HX-Trigger")
	if existing == "" {
		if data, err := json.Marshal(toast); err == nil {
			header.Set("HX-Trigger", string(data))
		}
	} else {
		var merged map[string]any
		if err := json.Unmarshal([]byte(existing), &merged); err != nil {
			// Existing value is not JSON, overwrite it.
			if data, err := json.Marshal(toast); err == nil {
				header.Set("HX-Trigger", string(data))
			}
		} else {
			merged["showToast"] = toast["showToast"]
			if data, err := json.Marshal(merged); err == nil {
				header.Set("HX-Trigger", string(data))
			}
		}
	}

	// Also set a flash cookie for non-HTMX redirects (302) where HX-Trigger is lost
	toastData := map[string]string{"message": message, "type": toastType}
	if cookieVal, err := json.Marshal(toastData); err == nil {
		c.SetCookie(&http.Cookie{
			Name:     "flash_toast",
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // JS needs to read it
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error text into the DOM.
// It sets HX-Reswap: none so the response body is ignored by HTMX, while the HX-Trigger
// header still fires the toast event.
func ErrorToast(c echo.Context, statusCode int, message string) error {
	SetToast(c, "error", message)
	c.Response().Header().Set("HX-Reswap", "none")
	return c.String(statusCode, message)
}
