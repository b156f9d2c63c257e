package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newToastContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}

	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Basic(t *testing.T) {
	c, rec := newToastContext()

	SetToast(c, "success", "Proposal saved")

	toast := decodeToast(t, rec)
	if toast["message"] != "Proposal saved" {
		t.Errorf("expected message %q, got %q", "Proposal saved", toast["message"])
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
}

func TestSetToast_MergesExistingTrigger(t *testing.T) {
	c, rec := newToastContext()
	rec.Header().Set("HX-Trigger", `{"refreshList":true}`)

	SetToast(c, "error", "Something went wrong")

	var merged map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &merged); err != nil {
		t.Fatalf("merged HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := merged["refreshList"]; !ok {
		t.Error("existing trigger key was dropped by the merge")
	}
	if _, ok := merged["showToast"]; !ok {
		t.Error("showToast missing after merge")
	}
}

func TestSetToast_OverwritesInvalidTrigger(t *testing.T) {
	c, rec := newToastContext()
	rec.Header().Set("HX-Trigger", "not json")

	SetToast(c, "info", "Heads up")

	toast := decodeToast(t, rec)
	if toast["message"] != "Heads up" {
		t.Errorf("expected message %q, got %q", "Heads up", toast["message"])
	}
}

func TestSetToast_FlashCookie(t *testing.T) {
	c, rec := newToastContext()

	SetToast(c, "success", "Saved")

	var flash *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "flash_toast" {
			flash = cookie
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie")
	}
	if flash.MaxAge != 10 {
		t.Errorf("flash cookie MaxAge = %d, want 10", flash.MaxAge)
	}
}

func TestErrorToast(t *testing.T) {
	c, rec := newToastContext()

	err := ErrorToast(c, http.StatusBadGateway, "Backend unavailable")
	if err != nil {
		t.Fatalf("ErrorToast() error = %v", err)
	}

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none")
	}
	toast := decodeToast(t, rec)
	if toast["type"] != "error" {
		t.Errorf("toast type = %q, want error", toast["type"])
	}
}
