package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHome_RendersHeroWithStats(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	rec := perform(t, HandleHome(app), http.MethodGet, "/", nil, nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!doctype html>", "full loads render the document shell")
	assert.Contains(t, body, "Find the next place to build")
	assert.Contains(t, body, "/proposals/new", "hero links into the wizard")
	assert.Contains(t, body, "hero-stats", "stat strip renders when the backend is up")
}

func TestHome_HTMXFragment(t *testing.T) {
	app := newTestApp(t, newFakeBackend(t))

	rec := perform(t, HandleHome(app), http.MethodGet, "/", nil, nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<!doctype html>")
	assert.Contains(t, body, "Find the next place to build")
}

func TestHome_BackendDownStillRenders(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	}))

	rec := perform(t, HandleHome(app), http.MethodGet, "/", nil, nil, false)

	assert.Equal(t, http.StatusOK, rec.Code, "the landing page never hard-fails on backend errors")
	body := rec.Body.String()
	assert.Contains(t, body, "Find the next place to build")
	assert.NotContains(t, body, "hero-stats", "no stat strip without live figures")
}
