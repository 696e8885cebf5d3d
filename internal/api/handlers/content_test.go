package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kknudson15/ai-portfolio-starter/internal/content"
	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjects() []content.Project {
	return []content.Project{
		{
			ID:          1,
			Title:       "Auto-Audit",
			Description: "Self healing pipeline",
			About:       "Long form about text",
			Impact:      []domain.ImpactStat{{Metric: "90%", Label: "Reduction in downtime"}},
			TechStack:   []string{"Python"},
			Categories:  []string{"AI"},
			Featured:    true,
			Slug:        "auto-audit",
		},
		{
			ID:    2,
			Title: "EASE",
			Slug:  "ease",
		},
	}
}

func TestContentHandler_ListProjects(t *testing.T) {
	handler := NewContentHandler(testProjects(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()

	handler.ListProjects(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "Auto-Audit", first["title"])
	assert.Equal(t, "auto-audit", first["slug"])
	// Summaries omit the long-form fields
	_, hasAbout := first["about"]
	assert.False(t, hasAbout)
}

func TestContentHandler_GetProject(t *testing.T) {
	handler := NewContentHandler(testProjects(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", "auto-audit")
	req := httptest.NewRequest(http.MethodGet, "/api/projects/auto-audit", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.GetProject(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Auto-Audit", data["title"])
	assert.Equal(t, "Long form about text", data["about"])
}

func TestContentHandler_GetProject_NotFound(t *testing.T) {
	handler := NewContentHandler(testProjects(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", "nope")
	req := httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.GetProject(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentHandler_ListApps(t *testing.T) {
	apps := []content.App{{ID: "app-one", Name: "App One"}}
	handler := NewContentHandler(nil, apps)

	req := httptest.NewRequest(http.MethodGet, "/api/apps", nil)
	w := httptest.NewRecorder()

	handler.ListApps(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "App One", items[0].(map[string]interface{})["name"])
}
