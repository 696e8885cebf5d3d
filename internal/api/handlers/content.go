package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kknudson15/ai-portfolio-starter/internal/api"
	"github.com/kknudson15/ai-portfolio-starter/internal/content"
	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
)

// ContentHandler serves the static site content tables.
type ContentHandler struct {
	projects []content.Project
	apps     []content.App
}

func NewContentHandler(projects []content.Project, apps []content.App) *ContentHandler {
	return &ContentHandler{projects: projects, apps: apps}
}

type ProjectSummaryResponse struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Date        string   `json:"date"`
	Featured    bool     `json:"featured"`
	Slug        string   `json:"slug"`
}

type ProjectResponse struct {
	ProjectSummaryResponse
	About     string              `json:"about"`
	Challenge string              `json:"challenge"`
	Solution  string              `json:"solution"`
	Impact    []domain.ImpactStat `json:"impact"`
	TechStack []string            `json:"techStack"`
}

func projectToSummary(p *content.Project) ProjectSummaryResponse {
	return ProjectSummaryResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Categories:  p.Categories,
		Date:        p.Date,
		Featured:    p.Featured,
		Slug:        p.Slug,
	}
}

func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	summaries := make([]ProjectSummaryResponse, len(h.projects))
	for i := range h.projects {
		summaries[i] = projectToSummary(&h.projects[i])
	}
	api.Success(w, http.StatusOK, summaries)
}

func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		api.Error(w, http.StatusBadRequest, "slug is required")
		return
	}

	for i := range h.projects {
		if h.projects[i].Slug == slug {
			p := &h.projects[i]
			api.Success(w, http.StatusOK, ProjectResponse{
				ProjectSummaryResponse: projectToSummary(p),
				About:                  p.About,
				Challenge:              p.Challenge,
				Solution:               p.Solution,
				Impact:                 p.Impact,
				TechStack:              p.TechStack,
			})
			return
		}
	}

	api.HandleError(w, domain.ErrProjectNotFound)
}

func (h *ContentHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, h.apps)
}
