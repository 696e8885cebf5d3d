package domain

import (
	"fmt"
	"strings"
)

// ImpactStat is one headline metric attached to a project
// (e.g. "90%" / "Reduction in downtime").
type ImpactStat struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
}

// Project is one project record inside the knowledge base.
type Project struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Impact      []ImpactStat `json:"impact"`
	TechStack   []string     `json:"techStack"`
}

// KnowledgeBase is the loosely-structured knowledge object the site
// owner maintains: free-text biography fields plus an ordered list of
// project records. It is the single source of truth for document
// content; the vector index is a derived projection of it.
type KnowledgeBase struct {
	About      string    `json:"about"`
	Leadership string    `json:"leadership"`
	Education  string    `json:"education"`
	Projects   []Project `json:"projects"`
}

// Documents flattens the knowledge base into retrievable documents.
// Each present biography field becomes one document keyed by the field
// name; each project becomes one document combining its title,
// description, impact metrics, and tech stack into a single text.
// Documents with no text are skipped rather than indexed blank.
//
// A nil knowledge base returns ErrKnowledgeBaseMissing so callers can
// treat a missing base as a degraded, non-fatal state.
func (kb *KnowledgeBase) Documents() ([]Document, error) {
	if kb == nil {
		return nil, ErrKnowledgeBaseMissing
	}

	var docs []Document

	scalars := []struct {
		id   string
		text string
	}{
		{"about", kb.About},
		{"leadership", kb.Leadership},
		{"education", kb.Education},
	}
	for _, field := range scalars {
		if strings.TrimSpace(field.text) == "" {
			continue
		}
		docs = append(docs, NewDocument(field.id, "", field.text))
	}

	for i, p := range kb.Projects {
		text := p.embeddingText()
		if strings.TrimSpace(text) == "" {
			continue
		}
		title := p.Title
		if title == "" {
			title = fmt.Sprintf("Project %d", i+1)
		}
		docs = append(docs, NewDocument(fmt.Sprintf("project-%d", i), title, text))
	}

	return docs, nil
}

// embeddingText joins the project fields into the single string that
// gets embedded, substituting "N/A" for missing pieces so the
// embedding call never receives empty fragments.
func (p Project) embeddingText() string {
	if p.Title == "" && p.Description == "" && len(p.Impact) == 0 && len(p.TechStack) == 0 {
		return ""
	}

	impact := "N/A"
	if len(p.Impact) > 0 {
		parts := make([]string, 0, len(p.Impact))
		for _, stat := range p.Impact {
			entry := strings.TrimSpace(strings.Join([]string{stat.Metric, stat.Label}, " "))
			if entry != "" {
				parts = append(parts, entry)
			}
		}
		if len(parts) > 0 {
			impact = strings.Join(parts, "; ")
		}
	}

	tech := "N/A"
	if len(p.TechStack) > 0 {
		tech = strings.Join(p.TechStack, ", ")
	}

	return fmt.Sprintf("%s: %s. Impact: %s. Tech: %s", p.Title, p.Description, impact, tech)
}
