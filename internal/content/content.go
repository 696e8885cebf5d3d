// Package content holds the static site content: the portfolio
// knowledge base, the project table, and the published apps table.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
)

// Project is a full project record as shown on the portfolio site.
// The chatbot's knowledge base only consumes a subset of these fields.
type Project struct {
	ID          int                 `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	About       string              `json:"about"`
	Challenge   string              `json:"challenge"`
	Solution    string              `json:"solution"`
	Impact      []domain.ImpactStat `json:"impact"`
	TechStack   []string            `json:"techStack"`
	Categories  []string            `json:"categories"`
	Date        string              `json:"date"`
	Featured    bool                `json:"featured"`
	Slug        string              `json:"slug"`
}

// App is one published application entry.
type App struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AppStoreURL string `json:"appStoreUrl"`
	SupportURL  string `json:"supportUrl"`
	PrivacyURL  string `json:"privacyUrl"`
}

// KnowledgeBase assembles the chatbot knowledge base from the
// biography fields and the project table.
func KnowledgeBase() *domain.KnowledgeBase {
	projects := make([]domain.Project, 0, len(Projects))
	for _, p := range Projects {
		projects = append(projects, domain.Project{
			Title:       p.Title,
			Description: p.Description,
			Impact:      p.Impact,
			TechStack:   p.TechStack,
		})
	}

	return &domain.KnowledgeBase{
		About:      about,
		Leadership: leadership,
		Education:  education,
		Projects:   projects,
	}
}

// LoadKnowledgeBase reads a knowledge base from a JSON file. Used to
// override the embedded content without a rebuild; a parse failure is
// a configuration problem, not a user error.
func LoadKnowledgeBase(path string) (*domain.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base file: %w", err)
	}

	var kb domain.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base file: %w", err)
	}

	return &kb, nil
}

// ProjectBySlug returns the project with the given slug.
func ProjectBySlug(slug string) (*Project, error) {
	for i := range Projects {
		if Projects[i].Slug == slug {
			return &Projects[i], nil
		}
	}
	return nil, domain.ErrProjectNotFound
}
