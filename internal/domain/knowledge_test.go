package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBase_Documents_ScalarFields(t *testing.T) {
	kb := &KnowledgeBase{
		About:      "Kyle is an engineer.",
		Leadership: "Kyle leads teams.",
		Education:  "B.S. in Computer Science.",
	}

	docs, err := kb.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "about", docs[0].ID)
	assert.Equal(t, "about", docs[0].Title)
	assert.Equal(t, "Kyle is an engineer.", docs[0].Text)
	assert.Equal(t, "leadership", docs[1].ID)
	assert.Equal(t, "education", docs[2].ID)
}

func TestKnowledgeBase_Documents_SkipsEmptyFields(t *testing.T) {
	kb := &KnowledgeBase{
		About:     "Kyle is an engineer.",
		Education: "   ",
	}

	docs, err := kb.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "about", docs[0].ID)
}

func TestKnowledgeBase_Documents_Projects(t *testing.T) {
	kb := &KnowledgeBase{
		Projects: []Project{
			{
				Title:       "Auto-Audit",
				Description: "pipeline",
				Impact:      []ImpactStat{{Metric: "90%", Label: "Reduction in downtime"}},
				TechStack:   []string{"Python", "Airflow"},
			},
		},
	}

	docs, err := kb.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "project-0", docs[0].ID)
	assert.Equal(t, "Auto-Audit", docs[0].Title)
	assert.Equal(t, "Auto-Audit: pipeline. Impact: 90% Reduction in downtime. Tech: Python, Airflow", docs[0].Text)
}

func TestKnowledgeBase_Documents_ProjectMissingPieces(t *testing.T) {
	kb := &KnowledgeBase{
		Projects: []Project{
			{Title: "Auto-Audit", Description: "pipeline"},
		},
	}

	docs, err := kb.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Auto-Audit: pipeline. Impact: N/A. Tech: N/A", docs[0].Text)
}

func TestKnowledgeBase_Documents_ProjectTitlePlaceholder(t *testing.T) {
	kb := &KnowledgeBase{
		Projects: []Project{
			{Description: "first"},
			{Description: "second"},
		},
	}

	docs, err := kb.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Project 1", docs[0].Title)
	assert.Equal(t, "project-0", docs[0].ID)
	assert.Equal(t, "Project 2", docs[1].Title)
	assert.Equal(t, "project-1", docs[1].ID)
}

func TestKnowledgeBase_Documents_SkipsEmptyProject(t *testing.T) {
	kb := &KnowledgeBase{
		About:    "bio",
		Projects: []Project{{}},
	}

	docs, err := kb.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "about", docs[0].ID)
}

func TestKnowledgeBase_Documents_NilBase(t *testing.T) {
	var kb *KnowledgeBase

	docs, err := kb.Documents()
	assert.Nil(t, docs)
	assert.Equal(t, ErrKnowledgeBaseMissing, err)
}

func TestKnowledgeBase_Documents_EmptyBase(t *testing.T) {
	docs, err := (&KnowledgeBase{}).Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNewDocument_TitleDefaultsToID(t *testing.T) {
	doc := NewDocument("about", "", "text")
	assert.Equal(t, "about", doc.Title)

	doc = NewDocument("project-0", "Auto-Audit", "text")
	assert.Equal(t, "Auto-Audit", doc.Title)
}
