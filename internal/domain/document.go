package domain

// Document is a single retrievable unit of knowledge base content.
type Document struct {
	ID    string
	Title string
	Text  string
}

// IndexedDocument is a Document together with its embedding vector.
// Produced once per document per process lifetime; owned exclusively
// by the vector index after a build completes.
type IndexedDocument struct {
	Document
	Embedding []float32
}

// ScoredDocument is a query-time result: an indexed document paired
// with its cosine similarity against the query embedding. Never
// persisted; recomputed on every query.
type ScoredDocument struct {
	IndexedDocument
	Score float32
}

// NewDocument creates a Document, defaulting the title to the id when
// no human-readable label is available.
func NewDocument(id, title, text string) Document {
	if title == "" {
		title = id
	}
	return Document{
		ID:    id,
		Title: title,
		Text:  text,
	}
}
