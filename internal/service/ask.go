package service

import (
	"context"
	"log"
	"strings"

	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
	"github.com/kknudson15/ai-portfolio-starter/internal/telemetry"
)

const (
	// TopK is the number of documents retrieved per question.
	TopK = 3
	// CompletionMaxTokens bounds the answer length.
	CompletionMaxTokens = 250
)

// Fixed user-facing strings. The chat widget renders these verbatim,
// so the service never surfaces raw error text.
const (
	RateLimitAnswer      = "⚠️ You’ve reached the 10-message limit for this session."
	KnowledgeBaseMissing = "❌ Knowledge base is not available."
	GenericFailureAnswer = "❌ Something went wrong."
	offTopicRedirect     = "I can only answer questions about Kyle Knudson and his work."
)

const systemPrompt = "You are an AI assistant that ONLY answers questions about Kyle Knudson. " +
	"Use the CONTEXT below to answer. Be concise (2–4 sentences). " +
	"If unrelated, say: \"" + offTopicRedirect + "\""

// CompletionClient defines the interface for generating grounded answers
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, systemPrompt, contextPrompt, question string, maxTokens int) (string, error)
}

// AskResult is the outcome of one question/answer turn.
type AskResult struct {
	Answer  string
	Sources []string
}

// AskService ties the knowledge base, vector index, session limiter,
// and completion provider together for one question/answer turn.
type AskService struct {
	kb        *domain.KnowledgeBase
	index     *VectorIndex
	limiter   *SessionLimiter
	embedder  EmbeddingClient
	completer CompletionClient
}

// NewAskService creates an AskService over the given collaborators.
func NewAskService(
	kb *domain.KnowledgeBase,
	index *VectorIndex,
	limiter *SessionLimiter,
	embedder EmbeddingClient,
	completer CompletionClient,
) *AskService {
	return &AskService{
		kb:        kb,
		index:     index,
		limiter:   limiter,
		embedder:  embedder,
		completer: completer,
	}
}

// Ask answers one user question. The returned error is one of the
// typed domain errors so the HTTP layer can pick a status code, but
// except for a missing session id the result always carries a
// well-formed user-facing answer: rate-limit, configuration, and
// provider failures are collapsed into their fixed answer strings
// rather than propagated.
//
// The session counter is charged before the provider calls, so a
// question that later fails still consumes one of the session's
// allowed messages.
func (s *AskService) Ask(ctx context.Context, question, sessionID string) (*AskResult, error) {
	if sessionID == "" {
		return nil, domain.ErrMissingSessionID
	}

	if err := s.limiter.CheckAndIncrement(sessionID); err != nil {
		if err == domain.ErrSessionLimitReached {
			return &AskResult{Answer: RateLimitAnswer, Sources: []string{}}, err
		}
		return nil, err
	}

	if s.kb == nil {
		return &AskResult{Answer: KnowledgeBaseMissing, Sources: []string{}}, domain.ErrKnowledgeBaseMissing
	}

	if err := s.index.EnsureBuilt(ctx, s.kb); err != nil {
		log.Printf("ask: index build failed: %v", err)
		telemetry.CaptureError(ctx, err)
		return s.failure(err)
	}

	spanCtx, span := telemetry.StartSpan(ctx, "openai.embed_question", telemetry.SpanAttributes{SessionID: sessionID})
	queryEmbedding, err := s.embedder.GenerateEmbedding(spanCtx, question)
	if err != nil {
		span.SetError(err)
		span.End()
		log.Printf("ask: question embedding failed: %v", err)
		return s.failure(domain.NewDomainErrorWithCause(domain.ErrCodeProvider, "embedding generation failed", err))
	}
	span.End()

	results := s.index.Query(queryEmbedding, TopK)

	contexts := make([]string, 0, len(results))
	sources := make([]string, 0, len(results))
	for _, r := range results {
		contexts = append(contexts, r.Text)
		sources = append(sources, r.Title)
	}
	contextPrompt := "CONTEXT:\n" + strings.Join(contexts, "\n\n")

	spanCtx, span = telemetry.StartSpan(ctx, "openai.completion", telemetry.SpanAttributes{SessionID: sessionID})
	answer, err := s.completer.GenerateCompletion(spanCtx, systemPrompt, contextPrompt, question, CompletionMaxTokens)
	if err != nil {
		span.SetError(err)
		span.End()
		log.Printf("ask: completion failed: %v", err)
		return s.failure(domain.NewDomainErrorWithCause(domain.ErrCodeProvider, "completion generation failed", err))
	}
	span.End()

	return &AskResult{Answer: answer, Sources: sources}, nil
}

func (s *AskService) failure(err error) (*AskResult, error) {
	return &AskResult{Answer: GenericFailureAnswer, Sources: []string{}}, err
}
