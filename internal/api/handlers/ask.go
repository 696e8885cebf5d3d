package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kknudson15/ai-portfolio-starter/internal/api"
	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
	"github.com/kknudson15/ai-portfolio-starter/internal/service"
)

// AskService answers one chatbot question per call.
type AskService interface {
	Ask(ctx context.Context, question, sessionID string) (*service.AskResult, error)
}

type AskHandler struct {
	svc AskService
}

func NewAskHandler(svc AskService) *AskHandler {
	return &AskHandler{svc: svc}
}

type AskRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"sessionId"`
}

// AskResponse is the chat widget contract: always a well-formed
// answer/sources shape on 200 and 500, answer-only on 429.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

type rateLimitedResponse struct {
	Answer string `json:"answer"`
}

func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SessionID == "" {
		api.Error(w, http.StatusBadRequest, "Missing sessionId")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		api.Error(w, http.StatusBadRequest, "Missing question")
		return
	}

	result, err := h.svc.Ask(r.Context(), req.Question, req.SessionID)
	if err != nil {
		var domainErr *domain.DomainError
		switch {
		case errors.Is(err, domain.ErrSessionLimitReached):
			answer := service.RateLimitAnswer
			if result != nil {
				answer = result.Answer
			}
			api.JSON(w, http.StatusTooManyRequests, rateLimitedResponse{Answer: answer})
		case errors.Is(err, domain.ErrMissingSessionID):
			api.Error(w, http.StatusBadRequest, "Missing sessionId")
		case errors.As(err, &domainErr) && result != nil:
			// Configuration and provider failures carry a fixed
			// degraded answer instead of surfacing the error
			api.JSON(w, http.StatusInternalServerError, AskResponse{Answer: result.Answer, Sources: result.Sources})
		default:
			api.JSON(w, http.StatusInternalServerError, AskResponse{Answer: service.GenericFailureAnswer, Sources: []string{}})
		}
		return
	}

	api.JSON(w, http.StatusOK, AskResponse{Answer: result.Answer, Sources: result.Sources})
}

// MethodNotAllowed matches the response shape the chat widget expects
// for non-POST verbs.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	api.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
