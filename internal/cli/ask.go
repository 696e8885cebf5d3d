package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	envAPIURL     = "PORTFOLIO_API_URL"
	defaultAPIURL = "http://localhost:8080"
)

type askRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"sessionId"`
}

type askResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
	Message string   `json:"message"`
}

// AskCmd returns the ask command, a small client for a running server.
func AskCmd() *cobra.Command {
	var (
		serverURL string
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the portfolio chatbot a question",
		Long:  "Sends a question to a running portfolio server and prints the answer with its sources.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(args[0], serverURL, sessionID)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Server base URL (default $PORTFOLIO_API_URL or "+defaultAPIURL+")")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session id to reuse across questions (default: a fresh id)")

	return cmd
}

func runAsk(question, serverURL, sessionID string) error {
	if serverURL == "" {
		serverURL = os.Getenv(envAPIURL)
	}
	if serverURL == "" {
		serverURL = defaultAPIURL
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	payload, err := json.Marshal(askRequest{Question: question, SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpClient := &http.Client{Timeout: 60 * time.Second}
	resp, err := httpClient.Post(serverURL+"/api/ask", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var parsed askResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, string(body))
	}

	if parsed.Message != "" {
		return fmt.Errorf("server rejected request (%d): %s", resp.StatusCode, parsed.Message)
	}

	fmt.Println(parsed.Answer)
	if len(parsed.Sources) > 0 {
		fmt.Println()
		fmt.Println("Sources:")
		for _, source := range parsed.Sources {
			fmt.Printf("  - %s\n", source)
		}
	}

	return nil
}
