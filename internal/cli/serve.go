// Package cli implements the portfoliod commands.
package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kknudson15/ai-portfolio-starter/internal/api/handlers"
	"github.com/kknudson15/ai-portfolio-starter/internal/api/middleware"
	"github.com/kknudson15/ai-portfolio-starter/internal/config"
	"github.com/kknudson15/ai-portfolio-starter/internal/content"
	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
	"github.com/kknudson15/ai-portfolio-starter/internal/openai"
	"github.com/kknudson15/ai-portfolio-starter/internal/server"
	"github.com/kknudson15/ai-portfolio-starter/internal/service"
	"github.com/kknudson15/ai-portfolio-starter/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio API server",
		Long:  "Start the portfolio Q&A API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	applyPortFlag(cmd, cfg)

	if !cfg.HasOpenAI() {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	kb := loadKnowledgeBase(cfg)

	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)
	index := service.NewVectorIndex(openaiClient)
	limiter := service.NewSessionLimiter(cfg.SessionLimit)
	askSvc := service.NewAskService(kb, index, limiter, openaiClient, openaiClient)

	routerCfg := server.RouterConfig{
		AskHandler:     handlers.NewAskHandler(askSvc),
		ContentHandler: handlers.NewContentHandler(content.Projects, content.Apps),
		Throttle:       middleware.NewThrottle(cfg.ThrottleRPS, cfg.ThrottleBurst),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

// applyPortFlag overrides the configured port when the flag was set
// explicitly, even to its default value.
func applyPortFlag(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
}

// loadKnowledgeBase resolves the knowledge base: a configured JSON
// file wins over the embedded content. A broken override returns nil
// so the ask service serves its degraded answer instead of stale or
// half-parsed content.
func loadKnowledgeBase(cfg *config.Config) *domain.KnowledgeBase {
	if cfg.KnowledgeFile == "" {
		return content.KnowledgeBase()
	}

	kb, err := content.LoadKnowledgeBase(cfg.KnowledgeFile)
	if err != nil {
		log.Printf("knowledge base file %q unusable, serving degraded: %v", cfg.KnowledgeFile, err)
		return nil
	}
	log.Printf("knowledge base loaded from %s (%d projects)", cfg.KnowledgeFile, len(kb.Projects))
	return kb
}
