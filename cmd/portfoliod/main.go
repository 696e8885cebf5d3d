package main

import (
	"fmt"
	"os"

	"github.com/kknudson15/ai-portfolio-starter/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfoliod",
		Short: "Portfolio Q&A daemon and CLI",
		Long:  "Portfolio daemon for running the Q&A API server and asking it questions",
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.AskCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
