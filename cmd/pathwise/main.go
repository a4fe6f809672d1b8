package main

import (
	"fmt"
	"os"

	"github.com/jordanmetzner/pathwise/internal/cli"
	"github.com/jordanmetzner/pathwise/internal/intelligence"
	"github.com/jordanmetzner/pathwise/internal/llm"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}

	// Detect an interactive terminal for the input form and spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the LLM drafting strategy only when enabled; the deterministic
	// generator needs no collaborators.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)
		app.Draft = intelligence.NewPlanDraftService(client, observer)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
