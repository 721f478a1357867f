package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/elenavoss/advisor/internal/cli"
	"github.com/elenavoss/advisor/internal/db"
	"github.com/elenavoss/advisor/internal/llm"
	"github.com/elenavoss/advisor/internal/questionnaire"
	"github.com/elenavoss/advisor/internal/recommend"
	"github.com/elenavoss/advisor/internal/repository"
	"github.com/elenavoss/advisor/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.advisor/advisor.db
	dbPath := os.Getenv("ADVISOR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".advisor", "advisor.db")
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	tables, err := recommend.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading recommendation tables from %s: %w", dataDir, err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	blueprintRepo := repository.NewSQLiteBlueprintRepo(database)

	// Without an API key the questionnaire still runs; generation returns a
	// placeholder instead of calling out.
	llmCfg := llm.LoadConfig()
	var client llm.Client = &llm.MockClient{}
	if llmCfg.APIKey != "" {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client, err = llm.NewOpenAIClient(llmCfg, observer)
		if err != nil {
			return fmt.Errorf("configuring generation client: %w", err)
		}
	}

	app := &cli.App{
		Advisor:      service.NewAdvisorService(tables, client, blueprintRepo),
		EngineConfig: questionnaire.LoadConfig(),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// resolveDataDir finds the recommendation tables: env var first, then
// ./data for development, then ~/.advisor/data.
func resolveDataDir() (string, error) {
	if dir := os.Getenv("ADVISOR_DATA"); dir != "" {
		return dir, nil
	}
	if stat, err := os.Stat("./data"); err == nil && stat.IsDir() {
		return "./data", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".advisor", "data"), nil
}
