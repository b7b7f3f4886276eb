package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpavlovic/devfolio/internal/bloggen"
	"github.com/mpavlovic/devfolio/internal/completion"
	"github.com/mpavlovic/devfolio/internal/storage/pg"
	"github.com/mpavlovic/devfolio/pkg/config/env"
)

var (
	manual       bool
	settingsPath string
	envFile      string
	apiKey       string
)

var rootCmd = &cobra.Command{
	Use:   "bloggen",
	Short: "Generate a blog post from a random portfolio skill",
	Long:  `Picks a random skill from the portfolio database, asks an LLM to write an article about it and saves the result as a published blog post.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := env.LoadDotEnv(os.Getenv("APP_ENV"), envFile); err != nil {
			slog.Warn("No env file loaded", "path", envFile, "error", err)
		}

		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}

		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}

		if settingsPath == "" {
			settingsPath = os.Getenv("BLOGGEN_SETTINGS_PATH")
		}
		settings, err := bloggen.LoadSettings(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		ctx := context.Background()

		pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: dbURL})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		llm, err := completion.NewOpenAIClient(apiKey)
		if err != nil {
			return err
		}

		generator := bloggen.New(pg.NewSkillStore(pool), pg.NewBlogStore(pool), llm, settings)

		outcome, err := generator.Run(ctx, bloggen.Trigger{Manual: manual})
		if err != nil {
			return err
		}

		if outcome.Blog == nil {
			slog.Info(outcome.Message)
			return nil
		}

		slog.Info(outcome.Message,
			"id", outcome.Blog.ID,
			"title", outcome.Blog.Title,
			"slug", outcome.Blog.Slug,
			"skill", outcome.Blog.Skill,
		)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&manual, "manual", false, "Mark the run as manually triggered")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to a YAML settings file")
	rootCmd.Flags().StringVar(&envFile, "env", "cmd/bloggen/.env", "Path to a .env file")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "OpenAI API key")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
