package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/mpavlovic/devfolio/internal/api/router"
	apiserver "github.com/mpavlovic/devfolio/internal/api/server"
	"github.com/mpavlovic/devfolio/internal/bloggen"
	"github.com/mpavlovic/devfolio/internal/completion"
	"github.com/mpavlovic/devfolio/internal/storage/pg"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	cfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: cfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	skills := pg.NewSkillStore(pool)
	blogs := pg.NewBlogStore(pool)
	projects := pg.NewProjectStore(pool)
	achievements := pg.NewAchievementStore(pool)
	experience := pg.NewExperienceStore(pool)
	messages := pg.NewMessageStore(pool)
	content := pg.NewContentStore(pool)
	profiles := pg.NewProfileStore(pool)

	settings, err := bloggen.LoadSettings(cfg.BloggenSettingsPath)
	if err != nil {
		slog.Error("Failed to load blog generation settings", "error", err)
		os.Exit(1)
	}

	llm, err := completion.NewOpenAIClient(cfg.OpenAIAPIKey)
	if err != nil {
		slog.Error("Failed to create OpenAI client", "error", err)
		os.Exit(1)
	}

	generator := bloggen.New(skills, blogs, llm, settings)

	s := apiserver.New(cfg).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health", pg.NewHealthChecker(pool))

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Portfolio API is running")
	})

	router.NewGenerateRouter(s.Echo, generator).Bind()
	router.NewBlogRouter(s.Echo, blogs).Bind()
	router.NewPortfolioRouter(s.Echo, skills, projects, achievements, experience, content, profiles).Bind()
	router.NewContactRouter(s.Echo, messages).Bind()

	if cfg.AdminToken != "" {
		router.NewAdminRouter(s.Echo, cfg.AdminToken, router.AdminStores{
			Skills:       skills,
			Blogs:        blogs,
			Projects:     projects,
			Achievements: achievements,
			Experience:   experience,
			Messages:     messages,
			Content:      content,
			Profiles:     profiles,
		}).Bind()
	} else {
		slog.Warn("ADMIN_TOKEN not set, admin routes disabled")
	}

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
