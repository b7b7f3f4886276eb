package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mpavlovic/devfolio/internal/storage"
)

// PortfolioRouter serves the public read-only portfolio surfaces.
type PortfolioRouter struct {
	e            *echo.Echo
	skills       storage.SkillStore
	projects     storage.ProjectStore
	achievements storage.AchievementStore
	experience   storage.ExperienceStore
	content      storage.ContentStore
	profiles     storage.ProfileStore
}

func NewPortfolioRouter(
	e *echo.Echo,
	skills storage.SkillStore,
	projects storage.ProjectStore,
	achievements storage.AchievementStore,
	experience storage.ExperienceStore,
	content storage.ContentStore,
	profiles storage.ProfileStore,
) *PortfolioRouter {
	return &PortfolioRouter{
		e:            e,
		skills:       skills,
		projects:     projects,
		achievements: achievements,
		experience:   experience,
		content:      content,
		profiles:     profiles,
	}
}

func (r *PortfolioRouter) Bind() {
	r.e.GET("/skills", r.skillsHandler)
	r.e.GET("/projects", r.projectsHandler)
	r.e.GET("/achievements", r.achievementsHandler)
	r.e.GET("/experience", r.experienceHandler)
	r.e.GET("/content/:section", r.contentHandler)
	r.e.GET("/profile", r.profileHandler)
}

func (r *PortfolioRouter) skillsHandler(c echo.Context) error {
	skills, err := r.skills.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

func (r *PortfolioRouter) projectsHandler(c echo.Context) error {
	projects, err := r.projects.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (r *PortfolioRouter) achievementsHandler(c echo.Context) error {
	achievements, err := r.achievements.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, achievements)
}

func (r *PortfolioRouter) experienceHandler(c echo.Context) error {
	entries, err := r.experience.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (r *PortfolioRouter) contentHandler(c echo.Context) error {
	section, err := r.content.GetSection(c.Request().Context(), c.Param("section"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

func (r *PortfolioRouter) profileHandler(c echo.Context) error {
	profile, err := r.profiles.GetOwner(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
