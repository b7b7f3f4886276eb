package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mpavlovic/devfolio/internal/apperr"
	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
)

// AdminRouter exposes the content-management surface behind the bearer gate.
type AdminRouter struct {
	e     *echo.Echo
	token string

	skills       storage.SkillStore
	blogs        storage.BlogStore
	projects     storage.ProjectStore
	achievements storage.AchievementStore
	experience   storage.ExperienceStore
	messages     storage.MessageStore
	content      storage.ContentStore
	profiles     storage.ProfileStore
}

type AdminStores struct {
	Skills       storage.SkillStore
	Blogs        storage.BlogStore
	Projects     storage.ProjectStore
	Achievements storage.AchievementStore
	Experience   storage.ExperienceStore
	Messages     storage.MessageStore
	Content      storage.ContentStore
	Profiles     storage.ProfileStore
}

func NewAdminRouter(e *echo.Echo, token string, stores AdminStores) *AdminRouter {
	return &AdminRouter{
		e:            e,
		token:        token,
		skills:       stores.Skills,
		blogs:        stores.Blogs,
		projects:     stores.Projects,
		achievements: stores.Achievements,
		experience:   stores.Experience,
		messages:     stores.Messages,
		content:      stores.Content,
		profiles:     stores.Profiles,
	}
}

func (r *AdminRouter) Bind() {
	g := r.e.Group("/admin", BearerAuth(r.token))

	g.POST("/skills", r.createSkill)
	g.PUT("/skills/:id", r.updateSkill)
	g.DELETE("/skills/:id", r.deleteSkill)

	g.GET("/blog", r.listBlog)
	g.POST("/blog", r.createBlog)
	g.PUT("/blog/:id", r.updateBlog)
	g.DELETE("/blog/:id", r.deleteBlog)

	g.POST("/projects", r.createProject)
	g.PUT("/projects/:id", r.updateProject)
	g.DELETE("/projects/:id", r.deleteProject)

	g.POST("/achievements", r.createAchievement)
	g.PUT("/achievements/:id", r.updateAchievement)
	g.DELETE("/achievements/:id", r.deleteAchievement)

	g.POST("/experience", r.createExperience)
	g.PUT("/experience/:id", r.updateExperience)
	g.DELETE("/experience/:id", r.deleteExperience)

	g.GET("/messages", r.listMessages)
	g.PUT("/messages/:id/read", r.markMessageRead)
	g.DELETE("/messages/:id", r.deleteMessage)

	g.PUT("/content/:section", r.upsertContent)

	g.PUT("/profile", r.upsertProfile)
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid id", err)
	}
	return id, nil
}

func (r *AdminRouter) createSkill(c echo.Context) error {
	var skill domain.Skill
	if err := c.Bind(&skill); err != nil {
		return apperr.NewValidationWrap("invalid skill payload", err)
	}
	if skill.Name == "" || skill.Category == "" {
		return apperr.NewValidation("name and category are required")
	}

	created, err := r.skills.Create(c.Request().Context(), skill)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *AdminRouter) updateSkill(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var skill domain.Skill
	if err := c.Bind(&skill); err != nil {
		return apperr.NewValidationWrap("invalid skill payload", err)
	}
	skill.ID = id

	if err := r.skills.Update(c.Request().Context(), skill); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

func (r *AdminRouter) deleteSkill(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.skills.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) listBlog(c echo.Context) error {
	posts, err := r.blogs.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (r *AdminRouter) createBlog(c echo.Context) error {
	var post domain.BlogPost
	if err := c.Bind(&post); err != nil {
		return apperr.NewValidationWrap("invalid blog payload", err)
	}
	if post.Title == "" || post.Slug == "" || post.Content == "" {
		return apperr.NewValidation("title, slug and content are required")
	}

	exists, err := r.blogs.SlugExists(c.Request().Context(), post.Slug)
	if err != nil {
		return err
	}
	if exists {
		return apperr.NewValidation("slug already in use")
	}

	created, err := r.blogs.Create(c.Request().Context(), post)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *AdminRouter) updateBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var post domain.BlogPost
	if err := c.Bind(&post); err != nil {
		return apperr.NewValidationWrap("invalid blog payload", err)
	}
	post.ID = id

	if err := r.blogs.Update(c.Request().Context(), post); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (r *AdminRouter) deleteBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.blogs.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) createProject(c echo.Context) error {
	var project domain.Project
	if err := c.Bind(&project); err != nil {
		return apperr.NewValidationWrap("invalid project payload", err)
	}
	if project.Title == "" {
		return apperr.NewValidation("title is required")
	}

	created, err := r.projects.Create(c.Request().Context(), project)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *AdminRouter) updateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var project domain.Project
	if err := c.Bind(&project); err != nil {
		return apperr.NewValidationWrap("invalid project payload", err)
	}
	project.ID = id

	if err := r.projects.Update(c.Request().Context(), project); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

func (r *AdminRouter) deleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.projects.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) createAchievement(c echo.Context) error {
	var achievement domain.Achievement
	if err := c.Bind(&achievement); err != nil {
		return apperr.NewValidationWrap("invalid achievement payload", err)
	}
	if achievement.Title == "" {
		return apperr.NewValidation("title is required")
	}

	created, err := r.achievements.Create(c.Request().Context(), achievement)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *AdminRouter) updateAchievement(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var achievement domain.Achievement
	if err := c.Bind(&achievement); err != nil {
		return apperr.NewValidationWrap("invalid achievement payload", err)
	}
	achievement.ID = id

	if err := r.achievements.Update(c.Request().Context(), achievement); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, achievement)
}

func (r *AdminRouter) deleteAchievement(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.achievements.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) createExperience(c echo.Context) error {
	var experience domain.Experience
	if err := c.Bind(&experience); err != nil {
		return apperr.NewValidationWrap("invalid experience payload", err)
	}
	if experience.Title == "" || experience.Company == "" {
		return apperr.NewValidation("title and company are required")
	}

	created, err := r.experience.Create(c.Request().Context(), experience)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (r *AdminRouter) updateExperience(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var experience domain.Experience
	if err := c.Bind(&experience); err != nil {
		return apperr.NewValidationWrap("invalid experience payload", err)
	}
	experience.ID = id

	if err := r.experience.Update(c.Request().Context(), experience); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, experience)
}

func (r *AdminRouter) deleteExperience(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.experience.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) listMessages(c echo.Context) error {
	messages, err := r.messages.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

func (r *AdminRouter) markMessageRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.messages.MarkRead(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) deleteMessage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := r.messages.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *AdminRouter) upsertProfile(c echo.Context) error {
	var profile domain.Profile
	if err := c.Bind(&profile); err != nil {
		return apperr.NewValidationWrap("invalid profile payload", err)
	}
	if profile.UserID == uuid.Nil {
		return apperr.NewValidation("userId is required")
	}
	if profile.Email == "" {
		return apperr.NewValidation("email is required")
	}
	if profile.Role == "" {
		profile.Role = domain.RoleAdmin
	}

	updated, err := r.profiles.Upsert(c.Request().Context(), profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (r *AdminRouter) upsertContent(c echo.Context) error {
	var section domain.ContentSection
	if err := c.Bind(&section); err != nil {
		return apperr.NewValidationWrap("invalid content payload", err)
	}
	section.Section = c.Param("section")

	updated, err := r.content.UpsertSection(c.Request().Context(), section)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
