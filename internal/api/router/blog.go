package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mpavlovic/devfolio/internal/storage"
)

type BlogRouter struct {
	e     *echo.Echo
	blogs storage.BlogStore
}

func NewBlogRouter(e *echo.Echo, blogs storage.BlogStore) *BlogRouter {
	return &BlogRouter{e: e, blogs: blogs}
}

func (r *BlogRouter) Bind() {
	r.e.GET("/blog", r.listHandler)
	r.e.GET("/blog/:slug", r.getHandler)
}

func (r *BlogRouter) listHandler(c echo.Context) error {
	posts, err := r.blogs.ListPublished(c.Request().Context(), storage.BlogFilter{
		Tag:   c.QueryParam("tag"),
		Query: c.QueryParam("q"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, posts)
}

func (r *BlogRouter) getHandler(c echo.Context) error {
	post, err := r.blogs.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	// Drafts are only reachable through the admin surface.
	if !post.Published {
		return echo.NewHTTPError(http.StatusNotFound, "blog post not found")
	}

	return c.JSON(http.StatusOK, post)
}
