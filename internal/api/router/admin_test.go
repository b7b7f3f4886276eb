package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpavlovic/devfolio/internal/api/router"
	"github.com/mpavlovic/devfolio/internal/apperr"
	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage/inmem"
)

const adminToken = "test-admin-token"

type adminFixture struct {
	e        *echo.Echo
	skills   *inmem.SkillStore
	blogs    *inmem.BlogStore
	profiles *inmem.ProfileStore
}

func newAdminFixture(posts ...domain.BlogPost) *adminFixture {
	skills := inmem.NewSkillStore()
	blogs := inmem.NewBlogStore(posts...)
	profiles := inmem.NewProfileStore()

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	router.NewAdminRouter(e, adminToken, router.AdminStores{
		Skills:   skills,
		Blogs:    blogs,
		Messages: inmem.NewMessageStore(),
		Profiles: profiles,
	}).Bind()

	return &adminFixture{e: e, skills: skills, blogs: blogs, profiles: profiles}
}

func (f *adminFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestAdmin_RequiresToken(t *testing.T) {
	f := newAdminFixture()

	rec := f.do(http.MethodGet, "/admin/blog", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/admin/blog", "", "wrong-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_CreateSkill(t *testing.T) {
	f := newAdminFixture()

	rec := f.do(http.MethodPost, "/admin/skills", `{"name":"Go","category":"Backend"}`, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	skills, err := f.skills.List(t.Context())
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
}

func TestAdmin_CreateSkillValidation(t *testing.T) {
	f := newAdminFixture()

	rec := f.do(http.MethodPost, "/admin/skills", `{"name":"Go"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmin_ListBlogIncludesDrafts(t *testing.T) {
	f := newAdminFixture(
		domain.BlogPost{Title: "Live", Slug: "live", Published: true},
		domain.BlogPost{Title: "Draft", Slug: "draft", Published: false},
	)

	rec := f.do(http.MethodGet, "/admin/blog", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "draft")
	assert.Contains(t, rec.Body.String(), "live")
}

func TestAdmin_CreateBlogRejectsDuplicateSlug(t *testing.T) {
	f := newAdminFixture(domain.BlogPost{Title: "Existing", Slug: "taken", Published: true})

	rec := f.do(http.MethodPost, "/admin/blog", `{"title":"New","slug":"taken","content":"Body"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmin_UpsertProfile(t *testing.T) {
	f := newAdminFixture()
	userID := uuid.NewString()

	body := `{"userId":"` + userID + `","email":"owner@example.com","fullName":"Site Owner"}`
	rec := f.do(http.MethodPut, "/admin/profile", body, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	owner, err := f.profiles.GetOwner(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", owner.Email)
	assert.Equal(t, domain.RoleAdmin, owner.Role)

	body = `{"userId":"` + userID + `","email":"new@example.com"}`
	rec = f.do(http.MethodPut, "/admin/profile", body, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	owner, err = f.profiles.GetOwner(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", owner.Email)
}

func TestAdmin_UpsertProfileValidation(t *testing.T) {
	f := newAdminFixture()

	rec := f.do(http.MethodPut, "/admin/profile", `{"email":"owner@example.com"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/admin/profile", `{"userId":"`+uuid.NewString()+`"}`, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmin_DeleteMissingSkillIs404(t *testing.T) {
	f := newAdminFixture()

	rec := f.do(http.MethodDelete, "/admin/skills/123e4567-e89b-12d3-a456-426614174000", "", adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdmin_InvalidIDIs400(t *testing.T) {
	f := newAdminFixture()

	rec := f.do(http.MethodDelete, "/admin/skills/not-a-uuid", "", adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
