package pg

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"

	"github.com/mpavlovic/devfolio/internal/apperr"
	"github.com/mpavlovic/devfolio/internal/domain"
	"github.com/mpavlovic/devfolio/internal/storage"
	pkgtesting "github.com/mpavlovic/devfolio/pkg/testing"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "devfolio_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	os.Exit(m.Run())
}

func truncate(t *testing.T, table string) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE "+table+" CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate %s: %v", table, err)
	}
}

func TestSkillStore_CreateAndList(t *testing.T) {
	truncate(t, "skills")
	defer truncate(t, "skills")

	store := NewSkillStore(testPool)

	created, err := store.Create(testCtx, domain.Skill{
		Name:        "Go",
		Category:    "backend",
		Proficiency: 90,
	})
	if err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}
	if created.ID.String() == "" {
		t.Fatal("expected generated skill id")
	}

	skills, err := store.List(testCtx)
	if err != nil {
		t.Fatalf("failed to list skills: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	if skills[0].Name != "Go" || skills[0].Category != "backend" {
		t.Errorf("unexpected skill: %+v", skills[0])
	}
}

func TestSkillStore_ListForTopics_RespectsLimit(t *testing.T) {
	truncate(t, "skills")
	defer truncate(t, "skills")

	store := NewSkillStore(testPool)
	for _, name := range []string{"Go", "React", "PostgreSQL"} {
		if _, err := store.Create(testCtx, domain.Skill{Name: name, Category: "general"}); err != nil {
			t.Fatalf("failed to create skill: %v", err)
		}
	}

	skills, err := store.ListForTopics(testCtx, 2)
	if err != nil {
		t.Fatalf("failed to list topic skills: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
}

func TestSkillStore_UpdateMissing(t *testing.T) {
	truncate(t, "skills")

	store := NewSkillStore(testPool)

	err := store.Update(testCtx, domain.Skill{Name: "Go", Category: "backend"})
	var notFound *apperr.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestBlogStore_CreateAndGetBySlug(t *testing.T) {
	truncate(t, "blog_posts")
	defer truncate(t, "blog_posts")

	store := NewBlogStore(testPool)

	created, err := store.Create(testCtx, domain.BlogPost{
		Title:       "Understanding Go",
		Slug:        "understanding-go",
		Content:     "Go is a statically typed language.",
		Excerpt:     "Explore the power of Go.",
		Published:   true,
		AIGenerated: true,
		Tags:        []string{"Go", "backend", "development", "tutorial"},
	})
	if err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	got, err := store.GetBySlug(testCtx, "understanding-go")
	if err != nil {
		t.Fatalf("failed to get post: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, got.ID)
	}
	if len(got.Tags) != 4 || got.Tags[0] != "Go" {
		t.Errorf("unexpected tags: %v", got.Tags)
	}
	if !got.Published || !got.AIGenerated {
		t.Error("expected published, ai-generated post")
	}
}

func TestBlogStore_SlugExists(t *testing.T) {
	truncate(t, "blog_posts")
	defer truncate(t, "blog_posts")

	store := NewBlogStore(testPool)

	exists, err := store.SlugExists(testCtx, "understanding-go")
	if err != nil {
		t.Fatalf("failed to check slug: %v", err)
	}
	if exists {
		t.Error("expected slug to be free")
	}

	if _, err := store.Create(testCtx, domain.BlogPost{
		Title: "Understanding Go", Slug: "understanding-go", Content: "x", Published: true,
	}); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	exists, err = store.SlugExists(testCtx, "understanding-go")
	if err != nil {
		t.Fatalf("failed to check slug: %v", err)
	}
	if !exists {
		t.Error("expected slug to be taken")
	}
}

func TestBlogStore_ListPublished_Filters(t *testing.T) {
	truncate(t, "blog_posts")
	defer truncate(t, "blog_posts")

	store := NewBlogStore(testPool)

	seed := []domain.BlogPost{
		{Title: "Understanding Go", Slug: "understanding-go", Content: "Concurrency with goroutines.", Published: true, Tags: []string{"Go"}},
		{Title: "React Hooks", Slug: "react-hooks", Content: "State management patterns.", Published: true, Tags: []string{"React"}},
		{Title: "Draft Post", Slug: "draft-post", Content: "Not ready yet.", Published: false, Tags: []string{"Go"}},
	}
	for _, post := range seed {
		if _, err := store.Create(testCtx, post); err != nil {
			t.Fatalf("failed to create post: %v", err)
		}
	}

	all, err := store.ListPublished(testCtx, storage.BlogFilter{})
	if err != nil {
		t.Fatalf("failed to list published: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(all))
	}

	tagged, err := store.ListPublished(testCtx, storage.BlogFilter{Tag: "Go"})
	if err != nil {
		t.Fatalf("failed to list by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Slug != "understanding-go" {
		t.Fatalf("unexpected tag filter result: %+v", tagged)
	}

	matched, err := store.ListPublished(testCtx, storage.BlogFilter{Query: "goroutines"})
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}
	if len(matched) != 1 || matched[0].Slug != "understanding-go" {
		t.Fatalf("unexpected search result: %+v", matched)
	}
}

func TestProfileStore_UpsertAndGet(t *testing.T) {
	truncate(t, "profiles")
	defer truncate(t, "profiles")

	store := NewProfileStore(testPool)
	userID := uuid.New()

	first, err := store.Upsert(testCtx, domain.Profile{
		UserID:   userID,
		Email:    "admin@example.com",
		FullName: "Site Owner",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("failed to upsert profile: %v", err)
	}

	second, err := store.Upsert(testCtx, domain.Profile{
		UserID: userID,
		Email:  "owner@example.com",
		Role:   domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("failed to upsert profile twice: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected upsert to keep the row, got %s then %s", first.ID, second.ID)
	}

	got, err := store.GetByUserID(testCtx, userID)
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got.Email != "owner@example.com" {
		t.Errorf("expected updated email, got %q", got.Email)
	}
	if !got.IsAdmin() {
		t.Error("expected admin profile")
	}

	owner, err := store.GetOwner(testCtx)
	if err != nil {
		t.Fatalf("failed to get owner profile: %v", err)
	}
	if owner.UserID != userID {
		t.Errorf("expected owner %s, got %s", userID, owner.UserID)
	}

	_, err = store.GetByUserID(testCtx, uuid.New())
	var notFound *apperr.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestContentStore_Upsert(t *testing.T) {
	truncate(t, "portfolio_content")
	defer truncate(t, "portfolio_content")

	store := NewContentStore(testPool)

	first, err := store.UpsertSection(testCtx, domain.ContentSection{
		Section: "about",
		Title:   "About Me",
		Content: map[string]any{"bio": "Software engineer."},
	})
	if err != nil {
		t.Fatalf("failed to upsert section: %v", err)
	}

	second, err := store.UpsertSection(testCtx, domain.ContentSection{
		Section: "about",
		Title:   "About",
		Content: map[string]any{"bio": "Engineer and writer."},
	})
	if err != nil {
		t.Fatalf("failed to upsert section twice: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected upsert to keep the row, got %s then %s", first.ID, second.ID)
	}

	got, err := store.GetSection(testCtx, "about")
	if err != nil {
		t.Fatalf("failed to get section: %v", err)
	}
	if got.Title != "About" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
}
