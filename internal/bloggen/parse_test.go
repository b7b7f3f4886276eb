package bloggen

import (
	"strings"
	"testing"

	"github.com/mpavlovic/devfolio/internal/domain"
)

var parseSkill = domain.Skill{Name: "React", Category: "Frontend"}

func TestParseArticle_ValidJSON(t *testing.T) {
	raw := `{"title":"React Performance Tips","content":"Full article body.","excerpt":"Short tips."}`

	article := ParseArticle(raw, parseSkill)

	if article.Source != SourceJSON {
		t.Fatalf("expected json source, got %q", article.Source)
	}
	if article.Title != "React Performance Tips" {
		t.Errorf("title = %q", article.Title)
	}
	if article.Content != "Full article body." {
		t.Errorf("content = %q", article.Content)
	}
	if article.Excerpt != "Short tips." {
		t.Errorf("excerpt = %q", article.Excerpt)
	}
}

func TestParseArticle_JSONWithSurroundingWhitespace(t *testing.T) {
	raw := "\n  {\"title\":\"T\",\"content\":\"C\",\"excerpt\":\"E\"}  \n"

	article := ParseArticle(raw, parseSkill)

	if article.Source != SourceJSON {
		t.Fatalf("expected json source, got %q", article.Source)
	}
}

func TestParseArticle_PlainProseFallsBack(t *testing.T) {
	raw := "# Why React Still Matters\n\nReact remains the dominant library for building interfaces."

	article := ParseArticle(raw, parseSkill)

	if article.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", article.Source)
	}
	if article.Title != "Why React Still Matters" {
		t.Errorf("expected heading markers stripped, got %q", article.Title)
	}
	if article.Content != raw {
		t.Error("expected raw text preserved as content")
	}
	if !strings.Contains(article.Excerpt, "React") || !strings.Contains(article.Excerpt, "Frontend") {
		t.Errorf("expected templated excerpt to mention skill and category, got %q", article.Excerpt)
	}
}

func TestParseArticle_LongLineUsedAsTitle(t *testing.T) {
	longLine := "This opening sentence easily exceeds thirty characters in length"
	raw := "short\n" + longLine + "\nmore text"

	article := ParseArticle(raw, parseSkill)

	if article.Title != longLine {
		t.Errorf("expected long line as title, got %q", article.Title)
	}
}

func TestParseArticle_NoUsableLineDefaultsTitle(t *testing.T) {
	raw := "short\nlines\nonly"

	article := ParseArticle(raw, parseSkill)

	if article.Title != "Understanding React" {
		t.Errorf("expected generic title, got %q", article.Title)
	}
}

func TestParseArticle_JSONMissingFieldsFallsBack(t *testing.T) {
	raw := `{"excerpt":"only an excerpt"}`

	article := ParseArticle(raw, parseSkill)

	if article.Source != SourceFallback {
		t.Fatalf("expected fallback for JSON without title/content, got %q", article.Source)
	}
	if article.Content != raw {
		t.Error("expected raw text preserved as content")
	}
}
