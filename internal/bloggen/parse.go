package bloggen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpavlovic/devfolio/internal/domain"
)

type ArticleSource string

const (
	// SourceJSON means the model obeyed the formatting instruction.
	SourceJSON ArticleSource = "json"
	// SourceFallback means the raw text was reconstructed into fields.
	SourceFallback ArticleSource = "fallback"
)

// Article is the parsed model output, before it becomes a BlogPost.
type Article struct {
	Title   string
	Content string
	Excerpt string
	Source  ArticleSource
}

// fallbackTitleMinLen is the line length past which a non-heading line is
// still considered a usable title.
const fallbackTitleMinLen = 30

// ParseArticle interprets raw model output. It first attempts the instructed
// JSON shape; on malformed output it reconstructs the three fields from the
// raw text instead. Models do not reliably obey formatting instructions, so
// the fallback is a normal branch, not an error path. ParseArticle never
// fails.
func ParseArticle(raw string, skill domain.Skill) Article {
	var parsed struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Excerpt string `json:"excerpt"`
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err == nil &&
		parsed.Title != "" && parsed.Content != "" {
		return Article{
			Title:   parsed.Title,
			Content: parsed.Content,
			Excerpt: parsed.Excerpt,
			Source:  SourceJSON,
		}
	}

	return Article{
		Title:   fallbackTitle(raw, skill.Name),
		Content: raw,
		Excerpt: fmt.Sprintf("Explore the power of %s in modern %s development.", skill.Name, skill.Category),
		Source:  SourceFallback,
	}
}

// fallbackTitle picks the first line that looks like a title: either it
// carries a heading marker or it is long enough to be a sentence-style title.
// Leading heading markers are stripped.
func fallbackTitle(content, skillName string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "#") || len(line) > fallbackTitleMinLen {
			title := strings.TrimSpace(line)
			title = strings.TrimLeft(title, "#")
			return strings.TrimSpace(title)
		}
	}
	return "Understanding " + skillName
}
