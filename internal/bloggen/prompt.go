package bloggen

import (
	"fmt"

	"github.com/mpavlovic/devfolio/internal/domain"
)

const systemPrompt = "You are a technical blog writer who creates high-quality, informative content " +
	"about web development and programming topics. Always respond with valid JSON."

const promptTemplate = `Write a comprehensive, engaging blog post about %s in the context of %s development.

The blog should:
- Be 800-1200 words long
- Include practical examples and use cases
- Discuss current trends and best practices
- Be written in a professional but accessible tone
- Include actionable insights for developers
- Have a clear structure with introduction, main content, and conclusion

Title the blog post appropriately and make it SEO-friendly.

Format the response as JSON with the following structure:
{
  "title": "Blog post title",
  "content": "Full blog post content in markdown format",
  "excerpt": "Brief 150-character excerpt for preview"
}`

// BuildPrompt renders the article-generation instruction for a skill.
func BuildPrompt(skill domain.Skill) string {
	return fmt.Sprintf(promptTemplate, skill.Name, skill.Category)
}
