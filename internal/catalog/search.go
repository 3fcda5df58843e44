package catalog

import (
	"strings"

	"github.com/thomas-vilte/gitmoji/internal/models"
)

// Filter keeps the gitmojis whose code, name or description contains text,
// ignoring case. Catalog order is preserved.
func Filter(gitmojis []models.Gitmoji, text string) []models.Gitmoji {
	needle := strings.ToLower(strings.TrimSpace(text))
	result := make([]models.Gitmoji, 0)
	for _, g := range gitmojis {
		if matches(needle, g.Code, deref(g.Name), deref(g.Description)) {
			result = append(result, g)
		}
	}
	return result
}

func FilterConventional(emojis []models.ConventionalEmoji, text string) []models.ConventionalEmoji {
	needle := strings.ToLower(strings.TrimSpace(text))
	result := make([]models.ConventionalEmoji, 0)
	for _, e := range emojis {
		if matches(needle, e.Type, e.Code, deref(e.Description)) {
			result = append(result, e)
		}
	}
	return result
}

func matches(needle string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
