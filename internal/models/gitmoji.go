package models

import "fmt"

type (
	// Gitmoji is a catalog entry of the default specification.
	Gitmoji struct {
		Emoji       string  `toml:"emoji" json:"emoji"`
		Code        string  `toml:"code" json:"code"`
		Name        *string `toml:"name,omitempty" json:"name"`
		Description *string `toml:"description,omitempty" json:"description"`
	}

	// ConventionalEmoji pairs an emoji with a Conventional Commits type keyword.
	ConventionalEmoji struct {
		Emoji       string  `toml:"emoji" json:"emoji"`
		Code        string  `toml:"code" json:"code"`
		Type        string  `toml:"type" json:"type"`
		Description *string `toml:"description,omitempty" json:"description"`
	}
)

func NewGitmoji(emoji, code string, name, description *string) Gitmoji {
	return Gitmoji{
		Emoji:       emoji,
		Code:        code,
		Name:        name,
		Description: description,
	}
}

func NewConventionalEmoji(emoji, code, commitType string, description *string) ConventionalEmoji {
	return ConventionalEmoji{
		Emoji:       emoji,
		Code:        code,
		Type:        commitType,
		Description: description,
	}
}

func (g Gitmoji) String() string {
	return fmt.Sprintf("%s %s %s - %s", g.Emoji, g.Code, deref(g.Name), deref(g.Description))
}

func (c ConventionalEmoji) String() string {
	return fmt.Sprintf("%s %s - %s", c.Emoji, c.Type, deref(c.Description))
}

// Ptr returns a pointer to a copy of v. Handy for the optional catalog fields.
func Ptr[T any](v T) *T {
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
