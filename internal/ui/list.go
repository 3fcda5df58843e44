package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/thomas-vilte/gitmoji/internal/models"
)

// PrintGitmojis writes one line per gitmoji: emoji, code and description.
func PrintGitmojis(w io.Writer, gitmojis []models.Gitmoji) {
	for _, g := range gitmojis {
		description := ""
		if g.Description != nil {
			description = *g.Description
		}
		_, _ = fmt.Fprintf(w, "%s %s\t%s\n", g.Emoji, Code.Sprint(g.Code), description)
	}
}

// PrintConventionalEmojis writes the conventional catalog with the type
// column padded to the longest type.
func PrintConventionalEmojis(w io.Writer, emojis []models.ConventionalEmoji) {
	width := 0
	for _, e := range emojis {
		width = max(width, len(e.Type))
	}
	for _, e := range emojis {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		padded := e.Type + strings.Repeat(" ", width-len(e.Type)+2)
		_, _ = fmt.Fprintf(w, "%s %s%s\n", e.Emoji, Code.Sprint(padded), description)
	}
}

// PrintCatalog writes the catalog of the active specification.
func PrintCatalog(w io.Writer, cfg models.GlobalConfig) {
	switch cfg.Specification {
	case models.SpecificationConventionalEmojiCommits:
		PrintConventionalEmojis(w, cfg.ConventionalCommitEmojis)
	default:
		PrintGitmojis(w, cfg.Gitmojis)
	}
}
