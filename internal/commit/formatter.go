package commit

import (
	"fmt"

	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

type (
	// Selection holds what the user picked and typed. Type is only used by
	// the conventional emoji commits grammar; an empty Scope means no scope.
	Selection struct {
		Emoji       string
		Code        string
		Type        string
		Scope       string
		Title       string
		Description string
	}

	// Message is the final commit title and optional body.
	Message struct {
		Title       string
		Description string
	}
)

func SelectionFromGitmoji(g models.Gitmoji, scope, title, description string) Selection {
	return Selection{
		Emoji:       g.Emoji,
		Code:        g.Code,
		Scope:       scope,
		Title:       title,
		Description: description,
	}
}

func SelectionFromConventional(e models.ConventionalEmoji, scope, title, description string) Selection {
	return Selection{
		Emoji:       e.Emoji,
		Code:        e.Code,
		Type:        e.Type,
		Scope:       scope,
		Title:       title,
		Description: description,
	}
}

// EmojiToken renders the selected emoji the way the config asks for.
func EmojiToken(format models.EmojiFormat, sel Selection) (string, error) {
	switch format {
	case models.FormatUseCode:
		return sel.Code, nil
	case models.FormatUseEmoji:
		return sel.Emoji, nil
	default:
		return "", fmt.Errorf("unknown emoji format %q", string(format))
	}
}

// FormatTitle builds the commit title. The default grammar puts no separator
// between scope and title: a scope like "core/" carries its own.
func FormatTitle(spec models.CommitSpecification, token string, sel Selection) (string, error) {
	switch spec {
	case models.SpecificationDefault:
		if sel.Scope != "" {
			return fmt.Sprintf("%s %s%s", token, sel.Scope, sel.Title), nil
		}
		return fmt.Sprintf("%s %s", token, sel.Title), nil
	case models.SpecificationConventionalEmojiCommits:
		if sel.Scope != "" {
			return fmt.Sprintf("%s%s(%s): %s", token, sel.Type, sel.Scope, sel.Title), nil
		}
		return fmt.Sprintf("%s%s: %s", token, sel.Type, sel.Title), nil
	default:
		return "", errors.ErrUnknownSpecification.WithContext("specification", string(spec))
	}
}

// Format turns a selection into the commit message for cfg.
func Format(cfg models.GlobalConfig, sel Selection) (Message, error) {
	token, err := EmojiToken(cfg.Format, sel)
	if err != nil {
		return Message{}, err
	}

	title, err := FormatTitle(cfg.Specification, token, sel)
	if err != nil {
		return Message{}, err
	}

	return Message{Title: title, Description: sel.Description}, nil
}
