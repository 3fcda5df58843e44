package models

import "fmt"

// CommitSpecification is the commit title grammar in use.
type CommitSpecification string

const (
	SpecificationDefault                  CommitSpecification = "Default"
	SpecificationConventionalEmojiCommits CommitSpecification = "ConventionalEmojiCommits"
)

// EmojiFormat decides whether the short code or the glyph lands in the title.
type EmojiFormat string

const (
	FormatUseCode  EmojiFormat = "UseCode"
	FormatUseEmoji EmojiFormat = "UseEmoji"
)

var (
	Specifications = []CommitSpecification{SpecificationDefault, SpecificationConventionalEmojiCommits}
	EmojiFormats   = []EmojiFormat{FormatUseCode, FormatUseEmoji}
)

func (s CommitSpecification) Validate() error {
	switch s {
	case SpecificationDefault, SpecificationConventionalEmojiCommits:
		return nil
	default:
		return fmt.Errorf("unknown commit specification %q", string(s))
	}
}

func (s CommitSpecification) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (s *CommitSpecification) UnmarshalText(text []byte) error {
	spec := CommitSpecification(text)
	if err := spec.Validate(); err != nil {
		return err
	}
	*s = spec
	return nil
}

// Label is the human name shown in prompts.
func (s CommitSpecification) Label() string {
	switch s {
	case SpecificationConventionalEmojiCommits:
		return "Conventional Emoji Commits"
	default:
		return "default"
	}
}

func (f EmojiFormat) Validate() error {
	switch f {
	case FormatUseCode, FormatUseEmoji:
		return nil
	default:
		return fmt.Errorf("unknown emoji format %q", string(f))
	}
}

func (f EmojiFormat) MarshalText() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return []byte(f), nil
}

func (f *EmojiFormat) UnmarshalText(text []byte) error {
	format := EmojiFormat(text)
	if err := format.Validate(); err != nil {
		return err
	}
	*f = format
	return nil
}

func (f EmojiFormat) Label() string {
	switch f {
	case FormatUseEmoji:
		return "😄"
	default:
		return ":smile:"
	}
}
