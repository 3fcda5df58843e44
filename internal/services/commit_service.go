package services

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/commit"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ports"
)

type CommitService struct {
	store        ports.ConfigStore
	git          ports.GitService
	prompter     ports.Prompter
	writeMessage ports.MessageFileWriter
}

type CommitOption func(*CommitService)

// WithMessageFileWriter replaces the writer used by ApplyHook.
func WithMessageFileWriter(w ports.MessageFileWriter) CommitOption {
	return func(s *CommitService) {
		s.writeMessage = w
	}
}

func NewCommitService(store ports.ConfigStore, git ports.GitService, prompter ports.Prompter, opts ...CommitOption) *CommitService {
	s := &CommitService{
		store:        store,
		git:          git,
		prompter:     prompter,
		writeMessage: commit.WriteMessageFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Commit asks for a commit message and runs git commit. Staged changes are
// required unless the previous commit is being amended.
func (s *CommitService) Commit(ctx context.Context, all, amend bool) error {
	cfg, err := s.store.Load(ctx, s.git)
	if err != nil {
		return err
	}

	if !amend && !s.git.HasStagedChanges(ctx) {
		return errors.ErrNoChanges
	}

	msg, err := s.askMessage(ctx, cfg)
	if err != nil {
		return err
	}

	opts := models.CommitOptions{
		All:         all || cfg.AutoAdd,
		Amend:       amend,
		Signed:      cfg.Signed,
		Title:       msg.Title,
		Description: msg.Description,
	}
	logger.Info(ctx, "creating commit",
		"all", opts.All,
		"amend", opts.Amend,
		"signed", opts.Signed)

	return s.git.Commit(ctx, opts)
}

// ApplyHook asks for a commit message and prepends it to the message file
// git passes to the prepare-commit-msg hook.
func (s *CommitService) ApplyHook(ctx context.Context, dest, source string) error {
	cfg, err := s.store.Load(ctx, s.git)
	if err != nil {
		return err
	}

	msg, err := s.askMessage(ctx, cfg)
	if err != nil {
		return err
	}

	logger.Info(ctx, "writing commit message", "path", dest, "source", source)
	return s.writeMessage(dest, msg)
}

func (s *CommitService) askMessage(ctx context.Context, cfg models.GlobalConfig) (commit.Message, error) {
	if cfg.ActiveCatalogSize() == 0 {
		return commit.Message{}, errors.ErrEmptyCatalog
	}

	sel, err := s.prompter.AskSelection(ctx, cfg)
	if err != nil {
		return commit.Message{}, err
	}

	return commit.Format(cfg, sel)
}
