package commit

import (
	"context"
	stdErrors "errors"

	"github.com/thomas-vilte/gitmoji/internal/cli/completion"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type Committer interface {
	Commit(ctx context.Context, all, amend bool) error
}

type CommitCommandFactory struct {
	svc Committer
}

func NewCommitCommandFactory(svc Committer) *CommitCommandFactory {
	return &CommitCommandFactory{svc: svc}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commit_usage", 0, nil),
		ShellComplete: completion.FlagComplete,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   t.GetMessage("commit_all_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "amend",
				Usage: t.GetMessage("commit_amend_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			err := f.svc.Commit(ctx, cmd.Bool("all"), cmd.Bool("amend"))
			if stdErrors.Is(err, errors.ErrNoChanges) {
				ui.PrintWarning(cmd.Root().ErrWriter, t.GetMessage("no_changes", 0, nil))
				return nil
			}
			return err
		},
	}
}
