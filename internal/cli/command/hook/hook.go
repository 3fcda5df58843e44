package hook

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/urfave/cli/v3"
)

type HookApplier interface {
	ApplyHook(ctx context.Context, dest, source string) error
}

type HookCommandFactory struct {
	svc HookApplier
}

func NewHookCommandFactory(svc HookApplier) *HookCommandFactory {
	return &HookCommandFactory{svc: svc}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: t.GetMessage("hook_usage", 0, nil),
		Commands: []*cli.Command{
			f.newApplyCommand(t),
		},
	}
}

// newApplyCommand is run by the prepare-commit-msg hook with the message
// file path and the optional commit source.
func (f *HookCommandFactory) newApplyCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     t.GetMessage("hook_apply_usage", 0, nil),
		ArgsUsage: t.GetMessage("hook_apply_args", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dest := cmd.Args().Get(0)
			if dest == "" {
				return errors.ErrMissingArgument.
					WithContext("argument", "dest").
					WithSuggestion("gitmoji hook apply " + t.GetMessage("hook_apply_args", 0, nil))
			}
			return f.svc.ApplyHook(ctx, dest, cmd.Args().Get(1))
		},
	}
}
