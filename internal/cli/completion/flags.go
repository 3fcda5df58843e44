package completion

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// FlagComplete lists the flags of cmd for shell completion. Used on leaf
// commands where the default completer only offers subcommands.
func FlagComplete(_ context.Context, cmd *cli.Command) {
	w := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(w, "-"+name)
			} else {
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}
