package handler

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/ui"
)

// ReportError prints err for the user and returns the process exit code.
func ReportError(ctx context.Context, w io.Writer, err error, t *i18n.Translations) int {
	if err == nil {
		return 0
	}

	switch {
	case stdErrors.Is(err, huh.ErrUserAborted):
		return errors.ExitFailure
	case stdErrors.Is(err, errors.ErrMissingConfig):
		ui.PrintWarning(w, t.GetMessage("no_config", 0, nil))
	case errors.IsType(err, errors.TypeUpdate):
		logger.Debug(ctx, "catalog update failed", "error", err)
		ui.PrintWarning(w, t.GetMessage("cannot_update", 0, map[string]interface{}{
			"URL": updateURL(err),
		}))
	default:
		ui.HandleAppError(w, err, t)
	}
	return errors.ExitCode(err)
}

func updateURL(err error) string {
	var appErr *errors.AppError
	if stdErrors.As(err, &appErr) {
		if url, ok := appErr.Context["url"]; ok {
			return fmt.Sprint(url)
		}
	}
	return ""
}
