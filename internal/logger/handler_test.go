package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	t.Run("should hide info records by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, false)

		log.Info("reading config file", "path", "/tmp/gitmojis.toml")
		log.Warn("cannot read local config")

		assert.NotContains(t, buf.String(), "reading config file")
		assert.Contains(t, buf.String(), "[WARN]  cannot read local config")
	})

	t.Run("should print info records when verbose", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, true)

		log.Info("reading config file", "path", "/tmp/gitmojis.toml")

		assert.Contains(t, buf.String(), "[INFO]  reading config file path=/tmp/gitmojis.toml")
	})

	t.Run("should prefix grouped attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, true, false).WithGroup("catalog").With("count", 3)

		log.Debug("catalog fetched")

		assert.Contains(t, buf.String(), "[DEBUG] catalog fetched catalog.count=3")
	})
}

func TestContextLogger(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))
	ctx = With(ctx, "command", "update")

	Error(ctx, "refresh failed", errors.New("status 500"))

	assert.Equal(t, "[ERROR] refresh failed command=update error=status 500\n", buf.String())
	assert.NotSame(t, slog.Default(), FromContext(ctx))
}
