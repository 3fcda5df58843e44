package commit

import (
	"bytes"
	"os"

	"github.com/thomas-vilte/gitmoji/internal/errors"
)

// WriteMessageFile puts msg in front of whatever the file already holds, the
// way a prepare-commit-msg hook is expected to. The file is created if needed.
func WriteMessageFile(path string, msg Message) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.ErrWriteMessageFile.WithError(err).WithContext("path", path)
	}

	var buf bytes.Buffer
	buf.WriteString(msg.Title)
	buf.WriteString("\n\n")
	if msg.Description != "" {
		buf.WriteString(msg.Description)
		buf.WriteString("\n")
	}
	buf.Write(existing)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.ErrWriteMessageFile.WithError(err).WithContext("path", path)
	}
	return nil
}
