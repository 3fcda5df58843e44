package errors

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeParse         ErrorType = "PARSE"
	TypeValidation    ErrorType = "VALIDATION"
	TypeNetwork       ErrorType = "NETWORK"
	TypeStorage       ErrorType = "STORAGE"
	TypeGit           ErrorType = "GIT"
	TypeUpdate        ErrorType = "UPDATE"
	TypeInternal      ErrorType = "INTERNAL"
)

// Process exit codes for the conditions callers script against.
const (
	ExitFailure      = 1
	ExitNoConfig     = 2
	ExitCannotUpdate = 3
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same kind of error. Derived errors built
// with WithError/WithContext still match the sentinel they came from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// IsType reports whether the outermost AppError in the chain has type t.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch {
	case IsType(err, TypeConfiguration):
		return ExitNoConfig
	case IsType(err, TypeUpdate):
		return ExitCannotUpdate
	default:
		return ExitFailure
	}
}

// Configuration errors
var (
	ErrMissingConfig = NewAppError(TypeConfiguration, "No configuration found", nil).
				WithSuggestion("Run `gitmoji init` to fetch a configuration")

	ErrConfigDir = NewAppError(TypeStorage, "Cannot determine the configuration directory", nil)

	ErrWriteConfig = NewAppError(TypeStorage, "Failed to write the configuration file", nil).
			WithSuggestion("Check that you have write permissions on the configuration directory")

	ErrReadLocalConfig = NewAppError(TypeStorage, "Failed to read the local configuration file", nil)

	ErrParseConfig = NewAppError(TypeParse, "Malformed configuration file", nil).
			WithSuggestion("Fix the file by hand or recreate it with `gitmoji init`")

	ErrParseLocalConfig = NewAppError(TypeParse, "Malformed local configuration file", nil).
				WithSuggestion("Check the .gitmojis.toml file of this repository")

	ErrInvalidURL = NewAppError(TypeValidation, "Invalid URL", nil).
			WithSuggestion("Use an absolute URL, like https://gitmoji.dev/api/gitmojis")

	ErrUnknownSpecification = NewAppError(TypeInternal, "Unknown commit specification", nil)

	ErrMissingArgument = NewAppError(TypeValidation, "Missing argument", nil)
)

// Catalog errors
var (
	ErrFetchCatalog = NewAppError(TypeNetwork, "Failed to fetch the emoji catalog", nil).
			WithSuggestion("Check your network connection")

	ErrCatalogStatus = NewAppError(TypeNetwork, "Catalog endpoint returned an unexpected status", nil)

	ErrParseCatalog = NewAppError(TypeParse, "Malformed emoji catalog", nil)

	ErrCannotUpdate = NewAppError(TypeUpdate, "Configuration not updated", nil)

	ErrEmptyCatalog = NewAppError(TypeConfiguration, "The emoji catalog is empty", nil).
			WithSuggestion("Run `gitmoji update` to fetch the catalog")
)

// Git errors
var (
	ErrNoChanges = NewAppError(TypeGit, "No staged changes detected", nil).
			WithSuggestion("Stage your changes first with: git add <files>")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrGetRepoRoot = NewAppError(TypeGit, "Failed to get repository root", nil).
			WithSuggestion("Make sure you are inside a git repository")

	ErrWriteMessageFile = NewAppError(TypeStorage, "Failed to write the commit message file", nil)
)
