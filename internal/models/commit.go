package models

// CommitOptions maps to the git commit flags the tool drives.
type CommitOptions struct {
	All         bool
	Amend       bool
	Signed      bool
	Title       string
	Description string
}
