package schemas

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes carried by ValidationError.
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeUnknownKey    = "unknown_key"
)

// Issue is a single rejected field.
type Issue struct {
	Path    string // JSON Pointer, e.g. /referenced_tweets/0/type
	Code    string
	Message string
}

func (issue Issue) String() string {
	path := issue.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s at %s: %s", issue.Code, path, issue.Message)
}

// ValidationError is returned by every constructor in this package when the
// input does not match the entity's shape. It lists all problems found in
// the record, not only the first one.
type ValidationError struct {
	Entity string
	Issues []Issue
}

func (err *ValidationError) Error() string {
	const maxShown = 3

	b := &strings.Builder{}
	fmt.Fprintf(b, "invalid %s: ", err.Entity)
	for i, issue := range err.Issues {
		if i == maxShown {
			fmt.Fprintf(b, "; ... (total %d)", len(err.Issues))
			break
		}
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(issue.String())
	}
	return b.String()
}

// Has reports whether an issue with the given code was recorded at path.
func (err *ValidationError) Has(path string, code string) bool {
	for _, issue := range err.Issues {
		if issue.Path == path && issue.Code == code {
			return true
		}
	}
	return false
}

func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
