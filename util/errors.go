package util

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrUnsupportedDriver = &Error{Message: "unsupported database driver"}
	ErrUnknownEntity     = &Error{Message: "unknown entity type, expected tweets or users"}
	ErrNoInput           = &Error{Message: "no input file given"}
	ErrInvalidInput      = &Error{Message: "input is not valid JSON"}
)
