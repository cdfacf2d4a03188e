package util

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// StdinPath makes ReadInput read standard input.
const StdinPath = "-"

// ReadInput reads one JSON response body from path.
func ReadInput(path string) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	if path == StdinPath {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.Wrap(ErrInvalidInput, path)
	}
	return body, nil
}
