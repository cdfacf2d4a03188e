package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "tweets.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"data": []}`), 0o600))
	body, err := ReadInput(valid)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": []}`, string(body))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"data": [`), 0o600))
	_, err = ReadInput(broken)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), broken)

	_, err = ReadInput(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}
