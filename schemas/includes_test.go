package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludesAbsentVersusEmpty(t *testing.T) {
	includes, err := NewIncludes(map[string]any{
		"media": []any{},
		"users": []any{map[string]any{"id": "1", "name": "n", "username": "u"}},
	})
	require.NoError(t, err)

	assert.Nil(t, includes.Tweets)
	assert.NotNil(t, includes.Media)
	assert.Empty(t, includes.Media)

	for _, dict := range []Dict{includes.ToDict(), includes.ToFullDict()} {
		assert.Nil(t, dict["tweets"])
		assert.Nil(t, dict["places"])
		assert.Nil(t, dict["polls"])
		assert.Equal(t, []Dict{}, dict["media"])
		require.IsType(t, []Dict{}, dict["users"])
		assert.Len(t, dict["users"], 1)
	}
}

func TestIncludesNullListIsAbsent(t *testing.T) {
	includes, err := NewIncludes(map[string]any{"media": nil})
	require.NoError(t, err)
	assert.Nil(t, includes.ToDict()["media"])
}

func TestIncludesFullDictUsesFullEntities(t *testing.T) {
	includes, err := NewIncludes(map[string]any{
		"tweets": []any{map[string]any{"id": "5", "withheld": map[string]any{"copyright": true}}},
	})
	require.NoError(t, err)

	short := includes.ToDict()["tweets"].([]Dict)
	full := includes.ToFullDict()["tweets"].([]Dict)
	assert.NotContains(t, short[0], "withheld")
	assert.Equal(t, `{"copyright":true}`, full[0]["withheld"])
}

func TestIncludesRejectsNestedIssues(t *testing.T) {
	_, err := NewIncludes(map[string]any{
		"tweets": []any{
			map[string]any{"id": "1"},
			map[string]any{"text": "no id"},
		},
		"places": "none",
	})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Includes", verr.Entity)
	assert.True(t, verr.Has("/tweets/1/id", CodeRequired))
	assert.True(t, verr.Has("/places", CodeInvalidType))
}
