package schemas

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTweetResponse(t *testing.T) {
	body, err := os.ReadFile("testdata/tweet_w_includes.json")
	require.NoError(t, err)

	response, err := ParseTweetResponse(body)
	require.NoError(t, err)
	require.Len(t, response.Data, 2)

	retweet := response.Data[0]
	assert.Equal(t, int64(1583165734021488640), retweet.ID)
	require.Len(t, retweet.ReferencedTweets, 1)
	assert.Equal(t, int64(1583160429141286913), retweet.ReferencedTweets[0].ID)

	record := retweet.ToModel()
	require.Len(t, record.ReferencedTweets, 1)
	assert.Equal(t, retweet.ID, record.ReferencedTweets[0].TweetID)

	original := response.Data[1]
	full := original.ToFullDict()
	assert.Equal(t, "01a9a39529b27f36", full["geo_place_id"])
	assert.Equal(t, `[-73.99,40.73]`, full["geo_coordinates"])
	assert.Equal(t, int64(210), full["public_metrics_like_count"])

	require.NotNil(t, response.Includes)
	includes := response.Includes.ToDict()
	assert.Nil(t, includes["tweets"])
	assert.Equal(t, []Dict{}, includes["media"])
	users := includes["users"].([]Dict)
	assert.Equal(t, "TwitterDev", users[0]["username"])
	polls := includes["polls"].([]Dict)
	assert.Equal(t, "closed", polls[0]["voting_status"])

	meta, ok := response.Meta.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1583165734021488640", meta["newest_id"])
	assert.Nil(t, response.Errors)
}

func TestParseTweetResponseSingleObject(t *testing.T) {
	response, err := ParseTweetResponse([]byte(`{"data": {"id": 1583165734021488640, "text": "x"}}`))
	require.NoError(t, err)
	require.Len(t, response.Data, 1)
	// numbers keep every digit
	assert.Equal(t, int64(1583165734021488640), response.Data[0].ID)
	assert.Nil(t, response.Includes)
}

func TestParseTweetResponseEmpty(t *testing.T) {
	response, err := ParseTweetResponse([]byte(`{"meta": {"result_count": 0}}`))
	require.NoError(t, err)
	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)
}

func TestParseTweetResponseRejects(t *testing.T) {
	_, err := ParseTweetResponse([]byte(`{"data": [`))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = ParseTweetResponse([]byte(`{"data": [{"id": "1"}, {"id": "2", "reply_settings": "all"}, 3]}`))
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "TweetResponse", verr.Entity)
	assert.True(t, verr.Has("/data/1/reply_settings", CodeInvalidEnum))
	assert.True(t, verr.Has("/data/2", CodeInvalidType))

	_, err = ParseTweetResponse([]byte(`{"data": [], "includes": {"users": [{"id": "1"}]}}`))
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("/includes/users/0/name", CodeRequired))

	_, err = ParseTweetResponse([]byte(`[1, 2]`))
	_, ok = AsValidationError(err)
	assert.True(t, ok)
}

func TestParseUserResponse(t *testing.T) {
	response, err := ParseUserResponse([]byte(`{
		"data": [{"id": "2244994945", "name": "Twitter Dev", "username": "TwitterDev"}],
		"includes": {"tweets": [{"id": "1430984356139470849"}]}
	}`))
	require.NoError(t, err)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "TwitterDev", response.Data[0].ToModel().Username)
	require.Len(t, response.Includes.Tweets, 1)
}

func TestDecode(t *testing.T) {
	raw, err := Decode([]byte(`{"id": "1", "type": "quoted"}`))
	require.NoError(t, err)
	ref, err := NewReferencedTweet(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ref.ID)

	_, err = Decode([]byte(`"just a string"`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
