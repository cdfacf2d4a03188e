package core

import (
	"context"
	"os"
	"testing"

	"twitteralchemy/config"
	"twitteralchemy/database"
	"twitteralchemy/schemas"
	"twitteralchemy/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	body, err := os.ReadFile("../schemas/testdata/tweet_w_includes.json")
	require.NoError(t, err)
	return body
}

func TestHandleTweetsDicts(t *testing.T) {
	result, err := Handle(context.Background(), EntityTweets, readFixture(t), Options{})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "1583165734021488640", result.Data[0]["id"])
	assert.NotContains(t, result.Data[0], "entities")
	assert.Nil(t, result.Includes["tweets"])
	assert.Equal(t, []schemas.Dict{}, result.Includes["media"])
	assert.Zero(t, result.StoredTweets)
}

func TestHandleTweetsFullDicts(t *testing.T) {
	result, err := Handle(context.Background(), EntityTweets, readFixture(t), Options{Full: true})
	require.NoError(t, err)
	assert.Contains(t, result.Data[0]["entities"], `"username":"golang"`)
}

func TestHandleTweetsStore(t *testing.T) {
	ctx := startMemory(t)

	result, err := Handle(ctx, EntityTweets, readFixture(t), Options{Store: true, Source: "fixture.json"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.StoredTweets)
	assert.Equal(t, 1, result.StoredUsers)

	batch, err := database.GetBatch(ctx, result.BatchID)
	require.NoError(t, err)
	assert.Equal(t, EntityTweets, batch.Entity)
	assert.Equal(t, "fixture.json", batch.Source)
	assert.Equal(t, 2, batch.Tweets)
	assert.Equal(t, 1, batch.Users)

	tweet, err := database.GetTweet(ctx, 1583165734021488640)
	require.NoError(t, err)
	require.Len(t, tweet.ReferencedTweets, 1)
	assert.Equal(t, "retweeted", tweet.ReferencedTweets[0].Type)

	user, err := database.GetUser(ctx, 2244994945)
	require.NoError(t, err)
	assert.Equal(t, "TwitterDev", user.Username)
}

func startMemory(t *testing.T) context.Context {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.DBPath = ":memory:"
	_, err := database.Start(cfg)
	require.NoError(t, err)
	return context.Background()
}

func TestHandleTweetsStoreKeepsPrimaryCopy(t *testing.T) {
	ctx := startMemory(t)
	body := []byte(`{
		"data": [{"id": "10", "text": "full", "lang": "en", "referenced_tweets": [{"id": "11", "type": "quoted"}]}],
		"includes": {"tweets": [{"id": "10"}, {"id": "11", "text": "quoted"}, {"id": "11"}]}
	}`)

	result, err := Handle(ctx, EntityTweets, body, Options{Store: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.StoredTweets)

	tweet, err := database.GetTweet(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "full", tweet.Text.String)
	assert.Equal(t, "en", tweet.Lang.String)
	require.Len(t, tweet.ReferencedTweets, 1)

	quoted, err := database.GetTweet(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "quoted", quoted.Text.String)
}

func TestHandleUsersStoreRecordsBatch(t *testing.T) {
	ctx := startMemory(t)
	body := []byte(`{
		"data": [{"id": "1", "name": "n", "username": "u", "pinned_tweet_id": "9"}],
		"includes": {"tweets": [{"id": "9", "text": "pinned"}]}
	}`)

	first, err := Handle(ctx, EntityUsers, body, Options{Store: true, Source: "users.json"})
	require.NoError(t, err)
	second, err := Handle(ctx, EntityUsers, body, Options{Store: true, Source: "users.json"})
	require.NoError(t, err)
	assert.NotEqual(t, first.BatchID, second.BatchID)

	count, err := database.GetBatchesCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	count, err = database.GetUsersCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	batch, err := database.GetBatch(ctx, second.BatchID)
	require.NoError(t, err)
	assert.Equal(t, EntityUsers, batch.Entity)
	assert.Equal(t, 1, batch.Tweets)
	assert.Equal(t, 1, batch.Users)
}

func TestSideLoaded(t *testing.T) {
	tweet := func(id int64) *schemas.Tweet { return &schemas.Tweet{ID: id} }
	extra := sideLoaded(
		[]*schemas.Tweet{tweet(1), tweet(2)},
		[]*schemas.Tweet{tweet(2), tweet(3), tweet(3), tweet(1), tweet(4)},
	)
	require.Len(t, extra, 2)
	assert.Equal(t, int64(3), extra[0].ID)
	assert.Equal(t, int64(4), extra[1].ID)
	assert.Empty(t, sideLoaded(nil, nil))
}

func TestHandleUsers(t *testing.T) {
	body := []byte(`{"data": [{"id": "1", "name": "n", "username": "u", "pinned_tweet_id": "9"}]}`)
	result, err := Handle(context.Background(), EntityUsers, body, Options{})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "9", result.Data[0]["pinned_tweet_id"])
	assert.Nil(t, result.Includes)
}

func TestHandleRejects(t *testing.T) {
	_, err := Handle(context.Background(), "spaces", []byte(`{}`), Options{})
	assert.ErrorIs(t, err, util.ErrUnknownEntity)

	_, err = Handle(context.Background(), EntityTweets, []byte(`{"data": [{"text": "x"}]}`), Options{})
	_, ok := schemas.AsValidationError(err)
	assert.True(t, ok)
}
