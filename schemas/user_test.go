package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(map[string]any{
		"id":                   "2244994945",
		"name":                 "Twitter Dev",
		"username":             "TwitterDev",
		"created_at":           "2013-12-14T04:35:55.000Z",
		"protected":            false,
		"verified":             true,
		"pinned_tweet_id":      "1430984356139470849",
		"profile_image_url":    "https://pbs.twimg.com/profile_images/1.jpg",
		"public_metrics":       map[string]any{
			"followers_count": 518000,
			"following_count": 2000,
			"tweet_count":     3800,
			"listed_count":    1700,
		},
		"entities":             map[string]any{"url": map[string]any{"urls": []any{}}},
		"most_recent_tweet_id": "1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2244994945), user.ID)
	assert.Equal(t, "TwitterDev", user.Username)
	assert.True(t, user.Verified.Bool)
	assert.Equal(t, int64(518000), user.PublicMetrics.FollowersCount)
	assert.Zero(t, user.PublicMetrics.LikeCount)

	record := user.ToModel()
	assert.Equal(t, user.ID, record.ID)
	assert.Equal(t, "Twitter Dev", record.Name)
	assert.Equal(t, int64(1430984356139470849), record.PinnedTweetID.Int64)
	assert.Equal(t, int64(2000), record.PublicMetricsFollowingCount)
	assert.Equal(t, int64(1700), record.PublicMetricsListedCount)
	assert.True(t, record.CreatedAt.Valid)

	dict := user.ToDict()
	assert.Equal(t, "2244994945", dict["id"])
	assert.Equal(t, "1430984356139470849", dict["pinned_tweet_id"])
	assert.Equal(t, int64(3800), dict["public_metrics_tweet_count"])
	assert.Equal(t, false, dict["protected"])
	assert.Nil(t, dict["location"])
	assert.NotContains(t, dict, "entities")

	full := user.ToFullDict()
	assert.Equal(t, `{"url":{"urls":[]}}`, full["entities"])
	assert.Nil(t, full["withheld"])
	assert.NotContains(t, full, "most_recent_tweet_id")
}

func TestNewUserDefaults(t *testing.T) {
	user, err := NewUser(map[string]any{"id": 1, "name": "n", "username": "u"})
	require.NoError(t, err)
	assert.Equal(t, UserPublicMetrics{}, user.PublicMetrics)
	assert.Equal(t, int64(0), user.ToDict()["public_metrics_followers_count"])
	assert.Nil(t, user.ToDict()["pinned_tweet_id"])
}

func TestNewUserRejects(t *testing.T) {
	_, err := NewUser(map[string]any{"id": "1"})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("/name", CodeRequired))
	assert.True(t, verr.Has("/username", CodeRequired))

	_, err = NewUser(map[string]any{
		"id":             "1",
		"name":           "n",
		"username":       "u",
		"public_metrics": map[string]any{"follower_count": 1},
	})
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("/public_metrics/follower_count", CodeUnknownKey))

	_, err = NewUser(map[string]any{"id": "1", "name": "n", "username": "u", "verified": "blue"})
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("/verified", CodeInvalidType))
}
