package schemas

import (
	"strconv"

	"twitteralchemy/models"

	"github.com/guregu/null/v6"
)

// See: https://developer.twitter.com/en/docs/twitter-api/data-dictionary/object-model/user
type User struct {
	ID              int64             `json:"id"`
	Name            string            `json:"name"`
	Username        string            `json:"username"`
	CreatedAt       null.Time         `json:"created_at"`
	Protected       null.Bool         `json:"protected"`
	Location        null.String       `json:"location"`
	URL             null.String       `json:"url"`
	Description     null.String       `json:"description"`
	Verified        null.Bool         `json:"verified"`
	PublicMetrics   UserPublicMetrics `json:"public_metrics"`
	PinnedTweetID   null.Int          `json:"pinned_tweet_id"`
	ProfileImageURL null.String       `json:"profile_image_url"`

	// full dict only, contents are not parsed
	Entities any `json:"entities"`
	Withheld any `json:"withheld"`
}

func NewUser(raw map[string]any) (*User, error) {
	return userEntity.validate(raw)
}

func decodeUser(o *object) *User {
	return &User{
		ID:              o.requiredID("id"),
		Name:            o.requiredStr("name"),
		Username:        o.requiredStr("username"),
		CreatedAt:       o.timestamp("created_at"),
		Protected:       o.boolean("protected"),
		Location:        o.str("location"),
		URL:             o.str("url"),
		Description:     o.str("description"),
		Verified:        o.boolean("verified"),
		PublicMetrics:   decodeUserPublicMetrics(o.child("public_metrics")),
		PinnedTweetID:   o.id("pinned_tweet_id"),
		ProfileImageURL: o.str("profile_image_url"),

		Entities: o.opaque("entities"),
		Withheld: o.opaque("withheld"),
	}
}

func (user *User) ToModel() *models.User {
	metrics := user.PublicMetrics
	return &models.User{
		ID:                          user.ID,
		Name:                        user.Name,
		Username:                    user.Username,
		CreatedAt:                   user.CreatedAt,
		Description:                 user.Description,
		Location:                    user.Location,
		PinnedTweetID:               user.PinnedTweetID,
		ProfileImageURL:             user.ProfileImageURL,
		Protected:                   user.Protected,
		PublicMetricsFollowersCount: metrics.FollowersCount,
		PublicMetricsFollowingCount: metrics.FollowingCount,
		PublicMetricsTweetCount:     metrics.TweetCount,
		PublicMetricsListedCount:    metrics.ListedCount,
		PublicMetricsLikeCount:      metrics.LikeCount,
		URL:                         user.URL,
		Verified:                    user.Verified,
	}
}

func (user *User) ToDict() Dict {
	metrics := user.PublicMetrics
	return Dict{
		"id":                             strconv.FormatInt(user.ID, 10),
		"name":                           user.Name,
		"username":                       user.Username,
		"created_at":                     nullTime(user.CreatedAt),
		"description":                    nullString(user.Description),
		"location":                       nullString(user.Location),
		"pinned_tweet_id":                idString(user.PinnedTweetID),
		"profile_image_url":              nullString(user.ProfileImageURL),
		"protected":                      nullBool(user.Protected),
		"public_metrics_followers_count": metrics.FollowersCount,
		"public_metrics_following_count": metrics.FollowingCount,
		"public_metrics_tweet_count":     metrics.TweetCount,
		"public_metrics_listed_count":    metrics.ListedCount,
		"public_metrics_like_count":      metrics.LikeCount,
		"url":                            nullString(user.URL),
		"verified":                       nullBool(user.Verified),
	}
}

func (user *User) ToFullDict() Dict {
	dict := user.ToDict()
	dict["entities"] = blob(user.Entities)
	dict["withheld"] = blob(user.Withheld)
	return dict
}
