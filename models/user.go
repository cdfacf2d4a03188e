package models

import (
	"fmt"

	"github.com/guregu/null/v6"
)

// See: https://developer.twitter.com/en/docs/twitter-api/data-dictionary/object-model/user
type User struct {
	ID                          int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name                        string      `gorm:"type:text" json:"name"`
	Username                    string      `gorm:"index;size:64" json:"username"`
	CreatedAt                   null.Time   `gorm:"autoCreateTime:false" json:"created_at"`
	Description                 null.String `gorm:"type:text" json:"description"`
	Location                    null.String `json:"location"`
	PinnedTweetID               null.Int    `json:"pinned_tweet_id"`
	ProfileImageURL             null.String `json:"profile_image_url"`
	Protected                   null.Bool   `json:"protected"`
	PublicMetricsFollowersCount int64       `json:"public_metrics_followers_count"`
	PublicMetricsFollowingCount int64       `json:"public_metrics_following_count"`
	PublicMetricsTweetCount     int64       `json:"public_metrics_tweet_count"`
	PublicMetricsListedCount    int64       `json:"public_metrics_listed_count"`
	PublicMetricsLikeCount      int64       `json:"public_metrics_like_count"`
	URL                         null.String `json:"url"`
	Verified                    null.Bool   `json:"verified"`
}

func (user *User) String() string {
	return fmt.Sprintf("<id=%d username=%s name=%s>", user.ID, user.Username, user.Name)
}
