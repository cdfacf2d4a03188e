package models

import (
	"fmt"

	"github.com/guregu/null/v6"
)

// See: https://developer.twitter.com/en/docs/twitter-api/data-dictionary/object-model/tweet
type Tweet struct {
	ID                           int64       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Text                         null.String `gorm:"type:text" json:"text"`
	AuthorID                     null.Int    `gorm:"index" json:"author_id"`
	ConversationID               null.Int    `gorm:"index" json:"conversation_id"`
	CreatedAt                    null.Time   `gorm:"autoCreateTime:false" json:"created_at"`
	InReplyToUserID              null.Int    `json:"in_reply_to_user_id"`
	Lang                         null.String `json:"lang"`
	PublicMetricsRetweetCount    int64       `json:"public_metrics_retweet_count"`
	PublicMetricsReplyCount      int64       `json:"public_metrics_reply_count"`
	PublicMetricsLikeCount       int64       `json:"public_metrics_like_count"`
	PublicMetricsQuoteCount      int64       `json:"public_metrics_quote_count"`
	PublicMetricsImpressionCount int64       `json:"public_metrics_impression_count"`
	PublicMetricsBookmarkCount   int64       `json:"public_metrics_bookmark_count"`
	PossiblySensitive            null.Bool   `json:"possibly_sensitive"`
	ReplySettings                null.String `json:"reply_settings"`
	Source                       null.String `json:"source"`

	ReferencedTweets []ReferencedTweet `gorm:"foreignKey:TweetID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// ReferencedTweet is one row of the one-to-many link between a tweet and
// the tweets it retweets, quotes or replies to. UID is assigned by storage.
type ReferencedTweet struct {
	UID     uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	TweetID int64  `gorm:"not null;index" json:"tweet_id"`
	ID      int64  `json:"id"`
	Type    string `gorm:"type:text" json:"type"`
}

func (tweet *Tweet) String() string {
	const nchars = 50
	txt := tweet.Text.String
	if runes := []rune(txt); len(runes) > nchars {
		txt = string(runes[:nchars]) + "..."
	}
	return fmt.Sprintf("<id=%d tweet_text='%s'>", tweet.ID, txt)
}
