package schemas

import (
	"strconv"

	"twitteralchemy/enums"
	"twitteralchemy/models"

	"github.com/guregu/null/v6"
)

// See: https://developer.twitter.com/en/docs/twitter-api/data-dictionary/object-model/tweet
type Tweet struct {
	ID                int64               `json:"id"`
	Text              null.String         `json:"text"`
	CreatedAt         null.Time           `json:"created_at"`
	AuthorID          null.Int            `json:"author_id"`
	ConversationID    null.Int            `json:"conversation_id"`
	InReplyToUserID   null.Int            `json:"in_reply_to_user_id"`
	ReferencedTweets  []*ReferencedTweet  `json:"referenced_tweets"`
	PublicMetrics     TweetPublicMetrics  `json:"public_metrics"`
	PossiblySensitive null.Bool           `json:"possibly_sensitive"`
	Lang              null.String         `json:"lang"`
	ReplySettings     enums.ReplySettings `json:"reply_settings"`
	Source            null.String         `json:"source"`

	// full dict only, contents are not parsed
	Attachments         any `json:"attachments"`
	Geo                 Geo `json:"geo"`
	ContextAnnotations  any `json:"context_annotations"`
	Entities            any `json:"entities"`
	Withheld            any `json:"withheld"`
	EditHistoryTweetIDs any `json:"edit_history_tweet_ids"`
	NoteTweet           any `json:"note_tweet"`
}

// NewTweet validates raw and builds a Tweet from it. Fields the schema does
// not know are ignored.
func NewTweet(raw map[string]any) (*Tweet, error) {
	return tweetEntity.validate(raw)
}

func decodeTweet(o *object) *Tweet {
	tweet := &Tweet{
		ID:                o.requiredID("id"),
		Text:              o.str("text"),
		CreatedAt:         o.timestamp("created_at"),
		AuthorID:          o.id("author_id"),
		ConversationID:    o.id("conversation_id"),
		InReplyToUserID:   o.id("in_reply_to_user_id"),
		ReferencedTweets:  []*ReferencedTweet{},
		PublicMetrics:     decodeTweetPublicMetrics(o.child("public_metrics")),
		PossiblySensitive: o.boolean("possibly_sensitive"),
		Lang:              o.str("lang"),
		ReplySettings:     enumField(o, "reply_settings", enums.ParseReplySettings),
		Source:            o.str("source"),

		Attachments:         o.opaque("attachments"),
		Geo:                 decodeGeo(o.child("geo")),
		ContextAnnotations:  o.opaque("context_annotations"),
		Entities:            o.opaque("entities"),
		Withheld:            o.opaque("withheld"),
		EditHistoryTweetIDs: o.opaque("edit_history_tweet_ids"),
		NoteTweet:           o.opaque("note_tweet"),
	}
	o.objects("referenced_tweets", func(item *object) {
		tweet.ReferencedTweets = append(
			tweet.ReferencedTweets,
			decodeReferencedTweet(item),
		)
	})
	return tweet
}

// ToModel maps the tweet to its relational record. The referenced tweet
// rows are always built from scratch and point back at this tweet.
func (tweet *Tweet) ToModel() *models.Tweet {
	metrics := tweet.PublicMetrics
	record := &models.Tweet{
		ID:                           tweet.ID,
		Text:                         tweet.Text,
		AuthorID:                     tweet.AuthorID,
		ConversationID:               tweet.ConversationID,
		CreatedAt:                    tweet.CreatedAt,
		InReplyToUserID:              tweet.InReplyToUserID,
		Lang:                         tweet.Lang,
		PublicMetricsRetweetCount:    metrics.RetweetCount,
		PublicMetricsReplyCount:      metrics.ReplyCount,
		PublicMetricsLikeCount:       metrics.LikeCount,
		PublicMetricsQuoteCount:      metrics.QuoteCount,
		PublicMetricsImpressionCount: metrics.ImpressionCount,
		PublicMetricsBookmarkCount:   metrics.BookmarkCount,
		PossiblySensitive:            tweet.PossiblySensitive,
		Source:                       tweet.Source,
	}
	if tweet.ReplySettings != "" {
		record.ReplySettings = null.StringFrom(string(tweet.ReplySettings))
	}

	record.ReferencedTweets = make([]models.ReferencedTweet, 0, len(tweet.ReferencedTweets))
	for _, ref := range tweet.ReferencedTweets {
		record.ReferencedTweets = append(record.ReferencedTweets, models.ReferencedTweet{
			TweetID: tweet.ID,
			ID:      ref.ID,
			Type:    string(ref.Type),
		})
	}
	return record
}

func (tweet *Tweet) ToDict() Dict {
	metrics := tweet.PublicMetrics
	return Dict{
		"id":                              strconv.FormatInt(tweet.ID, 10),
		"text":                            nullString(tweet.Text),
		"author_id":                       idString(tweet.AuthorID),
		"conversation_id":                 idString(tweet.ConversationID),
		"created_at":                      nullTime(tweet.CreatedAt),
		"in_reply_to_user_id":             idString(tweet.InReplyToUserID),
		"lang":                            nullString(tweet.Lang),
		"public_metrics_retweet_count":    metrics.RetweetCount,
		"public_metrics_reply_count":      metrics.ReplyCount,
		"public_metrics_like_count":       metrics.LikeCount,
		"public_metrics_quote_count":      metrics.QuoteCount,
		"public_metrics_impression_count": metrics.ImpressionCount,
		"public_metrics_bookmark_count":   metrics.BookmarkCount,
		"possibly_sensitive":              nullBool(tweet.PossiblySensitive),
		"reply_settings":                  enumString(tweet.ReplySettings),
		"source":                          nullString(tweet.Source),
	}
}

func (tweet *Tweet) ToFullDict() Dict {
	dict := tweet.ToDict()
	dict["attachments"] = blob(tweet.Attachments)
	dict["geo_place_id"] = nullString(tweet.Geo.PlaceID)
	dict["geo_coordinates_type"] = nullString(tweet.Geo.Coordinates.Type)
	dict["geo_coordinates"] = blob(tweet.Geo.Coordinates.Coordinates)
	dict["context_annotations"] = blob(tweet.ContextAnnotations)
	dict["entities"] = blob(tweet.Entities)
	dict["withheld"] = blob(tweet.Withheld)
	dict["edit_history_tweet_ids"] = blob(tweet.EditHistoryTweetIDs)
	dict["note_tweet"] = blob(tweet.NoteTweet)
	dict["referenced_tweets"] = referencedTweetsBlob(tweet.ReferencedTweets)
	return dict
}

func referencedTweetsBlob(refs []*ReferencedTweet) any {
	if len(refs) == 0 {
		return nil
	}
	items := make([]any, 0, len(refs))
	for _, ref := range refs {
		items = append(items, map[string]any{
			"id":   strconv.FormatInt(ref.ID, 10),
			"type": string(ref.Type),
		})
	}
	return blob(items)
}
