package schemas

import (
	"twitteralchemy/enums"
)

// ReferencedTweet is a tweet retweeted, quoted or replied to by another one.
type ReferencedTweet struct {
	ID   int64                     `json:"id"`
	Type enums.ReferencedTweetType `json:"type"`
}

func NewReferencedTweet(raw map[string]any) (*ReferencedTweet, error) {
	return referencedTweetEntity.validate(raw)
}

func decodeReferencedTweet(o *object) *ReferencedTweet {
	return &ReferencedTweet{
		ID:   o.requiredID("id"),
		Type: enumField(o, "type", enums.ParseReferencedTweetType),
	}
}
