package schemas

type TweetPublicMetrics struct {
	RetweetCount    int64 `json:"retweet_count"`
	ReplyCount      int64 `json:"reply_count"`
	LikeCount       int64 `json:"like_count"`
	QuoteCount      int64 `json:"quote_count"`
	ImpressionCount int64 `json:"impression_count"`
	BookmarkCount   int64 `json:"bookmark_count"`
}

func decodeTweetPublicMetrics(o *object) TweetPublicMetrics {
	return TweetPublicMetrics{
		RetweetCount:    o.count("retweet_count"),
		ReplyCount:      o.count("reply_count"),
		LikeCount:       o.count("like_count"),
		QuoteCount:      o.count("quote_count"),
		ImpressionCount: o.count("impression_count"),
		BookmarkCount:   o.count("bookmark_count"),
	}
}

type UserPublicMetrics struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	TweetCount     int64 `json:"tweet_count"`
	ListedCount    int64 `json:"listed_count"`
	LikeCount      int64 `json:"like_count"`
}

func decodeUserPublicMetrics(o *object) UserPublicMetrics {
	return UserPublicMetrics{
		FollowersCount: o.count("followers_count"),
		FollowingCount: o.count("following_count"),
		TweetCount:     o.count("tweet_count"),
		ListedCount:    o.count("listed_count"),
		LikeCount:      o.count("like_count"),
	}
}
