package enums

type ReferencedTweetType string

const (
	ReferencedTweetTypeRetweeted ReferencedTweetType = "retweeted"
	ReferencedTweetTypeQuoted    ReferencedTweetType = "quoted"
	ReferencedTweetTypeRepliedTo ReferencedTweetType = "replied_to"
)

var ReferencedTweetTypes = []ReferencedTweetType{
	ReferencedTweetTypeRetweeted,
	ReferencedTweetTypeQuoted,
	ReferencedTweetTypeRepliedTo,
}

func ParseReferencedTweetType(value string) (ReferencedTweetType, bool) {
	return parse(ReferencedTweetTypes, value)
}
