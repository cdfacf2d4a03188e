package enums

type ReplySettings string

const (
	ReplySettingsEveryone       ReplySettings = "everyone"
	ReplySettingsMentionedUsers ReplySettings = "mentionedUsers"
	ReplySettingsFollowing      ReplySettings = "following"
)

var ReplySettingsValues = []ReplySettings{
	ReplySettingsEveryone,
	ReplySettingsMentionedUsers,
	ReplySettingsFollowing,
}

func ParseReplySettings(value string) (ReplySettings, bool) {
	return parse(ReplySettingsValues, value)
}
