package enums

type PollVotingStatus string

const (
	PollVotingStatusOpen   PollVotingStatus = "open"
	PollVotingStatusClosed PollVotingStatus = "closed"
)

var PollVotingStatuses = []PollVotingStatus{
	PollVotingStatusOpen,
	PollVotingStatusClosed,
}

func ParsePollVotingStatus(value string) (PollVotingStatus, bool) {
	return parse(PollVotingStatuses, value)
}
