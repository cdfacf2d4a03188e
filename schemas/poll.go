package schemas

import (
	"twitteralchemy/enums"

	"github.com/guregu/null/v6"
)

type Poll struct {
	ID              string                 `json:"id"`
	Options         []any                  `json:"options"`
	DurationMinutes null.Int               `json:"duration_minutes"`
	EndDatetime     null.String            `json:"end_datetime"`
	VotingStatus    enums.PollVotingStatus `json:"voting_status"`
}

func NewPoll(raw map[string]any) (*Poll, error) {
	return pollEntity.validate(raw)
}

func decodePoll(o *object) *Poll {
	return &Poll{
		ID:              o.requiredText("id"),
		Options:         o.list("options"),
		DurationMinutes: o.integer("duration_minutes"),
		EndDatetime:     o.str("end_datetime"),
		VotingStatus:    enumField(o, "voting_status", enums.ParsePollVotingStatus),
	}
}

func (poll *Poll) ToDict() Dict {
	return Dict{
		"id":               poll.ID,
		"options":          blob(poll.Options),
		"duration_minutes": nullInt(poll.DurationMinutes),
		"end_datetime":     nullString(poll.EndDatetime),
		"voting_status":    enumString(poll.VotingStatus),
	}
}

func (poll *Poll) ToFullDict() Dict {
	return poll.ToDict()
}
