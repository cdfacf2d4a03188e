package core

import (
	"context"
	"fmt"

	"twitteralchemy/database"
	"twitteralchemy/models"
	"twitteralchemy/schemas"
	"twitteralchemy/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EntityTweets = "tweets"
	EntityUsers  = "users"
)

type Options struct {
	// Full selects ToFullDict over ToDict.
	Full bool
	// Store persists the mapped records through database.DB.
	Store bool
	// Source names the input in the stored batch, usually a file path.
	Source string
}

// Result is what gets serialized for one response body.
type Result struct {
	Data     []schemas.Dict `json:"data"`
	Includes schemas.Dict   `json:"includes,omitempty"`
	Meta     any            `json:"meta,omitempty"`

	StoredTweets int    `json:"-"`
	StoredUsers  int    `json:"-"`
	BatchID      string `json:"-"`
}

func Handle(
	ctx context.Context,
	entity string,
	body []byte,
	options Options,
) (*Result, error) {
	switch entity {
	case EntityTweets:
		return HandleTweets(ctx, body, options)
	case EntityUsers:
		return HandleUsers(ctx, body, options)
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnknownEntity, entity)
	}
}

func HandleTweets(
	ctx context.Context,
	body []byte,
	options Options,
) (*Result, error) {
	response, err := schemas.ParseTweetResponse(body)
	if err != nil {
		return nil, err
	}
	zap.S().Debugf("validated %d tweets", len(response.Data))

	result := newResult(response.Data, response.Includes, response.Meta, options)
	if !options.Store {
		return result, nil
	}

	tweets := mapTweets(response.Data)
	var users []*models.User
	if response.Includes != nil {
		// side-loaded tweets and authors are persisted too
		tweets = append(tweets, mapTweets(sideLoaded(response.Data, response.Includes.Tweets))...)
		users = mapUsers(response.Includes.Users)
	}
	if err := database.StoreTweets(ctx, tweets); err != nil {
		return nil, err
	}
	if err := database.StoreUsers(ctx, users); err != nil {
		return nil, err
	}
	result.StoredTweets = len(tweets)
	result.StoredUsers = len(users)
	if err := recordBatch(ctx, EntityTweets, options, result); err != nil {
		return nil, err
	}
	return result, nil
}

func HandleUsers(
	ctx context.Context,
	body []byte,
	options Options,
) (*Result, error) {
	response, err := schemas.ParseUserResponse(body)
	if err != nil {
		return nil, err
	}
	zap.S().Debugf("validated %d users", len(response.Data))

	result := newResult(response.Data, response.Includes, response.Meta, options)
	if !options.Store {
		return result, nil
	}

	users := mapUsers(response.Data)
	var tweets []*models.Tweet
	if response.Includes != nil {
		// pinned tweets
		tweets = mapTweets(response.Includes.Tweets)
	}
	if err := database.StoreUsers(ctx, users); err != nil {
		return nil, err
	}
	if err := database.StoreTweets(ctx, tweets); err != nil {
		return nil, err
	}
	result.StoredTweets = len(tweets)
	result.StoredUsers = len(users)
	if err := recordBatch(ctx, EntityUsers, options, result); err != nil {
		return nil, err
	}
	return result, nil
}

func recordBatch(
	ctx context.Context,
	entity string,
	options Options,
	result *Result,
) error {
	batch := &models.Batch{
		ID:     uuid.NewString(),
		Entity: entity,
		Source: options.Source,
		Tweets: result.StoredTweets,
		Users:  result.StoredUsers,
	}
	if err := database.StoreBatch(ctx, batch); err != nil {
		return err
	}
	result.BatchID = batch.ID
	return nil
}

func newResult[T schemas.Flattener](
	data []T,
	includes *schemas.Includes,
	meta any,
	options Options,
) *Result {
	result := &Result{
		Data: make([]schemas.Dict, 0, len(data)),
		Meta: meta,
	}
	for _, item := range data {
		result.Data = append(result.Data, flatten(item, options))
	}
	if includes != nil {
		result.Includes = flatten(includes, options)
	}
	return result
}

func flatten(item schemas.Flattener, options Options) schemas.Dict {
	if options.Full {
		return item.ToFullDict()
	}
	return item.ToDict()
}

// sideLoaded returns the tweets of included that are not in data, each once.
// A tweet present in both is stored from data only.
func sideLoaded(data []*schemas.Tweet, included []*schemas.Tweet) []*schemas.Tweet {
	seen := make(map[int64]bool, len(data)+len(included))
	for _, tweet := range data {
		seen[tweet.ID] = true
	}
	var extra []*schemas.Tweet
	for _, tweet := range included {
		if seen[tweet.ID] {
			continue
		}
		seen[tweet.ID] = true
		extra = append(extra, tweet)
	}
	return extra
}

func mapTweets(tweets []*schemas.Tweet) []*models.Tweet {
	records := make([]*models.Tweet, 0, len(tweets))
	for _, tweet := range tweets {
		records = append(records, tweet.ToModel())
	}
	return records
}

func mapUsers(users []*schemas.User) []*models.User {
	records := make([]*models.User, 0, len(users))
	for _, user := range users {
		records = append(records, user.ToModel())
	}
	return records
}
