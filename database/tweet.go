package database

import (
	"context"

	"twitteralchemy/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreTweets upserts tweets in a single transaction. The stored
// referenced tweets of each tweet are replaced by the ones it carries.
func StoreTweets(
	ctx context.Context,
	tweets []*models.Tweet,
) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, tweet := range tweets {
			if err := storeTweet(tx, tweet); err != nil {
				return err
			}
		}
		return nil
	})
}

func storeTweet(tx *gorm.DB, tweet *models.Tweet) error {
	err := tx.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(tweet).
		Error
	if err != nil {
		return errors.Wrapf(err, "failed to store tweet %d", tweet.ID)
	}
	err = tx.
		Where("tweet_id = ?", tweet.ID).
		Delete(&models.ReferencedTweet{}).
		Error
	if err != nil {
		return errors.Wrapf(err, "failed to clear referenced tweets of %d", tweet.ID)
	}
	if len(tweet.ReferencedTweets) == 0 {
		return nil
	}
	for i := range tweet.ReferencedTweets {
		tweet.ReferencedTweets[i].TweetID = tweet.ID
	}
	if err := tx.Create(&tweet.ReferencedTweets).Error; err != nil {
		return errors.Wrapf(err, "failed to store referenced tweets of %d", tweet.ID)
	}
	return nil
}

func GetTweet(
	ctx context.Context,
	tweetID int64,
) (*models.Tweet, error) {
	var tweet models.Tweet
	err := DB.
		WithContext(ctx).
		Preload("ReferencedTweets", func(db *gorm.DB) *gorm.DB {
			return db.Order("uid")
		}).
		First(&tweet, tweetID).
		Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tweet %d", tweetID)
	}
	return &tweet, nil
}
