package database

import (
	"context"

	"twitteralchemy/models"
)

func GetTweetsCount(ctx context.Context) (int64, error) {
	return count(ctx, &models.Tweet{})
}

func GetReferencedTweetsCount(ctx context.Context) (int64, error) {
	return count(ctx, &models.ReferencedTweet{})
}

func GetUsersCount(ctx context.Context) (int64, error) {
	return count(ctx, &models.User{})
}

func GetBatchesCount(ctx context.Context) (int64, error) {
	return count(ctx, &models.Batch{})
}

func count(ctx context.Context, model any) (int64, error) {
	var count int64
	err := DB.
		WithContext(ctx).
		Model(model).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
