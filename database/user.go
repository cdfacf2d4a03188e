package database

import (
	"context"

	"twitteralchemy/models"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

func StoreUsers(
	ctx context.Context,
	users []*models.User,
) error {
	if len(users) == 0 {
		return nil
	}
	err := DB.
		WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&users).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to store users")
	}
	return nil
}

func GetUser(
	ctx context.Context,
	userID int64,
) (*models.User, error) {
	var user models.User
	err := DB.
		WithContext(ctx).
		First(&user, userID).
		Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user %d", userID)
	}
	return &user, nil
}
