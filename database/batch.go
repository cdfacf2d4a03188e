package database

import (
	"context"

	"twitteralchemy/models"

	"github.com/pkg/errors"
)

func StoreBatch(
	ctx context.Context,
	batch *models.Batch,
) error {
	err := DB.
		WithContext(ctx).
		Create(batch).
		Error
	if err != nil {
		return errors.Wrapf(err, "failed to store batch %s", batch.ID)
	}
	return nil
}

func GetBatch(
	ctx context.Context,
	batchID string,
) (*models.Batch, error) {
	var batch models.Batch
	err := DB.
		WithContext(ctx).
		Where("id = ?", batchID).
		First(&batch).
		Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get batch %s", batchID)
	}
	return &batch, nil
}
