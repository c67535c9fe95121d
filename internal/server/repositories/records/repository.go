// Package records stores health records.
package records

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

type Repository interface {
	// Create inserts rec and returns the store-assigned id.
	Create(ctx context.Context, rec *models.HealthRecord) (string, error)

	// SelectRecent returns at most limit of the owner's records, newest first.
	SelectRecent(ctx context.Context, ownerID string, limit int) ([]models.HealthRecord, error)

	// SelectAll returns all of the owner's records, newest first.
	SelectAll(ctx context.Context, ownerID string) ([]models.HealthRecord, error)

	// Delete removes one of the owner's records. Records of other owners
	// are reported as common.ErrorNotFound.
	Delete(ctx context.Context, ownerID, id string) error
}
