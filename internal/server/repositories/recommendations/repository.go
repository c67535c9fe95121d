// Package recommendations stores generated wellness recommendations.
// Rows are only ever appended or removed, never updated.
package recommendations

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, rec *models.Recommendation) (string, error)
	// SelectByOwner returns the owner's recommendations, newest first.
	SelectByOwner(ctx context.Context, ownerID string) ([]models.Recommendation, error)
	// Delete returns common.ErrorNotFound when the owner has no such row.
	Delete(ctx context.Context, ownerID, id string) error
}
