// Package reminders stores user reminders.
package reminders

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Reminder) (string, error)
	SelectByOwner(ctx context.Context, ownerID string) ([]models.Reminder, error)
	Delete(ctx context.Context, ownerID, id string) error
}
