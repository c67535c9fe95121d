// Package users stores account credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

type Repository interface {
	// Create inserts the user and fills in its id and creation time.
	// A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
