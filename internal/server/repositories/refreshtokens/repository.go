// Package refreshtokens persists the opaque refresh tokens handed out at
// login. Tokens are single use: the service deletes one when rotating it.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/models"
)

type Repository interface {
	// Create stores token for userID, valid until now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error
}
