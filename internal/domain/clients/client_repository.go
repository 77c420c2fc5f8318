package clients

import (
	"context"

	"github.com/google/uuid"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Repository defines persistence operations for clients.
// All read operations exclude soft-deleted records unless stated otherwise.
type Repository interface {
	Save(ctx context.Context, client *Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// FindByIDIncludingDeleted bypasses the not-deleted predicate. It is the
	// only read path that can see soft-deleted rows.
	FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*Client, error)
	FindByEmail(ctx context.Context, email string) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, int64, error)
	Search(ctx context.Context, query string) ([]Client, error)
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
	Count(ctx context.Context) (int64, error)
}
