package repository

import (
	"context"
	"errors"

	"rosterhub-backend/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByIdentityID(ctx context.Context, identityID string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Search(ctx context.Context, query string) ([]domain.Member, error)

	// ListIdentityIDs returns the identity ids of every profile row. Used by
	// the orphan sweep to reconcile against the identity provider.
	ListIdentityIDs(ctx context.Context) ([]string, error)
}
