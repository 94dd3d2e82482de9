package identity

import (
	"context"
	"errors"
	"time"

	"rosterhub-backend/internal/domain"
)

// ErrNotFound is returned by FindByEmail when no identity exists for the
// address. Any other error means the lookup itself failed.
var ErrNotFound = errors.New("identity not found")

// Identity is an authentication account issued by the identity provider,
// independent of any profile data.
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Client is the boundary to the external identity provider. Accounts are
// created pre-confirmed with the member role attached as metadata.
type Client interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
	Create(ctx context.Context, email, password string, role domain.MemberRole) (*Identity, error)
	Delete(ctx context.Context, identityID string) error
	List(ctx context.Context) ([]Identity, error)
}
