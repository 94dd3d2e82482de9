package identity

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/logger"
)

type firebaseClient struct {
	auth *auth.Client
}

// NewFirebaseClient builds a Client backed by Firebase Auth using a service
// account credentials file.
func NewFirebaseClient(ctx context.Context, projectID, credentialsFile string) (Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &firebaseClient{auth: authClient}, nil
}

func (c *firebaseClient) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	logger.ExternalServiceCall("firebase", "GetUserByEmail", "email", email)
	rec, err := c.auth.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrNotFound
		}
		logger.ExternalServiceResult("firebase", "GetUserByEmail", err, "email", email)
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}
	return recordToIdentity(rec), nil
}

func (c *firebaseClient) Create(ctx context.Context, email, password string, role domain.MemberRole) (*Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(true)

	logger.ExternalServiceCall("firebase", "CreateUser", "email", email)
	rec, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		logger.ExternalServiceResult("firebase", "CreateUser", err, "email", email)
		return nil, fmt.Errorf("identity creation failed: %w", err)
	}

	// The profile row is the authoritative role store; the claim is a
	// convenience for token consumers, so a failure here only warns.
	if err := c.auth.SetCustomUserClaims(ctx, rec.UID, map[string]interface{}{"role": string(role)}); err != nil {
		logger.Warn("Failed to set role claim on new identity", "identity_id", rec.UID, "error", err)
	}

	return recordToIdentity(rec), nil
}

func (c *firebaseClient) Delete(ctx context.Context, identityID string) error {
	logger.ExternalServiceCall("firebase", "DeleteUser", "identity_id", identityID)
	if err := c.auth.DeleteUser(ctx, identityID); err != nil {
		logger.ExternalServiceResult("firebase", "DeleteUser", err, "identity_id", identityID)
		return fmt.Errorf("identity deletion failed: %w", err)
	}
	return nil
}

func (c *firebaseClient) List(ctx context.Context) ([]Identity, error) {
	logger.ExternalServiceCall("firebase", "Users")
	var identities []Identity
	iter := c.auth.Users(ctx, "")
	for {
		rec, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.ExternalServiceResult("firebase", "Users", err)
			return nil, fmt.Errorf("identity listing failed: %w", err)
		}
		identities = append(identities, *recordToIdentity(rec.UserRecord))
	}
	return identities, nil
}

func recordToIdentity(rec *auth.UserRecord) *Identity {
	id := &Identity{
		ID:    rec.UID,
		Email: rec.Email,
	}
	if rec.UserMetadata != nil {
		id.CreatedAt = time.UnixMilli(rec.UserMetadata.CreationTimestamp).UTC()
	}
	return id
}
