package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/identity"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/repository"
)

// provisioner performs the two dependent remote writes for one request:
// create the authentication identity, then insert the profile row. The two
// writes share no transaction, so "identity created, profile missing" is the
// one disallowed durable state; it is repaired by a best-effort compensating
// delete of the identity.
type provisioner struct {
	ids     identity.Client
	members repository.MemberRepository
}

func NewProvisioner(ids identity.Client, members repository.MemberRepository) Provisioner {
	return &provisioner{ids: ids, members: members}
}

func (p *provisioner) Provision(ctx context.Context, req domain.ProvisioningRequest) domain.ProvisioningOutcome {
	existing, err := p.ids.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, identity.ErrNotFound) {
		return failure(req, domain.StageIdentityCreate, fmt.Sprintf("identity lookup failed: %v", err))
	}

	if existing != nil {
		// Reprocessing the same file is idempotent: identity and profile
		// both present means this row was already provisioned.
		if _, err := p.members.GetByIdentityID(ctx, existing.ID); err == nil {
			return success(req, existing.ID, existing.CreatedAt)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return failure(req, domain.StageDuplicate, fmt.Sprintf("profile lookup failed: %v", err))
		}
		// Identity without a profile: someone registered this address
		// outside the pipeline, or an earlier compensation was lost.
		return failure(req, domain.StageDuplicate, fmt.Sprintf("email %s is already registered", req.Email))
	}

	// A profile row under this email but a different identity would make
	// the insert below collide on the unique email constraint; catching it
	// here avoids creating an identity only to compensate it away.
	if _, err := p.members.GetByEmail(ctx, req.Email); err == nil {
		return failure(req, domain.StageDuplicate, fmt.Sprintf("profile for %s already exists", req.Email))
	} else if !errors.Is(err, repository.ErrNotFound) {
		return failure(req, domain.StageDuplicate, fmt.Sprintf("profile lookup failed: %v", err))
	}

	created, err := p.ids.Create(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		return failure(req, domain.StageIdentityCreate, err.Error())
	}

	if _, err := p.members.GetByIdentityID(ctx, created.ID); err == nil {
		// Idempotent short-circuit: no duplicate profile write.
		return success(req, created.ID, created.CreatedAt)
	} else if !errors.Is(err, repository.ErrNotFound) {
		p.compensate(ctx, created.ID, req.Email)
		return failure(req, domain.StageProfileCreate, fmt.Sprintf("profile lookup failed: %v", err))
	}

	member := memberFromRequest(req, created.ID)
	if err := p.members.Create(ctx, member); err != nil {
		p.compensate(ctx, created.ID, req.Email)
		return failure(req, domain.StageProfileCreate, err.Error())
	}

	return success(req, created.ID, created.CreatedAt)
}

// compensate deletes a just-created identity after the profile write failed.
// A lost compensating delete must not abort the batch, so failures are
// logged and swallowed; the orphan sweep reports whatever is left behind.
func (p *provisioner) compensate(ctx context.Context, identityID, email string) {
	if err := p.ids.Delete(ctx, identityID); err != nil {
		logger.Error("Compensating identity delete failed, orphan identity left behind",
			"identity_id", identityID, "email", email, "error", err)
	}
}

func memberFromRequest(req domain.ProvisioningRequest, identityID string) *domain.Member {
	return &domain.Member{
		IdentityID: identityID,
		Email:      req.Email,
		Role:       req.Role,
		FullName:   req.Profile.FullName,
		Phone:      req.Profile.Phone,
		Gamertag:   req.Profile.Gamertag,
		Discord:    req.Profile.Discord,
		DOB:        req.Profile.DOB,
		Gender:     req.Profile.Gender,
		Division:   req.Profile.Division,
		PhotoURL:   req.Profile.PhotoURL,
		Status:     req.Profile.Status,
		Onboarding: req.Profile.Onboarding,
		IsMinor:    req.Profile.IsMinor,
		Platforms:  req.Profile.Platforms,
		Languages:  req.Profile.Languages,
		Software:   req.Profile.Software,
	}
}

func success(req domain.ProvisioningRequest, identityID string, createdAt time.Time) domain.ProvisioningOutcome {
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return domain.ProvisioningOutcome{
		Email:      req.Email,
		Succeeded:  true,
		IdentityID: identityID,
		Role:       req.Role,
		CreatedAt:  createdAt,
	}
}

func failure(req domain.ProvisioningRequest, stage domain.FailureStage, reason string) domain.ProvisioningOutcome {
	return domain.ProvisioningOutcome{
		Email:  req.Email,
		Stage:  stage,
		Reason: reason,
	}
}
