package service

import (
	"context"

	"rosterhub-backend/internal/domain"
)

type ImportService interface {
	// ImportFile runs the whole provisioning pipeline over one uploaded
	// spreadsheet: parse, validate, provision row by row. The progress
	// callback, when non-nil, is invoked synchronously after every
	// processed row.
	ImportFile(ctx context.Context, filename string, data []byte, progress domain.ProgressFunc) (*domain.BatchResult, []domain.RejectedRow, error)
}

type Provisioner interface {
	// Provision turns one validated request into an account: an
	// authentication identity plus a profile row. Failures are returned as
	// outcomes, never as errors.
	Provision(ctx context.Context, req domain.ProvisioningRequest) domain.ProvisioningOutcome
}

type RosterService interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	SearchMembers(ctx context.Context, query string) ([]domain.Member, error)
}

type EmailService interface {
	SendBatchReport(ctx context.Context, summary BatchSummary) error
	SendOrphanReport(ctx context.Context, orphanEmails []string) error
}
