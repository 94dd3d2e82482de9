package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rosterhub-backend/internal/domain"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/spreadsheet"
)

// importService drives the provisioner across all validated rows of one
// uploaded file, strictly sequentially. The identity provider rate-limits
// aggressively and has no bulk endpoint, so pacing trades throughput for
// predictability and keeps compensating deletes unambiguous.
type importService struct {
	validator *RowValidator
	prov      Provisioner
	email     EmailService
	pace      time.Duration
}

// NewImportService wires the pipeline. email may be nil to disable batch
// report notifications; pace <= 0 falls back to 100ms.
func NewImportService(validator *RowValidator, prov Provisioner, email EmailService, pace time.Duration) ImportService {
	if pace <= 0 {
		pace = 100 * time.Millisecond
	}
	return &importService{
		validator: validator,
		prov:      prov,
		email:     email,
		pace:      pace,
	}
}

func (s *importService) ImportFile(ctx context.Context, filename string, data []byte, progress domain.ProgressFunc) (*domain.BatchResult, []domain.RejectedRow, error) {
	header, rows, err := spreadsheet.Read(data, filename)
	if err != nil {
		return nil, nil, err
	}

	vr, err := s.validator.ValidateRows(header, rows)
	if err != nil {
		return nil, nil, err
	}

	result := s.runBatch(ctx, vr.Requests, progress)

	logger.Info("Bulk import finished",
		"batch_id", result.BatchID,
		"file", filename,
		"total", result.Total,
		"succeeded", len(result.Successful),
		"failed", len(result.Failed),
		"rejected", len(vr.Rejections))

	if s.email != nil {
		if err := s.email.SendBatchReport(ctx, Summarize(result, vr.Rejections)); err != nil {
			logger.Warn("Failed to send batch report email", "batch_id", result.BatchID, "error", err)
		}
	}

	return result, vr.Rejections, nil
}

// runBatch processes requests one at a time in file order, pausing between
// provisioner calls. One bad row never stops the others from being
// attempted.
func (s *importService) runBatch(ctx context.Context, reqs []domain.ProvisioningRequest, progress domain.ProgressFunc) *domain.BatchResult {
	result := &domain.BatchResult{
		BatchID:    uuid.NewString(),
		Total:      len(reqs),
		Successful: []domain.ProvisioningOutcome{},
		Failed:     []domain.ProvisioningOutcome{},
	}

	for i, req := range reqs {
		if i > 0 {
			time.Sleep(s.pace)
		}

		outcome := s.provisionSafe(ctx, req)
		if outcome.Succeeded {
			result.Successful = append(result.Successful, outcome)
		} else {
			result.Failed = append(result.Failed, outcome)
		}
		result.Processed++

		if progress != nil {
			progress(domain.ImportProgress{
				Processed:    result.Processed,
				Total:        result.Total,
				SuccessCount: len(result.Successful),
				FailedCount:  len(result.Failed),
				CurrentEmail: req.Email,
			})
		}
	}

	return result
}

// provisionSafe converts a panicking provisioner call into a failure outcome
// instead of aborting the remaining batch.
func (s *importService) provisionSafe(ctx context.Context, req domain.ProvisioningRequest) (outcome domain.ProvisioningOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Provisioning panicked", "email", req.Email, "panic", r)
			outcome = domain.ProvisioningOutcome{
				Email:  req.Email,
				Stage:  domain.StageUnexpected,
				Reason: fmt.Sprintf("unexpected error: %v", r),
			}
		}
	}()
	return s.prov.Provision(ctx, req)
}
