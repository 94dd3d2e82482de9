package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"rosterhub-backend/internal/domain"
)

// BatchSummary is the human-readable tally of one finished batch.
type BatchSummary struct {
	BatchID    string `json:"batch_id"`
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
	Rejected   int    `json:"rejected"`
}

// Summarize aggregates a finished batch and its validation rejections. Pure,
// side-effect-free aggregation over already-computed data.
func Summarize(result *domain.BatchResult, rejections []domain.RejectedRow) BatchSummary {
	return BatchSummary{
		BatchID:    result.BatchID,
		Total:      result.Total,
		Successful: len(result.Successful),
		Failed:     len(result.Failed),
		Rejected:   len(rejections),
	}
}

func (s BatchSummary) String() string {
	return fmt.Sprintf("batch %s: %d of %d rows provisioned, %d failed, %d rejected during validation",
		s.BatchID, s.Successful, s.Total, s.Failed, s.Rejected)
}

// WriteFailureManifest emits the downloadable error manifest: one email,error
// row per failed provisioning attempt, followed by the validation
// rejections, suitable for correction and re-submission.
func WriteFailureManifest(w io.Writer, result *domain.BatchResult, rejections []domain.RejectedRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"email", "error"}); err != nil {
		return err
	}
	for _, outcome := range result.Failed {
		if err := cw.Write([]string{outcome.Email, outcome.Reason}); err != nil {
			return err
		}
	}
	for _, rej := range rejections {
		reason := fmt.Sprintf("row %d: %s", rej.Row, rej.Reason)
		if err := cw.Write([]string{rej.Email, reason}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
