package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rosterhub-backend/internal/logger"
)

type emailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	reportTo   string
	reportName string
}

// NewEmailService builds the SendGrid-backed notification sender. Reports go
// to the configured operations recipient.
func NewEmailService(apiKey, fromEmail, fromName, reportTo, reportName string) EmailService {
	return &emailService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		reportTo:   reportTo,
		reportName: reportName,
	}
}

func (s *emailService) SendBatchReport(ctx context.Context, summary BatchSummary) error {
	subject := fmt.Sprintf("Bulk import finished: %d provisioned, %d failed", summary.Successful, summary.Failed+summary.Rejected)
	body := fmt.Sprintf(
		"A bulk member import has finished.\n\nBatch: %s\nRows accepted for provisioning: %d\nProvisioned: %d\nFailed during provisioning: %d\nRejected during validation: %d\n\nThe failure manifest is available for download in the admin console.",
		summary.BatchID, summary.Total, summary.Successful, summary.Failed, summary.Rejected,
	)
	return s.send(subject, body)
}

func (s *emailService) SendOrphanReport(ctx context.Context, orphanEmails []string) error {
	subject := fmt.Sprintf("Orphan identity sweep: %d identities without a profile", len(orphanEmails))
	body := fmt.Sprintf(
		"The nightly sweep found %d authentication identities with no matching profile row. These are usually the residue of a lost compensating delete and need manual review:\n\n%s",
		len(orphanEmails), strings.Join(orphanEmails, "\n"),
	)
	return s.send(subject, body)
}

func (s *emailService) send(subject, plainText string) error {
	log := logger.WithService("sendgrid")
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(s.reportName, s.reportTo)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	log.Debug("Report email sent", "subject", subject, "to", s.reportTo)
	return nil
}
