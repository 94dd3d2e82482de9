package jobs

import (
	"context"

	"rosterhub-backend/internal/logger"
)

// SweepOrphanIdentities reconciles the identity provider against the members
// table: any identity with no profile row is the residue of a lost
// compensating delete (or an account created outside the pipeline). The
// sweep only reports; it never deletes remote state.
func (jr *JobRunner) SweepOrphanIdentities() {
	jr.runWithRecovery("SweepOrphanIdentities", func() {
		ctx := context.Background()

		identities, err := jr.ids.List(ctx)
		if err != nil {
			logger.Error("Orphan sweep failed to list identities", "error", err)
			return
		}

		ids, err := jr.members.ListIdentityIDs(ctx)
		if err != nil {
			logger.Error("Orphan sweep failed to list profile rows", "error", err)
			return
		}
		known := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			known[id] = struct{}{}
		}

		var orphanEmails []string
		for _, ident := range identities {
			if _, ok := known[ident.ID]; !ok {
				logger.Warn("Identity without profile row", "identity_id", ident.ID, "email", ident.Email)
				orphanEmails = append(orphanEmails, ident.Email)
			}
		}

		logger.Info("Orphan sweep finished", "identities", len(identities), "profiles", len(ids), "orphans", len(orphanEmails))

		if len(orphanEmails) > 0 && jr.email != nil {
			if err := jr.email.SendOrphanReport(ctx, orphanEmails); err != nil {
				logger.Error("Failed to send orphan sweep report", "error", err)
			}
		}
	})
}
