package jobs

import (
	"context"
	"math"
	"time"

	"staynest-admin-backend/internal/logger"
)

// SnapshotBalance recomputes the admin balance from the booking and
// payout collections and persists it as the stored fallback value. The
// stored value is never trusted by balance reads; it exists so the
// dashboard has something to show when a recomputation fails.
func (jr *JobRunner) SnapshotBalance() {
	jr.runWithRecovery("SnapshotBalance", func() {
		ctx := context.Background()

		summary, err := jr.services.Ledger.GetBalance(ctx)
		if err != nil {
			logger.Error("Failed to recompute balance", "error", err)
			return
		}

		if err := jr.settingsRepo.UpdateStoredBalance(ctx, summary.Available); err != nil {
			logger.Error("Failed to store balance snapshot", "error", err)
			return
		}

		logger.Info("Balance snapshot stored",
			"available", summary.Available,
			"total_fees", summary.TotalAdminFees,
			"total_payouts", summary.TotalPayouts)
	})
}

// CheckBalanceDrift compares the stored snapshot against a fresh
// recomputation and logs when they disagree beyond rounding.
func (jr *JobRunner) CheckBalanceDrift() {
	jr.runWithRecovery("CheckBalanceDrift", func() {
		ctx := context.Background()

		summary, err := jr.services.Ledger.GetBalance(ctx)
		if err != nil {
			logger.Error("Failed to recompute balance", "error", err)
			return
		}

		drift := math.Abs(summary.Available - summary.StoredBalance)
		if drift > 0.01 {
			logger.Warn("Stored balance drifted from recomputed value",
				"stored", summary.StoredBalance,
				"computed", summary.Available,
				"drift", drift)
			return
		}
		logger.Info("Stored balance matches recomputed value", "balance", summary.Available)
	})
}

// SendPayoutSummary emails the admin a digest of payouts settled in the
// last 24 hours. Skipped when no admin email is configured or nothing
// was paid out.
func (jr *JobRunner) SendPayoutSummary() {
	jr.runWithRecovery("SendPayoutSummary", func() {
		adminEmail := jr.config.Email.AdminEmail
		if adminEmail == "" {
			logger.Info("No admin email configured, skipping payout summary")
			return
		}

		ctx := context.Background()
		payouts, err := jr.payoutRepo.ListAll(ctx)
		if err != nil {
			logger.Error("Failed to list payouts", "error", err)
			return
		}

		cutoff := time.Now().Add(-24 * time.Hour)
		var count int
		var total float64
		for _, p := range payouts {
			if !p.Status.Settled() || p.CreatedAt.Before(cutoff) {
				continue
			}
			count++
			total += p.Amount
		}
		if count == 0 {
			logger.Info("No payouts in the last 24 hours, skipping summary")
			return
		}

		if err := jr.services.Email.SendPayoutSummary(ctx, adminEmail, count, total); err != nil {
			logger.Error("Failed to send payout summary", "error", err)
			return
		}
		logger.Info("Payout summary sent", "count", count, "total", total)
	})
}
