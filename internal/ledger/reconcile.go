package ledger

import (
	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/utils"
)

// Reconcile computes the available admin balance: total admin fees across
// the ledger minus settled payouts, floored at zero. It is a pure function
// of its inputs; calling it twice on the same snapshot yields the same
// value. A nil payouts slice means no payouts, not an error.
func Reconcile(transactions []domain.Transaction, payouts []domain.Payout) float64 {
	return Summarize(transactions, payouts, 0).Available
}

// Summarize returns the full balance breakdown alongside the stored
// snapshot value the caller wants reported for comparison.
func Summarize(transactions []domain.Transaction, payouts []domain.Payout, storedBalance float64) domain.BalanceSummary {
	var totalFees float64
	for _, t := range transactions {
		totalFees += t.AdminFee
	}

	var totalPayouts float64
	for _, p := range payouts {
		if p.Status.Settled() {
			totalPayouts += p.Amount
		}
	}

	available := utils.Round2(totalFees - totalPayouts)
	if available < 0 {
		available = 0
	}
	return domain.BalanceSummary{
		Available:      available,
		TotalAdminFees: utils.Round2(totalFees),
		TotalPayouts:   utils.Round2(totalPayouts),
		StoredBalance:  storedBalance,
	}
}
