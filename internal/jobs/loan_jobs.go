package jobs

import (
	"context"

	"toolrent-backend/internal/logger"
)

// MarkOverdueLoans flags overdue active loans and restricts their clients.
// The sweep is idempotent, so overlapping runs are harmless.
func (jr *JobRunner) MarkOverdueLoans() {
	jr.runWithRecovery("MarkOverdueLoans", func() {
		ctx := context.Background()

		if err := jr.services.Loan.CheckAndSetLateStatuses(ctx); err != nil {
			logger.Error("Failed to mark overdue loans", "error", err)
			return
		}
		logger.Info("Overdue loan sweep finished")
	})
}
