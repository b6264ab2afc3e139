package jobs

import (
	"context"
	"time"

	"toolrent-backend/internal/logger"
)

// SendOverdueReminders emails every client holding an overdue active loan
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		// Find overdue active loans with the borrower's contact details
		query := `
			SELECT l.id, l.due_date, c.email, c.name
			FROM loans l
			JOIN clients c ON c.run = l.client_run
			WHERE l.status = 'ACTIVE'
			  AND l.due_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to query overdue loans", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				loanID  int32
				dueDate time.Time
				email   string
				name    string
			)
			if err := rows.Scan(&loanID, &dueDate, &email, &name); err != nil {
				logger.Error("Failed to scan overdue loan", "error", err)
				continue
			}

			if err := jr.services.Email.SendOverdueReminder(ctx, email, name, loanID, dueDate); err != nil {
				logger.Error("Failed to send overdue reminder email",
					"loan_id", loanID,
					"email", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent overdue reminder", "loan_id", loanID, "email", email)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue loans", "error", err)
			return
		}

		logger.Info("Overdue reminders sent", "count", count)
	})
}
