package jobs

import (
	"context"
	"time"

	"roomreserve-backend/internal/logger"
)

const staleReason = "expired automatically: the reservation date has passed without a decision"

// ExpireStaleReservations rejects PENDING reservations whose date has already
// passed, so the admin queue only shows requests that can still be honored.
func (jr *JobRunner) ExpireStaleReservations() {
	jr.runWithRecovery("ExpireStaleReservations", func() {
		ctx := context.Background()
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		expired := 0
		for _, rv := range jr.ledger.ListPending() {
			if !rv.Day().Before(today) {
				continue
			}
			if _, err := jr.ledger.Reject(ctx, rv.ID, staleReason); err != nil {
				logger.Error("failed to expire stale reservation", "reservation", rv.ID, "error", err)
				continue
			}
			expired++
		}
		logger.Info("expired stale pending reservations", "count", expired)
	})
}

// SendPendingSummary mails every administrator the size of the pending queue.
func (jr *JobRunner) SendPendingSummary() {
	jr.runWithRecovery("SendPendingSummary", func() {
		ctx := context.Background()

		pending := jr.ledger.ListPending()
		if len(pending) == 0 {
			logger.Debug("no pending reservations, skipping summary")
			return
		}

		admins, err := jr.userRepo.ListAdministrators(ctx)
		if err != nil {
			logger.Error("failed to list administrators", "error", err)
			return
		}
		for _, admin := range admins {
			if admin.Email == "" {
				continue
			}
			if err := jr.emailSvc.SendPendingSummary(ctx, admin.Email, len(pending)); err != nil {
				logger.Error("failed to send pending summary", "admin", admin.Username, "error", err)
			}
		}
	})
}
