package jobs

import (
	"fmt"
	"log"
	"time"

	config "github.com/mainamike/course_marketplace/configs"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
	"github.com/mainamike/course_marketplace/notifications"
)

const staleIntentAge = 10 * time.Minute

// SweepStaleTransferIntents looks for transfer intents that never
// reached a terminal state: either the process died between the transfer
// call and the local commit, or the call timed out with an unknown
// outcome. These are never retried automatically; each one needs an
// operator to reconcile against the processor by idempotency key.
func SweepStaleTransferIntents() {
	log.Println("Running job: SweepStaleTransferIntents...")

	cutoff := time.Now().Add(-staleIntentAge)

	var staleIntents []models.TransferIntent
	err := database.DB.
		Where("status IN ? AND created_at < ?", []string{models.IntentPending, models.IntentUnknown}, cutoff).
		Find(&staleIntents).Error
	if err != nil {
		log.Printf("Error sweeping transfer intents: %v", err)
		return
	}

	if len(staleIntents) == 0 {
		log.Println("No stale transfer intents found.")
		return
	}

	for _, intent := range staleIntents {
		log.Printf("🔥 CRITICAL: transfer intent %s (instructor %s, $%.2f, key %s) has status %q with no settlement — manual reconciliation required",
			intent.ID, intent.InstructorID, intent.Amount, intent.IdempotencyKey, intent.Status)
	}

	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail != "" {
		go notifications.SendEmail(
			"Admin",
			adminEmail,
			"Payout Reconciliation Required",
			fmt.Sprintf("<h1>Stale Transfer Intents</h1><p>%d transfer intent(s) are older than %s without a settlement. Check the processor dashboard by idempotency key before retrying any payout.</p>",
				len(staleIntents), staleIntentAge),
		)
	}
}
