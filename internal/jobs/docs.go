// Package jobs runs the background scans of the order lifecycle on cron
// schedules (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Jobs
//
//  1. EscalationJob disputes orders whose 24h auto-dispute deadline passed
//     while they sat in proof_sent or confirmed, and blocks the seller.
//  2. PaymentReminderJob reminds the seller once when a proof has waited 6h.
//
// Both run each order in its own transaction. A scan that loses a race to a
// buyer or seller skips that order; the next scan needs nothing from the
// previous one, so a crashed scan is simply retried on the next tick.
//
//	jobManager := jobs.NewJobManager(escalationJob, reminderJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
