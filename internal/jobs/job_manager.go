package jobs

import (
	"fmt"
)

// JobManager starts and stops all scheduled jobs together.
type JobManager struct {
	escalationJob      *EscalationJob
	paymentReminderJob *PaymentReminderJob
}

func NewJobManager(escalationJob *EscalationJob, paymentReminderJob *PaymentReminderJob) *JobManager {
	return &JobManager{
		escalationJob:      escalationJob,
		paymentReminderJob: paymentReminderJob,
	}
}

// StartAll starts every job, or none of them.
func (jm *JobManager) StartAll() error {
	if err := jm.escalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start escalation job: %w", err)
	}

	if err := jm.paymentReminderJob.Start(); err != nil {
		jm.escalationJob.Stop()
		return fmt.Errorf("failed to start payment reminder job: %w", err)
	}

	return nil
}

// StopAll stops the jobs and waits for running scans.
func (jm *JobManager) StopAll() {
	jm.paymentReminderJob.Stop()
	jm.escalationJob.Stop()
}
