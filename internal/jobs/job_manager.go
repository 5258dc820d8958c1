package jobs

import (
	"fmt"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	pendingOrderExpiryJob *PendingOrderExpiryJob
}

func NewJobManager(pendingOrderExpiryJob *PendingOrderExpiryJob) *JobManager {
	return &JobManager{pendingOrderExpiryJob: pendingOrderExpiryJob}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order expiry job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.pendingOrderExpiryJob.Stop()
}
