package portalworker

import (
	"context"
	"time"

	"ats-backend/db"
	sessionstore "ats-backend/lib/portal/session-store"
	baseworker "ats-backend/lib/utils/base-worker"
)

// StartWorker sweeps expired portal sessions. It runs unsynchronized with
// login/validation; deleting a session that is being validated concurrently
// is acceptable.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl:     *baseworker.NewInstance("SessionSweepWorker", 30*time.Second, 15*time.Minute),
		sessionStore: sessionstore.NewInstance(db.DB),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	sessionStore sessionstore.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	deleted, err := i.sessionStore.DeleteExpired(time.Now())
	if err != nil {
		logger.WithError(err).Error("failed to delete expired sessions")
		return
	}
	if deleted > 0 {
		logger.Infof("deleted %v expired sessions", deleted)
	}
}
