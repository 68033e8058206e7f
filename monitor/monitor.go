package monitor

import (
	"time"

	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/logging"
	"github.com/bio-registry/part-hub/metrics"
)

const RefreshInterval = 30 * time.Second

// Monitor periodically refreshes the registry gauges from database counts.
type Monitor struct {
	dao db.RegistryDao
}

func NewMonitor(dao db.RegistryDao) *Monitor {
	return &Monitor{dao: dao}
}

func (m *Monitor) StartLoop() {
	go func() {
		refreshTicker := time.NewTicker(RefreshInterval)
		for range refreshTicker.C {
			if err := m.refresh(); err != nil {
				logging.Logger.Errorf("failed to refresh registry gauges, err=%s", err.Error())
				continue
			}
		}
	}()
}

func (m *Monitor) refresh() error {
	inProgress, err := m.dao.CountUploadsByStatus(db.InProgress)
	if err != nil {
		return err
	}
	submitted, err := m.dao.CountUploadsByStatus(db.Submitted)
	if err != nil {
		return err
	}
	drafts, err := m.dao.CountEntriesByVisibility(db.Draft)
	if err != nil {
		return err
	}
	pending, err := m.dao.CountEntriesByVisibility(db.Pending)
	if err != nil {
		return err
	}
	public, err := m.dao.CountEntriesByVisibility(db.OK)
	if err != nil {
		return err
	}
	metrics.InProgressUploadsGauge.Set(float64(inProgress))
	metrics.SubmittedUploadsGauge.Set(float64(submitted))
	metrics.DraftEntriesGauge.Set(float64(drafts))
	metrics.PendingEntriesGauge.Set(float64(pending))
	metrics.PublicEntriesGauge.Set(float64(public))
	return nil
}
