package checkin

import (
	"time"

	"github.com/cmlabs-hris/attendance-client/internal/pkg/cron"
)

// MonitorInterval is how often the window is re-evaluated for subscribers.
const MonitorInterval = time.Minute

// RegisterJobs adds the window refresh job to scheduler.
func (s *CheckInServiceImpl) RegisterJobs(scheduler *cron.Scheduler) {
	scheduler.AddJob("checkin_window_refresh", MonitorInterval, s.PublishWindow)
}
