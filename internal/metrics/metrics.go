package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// NotifierStats tracks the expiry notifier job.
type NotifierStats struct {
	Scans             Counter
	NotificationsSent Counter
	NotificationsFail Counter
}

type NotifierSnapshot struct {
	Scans             uint64 `json:"scans"`
	NotificationsSent uint64 `json:"notifications_sent"`
	NotificationsFail uint64 `json:"notifications_failed"`
}

func (s *NotifierStats) Snapshot() NotifierSnapshot {
	return NotifierSnapshot{
		Scans:             s.Scans.Load(),
		NotificationsSent: s.NotificationsSent.Load(),
		NotificationsFail: s.NotificationsFail.Load(),
	}
}
