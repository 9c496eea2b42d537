package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelops-be/internal/logger"
	"hotelops-be/internal/mailer"
	"hotelops-be/internal/metrics"

	"go.uber.org/zap"
)

// renotifyAfter is how long a stamped item stays quiet before it is
// reported again while still inside the expiry window.
const renotifyAfter = 24 * time.Hour

// Notifier periodically scans for inventory expiring within the next seven
// days and emails a single digest to the configured recipient. It replaces
// the legacy behavior of piggybacking the scan on every list request.
type Notifier struct {
	repo      Repository
	mail      mailer.Mailer
	recipient string
	interval  time.Duration
	stats     *metrics.NotifierStats
	now       func() time.Time
	stopCh    chan struct{}
}

func NewNotifier(repo Repository, mail mailer.Mailer, recipient string, interval time.Duration) *Notifier {
	return &Notifier{
		repo:      repo,
		mail:      mail,
		recipient: recipient,
		interval:  interval,
		stats:     &metrics.NotifierStats{},
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

func (n *Notifier) Stats() metrics.NotifierSnapshot {
	return n.stats.Snapshot()
}

// Start runs the scan loop until the context is cancelled or Stop is called.
func (n *Notifier) Start(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	logger.L().Info("expiry notifier started",
		zap.Duration("interval", n.interval),
		zap.String("recipient", n.recipient),
	)

	for {
		select {
		case <-ctx.Done():
			logger.L().Info("expiry notifier shutting down")
			return
		case <-n.stopCh:
			logger.L().Info("expiry notifier stopped")
			return
		case <-ticker.C:
			n.Scan(ctx)
		}
	}
}

func (n *Notifier) Stop() {
	close(n.stopCh)
}

// Scan runs one pass. A dispatch failure is logged and swallowed; it never
// propagates to callers and nothing is retried before the next tick.
func (n *Notifier) Scan(ctx context.Context) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()
	n.stats.Scans.Inc()

	now := n.now()
	from, to := ExpiryWindow(now)

	items, err := n.repo.ExpiringBetween(ctx, from, to, now.Add(-renotifyAfter))
	if err != nil {
		log.Error("expiry scan failed", zap.Error(err))
		return
	}
	if len(items) == 0 {
		return
	}

	msg := mailer.Message{
		To:      n.recipient,
		Subject: "ALERT: Inventory Items Expiring Soon",
		Text:    composeText(items),
		HTML:    composeHTML(items),
	}

	if err := n.mail.Send(ctx, msg); err != nil {
		n.stats.NotificationsFail.Inc()
		log.Error("failed to send expiry notification",
			zap.Int("item_count", len(items)),
			zap.Error(err),
		)
		return
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if err := n.repo.MarkNotified(ctx, ids, now); err != nil {
		log.Error("failed to stamp notified items", zap.Error(err))
	}

	n.stats.NotificationsSent.Inc()
	log.Info("expiry notification sent",
		zap.Int("item_count", len(items)),
		zap.Duration("scan_duration", timer.Duration()),
	)
}

func composeText(items []*InventoryItem) string {
	var b strings.Builder
	b.WriteString("The following inventory items are expiring within the next 7 days:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "ID: %d | Name: %s | Category: %s | Quantity: %d | Expires: %s\n",
			it.InventoryID, it.Name, it.Category, it.Quantity,
			it.ExpireDate.Format("1/2/2006"),
		)
	}
	return b.String()
}

func composeHTML(items []*InventoryItem) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px;">`)
	b.WriteString("<h2>Inventory Expiration Alert</h2>")
	b.WriteString("<p>The following inventory items are expiring within the next 7 days:</p>")
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin-top: 20px;">`)
	b.WriteString("<tr><th>Inventory ID</th><th>Name</th><th>Category</th><th>Quantity</th><th>Expiration Date</th></tr>")
	for _, it := range items {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>",
			it.InventoryID, it.Name, it.Category, it.Quantity,
			it.ExpireDate.Format("1/2/2006"),
		)
	}
	b.WriteString("</table>")
	b.WriteString("<p>Please take action to manage these items before they expire.</p>")
	b.WriteString("</div>")
	return b.String()
}
