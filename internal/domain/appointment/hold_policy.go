package appointment

import "time"

// HoldPolicy decides whether an appointment still occupies its slot.
// PendingTTL of zero keeps unpaid holds forever.
type HoldPolicy struct {
	PendingTTL time.Duration
}

func (p HoldPolicy) Blocks(status PaymentStatus, createdAt, now time.Time) bool {
	switch status {
	case PaymentPaid:
		return true
	case PaymentPending:
		if p.PendingTTL <= 0 {
			return true
		}
		return now.Before(createdAt.Add(p.PendingTTL))
	default:
		return false
	}
}

// StaleBefore is the creation cutoff for pending holds that no longer block.
// The zero time means nothing is stale.
func (p HoldPolicy) StaleBefore(now time.Time) time.Time {
	if p.PendingTTL <= 0 {
		return time.Time{}
	}
	return now.Add(-p.PendingTTL)
}
