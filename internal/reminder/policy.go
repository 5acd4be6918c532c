// Package reminder decides when the user should be nudged about pending
// work and delivers the nudge to the desktop.
package reminder

import (
	"strconv"
	"sync"

	"github.com/JoquimMarques/DaySignal/internal/storage"
)

// Permission mirrors the desktop notification permission state. Only
// granted permits delivery; default means the user has not been asked yet.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

func (p Permission) IsValid() bool {
	switch p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return true
	default:
		return false
	}
}

// DefaultPendingThreshold is the pending-count a day must exceed before
// reminders fire.
const DefaultPendingThreshold = 2

// lastCountUnset marks a policy that has never recorded a notified count.
// Pending counts are never negative, so -1 cannot collide.
const lastCountUnset = -1

// Policy applies the reminder rules. Two triggers consult it:
//
// The interval trigger fires on a timer and reminds whenever the pending
// count exceeds the threshold, every time, without deduplication. The
// change trigger fires after each mutation and additionally requires the
// pending count to differ from the last count it notified for, so a burst
// of unrelated edits does not repeat the same nudge.
type Policy struct {
	mu        sync.Mutex
	kv        storage.KV
	threshold int
	lastCount int
}

// NewPolicy loads the last-notified count from storage so change-trigger
// deduplication survives restarts.
func NewPolicy(kv storage.KV, threshold int) *Policy {
	p := &Policy{kv: kv, threshold: threshold, lastCount: lastCountUnset}
	if raw, err := kv.Get(storage.KeyLastNotifyCount); err == nil {
		if n, perr := strconv.Atoi(raw); perr == nil && n >= 0 {
			p.lastCount = n
		}
	}
	return p
}

// ShouldRemindInterval reports whether the periodic timer should nudge.
// Interval reminders repeat deliberately: the count staying high is the
// point.
func (p *Policy) ShouldRemindInterval(perm Permission, pending int) bool {
	return perm == PermissionGranted && pending > p.threshold
}

// ShouldRemindOnChange reports whether a just-applied mutation should
// nudge. A true result records the count, in memory and in storage, so the
// same count never triggers twice in a row. The count is recorded on the
// decision to send, not on delivery success.
func (p *Policy) ShouldRemindOnChange(perm Permission, pending int) bool {
	if perm != PermissionGranted || pending <= p.threshold {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if pending == p.lastCount {
		return false
	}
	p.lastCount = pending
	_ = p.kv.Set(storage.KeyLastNotifyCount, strconv.Itoa(pending))
	return true
}
