package countdown

import (
	"context"
	"fmt"
	"time"
)

// Tier is the discrete urgency of a deadline.

type Tier string

const (
	TierChill    Tier = "chill"    // more than two days out
	TierNormal   Tier = "normal"   // within two days
	TierUrgent   Tier = "urgent"   // under a day, three hours or more left
	TierCritical Tier = "critical" // under three hours
	TierExpired  Tier = "expired"  // past due
)

const day = 24 * time.Hour

// Snapshot is one classification of a deadline at a point in time.
// Remaining is negative once the deadline has passed.

type Snapshot struct {
	Tier      Tier
	Remaining time.Duration
	Display   string
}

// Classify maps a due timestamp and the current time into an urgency tier and
// a display string. Pure and idempotent in (now, due): callers re-evaluate it
// on every tick from absolute timestamps, never by decrementing a counter.
func Classify(now, due time.Time) Snapshot {
	diff := due.Sub(now)
	if diff < 0 {
		return Snapshot{
			Tier:      TierExpired,
			Remaining: diff,
			Display:   "+" + format(-diff),
		}
	}

	var tier Tier
	switch {
	case diff > 2*day:
		tier = TierChill
	case diff >= day:
		tier = TierNormal
	case diff >= 3*time.Hour:
		tier = TierUrgent
	default:
		tier = TierCritical
	}
	return Snapshot{Tier: tier, Remaining: diff, Display: format(diff)}
}

// format renders a magnitude at decreasing granularity: whole days, then
// whole hours, then mm:ss. Truncates at each unit boundary.
func format(d time.Duration) string {
	switch {
	case d >= day:
		return fmt.Sprintf("%dd", int(d/day))
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	default:
		return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d/time.Second)%60)
	}
}

// Watch re-classifies due once a second and hands each fresh snapshot to fn,
// until ctx is cancelled. The ticker is always stopped on return; cancelling
// ctx is the only teardown a caller needs.
func Watch(ctx context.Context, due time.Time, fn func(Snapshot)) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fn(Classify(time.Now(), due))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(Classify(now, due))
		}
	}
}
