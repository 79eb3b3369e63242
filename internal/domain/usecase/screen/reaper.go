package screen

import (
	"context"
	"time"

	"weather-app/internal/domain/gateway/store"
)

// Reaper releases screens whose ttl has elapsed without an unmount
type Reaper struct {
	screenStore store.ScreenStore
	lifetimes   *Lifetimes
	ttl         time.Duration
}

// Reaped counts what one Reap dropped
type Reaped struct {
	Screens   int
	Lifetimes int
}

func NewReaper(screenStore store.ScreenStore, lifetimes *Lifetimes, ttl time.Duration) *Reaper {
	return &Reaper{screenStore: screenStore, lifetimes: lifetimes, ttl: ttl}
}

// Reap sweeps expired screens out of stores that do not expire keys themselves,
// then ends the local lifetimes mounted more than ttl before now.
func (r *Reaper) Reap(ctx context.Context, now time.Time) (Reaped, error) {
	var reaped Reaped
	if r.ttl <= 0 {
		return reaped, nil
	}

	if sweeper, ok := r.screenStore.(store.Sweeper); ok {
		swept, err := sweeper.Sweep(ctx, now)
		if err != nil {
			return reaped, err
		}
		reaped.Screens = swept
	}

	reaped.Lifetimes = len(r.lifetimes.EndStartedBefore(now.Add(-r.ttl)))
	return reaped, nil
}
