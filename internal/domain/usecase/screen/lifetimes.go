package screen

import (
	"context"
	"errors"
	"sync"
	"time"

	"weather-app/internal/domain/gateway/store"
)

// Lifetimes tracks one cancellable context per mounted screen.
// Work bound to a screen stops when the screen is unmounted.
type Lifetimes struct {
	mutex   sync.Mutex
	screens map[string]lifetime
	now     func() time.Time
}

type lifetime struct {
	ctx       context.Context
	cancel    context.CancelFunc
	startedAt time.Time
}

func NewLifetimes() *Lifetimes {
	return &Lifetimes{screens: make(map[string]lifetime), now: time.Now}
}

// Start opens the lifetime of screen id
func (l *Lifetimes) Start(id string) {
	ctx, cancel := context.WithCancel(context.Background())

	l.mutex.Lock()
	defer l.mutex.Unlock()
	if previous, exists := l.screens[id]; exists {
		previous.cancel()
	}
	l.screens[id] = lifetime{ctx: ctx, cancel: cancel, startedAt: l.now()}
}

// Bind derives a context from ctx that is also cancelled when screen id ends.
// Screens mounted by another process have no local lifetime and only follow ctx.
func (l *Lifetimes) Bind(ctx context.Context, id string) (context.Context, context.CancelFunc) {
	l.mutex.Lock()
	current, exists := l.screens[id]
	l.mutex.Unlock()

	bound, cancel := context.WithCancel(ctx)
	if !exists {
		return bound, cancel
	}

	stop := context.AfterFunc(current.ctx, cancel)
	return bound, func() {
		stop()
		cancel()
	}
}

// End cancels every operation bound to screen id
func (l *Lifetimes) End(id string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if current, exists := l.screens[id]; exists {
		current.cancel()
		delete(l.screens, id)
	}
}

// Release ends screen id when err says the store no longer holds it
func (l *Lifetimes) Release(id string, err error) {
	if errors.Is(err, store.ErrScreenNotFound) {
		l.End(id)
	}
}

// EndStartedBefore ends every lifetime started before cutoff and returns their ids
func (l *Lifetimes) EndStartedBefore(cutoff time.Time) []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var ended []string
	for id, current := range l.screens {
		if current.startedAt.Before(cutoff) {
			current.cancel()
			delete(l.screens, id)
			ended = append(ended, id)
		}
	}
	return ended
}

// Active reports whether screen id is mounted in this process
func (l *Lifetimes) Active(id string) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, exists := l.screens[id]
	return exists
}

// Len returns how many screens are mounted in this process
func (l *Lifetimes) Len() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.screens)
}
