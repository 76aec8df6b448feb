package storage

import (
	"sync"
	"time"

	"github.com/conlin/hanzideck/internal/domain"
)

// Autosaver coalesces rapid ScheduleSave calls into one deferred disk write.
// Each call replaces the pending snapshot and restarts the timer, so a write
// superseded before it fires is dropped, never interleaved. Failures are
// logged, not returned: autosave must never interrupt a study flow.
type Autosaver struct {
	store *Store
	delay time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	pending    []domain.Card
	hasPending bool

	// writeMu serializes the actual disk writes so a slow write can never
	// race a later one.
	writeMu sync.Mutex
}

// NewAutosaver wraps a store with a debounce window. A non-positive delay
// falls back to 500ms.
func NewAutosaver(store *Store, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Autosaver{store: store, delay: delay}
}

// ScheduleSave records the snapshot as the latest pending write and arms the
// debounce timer, cancelling any write already scheduled. Returns
// immediately; the write happens on the timer goroutine.
func (a *Autosaver) ScheduleSave(cards []domain.Card) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = cards
	a.hasPending = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.flush)
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	cards, ok := a.pending, a.hasPending
	a.pending = nil
	a.hasPending = false
	a.timer = nil
	a.mu.Unlock()

	if !ok {
		return
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	if err := a.store.Save(cards); err != nil {
		a.store.logger.Warn("autosave failed", "path", a.store.path, "error", err)
	}
}

// Flush writes any pending snapshot synchronously. Used on shutdown and by
// explicit data-management actions that must not lose a queued write.
func (a *Autosaver) Flush() error {
	a.mu.Lock()
	cards, ok := a.pending, a.hasPending
	a.pending = nil
	a.hasPending = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	if !ok {
		return nil
	}
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	return a.store.Save(cards)
}

// Close flushes and releases the timer. The autosaver must not be used
// afterwards.
func (a *Autosaver) Close() error {
	return a.Flush()
}
