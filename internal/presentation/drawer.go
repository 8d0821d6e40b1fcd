package presentation

import (
	"sync"
	"time"
)

// DefaultCloseDelay matches the exit transition of the history panel.
const DefaultCloseDelay = 220 * time.Millisecond

// Timer is the handle returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The default is time.AfterFunc.
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// DrawerOption configures a Drawer.
type DrawerOption func(*Drawer)

// WithScheduler replaces time.AfterFunc, mainly for tests.
func WithScheduler(s Scheduler) DrawerOption {
	return func(d *Drawer) { d.schedule = s }
}

// WithCloseDelay sets how long the closing flag stays up after a close.
func WithCloseDelay(delay time.Duration) DrawerOption {
	return func(d *Drawer) { d.delay = delay }
}

// Drawer tracks the history panel. While the panel slides out, Closing
// reports true; the flag clears after the close delay unless a newer toggle
// has superseded that close.
type Drawer struct {
	mu       sync.Mutex
	open     bool
	closing  bool
	delay    time.Duration
	schedule Scheduler
	timer    Timer
	gen      uint64
}

// NewDrawer returns a closed drawer.
func NewDrawer(opts ...DrawerOption) *Drawer {
	d := &Drawer{
		delay:    DefaultCloseDelay,
		schedule: afterFunc,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the open and closing flags.
func (d *Drawer) State() (open, closing bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open, d.closing
}

// CloseDelay returns the configured exit transition length.
func (d *Drawer) CloseDelay() time.Duration {
	return d.delay
}

// Toggle closes an open drawer and opens a closed one.
func (d *Drawer) Toggle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		d.closeLocked()
	} else {
		d.openLocked()
	}
}

// Open shows the drawer, interrupting any exit transition in progress.
func (d *Drawer) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.openLocked()
}

// Close hides the drawer and raises the closing flag for the close delay.
// Closing an already closed drawer does nothing.
func (d *Drawer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.open {
		d.closeLocked()
	}
}

// Stop cancels a pending closing reset.
func (d *Drawer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Drawer) openLocked() {
	d.cancelLocked()
	d.open = true
	d.closing = false
}

func (d *Drawer) closeLocked() {
	d.cancelLocked()
	d.open = false
	d.closing = true

	gen := d.gen
	d.timer = d.schedule(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		// A toggle after this close bumped gen; leave its state alone.
		if d.gen != gen {
			return
		}
		d.closing = false
		d.timer = nil
	})
}

// cancelLocked stops the pending timer and invalidates its callback in case
// it has already fired and is waiting on the lock.
func (d *Drawer) cancelLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
