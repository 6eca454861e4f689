package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultLatchWindow is how long a movement key counts as held after its
// last press or auto-repeat.
const DefaultLatchWindow = 150 * time.Millisecond

// KeyLatch turns terminal key presses into held-button state. Terminals
// report presses and auto-repeats but never releases, so a movement key
// is treated as held until the window passes without another press.
// HandleEvent and Poll may be called from different goroutines.
type KeyLatch struct {
	mu     sync.Mutex
	window time.Duration
	left   time.Time
	right  time.Time
	start  bool
}

// NewKeyLatch creates a latch with the given hold window
func NewKeyLatch(window time.Duration) *KeyLatch {
	if window <= 0 {
		window = DefaultLatchWindow
	}
	return &KeyLatch{window: window}
}

// HandleEvent records a key event at now and reports whether it asks to
// quit.
func (l *KeyLatch) HandleEvent(ev tcell.Event, now time.Time) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		l.pressLeft(now)
	case tcell.KeyRight:
		l.pressRight(now)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			l.start = true
		case 'a', 'A':
			l.pressLeft(now)
		case 'd', 'D':
			l.pressRight(now)
		}
	}
	return false
}

// pressing one direction releases the other
func (l *KeyLatch) pressLeft(now time.Time) {
	l.left = now
	l.right = time.Time{}
}

func (l *KeyLatch) pressRight(now time.Time) {
	l.right = now
	l.left = time.Time{}
}

// Poll returns the button state at now. A start press is reported once.
func (l *KeyLatch) Poll(now time.Time) (left, right, start bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	left = !l.left.IsZero() && now.Sub(l.left) <= l.window
	right = !l.right.IsZero() && now.Sub(l.right) <= l.window
	start = l.start
	l.start = false
	return left, right, start
}
