package render

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-breakout/pkg/engine"
	"github.com/opd-ai/go-breakout/pkg/logging"
)

// DefaultFrameInterval paces the terminal host at roughly 60 frames a second
const DefaultFrameInterval = 16 * time.Millisecond

// errQuit stops the host when the player asks to leave
var errQuit = errors.New("quit requested")

// TerminalHost runs a game on a tcell screen. One goroutine reads key
// events into a KeyLatch; the frame loop is the only code that touches
// the Game.
type TerminalHost struct {
	Screen   tcell.Screen
	Game     *engine.Game
	Renderer *TerminalRenderer
	Latch    *KeyLatch
	Logger   *logging.Logger
	Interval time.Duration
}

// NewTerminalHost wires a game to an initialised screen
func NewTerminalHost(screen tcell.Screen, game *engine.Game, logger *logging.Logger) *TerminalHost {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &TerminalHost{
		Screen:   screen,
		Game:     game,
		Renderer: NewTerminalRenderer(screen, game.Snapshot(engine.Input{}).World),
		Latch:    NewKeyLatch(DefaultLatchWindow),
		Logger:   logger,
		Interval: DefaultFrameInterval,
	}
}

// Run drives frames until ctx is cancelled or the player quits. Either
// way it returns nil; any other error is returned as is.
func (h *TerminalHost) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return h.pollEvents() })
	g.Go(func() error { return h.frameLoop(ctx) })

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		h.Logger.Info(ctx, "terminal host stopped", "frames", h.Game.Frame, "score", h.Game.Score)
		return nil
	}
	return err
}

func (h *TerminalHost) pollEvents() error {
	for {
		ev := h.Screen.PollEvent()
		switch ev.(type) {
		case nil:
			// screen finalised
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			h.Screen.Sync()
		}
		if h.Latch.HandleEvent(ev, time.Now()) {
			return errQuit
		}
	}
}

func (h *TerminalHost) frameLoop(ctx context.Context) error {
	ticker := time.NewTicker(h.Interval)
	defer ticker.Stop()

	// wake the event goroutine however this loop ends
	defer func() { _ = h.Screen.PostEvent(tcell.NewEventInterrupt(nil)) }()

	last := time.Now()
	var prev engine.Input

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			in := h.nextInput(now, now.Sub(last).Seconds(), prev)
			last = now
			prev = in

			h.Game.Update(in).Render(h.Renderer)
		}
	}
}

func (h *TerminalHost) nextInput(now time.Time, dt float64, prev engine.Input) engine.Input {
	left, right, start := h.Latch.Poll(now)
	w, ht := h.Screen.Size()
	return engine.Input{
		DeltaTime:         dt,
		Left:              left,
		Right:             right,
		Start:             start,
		PrevStart:         prev.Start,
		FramebufferWidth:  w,
		FramebufferHeight: ht,
	}
}
