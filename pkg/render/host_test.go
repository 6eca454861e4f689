package render

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-breakout/pkg/engine"
)

func newSimulationHost(t *testing.T) (*TerminalHost, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	host := NewTerminalHost(screen, engine.NewGame(nil), nil)
	host.Interval = time.Millisecond
	return host, screen
}

func TestTerminalHost_QuitKey(t *testing.T) {
	host, screen := newSimulationHost(t)
	require.NoError(t, screen.PostEvent(runeKey('q')))

	done := make(chan error, 1)
	go func() { done <- host.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("host did not stop on quit key")
	}
}

func TestTerminalHost_ContextCancel(t *testing.T) {
	host, _ := newSimulationHost(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- host.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("host did not stop on cancel")
	}

	assert.Greater(t, host.Game.Frame, uint64(0))
	assert.Equal(t, engine.StatePaused, host.Game.State)
}

func TestTerminalHost_NextInput(t *testing.T) {
	host, _ := newSimulationHost(t)
	now := time.Now()

	host.Latch.HandleEvent(runeKey(' '), now)
	host.Latch.HandleEvent(runeKey('d'), now)

	in := host.nextInput(now, 0.016, engine.Input{})
	assert.Equal(t, engine.Input{
		DeltaTime:         0.016,
		Right:             true,
		Start:             true,
		FramebufferWidth:  80,
		FramebufferHeight: 25,
	}, in)
	assert.True(t, in.StartPressed())

	next := host.nextInput(now, 0.016, in)
	assert.False(t, next.Start)
	assert.True(t, next.PrevStart)
	assert.False(t, next.StartPressed())
}
