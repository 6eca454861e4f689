// pkg/engine/input.go
package engine

import "math/rand/v2"

// Input is everything the host tells the simulation about one frame.
type Input struct {
	// DeltaTime is the elapsed real time in seconds
	DeltaTime float64
	Left      bool
	Right     bool
	Start     bool
	// PrevStart is Start as it was on the previous frame
	PrevStart bool

	// Framebuffer size is passed through to the snapshot for the renderer
	FramebufferWidth  int
	FramebufferHeight int
}

// StartPressed reports a rising edge of the start button
func (in Input) StartPressed() bool {
	return in.Start && !in.PrevStart
}

// Direction returns -1, 0 or 1 for the horizontal movement keys
func (in Input) Direction() float64 {
	dir := 0.0
	if in.Right {
		dir++
	}
	if in.Left {
		dir--
	}
	return dir
}

// ClampDeltaTime replaces a frame time above maxFrame, such as one
// measured across a debugger pause, with clamped. Negative values become 0.
func ClampDeltaTime(dt, maxFrame, clamped float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxFrame {
		return clamped
	}
	return dt
}

// RandomSource supplies uniform samples in [0,1) for launch angles
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a deterministic PCG generator for seed
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
