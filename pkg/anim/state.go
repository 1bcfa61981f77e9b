// Package anim is the procedural pose synthesis engine: given an animation
// mode and a per-frame time delta it writes joint rotations into a
// caller-owned skeleton buffer. Every mode is a closed-form function of
// accumulated animation time, so a tick is O(1) and never fails.
package anim

import (
	"math/rand"
	"time"

	"github.com/lumaworks/go-skinview/pkg/skeleton"
)

// State holds the per-entity animation state: the active mode, playback
// speed and the time accumulator, plus the phase bookkeeping used only by
// ModeMixed. One State per animated entity; it is mutated in place by
// Tick, SetMode and SetSpeed and must only be touched by one goroutine at
// a time.
type State struct {
	mode  Mode
	speed float64
	time  float64

	// Mixed-mode phase state. Meaningful only while mode == ModeMixed and
	// phaseStarted is set; cleared on every mode change.
	phaseIdx      int
	phaseTime     float64
	phaseDuration float64
	phaseStarted  bool

	rng *rand.Rand
}

// NewState creates an animation state with time 0 and a time-seeded random
// source for mixed-mode dwell draws.
func NewState(mode Mode, speed float64) *State {
	return NewSeededState(mode, speed, time.Now().UnixNano())
}

// NewSeededState creates an animation state whose dwell draws come from a
// deterministic seed. Use this wherever reproducible phase timing matters.
func NewSeededState(mode Mode, speed float64, seed int64) *State {
	return &State{
		mode:  mode,
		speed: speed,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Mode returns the active animation mode.
func (s *State) Mode() Mode { return s.mode }

// Speed returns the playback speed multiplier.
func (s *State) Speed() float64 { return s.speed }

// Time returns the accumulated animation time in seconds.
func (s *State) Time() float64 { return s.time }

// Phase returns the active mixed-mode sub-mode. ok is false unless the
// state is in ModeMixed and has ticked at least once since entering it.
func (s *State) Phase() (phase Mode, ok bool) {
	if s.mode != ModeMixed || !s.phaseStarted {
		return ModeNone, false
	}
	return mixedSequence[s.phaseIdx], true
}

// SetMode switches the active mode. A real switch resets the time
// accumulator to zero; the next tick snaps to the new mode's pose with no
// blending.
func (s *State) SetMode(mode Mode) {
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.time = 0
	s.phaseStarted = false
}

// SetSpeed sets the playback speed multiplier. Zero freezes time, negative
// values run it backwards. Takes effect on the next tick's accumulation.
func (s *State) SetSpeed(speed float64) {
	s.speed = speed
}

// advance accumulates delta scaled by the playback speed.
func (s *State) advance(delta float64) {
	s.time += delta * s.speed
}

// poseFunc writes one mode's pose into the buffers. Each function advances
// the state's time accumulator itself, so callers that have already
// advanced it (the mixed scheduler) delegate with delta 0.
type poseFunc func(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64)

// poseTable is the closed mode dispatch table. A nil entry means
// reset-to-neutral. The ModeMixed slot is filled in init: mixedPose itself
// dispatches through this table, and naming it in the literal would be an
// initialization cycle.
var poseTable = [...]poseFunc{
	ModeIdle:   idlePose,
	ModeWalk:   walkPose,
	ModeRun:    runPose,
	ModeFly:    flyPose,
	ModeWave:   wavePose,
	ModeCrouch: crouchPose,
	ModeSit:    sitPose,
	ModeNone:   nil,
}

func init() {
	poseTable[ModeMixed] = mixedPose
}

// Tick advances the animation by delta seconds of frame time and writes
// the resulting pose into p (and c when non-nil). Out-of-range modes fall
// back to the neutral pose rather than leaving stale joint values.
func (s *State) Tick(p *skeleton.Skeleton, c *skeleton.Cape, delta float64) {
	if s.mode < 0 || int(s.mode) >= len(poseTable) || poseTable[s.mode] == nil {
		p.Reset()
		return
	}
	poseTable[s.mode](p, c, s, delta)
}
