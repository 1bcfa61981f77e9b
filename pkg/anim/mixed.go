package anim

import (
	"math/rand"

	"github.com/lumaworks/go-skinview/pkg/skeleton"
)

// mixedSequence is the fixed cyclic order of mixed-mode phases. Only the
// dwell time in each slot is randomized, never the order.
var mixedSequence = [...]Mode{
	ModeIdle, ModeWalk, ModeIdle, ModeSit,
	ModeIdle, ModeCrouch, ModeIdle, ModeWave,
}

// dwellFor draws how long the given phase persists before the scheduler
// advances to the next slot.
func dwellFor(rng *rand.Rand, phase Mode) float64 {
	switch phase {
	case ModeWalk:
		return 4.0 + rng.Float64()*2.0
	case ModeSit:
		return 5.0 + rng.Float64()*3.0
	case ModeWave, ModeCrouch:
		return 2.0 + rng.Float64()*1.5
	default: // idle
		return 2.0 + rng.Float64()*2.0
	}
}

// mixedPose cycles through mixedSequence, delegating pose computation to
// the active phase's pose function. Time is advanced here once, so the
// delegate is invoked with delta 0 and must not accumulate again.
func mixedPose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	if !s.phaseStarted {
		s.phaseIdx = 0
		s.phaseTime = 0
		s.phaseDuration = 3.0 + s.rng.Float64()*2.0
		s.phaseStarted = true
	}

	step := delta * s.speed
	s.time += step
	s.phaseTime += step

	if s.phaseTime >= s.phaseDuration {
		s.phaseIdx = (s.phaseIdx + 1) % len(mixedSequence)
		s.phaseTime = 0
		s.phaseDuration = dwellFor(s.rng, mixedSequence[s.phaseIdx])
	}

	poseTable[mixedSequence[s.phaseIdx]](p, c, s, 0)
}
