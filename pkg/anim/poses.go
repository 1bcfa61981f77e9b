package anim

import (
	"math"

	"github.com/lumaworks/go-skinview/pkg/skeleton"
)

// Per-mode pose functions. Each advances the time accumulator, derives a
// phase variable from it and writes absolute joint values. Joints a mode
// does not list keep whatever the previous mode left in them; only a mode
// switch to ModeNone (or wave's explicit zeroing) clears them. Every body
// height is written as the fixed baseline first, then the oscillation on
// top — the two writes must stay in that order.

// idlePose is a gentle breathing sway: subtle body bob, counter-phased arm
// drift and slow head motion.
func idlePose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := s.time

	p.BodyY = skeleton.DefaultBodyY
	p.BodyY += 0.08 * math.Sin(1.5*t)

	p.RightArm.Rotation.Z = 0.02*math.Sin(0.8*t) + 0.05
	p.LeftArm.Rotation.Z = 0.02*math.Sin(0.8*t+math.Pi) - 0.05

	p.Head.Rotation.Y = 0.05 * math.Sin(0.3*t)
	p.Head.Rotation.X = 0.02 * math.Sin(0.5*t)

	if c != nil {
		c.Rotation.X = 0.1*math.Pi + 0.03*math.Sin(0.8*t)
	}
}

// walkPose swings arms and legs in counter-phase with a bob on each step.
func walkPose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := 4 * s.time

	p.RightArm.Rotation.X = 0.8 * math.Sin(t)
	p.LeftArm.Rotation.X = -0.8 * math.Sin(t)

	p.RightLeg.Rotation.X = -0.6 * math.Sin(t)
	p.LeftLeg.Rotation.X = 0.6 * math.Sin(t)

	p.Head.Rotation.X = 0.05 * math.Sin(2*t)

	p.BodyY = skeleton.DefaultBodyY
	p.BodyY += 0.5 * math.Abs(math.Sin(t))

	if c != nil {
		c.Rotation.X = 0.15*math.Pi + 0.1*math.Sin(t)
	}
}

// runPose is walk at double frequency with larger swings, bent elbows and
// a forward lean.
func runPose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := 8 * s.time

	p.RightArm.Rotation.X = 1.2 * math.Sin(t)
	p.LeftArm.Rotation.X = -1.2 * math.Sin(t)
	p.RightArm.Rotation.Z = 0.3
	p.LeftArm.Rotation.Z = -0.3

	p.RightLeg.Rotation.X = -1.0 * math.Sin(t)
	p.LeftLeg.Rotation.X = 1.0 * math.Sin(t)

	p.Head.Rotation.X = 0.1*math.Sin(2*t) - 0.1

	p.Body.Rotation.X = -0.15
	p.BodyY = skeleton.DefaultBodyY
	p.BodyY += math.Abs(math.Sin(t))

	if c != nil {
		c.Rotation.X = 0.4*math.Pi + 0.15*math.Sin(2*t)
	}
}

// wavePose raises the right arm and oscillates it. The lower body and left
// arm are zeroed first so a wave always reads as standing still.
func wavePose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := s.time

	p.LeftArm.Rotation = skeleton.Vec3{}
	p.LeftLeg.Rotation = skeleton.Vec3{}
	p.RightLeg.Rotation = skeleton.Vec3{}

	p.RightArm.Rotation.Z = -0.8 * math.Pi
	p.RightArm.Rotation.X = 0.3 * math.Sin(6*t)

	p.BodyY = skeleton.DefaultBodyY
	p.BodyY += 0.04 * math.Sin(1.5*t)

	p.Head.Rotation.Y = 0.1 * math.Sin(0.5*t)

	if c != nil {
		c.Rotation.X = 0.1*math.Pi + 0.03*math.Sin(0.8*t)
	}
}

// crouchPose drops the body, bends the knees and tucks the arms.
func crouchPose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := s.time

	p.RightLeg.Rotation.X = 0.6
	p.LeftLeg.Rotation.X = 0.6

	p.BodyY = skeleton.DefaultBodyY - 4
	p.BodyY += 0.04 * math.Sin(1.5*t)
	p.Body.Rotation.X = 0.3

	p.Head.Rotation.X = 0.15
	p.Head.Rotation.Y = 0.15 * math.Sin(0.8*t)

	p.RightArm.Rotation.X = -0.3
	p.LeftArm.Rotation.X = -0.3

	if c != nil {
		c.Rotation.X = 0.05 * math.Pi
	}
}

// flyPose pitches the whole figure forward, arms swept back, cape streaming.
func flyPose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := s.time

	p.RightArm.Rotation.X = -0.9 * math.Pi
	p.LeftArm.Rotation.X = -0.9 * math.Pi
	p.RightArm.Rotation.Z = 0.2
	p.LeftArm.Rotation.Z = -0.2

	p.RightLeg.Rotation.X = 0.3
	p.LeftLeg.Rotation.X = 0.3

	p.Body.Rotation.X = -0.45 * math.Pi
	p.BodyY = skeleton.DefaultBodyY + 2
	p.BodyY += 0.5 * math.Sin(2*t)

	p.Head.Rotation.X = 0.4 * math.Pi

	if c != nil {
		c.Rotation.X = 0.7*math.Pi + 0.1*math.Sin(8*t)
	}
}

// sitPose folds the legs forward, drops the body and adds slow head motion.
func sitPose(p *skeleton.Skeleton, c *skeleton.Cape, s *State, delta float64) {
	s.advance(delta)
	t := s.time

	p.RightLeg.Rotation.X = -0.5 * math.Pi
	p.LeftLeg.Rotation.X = -0.5 * math.Pi

	p.BodyY = skeleton.DefaultBodyY - 6
	p.BodyY += 0.045 * math.Sin(1.2*t)

	p.RightArm.Rotation.X = -0.4
	p.LeftArm.Rotation.X = -0.4
	p.RightArm.Rotation.Z = 0.15
	p.LeftArm.Rotation.Z = -0.15

	p.Head.Rotation.Y = 0.2 * math.Sin(0.4*t)
	p.Head.Rotation.X = 0.1 * math.Sin(0.6*t)

	if c != nil {
		c.Rotation.X = 0.02*math.Pi + 0.02*math.Sin(0.5*t)
	}
}
