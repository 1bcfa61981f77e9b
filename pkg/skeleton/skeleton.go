// Package skeleton defines the pose buffer the animation engine writes
// into: a fixed six-joint humanoid skeleton plus an optional cape
// attachment. The buffer is owned by the rendering layer; the engine only
// mutates it for the duration of a single tick.
package skeleton

// DefaultBodyY is the neutral vertical placement of the body joint, the
// torso pivot of the player model. Every mode expresses its vertical
// offset relative to this baseline.
const DefaultBodyY = -6.0

// Vec3 is an Euler-style rotation in radians (or a position, axis by axis).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Joint is one independently rotatable skeleton part.
type Joint struct {
	Rotation Vec3 `json:"rotation"`
}

// Skeleton is the complete pose buffer: six named joints and the body's
// vertical position. Rotations are absolute values, never deltas.
type Skeleton struct {
	Head     Joint `json:"head"`
	Body     Joint `json:"body"`
	LeftArm  Joint `json:"left_arm"`
	RightArm Joint `json:"right_arm"`
	LeftLeg  Joint `json:"left_leg"`
	RightLeg Joint `json:"right_leg"`

	// BodyY is the body joint's position along the vertical axis.
	BodyY float64 `json:"body_y"`
}

// New returns a skeleton in the neutral pose.
func New() *Skeleton {
	s := &Skeleton{}
	s.Reset()
	return s
}

// Reset zeroes every joint rotation and restores the body to DefaultBodyY.
func (s *Skeleton) Reset() {
	s.Head.Rotation = Vec3{}
	s.Body.Rotation = Vec3{}
	s.LeftArm.Rotation = Vec3{}
	s.RightArm.Rotation = Vec3{}
	s.LeftLeg.Rotation = Vec3{}
	s.RightLeg.Rotation = Vec3{}
	s.BodyY = DefaultBodyY
}

// Cape is the optional cloth attachment. Only the X rotation (drape angle)
// is driven by the engine. A nil *Cape means the entity has no cape and all
// cape writes are skipped.
type Cape struct {
	Rotation Vec3 `json:"rotation"`
}
