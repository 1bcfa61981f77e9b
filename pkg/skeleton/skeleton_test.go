package skeleton

import "testing"

func TestNew_StartsNeutral(t *testing.T) {
	s := New()
	if s.BodyY != DefaultBodyY {
		t.Errorf("BodyY = %v, want %v", s.BodyY, DefaultBodyY)
	}
	if s.Head.Rotation != (Vec3{}) {
		t.Errorf("head rotation = %+v, want zero", s.Head.Rotation)
	}
}

func TestReset_ClearsEveryJoint(t *testing.T) {
	s := New()
	s.Head.Rotation = Vec3{X: 1, Y: 2, Z: 3}
	s.Body.Rotation.X = -0.45
	s.LeftArm.Rotation.Z = 0.2
	s.RightArm.Rotation.X = -2.8
	s.LeftLeg.Rotation.X = 0.6
	s.RightLeg.Rotation.X = -1.5
	s.BodyY = 4

	s.Reset()

	zero := Vec3{}
	for name, rot := range map[string]Vec3{
		"head":     s.Head.Rotation,
		"body":     s.Body.Rotation,
		"leftArm":  s.LeftArm.Rotation,
		"rightArm": s.RightArm.Rotation,
		"leftLeg":  s.LeftLeg.Rotation,
		"rightLeg": s.RightLeg.Rotation,
	} {
		if rot != zero {
			t.Errorf("%s rotation = %+v after reset, want zero", name, rot)
		}
	}
	if s.BodyY != DefaultBodyY {
		t.Errorf("BodyY = %v after reset, want %v", s.BodyY, DefaultBodyY)
	}
}
