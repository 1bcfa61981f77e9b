package anim

import (
	"testing"

	"github.com/lumaworks/go-skinview/pkg/skeleton"
)

// tickUntilPhaseChange ticks the state until the scheduler advances to a
// new sequence slot, returning the phase it landed on.
func tickUntilPhaseChange(t *testing.T, s *State, pose *skeleton.Skeleton) Mode {
	t.Helper()
	startIdx := s.phaseIdx
	for i := 0; i < 100000; i++ {
		s.Tick(pose, nil, 0.05)
		if s.phaseIdx != startIdx {
			phase, ok := s.Phase()
			if !ok {
				t.Fatal("phase not reported in mixed mode")
			}
			return phase
		}
	}
	t.Fatal("phase never advanced")
	return ModeNone
}

func TestMixed_FirstActivation(t *testing.T) {
	state := NewSeededState(ModeMixed, 1.0, 11)
	pose := skeleton.New()

	if _, ok := state.Phase(); ok {
		t.Error("phase reported before first tick")
	}

	state.Tick(pose, nil, 0.05)

	phase, ok := state.Phase()
	if !ok {
		t.Fatal("phase not reported after first tick")
	}
	if phase != ModeIdle {
		t.Errorf("first phase = %v, want idle", phase)
	}
	if state.phaseDuration < 3.0 || state.phaseDuration >= 5.0 {
		t.Errorf("initial dwell = %v, want [3,5)", state.phaseDuration)
	}
}

func TestMixed_SequenceOrderIsFixed(t *testing.T) {
	want := []Mode{
		ModeWalk, ModeIdle, ModeSit, ModeIdle,
		ModeCrouch, ModeIdle, ModeWave, ModeIdle,
		// second cycle
		ModeWalk, ModeIdle, ModeSit, ModeIdle,
		ModeCrouch, ModeIdle, ModeWave, ModeIdle,
	}

	for _, seed := range []int64{1, 2, 42, 999} {
		state := NewSeededState(ModeMixed, 1.0, seed)
		pose := skeleton.New()
		state.Tick(pose, nil, 0.05) // activate

		for i, wantPhase := range want {
			got := tickUntilPhaseChange(t, state, pose)
			if got != wantPhase {
				t.Fatalf("seed %d transition %d: phase = %v, want %v", seed, i, got, wantPhase)
			}
		}
	}
}

func TestMixed_DwellBoundsPerPhase(t *testing.T) {
	bounds := map[Mode][2]float64{
		ModeIdle:   {2.0, 4.0},
		ModeWalk:   {4.0, 6.0},
		ModeSit:    {5.0, 8.0},
		ModeCrouch: {2.0, 3.5},
		ModeWave:   {2.0, 3.5},
	}

	for _, seed := range []int64{3, 17, 1234} {
		state := NewSeededState(ModeMixed, 1.0, seed)
		pose := skeleton.New()
		state.Tick(pose, nil, 0.05)

		// Walk two full cycles' worth of transitions.
		for i := 0; i < 16; i++ {
			phase := tickUntilPhaseChange(t, state, pose)
			b, ok := bounds[phase]
			if !ok {
				t.Fatalf("unexpected phase %v", phase)
			}
			if state.phaseDuration < b[0] || state.phaseDuration >= b[1] {
				t.Errorf("seed %d: %v dwell = %v, want [%v,%v)",
					seed, phase, state.phaseDuration, b[0], b[1])
			}
		}
	}
}

func TestMixed_TimeAccumulatesOnce(t *testing.T) {
	state := NewSeededState(ModeMixed, 1.0, 5)
	pose := skeleton.New()

	const dt = 0.05
	const n = 200
	for i := 0; i < n; i++ {
		state.Tick(pose, nil, dt)
	}

	if !floatEquals(state.Time(), n*dt) {
		t.Errorf("time = %v, want %v (delegates must not double-accumulate)",
			state.Time(), n*dt)
	}
}

func TestMixed_PoseMatchesDelegatePhase(t *testing.T) {
	state := NewSeededState(ModeMixed, 1.0, 8)
	pose := skeleton.New()
	for i := 0; i < 40; i++ {
		state.Tick(pose, nil, 0.05)
	}

	phase, ok := state.Phase()
	if !ok {
		t.Fatal("no phase")
	}

	// Re-run the same phase function directly at the composite's time.
	direct := NewState(phase, 1.0)
	directPose := skeleton.New()
	*directPose = *pose // share residue in joints the phase never writes
	direct.time = state.Time()
	direct.Tick(directPose, nil, 0)

	if *pose != *directPose {
		t.Errorf("mixed pose differs from %v pose at t=%v", phase, state.Time())
	}
}

func TestSetMode_LeavingMixedClearsPhase(t *testing.T) {
	state := NewSeededState(ModeMixed, 1.0, 2)
	pose := skeleton.New()
	state.Tick(pose, nil, 0.1)

	state.SetMode(ModeIdle)
	if _, ok := state.Phase(); ok {
		t.Error("phase still reported after leaving mixed mode")
	}

	// Re-entering mixed starts the sequence over.
	state.SetMode(ModeMixed)
	state.Tick(pose, nil, 0.05)
	phase, ok := state.Phase()
	if !ok || phase != ModeIdle {
		t.Errorf("re-entered mixed phase = %v (ok=%v), want idle", phase, ok)
	}
}
