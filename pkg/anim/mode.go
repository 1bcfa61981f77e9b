package anim

import "fmt"

// Mode selects which animation drives the skeleton.
type Mode int

const (
	ModeIdle Mode = iota
	ModeWalk
	ModeRun
	ModeFly
	ModeWave
	ModeCrouch
	ModeSit
	// ModeMixed cycles through a fixed sequence of the other modes with
	// randomized dwell times.
	ModeMixed
	// ModeNone holds the skeleton in the neutral pose.
	ModeNone
)

var modeNames = map[Mode]string{
	ModeIdle:   "idle",
	ModeWalk:   "walk",
	ModeRun:    "run",
	ModeFly:    "fly",
	ModeWave:   "wave",
	ModeCrouch: "crouch",
	ModeSit:    "sit",
	ModeMixed:  "mixed",
	ModeNone:   "none",
}

// String returns the mode identifier (for logging and the API).
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a mode identifier back to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("unknown animation mode %q", s)
}

// Modes returns every selectable mode in display order.
func Modes() []Mode {
	return []Mode{
		ModeIdle, ModeWalk, ModeRun, ModeFly,
		ModeWave, ModeCrouch, ModeSit, ModeMixed, ModeNone,
	}
}
