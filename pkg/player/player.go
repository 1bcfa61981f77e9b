// Package player runs the animation engine on a fixed-rate loop. It owns
// one skeleton buffer (and optional cape) plus the animation state, ticks
// them once per frame and hands a JSON-serializable snapshot to a sink.
package player

import (
	"sync"
	"time"

	"github.com/lumaworks/go-skinview/internal/log"
	"github.com/lumaworks/go-skinview/pkg/anim"
	"github.com/lumaworks/go-skinview/pkg/skeleton"
)

// Frame is one pose snapshot as delivered to viewers.
type Frame struct {
	Seq      uint64            `json:"seq"`
	Mode     string            `json:"mode"`
	Phase    string            `json:"phase,omitempty"`
	Time     float64           `json:"time"`
	Skeleton skeleton.Skeleton `json:"skeleton"`
	Cape     *skeleton.Cape    `json:"cape,omitempty"`
}

// Sink receives a frame after every tick. It is called from the loop
// goroutine and should return quickly (hand off to a channel or hub).
type Sink func(Frame)

// Player drives one animated entity at a fixed frame rate.
//
// Only the loop goroutine touches the pose buffers during a tick; control
// calls (SetMode, SetSpeed, Snapshot) synchronize through the mutex.
type Player struct {
	mu    sync.Mutex
	pose  *skeleton.Skeleton
	cape  *skeleton.Cape
	state *anim.State

	rate time.Duration
	sink Sink
	stop chan struct{}

	frames   uint64
	lastTick time.Time
}

// New creates a player around an existing animation state.
// rate is the frame interval (~33ms for 30Hz). withCape controls whether a
// cape attachment is allocated; without one all cape writes are skipped.
func New(state *anim.State, rate time.Duration, withCape bool) *Player {
	p := &Player{
		pose:  skeleton.New(),
		state: state,
		rate:  rate,
		stop:  make(chan struct{}),
	}
	if withCape {
		p.cape = &skeleton.Cape{}
	}
	return p
}

// SetSink sets the frame consumer. Must be called before Run.
func (p *Player) SetSink(sink Sink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink = sink
}

// Run starts the frame loop and blocks until Stop is called.
func (p *Player) Run() {
	ticker := time.NewTicker(p.rate)
	defer ticker.Stop()

	p.mu.Lock()
	p.lastTick = time.Now()
	p.mu.Unlock()

	log.Info("player started", "rate_hz", 1.0/p.rate.Seconds(), "mode", p.Mode().String())

	for {
		select {
		case <-p.stop:
			log.Info("player stopped", "frames", p.Frames())
			return
		case now := <-ticker.C:
			p.tick(now)
		}
	}
}

// Stop halts the frame loop.
func (p *Player) Stop() {
	close(p.stop)
}

// tick advances the animation by the measured frame delta and emits a frame.
func (p *Player) tick(now time.Time) {
	p.mu.Lock()
	delta := now.Sub(p.lastTick).Seconds()
	p.lastTick = now

	p.state.Tick(p.pose, p.cape, delta)
	p.frames++
	frame := p.snapshotLocked()
	sink := p.sink
	p.mu.Unlock()

	if sink != nil {
		sink(frame)
	}
}

// snapshotLocked builds a frame from the current buffers. Callers hold mu.
func (p *Player) snapshotLocked() Frame {
	f := Frame{
		Seq:      p.frames,
		Mode:     p.state.Mode().String(),
		Time:     p.state.Time(),
		Skeleton: *p.pose,
	}
	if phase, ok := p.state.Phase(); ok {
		f.Phase = phase.String()
	}
	if p.cape != nil {
		capeCopy := *p.cape
		f.Cape = &capeCopy
	}
	return f
}

// Snapshot returns the current pose without advancing the animation.
func (p *Player) Snapshot() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// SetMode switches the animation mode. The change is an instantaneous pose
// discontinuity; the next frame snaps to the new mode at time zero.
func (p *Player) SetMode(mode anim.Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SetMode(mode)
	log.Debug("mode set", "mode", mode.String())
}

// SetSpeed sets the playback speed multiplier.
func (p *Player) SetSpeed(speed float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SetSpeed(speed)
}

// Mode returns the active animation mode.
func (p *Player) Mode() anim.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Mode()
}

// Speed returns the playback speed multiplier.
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Speed()
}

// Frames returns how many frames have been emitted.
func (p *Player) Frames() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}
