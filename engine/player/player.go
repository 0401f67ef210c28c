// Package player drives clip playback. A player owns a set of named target
// bindings and a set of active playbacks; each frame it advances every
// playback's time cursor and emits the batch of track applications for the
// evaluator. The player never writes component data itself.
package player

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/keyframe-go/engine/clip"
	"github.com/Carmen-Shannon/keyframe-go/engine/evaluator"
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

// RepeatMode controls what happens when a playback reaches the end of its clip.
type RepeatMode int

const (
	// RepeatNever finishes the playback after one pass, clamped at the final
	// keyframes.
	RepeatNever RepeatMode = iota

	// RepeatCount wraps around a fixed number of times before finishing.
	RepeatCount

	// RepeatForever wraps around indefinitely.
	RepeatForever
)

// playback is the per-clip playback state: the time cursor, the blend weight
// this clip contributes with, and the repeat bookkeeping.
type playback struct {
	clip clip.Clip

	weight      float32
	speed       float32
	repeat      RepeatMode
	repeatCount int

	paused      bool
	finished    bool
	seekTime    float32
	completions int
}

// player is the implementation of the Player interface.
type player struct {
	mu sync.RWMutex

	target   track.Target
	bindings map[string]track.Target

	// playbacks are keyed by clip name; order preserves start order so blend
	// accumulation across clips is deterministic.
	playbacks map[string]*playback
	order     []string
}

// Player defines the public interface for clip playback. Playbacks are keyed
// by clip name; starting a clip that is already playing restarts it. A single
// player animates one default target plus any number of named bindings, so one
// player typically drives one rig.
type Player interface {
	// Target returns the default target object.
	//
	// Returns:
	//   - track.Target: the default target, or nil if none is set
	Target() track.Target

	// Bind associates a channel target name with an object. Channels naming
	// an unbound target are skipped during Update.
	//
	// Parameters:
	//   - name: the channel target name
	//   - target: the object to bind
	Bind(name string, target track.Target)

	// Play starts the clip from time zero, replacing any playback of the same
	// clip name.
	//
	// Parameters:
	//   - c: the clip to play
	//   - options: functional options to configure the playback
	Play(c clip.Clip, options ...PlaybackOption)

	// Playing reports whether the named clip has an unfinished playback.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - bool: true if the clip is playing
	Playing(name string) bool

	// Seek moves the named clip's time cursor.
	//
	// Parameters:
	//   - name: the clip name
	//   - t: the clip-local time in seconds
	Seek(name string, t float32)

	// Stop removes the named clip's playback.
	//
	// Parameters:
	//   - name: the clip name
	Stop(name string)

	// StopAll removes every playback.
	StopAll()

	// Update advances every active playback by dt and returns the frame's
	// track applications, ready for an evaluator. Finished playbacks keep
	// contributing their final pose until stopped. Channels whose target is
	// unbound, or whose bound object reports itself disabled, are skipped.
	//
	// Parameters:
	//   - dt: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - []evaluator.Application: the frame's applications
	Update(dt float32) []evaluator.Application
}

var _ Player = &player{}

// NewPlayer creates a new Player configured with the given options.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the newly created player
func NewPlayer(options ...PlayerBuilderOption) Player {
	p := &player{
		bindings:  make(map[string]track.Target),
		playbacks: make(map[string]*playback),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *player) Target() track.Target {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.target
}

func (p *player) Bind(name string, target track.Target) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bindings[name] = target
}

func (p *player) Play(c clip.Clip, options ...PlaybackOption) {
	pb := &playback{
		clip:   c,
		weight: 1,
		speed:  1,
	}
	for _, option := range options {
		option(pb)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.playbacks[c.Name()]; !ok {
		p.order = append(p.order, c.Name())
	}
	p.playbacks[c.Name()] = pb
}

func (p *player) Playing(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pb, ok := p.playbacks[name]
	return ok && !pb.finished
}

func (p *player) Seek(name string, t float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pb, ok := p.playbacks[name]; ok {
		pb.seekTime = t
		pb.finished = false
	}
}

func (p *player) Stop(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.playbacks[name]; !ok {
		return
	}
	delete(p.playbacks, name)
	for i, n := range p.order {
		if n == name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.playbacks)
	p.order = p.order[:0]
}

func (p *player) Update(dt float32) []evaluator.Application {
	p.mu.Lock()
	defer p.mu.Unlock()

	var applications []evaluator.Application
	for _, name := range p.order {
		pb := p.playbacks[name]
		p.advance(pb, dt)

		for _, ch := range pb.clip.Channels() {
			target := p.resolve(ch.Target)
			if target == nil {
				continue
			}
			if e, ok := target.(interface{ Enabled() bool }); ok && !e.Enabled() {
				continue
			}

			step, factor, duration, single := ch.Sample(pb.seekTime)
			applications = append(applications, evaluator.Application{
				Target:         target,
				Track:          ch.Track,
				Interpolation:  ch.Interpolation,
				StepStart:      step,
				Time:           factor,
				Weight:         pb.weight,
				Duration:       duration,
				SingleKeyframe: single,
			})
		}
	}
	return applications
}

// advance moves the playback's time cursor by dt, wrapping or clamping at the
// clip boundary according to the repeat mode.
func (p *player) advance(pb *playback, dt float32) {
	if pb.paused || pb.finished {
		return
	}

	pb.seekTime += dt * pb.speed
	duration := pb.clip.Duration()

	if duration <= 0 {
		pb.finished = pb.repeat != RepeatForever
		pb.seekTime = 0
		return
	}

	for pb.seekTime >= duration || pb.seekTime < 0 {
		if !p.wraps(pb) {
			pb.finished = true
			pb.seekTime = float32(math.Min(float64(pb.seekTime), float64(duration)))
			pb.seekTime = float32(math.Max(float64(pb.seekTime), 0))
			return
		}
		pb.completions++
		if pb.seekTime < 0 {
			pb.seekTime += duration
		} else {
			pb.seekTime -= duration
		}
	}
}

// wraps reports whether the playback has wraps left under its repeat mode.
func (p *player) wraps(pb *playback) bool {
	switch pb.repeat {
	case RepeatForever:
		return true
	case RepeatCount:
		return pb.completions < pb.repeatCount
	default:
		return false
	}
}

// resolve maps a channel target name to its bound object. The empty name is
// the default target.
func (p *player) resolve(name string) track.Target {
	if name == "" {
		return p.target
	}
	return p.bindings[name]
}
