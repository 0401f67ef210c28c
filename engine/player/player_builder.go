package player

import (
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

// PlayerBuilderOption is a functional option for configuring a Player during construction.
type PlayerBuilderOption func(*player)

// WithTarget sets the default target object, used by channels with an empty
// target name.
//
// Parameters:
//   - target: the default target
//
// Returns:
//   - PlayerBuilderOption: functional option to set the default target
func WithTarget(target track.Target) PlayerBuilderOption {
	return func(p *player) {
		p.target = target
	}
}

// WithBinding associates a channel target name with an object during
// construction.
//
// Parameters:
//   - name: the channel target name
//   - target: the object to bind
//
// Returns:
//   - PlayerBuilderOption: functional option to add the binding
func WithBinding(name string, target track.Target) PlayerBuilderOption {
	return func(p *player) {
		p.bindings[name] = target
	}
}

// PlaybackOption is a functional option for configuring a playback when a clip
// is started.
type PlaybackOption func(*playback)

// WithWeight sets the blend weight the playback contributes with. Defaults to 1.
//
// Parameters:
//   - weight: the blend weight
//
// Returns:
//   - PlaybackOption: functional option to set the weight
func WithWeight(weight float32) PlaybackOption {
	return func(pb *playback) {
		pb.weight = weight
	}
}

// WithSpeed sets the playback rate. Negative speeds play in reverse. Defaults to 1.
//
// Parameters:
//   - speed: the playback rate multiplier
//
// Returns:
//   - PlaybackOption: functional option to set the speed
func WithSpeed(speed float32) PlaybackOption {
	return func(pb *playback) {
		pb.speed = speed
	}
}

// WithRepeat sets the repeat mode. Defaults to RepeatNever.
//
// Parameters:
//   - repeat: the repeat mode
//
// Returns:
//   - PlaybackOption: functional option to set the repeat mode
func WithRepeat(repeat RepeatMode) PlaybackOption {
	return func(pb *playback) {
		pb.repeat = repeat
	}
}

// WithRepeatCount sets the repeat mode to RepeatCount with the given number of
// wraps.
//
// Parameters:
//   - count: the number of times the playback wraps before finishing
//
// Returns:
//   - PlaybackOption: functional option to set the repeat count
func WithRepeatCount(count int) PlaybackOption {
	return func(pb *playback) {
		pb.repeat = RepeatCount
		pb.repeatCount = count
	}
}

// WithPaused starts the playback paused at time zero.
//
// Returns:
//   - PlaybackOption: functional option to start paused
func WithPaused() PlaybackOption {
	return func(pb *playback) {
		pb.paused = true
	}
}
