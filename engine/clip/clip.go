// Package clip groups keyframe tracks into named animation clips. A clip owns
// its channels: they are constructed once when the clip is authored or loaded,
// immutable afterward, and deep-copied when the clip asset is cloned.
package clip

import (
	"sort"

	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

// Channel is one keyframe track plus the timing data needed to play it back.
type Channel struct {
	// Target names the object binding this channel writes to. An empty name
	// targets the player's default object.
	Target string

	// Track is the keyframe track.
	Track track.Track

	// Times holds ascending keyframe timestamps in seconds, one per logical
	// keyframe. A channel with fewer than two timestamps is pinned to its
	// first keyframe.
	Times []float32

	// Interpolation is the interpolation mode the track was authored with.
	Interpolation animatable.Interpolation
}

// Sample locates the keyframe pair straddling time t. Before the first
// timestamp the channel clamps to its first keyframe; after the last it clamps
// to the final pair at factor 1.
//
// Parameters:
//   - t: the clip-local time in seconds
//
// Returns:
//   - int: the index of the starting keyframe
//   - float32: the interpolation factor between the pair, in [0, 1]
//   - float32: the time span in seconds between the pair
//   - bool: true if only the first keyframe applies
func (c Channel) Sample(t float32) (int, float32, float32, bool) {
	count := c.Track.KeyframeCount()
	if len(c.Times) < count {
		count = len(c.Times)
	}
	if count < 2 || t <= c.Times[0] {
		return 0, 0, 0, true
	}

	last := count - 1
	if t >= c.Times[last] {
		return last - 1, 1, c.Times[last] - c.Times[last-1], false
	}

	// First timestamp strictly greater than t; the pair starts one before it.
	step := sort.Search(count, func(i int) bool { return c.Times[i] > t }) - 1
	duration := c.Times[step+1] - c.Times[step]
	factor := float32(0)
	if duration > 0 {
		factor = (t - c.Times[step]) / duration
	}
	return step, factor, duration, false
}

// clone returns an independent copy of the channel.
func (c Channel) clone() Channel {
	c.Track = c.Track.Clone()
	c.Times = append([]float32(nil), c.Times...)
	return c
}

// clip is the implementation of the Clip interface.
type clip struct {
	name     string
	duration float32
	channels []Channel
}

// Clip defines the public interface for an animation clip: a named, fixed-
// duration set of keyframe channels. The clip does not evaluate anything
// itself; a player decides, per frame, which of its channels are active and
// with what time and weight.
type Clip interface {
	// Name returns the clip's identifier.
	//
	// Returns:
	//   - string: the clip name
	Name() string

	// Duration returns the clip's total duration in seconds.
	//
	// Returns:
	//   - float32: the duration
	Duration() float32

	// Channels returns the clip's channels. The returned slice is the clip's
	// own storage; callers must not mutate it.
	//
	// Returns:
	//   - []Channel: the channels
	Channels() []Channel

	// Tracks returns the tracks of every channel, in channel order.
	//
	// Returns:
	//   - []track.Track: the tracks
	Tracks() []track.Track

	// AddTrack appends a track as an untimed channel pinned to its first
	// keyframe.
	//
	// Parameters:
	//   - tr: the track to append
	AddTrack(tr track.Track)

	// AddChannel appends a channel.
	//
	// Parameters:
	//   - ch: the channel to append
	AddChannel(ch Channel)

	// Clone returns an independent deep copy of the clip, cloning every
	// channel.
	//
	// Returns:
	//   - Clip: the copy
	Clone() Clip
}

var _ Clip = &clip{}

// NewClip creates a new Clip configured with the given options.
//
// Parameters:
//   - name: the clip's identifier
//   - options: functional options to configure the clip
//
// Returns:
//   - Clip: the newly created clip
func NewClip(name string, options ...ClipBuilderOption) Clip {
	c := &clip{name: name}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *clip) Name() string {
	return c.name
}

func (c *clip) Duration() float32 {
	return c.duration
}

func (c *clip) Channels() []Channel {
	return c.channels
}

func (c *clip) Tracks() []track.Track {
	tracks := make([]track.Track, len(c.channels))
	for i, ch := range c.channels {
		tracks[i] = ch.Track
	}
	return tracks
}

func (c *clip) AddTrack(tr track.Track) {
	c.channels = append(c.channels, Channel{Track: tr})
}

func (c *clip) AddChannel(ch Channel) {
	c.channels = append(c.channels, ch)
}

func (c *clip) Clone() Clip {
	channels := make([]Channel, len(c.channels))
	for i, ch := range c.channels {
		channels[i] = ch.clone()
	}
	return &clip{
		name:     c.name,
		duration: c.duration,
		channels: channels,
	}
}
