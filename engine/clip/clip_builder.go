package clip

import (
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

// ClipBuilderOption is a functional option for configuring a Clip during construction.
type ClipBuilderOption func(*clip)

// WithDuration sets the clip's total duration in seconds.
//
// Parameters:
//   - duration: the duration to set
//
// Returns:
//   - ClipBuilderOption: functional option to set the duration
func WithDuration(duration float32) ClipBuilderOption {
	return func(c *clip) {
		c.duration = duration
	}
}

// WithTracks appends tracks as untimed channels during construction.
//
// Parameters:
//   - tracks: the tracks to append
//
// Returns:
//   - ClipBuilderOption: functional option to append the tracks
func WithTracks(tracks ...track.Track) ClipBuilderOption {
	return func(c *clip) {
		for _, tr := range tracks {
			c.channels = append(c.channels, Channel{Track: tr})
		}
	}
}

// WithChannels appends channels during construction.
//
// Parameters:
//   - channels: the channels to append
//
// Returns:
//   - ClipBuilderOption: functional option to append the channels
func WithChannels(channels ...Channel) ClipBuilderOption {
	return func(c *clip) {
		c.channels = append(c.channels, channels...)
	}
}
