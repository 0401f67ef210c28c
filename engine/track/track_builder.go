package track

// trackConfig holds construction settings shared by every track variant.
type trackConfig struct {
	valuesPerKeyframe int
}

// defaultTrackConfig returns the settings used when no options are supplied:
// one value per keyframe (step/linear layout).
func defaultTrackConfig() trackConfig {
	return trackConfig{valuesPerKeyframe: 1}
}

// TrackBuilderOption is a functional option for configuring a track during construction.
type TrackBuilderOption func(*trackConfig)

// WithCubicKeyframes marks the track's value array as cubic-spline layout:
// three values per logical keyframe, laid out as flat (in-tangent, value,
// out-tangent) triplets. KeyframeCount accounts for the multiplier, and
// ApplyTweenedKeyframes with InterpolationCubicSpline indexes the array in
// triplet form.
//
// Returns:
//   - TrackBuilderOption: functional option to set the cubic keyframe layout
func WithCubicKeyframes() TrackBuilderOption {
	return func(c *trackConfig) {
		c.valuesPerKeyframe = 3
	}
}
