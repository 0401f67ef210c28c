package track

import (
	"reflect"

	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
	"github.com/go-gl/mathgl/mgl32"
)

// transformFieldTrack is the statically-typed fast path for the common
// transform channels. It targets one field of the Transform component through
// a field selector, so per-frame application involves no reflection beyond the
// component map lookup.
type transformFieldTrack[T any] struct {
	ops       animatable.Animatable[T]
	field     func(*common.Transform) *T
	keyframes []T
	config    trackConfig
}

// NewTranslation creates a track that animates the Transform component's
// translation.
//
// Parameters:
//   - keyframes: the translation keyframe values
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the new track
func NewTranslation(keyframes []mgl32.Vec3, options ...TrackBuilderOption) Track {
	return newTransformFieldTrack(animatable.Vec3, func(tr *common.Transform) *mgl32.Vec3 {
		return &tr.Translation
	}, keyframes, options)
}

// NewRotation creates a track that animates the Transform component's
// rotation.
//
// Parameters:
//   - keyframes: the rotation keyframe values
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the new track
func NewRotation(keyframes []mgl32.Quat, options ...TrackBuilderOption) Track {
	return newTransformFieldTrack(animatable.Quat, func(tr *common.Transform) *mgl32.Quat {
		return &tr.Rotation
	}, keyframes, options)
}

// NewScale creates a track that animates the Transform component's scale.
//
// Parameters:
//   - keyframes: the scale keyframe values
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the new track
func NewScale(keyframes []mgl32.Vec3, options ...TrackBuilderOption) Track {
	return newTransformFieldTrack(animatable.Vec3, func(tr *common.Transform) *mgl32.Vec3 {
		return &tr.Scale
	}, keyframes, options)
}

func newTransformFieldTrack[T any](ops animatable.Animatable[T], field func(*common.Transform) *T, keyframes []T, options []TrackBuilderOption) Track {
	config := defaultTrackConfig()
	for _, option := range options {
		option(&config)
	}
	return &transformFieldTrack[T]{
		ops:       ops,
		field:     field,
		keyframes: keyframes,
		config:    config,
	}
}

func (t *transformFieldTrack[T]) ComponentType() reflect.Type {
	return transformType
}

func (t *transformFieldTrack[T]) KeyframeCount() int {
	return len(t.keyframes) / t.config.valuesPerKeyframe
}

func (t *transformFieldTrack[T]) ApplySingleKeyframe(target Target, weight float32) error {
	tr, err := transformOf(target)
	if err != nil {
		return err
	}
	return animatable.InterpolateFirstKeyframe(t.ops, t.field(tr), t.keyframes, weight)
}

func (t *transformFieldTrack[T]) ApplyTweenedKeyframes(target Target, interpolation animatable.Interpolation, stepStart int, time, weight, duration float32) error {
	tr, err := transformOf(target)
	if err != nil {
		return err
	}
	return animatable.InterpolateKeyframes(t.ops, t.field(tr), t.keyframes, interpolation, stepStart, time, weight, duration)
}

func (t *transformFieldTrack[T]) Clone() Track {
	clone := *t
	clone.keyframes = append([]T(nil), t.keyframes...)
	return &clone
}
