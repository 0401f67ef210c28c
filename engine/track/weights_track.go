package track

import (
	"fmt"
	"reflect"

	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
)

// morphWeightsTrack animates every morph target of a MorphWeights component
// from one shared flat keyframe slice, indexed by
// keyframeIndex*targetCount+targetIndex. Using a single flat slice instead of
// one track (and one allocation) per morph target is the entire point of this
// variant; the per-target math is identical to a float32 track.
type morphWeightsTrack struct {
	keyframes   []float32
	targetCount int
	config      trackConfig
}

// NewMorphWeights creates a track that animates morph weights. The keyframes
// slice is flattened with keyframes at the outermost level: for a mesh with 3
// morph targets and an animation with 2 keyframes, the layout is (target 0
// keyframe 0, target 1 keyframe 0, target 2 keyframe 0, target 0 keyframe 1,
// target 1 keyframe 1, target 2 keyframe 1).
//
// Parameters:
//   - keyframes: the flattened morph weight keyframes
//   - targetCount: the number of morph targets in the mesh
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the new track
//   - error: an error if targetCount is not positive or does not divide len(keyframes)
func NewMorphWeights(keyframes []float32, targetCount int, options ...TrackBuilderOption) (Track, error) {
	if targetCount <= 0 {
		return nil, fmt.Errorf("morph target count must be positive, got %d: %w", targetCount, animatable.ErrMalformedKeyframes)
	}
	if len(keyframes)%targetCount != 0 {
		return nil, fmt.Errorf("%d morph weight keyframe values do not divide evenly into %d targets: %w", len(keyframes), targetCount, animatable.ErrMalformedKeyframes)
	}

	config := defaultTrackConfig()
	for _, option := range options {
		option(&config)
	}

	return &morphWeightsTrack{
		keyframes:   keyframes,
		targetCount: targetCount,
		config:      config,
	}, nil
}

func (t *morphWeightsTrack) ComponentType() reflect.Type {
	return morphWeightsType
}

func (t *morphWeightsTrack) KeyframeCount() int {
	return len(t.keyframes) / t.targetCount / t.config.valuesPerKeyframe
}

// entry fetches the MorphWeights dispatch entry alongside the target's
// component pointer. The special-case entry is installed at process start, so
// a miss can only mean the registry was bypassed.
func (t *morphWeightsTrack) entry(target Target) (any, animatable.Entry, error) {
	component, ok := target.Component(morphWeightsType)
	if !ok {
		return nil, animatable.Entry{}, animatable.ErrComponentNotPresent
	}
	entry, ok := animatable.Lookup(morphWeightsType)
	if !ok {
		return nil, animatable.Entry{}, fmt.Errorf("no animatable registered for %v: %w", morphWeightsType, animatable.ErrPropertyNotPresent)
	}
	return component, entry, nil
}

func (t *morphWeightsTrack) ApplySingleKeyframe(target Target, weight float32) error {
	component, entry, err := t.entry(target)
	if err != nil {
		return err
	}
	return entry.InterpolateFirstKeyframe(component, t.keyframes, weight)
}

func (t *morphWeightsTrack) ApplyTweenedKeyframes(target Target, interpolation animatable.Interpolation, stepStart int, time, weight, duration float32) error {
	component, entry, err := t.entry(target)
	if err != nil {
		return err
	}
	return entry.InterpolateKeyframes(component, t.keyframes, interpolation, stepStart, time, weight, duration)
}

func (t *morphWeightsTrack) Clone() Track {
	clone := *t
	clone.keyframes = append([]float32(nil), t.keyframes...)
	return &clone
}
