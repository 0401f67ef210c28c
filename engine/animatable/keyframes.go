package animatable

import (
	"fmt"

	"github.com/Carmen-Shannon/keyframe-go/common"
)

// keyframeList abstracts indexed access to a list of keyframe values. The
// standard implementation wraps a slice; the morph-weight implementation maps
// a logical keyframe index into a flattened per-target weight array so morph
// animation does not need one allocated slice per target.
type keyframeList[T any] interface {
	// keyframe returns the value at index, or false if index is out of range.
	keyframe(index int) (T, bool)
}

// sliceKeyframes is the standard keyframeList over a slice.
type sliceKeyframes[T any] []T

func (s sliceKeyframes[T]) keyframe(index int) (T, bool) {
	if index < 0 || index >= len(s) {
		var zero T
		return zero, false
	}
	return s[index], true
}

// morphKeyframes looks up weight values for one morph target in the flattened
// morph weight keyframe slice, laid out as all targets of keyframe 0 followed
// by all targets of keyframe 1, and so on.
type morphKeyframes struct {
	keyframes        []float32
	morphTargetIndex int
	morphTargetCount int
}

func (m morphKeyframes) keyframe(index int) (float32, bool) {
	flat := index*m.morphTargetCount + m.morphTargetIndex
	if flat < 0 || flat >= len(m.keyframes) {
		return 0, false
	}
	return m.keyframes[flat], true
}

// interpolateKeyframesList computes the interpolated value between the
// keyframes at stepStart and stepStart+1 using the given interpolation mode,
// then blends it into dest with the given weight: the final written value is
// Interpolate(*dest, value, weight), so weight 0 leaves dest unchanged and
// weight 1 overwrites it.
func interpolateKeyframesList[T any](ops Animatable[T], dest *T, keyframes keyframeList[T], interpolation Interpolation, stepStart int, time, weight, duration float32) error {
	var value T

	switch interpolation {
	case InterpolationStep:
		start, ok := keyframes.keyframe(stepStart)
		if !ok {
			return ErrKeyframeNotPresent
		}
		value = start

	case InterpolationLinear:
		start, okStart := keyframes.keyframe(stepStart)
		end, okEnd := keyframes.keyframe(stepStart + 1)
		if !okStart || !okEnd {
			return ErrKeyframeNotPresent
		}
		value = ops.Interpolate(start, end, time)

	case InterpolationCubicSpline:
		// Flat (in-tangent, value, out-tangent) triplets per logical keyframe.
		start, okStart := keyframes.keyframe(stepStart*3 + 1)
		startTangent, okStartTangent := keyframes.keyframe(stepStart*3 + 2)
		endTangent, okEndTangent := keyframes.keyframe(stepStart*3 + 3)
		end, okEnd := keyframes.keyframe(stepStart*3 + 4)
		if !okStart || !okStartTangent || !okEndTangent || !okEnd {
			return ErrKeyframeNotPresent
		}
		value = InterpolateWithCubicBezier(ops, start, startTangent, endTangent, end, time, duration)

	default:
		return fmt.Errorf("animatable: unknown interpolation mode %d", interpolation)
	}

	*dest = ops.Interpolate(*dest, value, weight)
	return nil
}

// InterpolateKeyframes computes the interpolated value between the keyframes
// at stepStart and stepStart+1 using the given interpolation mode and blends
// it into dest with the given weight. For InterpolationCubicSpline the
// keyframes slice must be laid out as flat (in-tangent, value, out-tangent)
// triplets per logical keyframe.
//
// Parameters:
//   - ops: the Animatable implementation for T
//   - dest: the destination value the result is blended into
//   - keyframes: the keyframe values
//   - interpolation: the interpolation mode
//   - stepStart: the index of the starting keyframe
//   - time: the interpolation factor between the two keyframes, 0 at stepStart and 1 at stepStart+1
//   - weight: how strongly the result is blended into dest; 0 leaves dest unchanged, 1 overwrites it
//   - duration: the time span between the two keyframes, used for cubic tangent scaling
//
// Returns:
//   - error: ErrKeyframeNotPresent if the required keyframes are out of range
func InterpolateKeyframes[T any](ops Animatable[T], dest *T, keyframes []T, interpolation Interpolation, stepStart int, time, weight, duration float32) error {
	return interpolateKeyframesList(ops, dest, sliceKeyframes[T](keyframes), interpolation, stepStart, time, weight, duration)
}

// InterpolateFirstKeyframe blends the first keyframe value into dest with the
// given weight; 0 leaves dest unchanged, 1 overwrites it.
//
// Parameters:
//   - ops: the Animatable implementation for T
//   - dest: the destination value the result is blended into
//   - keyframes: the keyframe values
//   - weight: the blend factor
//
// Returns:
//   - error: ErrKeyframeNotPresent if keyframes is empty
func InterpolateFirstKeyframe[T any](ops Animatable[T], dest *T, keyframes []T, weight float32) error {
	if len(keyframes) == 0 {
		return ErrKeyframeNotPresent
	}
	*dest = ops.Interpolate(*dest, keyframes[0], weight)
	return nil
}

// InterpolateFirstMorphKeyframe blends the first keyframe's weight values into
// every morph target of dest. The keyframes slice must hold at least one full
// keyframe, i.e. one value per morph target.
//
// Parameters:
//   - dest: the morph weights the result is blended into
//   - keyframes: the flattened morph weight keyframes
//   - weight: the blend factor
//
// Returns:
//   - error: ErrKeyframeNotPresent if keyframes holds less than one full keyframe
func InterpolateFirstMorphKeyframe(dest *common.MorphWeights, keyframes []float32, weight float32) error {
	if len(keyframes) < len(dest.Weights) {
		return ErrKeyframeNotPresent
	}
	for i := range dest.Weights {
		dest.Weights[i] = Float32.Interpolate(dest.Weights[i], keyframes[i], weight)
	}
	return nil
}

// InterpolateMorphKeyframes runs the standard keyframe interpolation
// independently for every morph target of dest, reading from the shared
// flattened keyframe slice indexed by keyframeIndex*targetCount+targetIndex.
// Semantically this is identical to running InterpolateKeyframes per target
// with its own float32 slice; the flat layout exists to avoid the per-target
// allocations that layout would require.
//
// Parameters:
//   - dest: the morph weights the results are blended into
//   - keyframes: the flattened morph weight keyframes
//   - interpolation: the interpolation mode
//   - stepStart: the index of the starting keyframe
//   - time: the interpolation factor between the two keyframes
//   - weight: the blend factor
//   - duration: the time span between the two keyframes
//
// Returns:
//   - error: ErrKeyframeNotPresent if the required keyframes are out of range
func InterpolateMorphKeyframes(dest *common.MorphWeights, keyframes []float32, interpolation Interpolation, stepStart int, time, weight, duration float32) error {
	count := len(dest.Weights)
	for i := range dest.Weights {
		list := morphKeyframes{
			keyframes:        keyframes,
			morphTargetIndex: i,
			morphTargetCount: count,
		}
		if err := interpolateKeyframesList(Float32, &dest.Weights[i], list, interpolation, stepStart, time, weight, duration); err != nil {
			return err
		}
	}
	return nil
}
