// Package track implements the keyframe track abstraction: polymorphic tracks
// that apply authored keyframe values to a property of a target object at a
// given interpolation mode, step, and blend weight. Concrete variants exist
// for the common transform channels (translation, rotation, scale), for
// arbitrary registered property types addressed by field path, and for
// flattened morph-weight arrays.
package track

import (
	"reflect"

	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
)

// Target is the object abstraction tracks write through. It is satisfied by
// game_object.GameObject; any component store that hands out per-type pointers
// works.
type Target interface {
	// Component returns a pointer to the component of the given type, or false
	// if the target does not have one.
	//
	// Parameters:
	//   - componentType: the component's concrete (non-pointer) type
	//
	// Returns:
	//   - any: a pointer to the stored component
	//   - bool: true if the component is present
	Component(componentType reflect.Type) (any, bool)
}

// Track defines the public interface for a single keyframe track. A track is
// constructed once when an animation clip is authored or loaded and is
// immutable afterward; Clone produces an independent copy when a clip asset is
// cloned.
//
// Multiple tracks touching the same destination property combine by being
// applied sequentially, each blending into the value already on the object.
// The caller determines the order; overriding blends are not commutative, so
// the order should be meaningful (e.g. animation layer priority).
type Track interface {
	// ComponentType identifies which component type this track targets. The
	// caller can use it to check whether a target actually has the component
	// before dispatching.
	//
	// Returns:
	//   - reflect.Type: the targeted component type
	ComponentType() reflect.Type

	// KeyframeCount returns the number of authored keyframes. For tracks
	// constructed with WithCubicKeyframes this is a third of the raw value
	// count, and for morph-weight tracks the raw length is further divided by
	// the morph target count.
	//
	// Returns:
	//   - int: the number of authored keyframes
	KeyframeCount() int

	// ApplySingleKeyframe blends the value of keyframe 0 into the target's
	// property with the given weight; 0 leaves the property unchanged, 1
	// overwrites it.
	//
	// Parameters:
	//   - target: the object to write to
	//   - weight: the blend factor
	//
	// Returns:
	//   - error: animatable.ErrComponentNotPresent, animatable.ErrPropertyNotPresent, or animatable.ErrKeyframeNotPresent
	ApplySingleKeyframe(target Target, weight float32) error

	// ApplyTweenedKeyframes computes the interpolated value between keyframes
	// stepStart and stepStart+1 using the given interpolation mode and blends
	// it into the target's property with the given weight. time ranges from 0
	// (the stepStart value) to 1 (the stepStart+1 value); duration is the time
	// span between the two keyframes and is only used for cubic tangent
	// scaling.
	//
	// Parameters:
	//   - target: the object to write to
	//   - interpolation: the interpolation mode
	//   - stepStart: the index of the starting keyframe
	//   - time: the interpolation factor between the two keyframes
	//   - weight: the blend factor
	//   - duration: the time span between the two keyframes
	//
	// Returns:
	//   - error: animatable.ErrComponentNotPresent, animatable.ErrPropertyNotPresent, or animatable.ErrKeyframeNotPresent
	ApplyTweenedKeyframes(target Target, interpolation animatable.Interpolation, stepStart int, time, weight, duration float32) error

	// Clone returns an independent deep copy of this track.
	//
	// Returns:
	//   - Track: the copy
	Clone() Track
}

var (
	transformType    = reflect.TypeOf(common.Transform{})
	morphWeightsType = reflect.TypeOf(common.MorphWeights{})
)

// transformOf fetches the target's Transform component.
func transformOf(target Target) (*common.Transform, error) {
	c, ok := target.Component(transformType)
	if !ok {
		return nil, animatable.ErrComponentNotPresent
	}
	tr, ok := c.(*common.Transform)
	if !ok {
		return nil, animatable.ErrPropertyNotPresent
	}
	return tr, nil
}
