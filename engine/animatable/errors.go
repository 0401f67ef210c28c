package animatable

import "errors"

// Track application errors. All of these are ordinary recoverable results: the
// caller is expected to skip the failing track application and continue with
// the rest of the frame.
var (
	// ErrComponentNotPresent indicates the target object lacks the component
	// type the track expects.
	ErrComponentNotPresent = errors.New("component not present on target object")

	// ErrPropertyNotPresent indicates the component exists but the targeted
	// property could not be located or does not have the expected type.
	ErrPropertyNotPresent = errors.New("property not present on component")

	// ErrKeyframeNotPresent indicates the keyframe list does not have enough
	// entries for the requested step. This covers empty tracks and
	// out-of-range step indices.
	ErrKeyframeNotPresent = errors.New("keyframe not present")

	// ErrMalformedKeyframes indicates the runtime type of the keyframe data
	// does not match the type the dispatch entry was registered for. This is
	// an authoring bug, not a transient condition.
	ErrMalformedKeyframes = errors.New("malformed keyframes")
)
