package track

import (
	"fmt"
	"reflect"

	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
)

// propertyTrack animates an arbitrary property of an arbitrary component. The
// property's concrete type is only known as a reflect.Type, so application
// resolves the destination by path and dispatches through the process-wide
// animatable registry.
type propertyTrack struct {
	componentType reflect.Type
	path          PropertyPath

	// keyframes boxes a []T where T is the property's type. The registry
	// entry downcasts it back; a mismatch between authored data and the
	// property's registered type surfaces as ErrMalformedKeyframes.
	keyframes any
	count     int

	config trackConfig
}

// NewProperty creates a track that animates the property located by path on
// the component of the given type. The keyframes argument must be a slice
// whose element type is registered as animatable (the built-in value types are
// pre-registered; user types register through animatable.Register).
//
// Parameters:
//   - componentType: the targeted component's concrete (non-pointer) type
//   - path: the property path within the component, e.g. "Rotation" or
//     "Sections[0].Style.FontSize"; empty targets the component itself
//   - keyframes: a slice of keyframe values matching the property's type
//   - options: functional options to configure the track
//
// Returns:
//   - Track: the new track
//   - error: an error if the path is malformed or keyframes is not a slice
func NewProperty(componentType reflect.Type, path string, keyframes any, options ...TrackBuilderOption) (Track, error) {
	parsed, err := ParsePropertyPath(path)
	if err != nil {
		return nil, err
	}

	kt := reflect.TypeOf(keyframes)
	if kt == nil || kt.Kind() != reflect.Slice {
		return nil, fmt.Errorf("keyframes must be a slice, got %v: %w", kt, animatable.ErrMalformedKeyframes)
	}

	config := defaultTrackConfig()
	for _, option := range options {
		option(&config)
	}

	return &propertyTrack{
		componentType: componentType,
		path:          parsed,
		keyframes:     keyframes,
		count:         reflect.ValueOf(keyframes).Len(),
		config:        config,
	}, nil
}

func (t *propertyTrack) ComponentType() reflect.Type {
	return t.componentType
}

func (t *propertyTrack) KeyframeCount() int {
	return t.count / t.config.valuesPerKeyframe
}

// destination locates the property pointer and its dispatch entry on target.
// The entry is looked up by the resolved property's type, so keyframe data
// whose type does not match the property fails inside the entry with
// ErrMalformedKeyframes.
func (t *propertyTrack) destination(target Target) (any, animatable.Entry, error) {
	component, ok := target.Component(t.componentType)
	if !ok {
		return nil, animatable.Entry{}, animatable.ErrComponentNotPresent
	}

	dest, err := t.path.Resolve(component)
	if err != nil {
		return nil, animatable.Entry{}, err
	}

	propertyType := reflect.TypeOf(dest).Elem()
	entry, ok := animatable.Lookup(propertyType)
	if !ok {
		return nil, animatable.Entry{}, fmt.Errorf("no animatable registered for %v: %w", propertyType, animatable.ErrPropertyNotPresent)
	}
	return dest, entry, nil
}

func (t *propertyTrack) ApplySingleKeyframe(target Target, weight float32) error {
	dest, entry, err := t.destination(target)
	if err != nil {
		return err
	}
	return entry.InterpolateFirstKeyframe(dest, t.keyframes, weight)
}

func (t *propertyTrack) ApplyTweenedKeyframes(target Target, interpolation animatable.Interpolation, stepStart int, time, weight, duration float32) error {
	dest, entry, err := t.destination(target)
	if err != nil {
		return err
	}
	return entry.InterpolateKeyframes(dest, t.keyframes, interpolation, stepStart, time, weight, duration)
}

func (t *propertyTrack) Clone() Track {
	clone := *t

	src := reflect.ValueOf(t.keyframes)
	dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
	reflect.Copy(dst, src)
	clone.keyframes = dst.Interface()

	return &clone
}
