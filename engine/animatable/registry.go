package animatable

import (
	"reflect"
	"sync"

	"github.com/Carmen-Shannon/keyframe-go/common"
)

// Entry is the type-erased dispatch record for one animatable property type.
// Instead of exposing Interpolate directly, an Entry exposes a higher-level
// API that interpolates between keyframes and writes the result through the
// destination reference. Interpolate returns a new value, and boxing that
// result every frame inside the hot animation loop would be expensive; the
// Entry functions write in place instead.
//
// The dest argument must be a pointer to the registered property type, and the
// keyframes argument must be a slice of that type (a flat []float32 for the
// morph-weights entry).
type Entry struct {
	// InterpolateFirstKeyframe blends the value in the first keyframe into
	// dest with the given weight; 0 leaves dest unchanged, 1 overwrites it.
	//
	// Parameters:
	//   - dest: pointer to the destination property
	//   - keyframes: the boxed keyframe slice
	//   - weight: the blend factor
	//
	// Returns:
	//   - error: ErrMalformedKeyframes, ErrKeyframeNotPresent, or ErrPropertyNotPresent
	InterpolateFirstKeyframe func(dest any, keyframes any, weight float32) error

	// InterpolateKeyframes interpolates between the keyframes at stepStart and
	// stepStart+1 using the given interpolation mode and blends the result
	// into dest with the given weight. time ranges from 0 (the stepStart
	// value) to 1 (the stepStart+1 value); duration is the time span between
	// the two keyframes.
	//
	// Parameters:
	//   - dest: pointer to the destination property
	//   - keyframes: the boxed keyframe slice
	//   - interpolation: the interpolation mode
	//   - stepStart: the index of the starting keyframe
	//   - time: the interpolation factor between the two keyframes
	//   - weight: the blend factor
	//   - duration: the time span between the two keyframes
	//
	// Returns:
	//   - error: ErrMalformedKeyframes, ErrKeyframeNotPresent, or ErrPropertyNotPresent
	InterpolateKeyframes func(dest any, keyframes any, interpolation Interpolation, stepStart int, time, weight, duration float32) error
}

// Registry maps property types to their dispatch entries. Registration is
// expected to happen during an initialization phase; the registry is read-only
// during evaluation, and lookups are O(1).
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Entry
}

// NewRegistry creates an empty Registry.
//
// Returns:
//   - *Registry: the new registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]Entry)}
}

// Add installs the dispatch entry for the given property type. The registry is
// append-only: re-registering a type that already has an entry is a no-op, so
// entries are never mutated after registration.
//
// Parameters:
//   - propertyType: the reflect.Type of the property the entry animates
//   - entry: the dispatch entry
func (r *Registry) Add(propertyType reflect.Type, entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[propertyType]; ok {
		return
	}
	r.entries[propertyType] = entry
}

// Lookup returns the dispatch entry registered for the given property type.
//
// Parameters:
//   - propertyType: the reflect.Type of the property
//
// Returns:
//   - Entry: the registered entry
//   - bool: true if an entry is registered for the type
func (r *Registry) Lookup(propertyType reflect.Type) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[propertyType]
	return entry, ok
}

// defaultRegistry holds the process-wide entries. The built-in value types are
// installed by init; user types are added through Register.
var defaultRegistry = NewRegistry()

// TypeOf returns the reflect.Type of T without requiring a value of T.
//
// Returns:
//   - reflect.Type: the type of T
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// NewEntry builds the dispatch entry for an Animatable implementation. The
// returned entry downcasts its arguments to the concrete type and delegates to
// the typed keyframe interpolation.
//
// Parameters:
//   - ops: the Animatable implementation for T
//
// Returns:
//   - Entry: the dispatch entry for T
func NewEntry[T any](ops Animatable[T]) Entry {
	return Entry{
		InterpolateFirstKeyframe: func(dest any, keyframes any, weight float32) error {
			kfs, ok := keyframes.([]T)
			if !ok {
				return ErrMalformedKeyframes
			}
			if len(kfs) == 0 {
				return ErrKeyframeNotPresent
			}
			d, ok := dest.(*T)
			if !ok {
				return ErrPropertyNotPresent
			}
			*d = ops.Interpolate(*d, kfs[0], weight)
			return nil
		},

		InterpolateKeyframes: func(dest any, keyframes any, interpolation Interpolation, stepStart int, time, weight, duration float32) error {
			kfs, ok := keyframes.([]T)
			if !ok {
				return ErrMalformedKeyframes
			}
			d, ok := dest.(*T)
			if !ok {
				return ErrPropertyNotPresent
			}
			return InterpolateKeyframes(ops, d, kfs, interpolation, stepStart, time, weight, duration)
		},
	}
}

// Register installs the dispatch entry for T into the process-wide registry.
// Registration must complete before evaluation begins; concurrent lookups are
// safe once no further registrations occur.
//
// Parameters:
//   - ops: the Animatable implementation for T
func Register[T any](ops Animatable[T]) {
	defaultRegistry.Add(TypeOf[T](), NewEntry(ops))
}

// Lookup returns the dispatch entry registered for the given property type in
// the process-wide registry.
//
// Parameters:
//   - propertyType: the reflect.Type of the property
//
// Returns:
//   - Entry: the registered entry
//   - bool: true if an entry is registered for the type
func Lookup(propertyType reflect.Type) (Entry, bool) {
	return defaultRegistry.Lookup(propertyType)
}

// morphWeightsEntry is the special-case dispatch entry for MorphWeights
// destinations. The generic entry would need the keyframes to be a [][]float32
// (one slice per keyframe, each holding every target's weight), which costs
// one allocation per keyframe; this entry instead reads one flat []float32
// indexed by keyframeIndex*targetCount+targetIndex.
func morphWeightsEntry() Entry {
	return Entry{
		InterpolateFirstKeyframe: func(dest any, keyframes any, weight float32) error {
			kfs, ok := keyframes.([]float32)
			if !ok {
				return ErrMalformedKeyframes
			}
			d, ok := dest.(*common.MorphWeights)
			if !ok {
				return ErrPropertyNotPresent
			}
			return InterpolateFirstMorphKeyframe(d, kfs, weight)
		},

		InterpolateKeyframes: func(dest any, keyframes any, interpolation Interpolation, stepStart int, time, weight, duration float32) error {
			kfs, ok := keyframes.([]float32)
			if !ok {
				return ErrMalformedKeyframes
			}
			d, ok := dest.(*common.MorphWeights)
			if !ok {
				return ErrPropertyNotPresent
			}
			return InterpolateMorphKeyframes(d, kfs, interpolation, stepStart, time, weight, duration)
		},
	}
}

func init() {
	Register(Float32)
	Register(Float64)
	Register(Vec2)
	Register(Vec3)
	Register(Vec4)
	Register(DVec2)
	Register(DVec3)
	Register(DVec4)
	Register(Quat)
	Register(Color)
	Register(Bool)
	Register(Transform)
	defaultRegistry.Add(TypeOf[common.MorphWeights](), morphWeightsEntry())
}
