// Package animatable defines the interpolation and blending contract for
// animatable value types, the per-type implementations for the common numeric
// types, and the type-erased dispatch registry that lets keyframe tracks drive
// properties whose concrete type is only known at runtime.
package animatable

// Interpolation identifies how the value between two adjacent keyframes is computed.
type Interpolation int

const (
	// InterpolationStep holds the value of the starting keyframe until the next
	// keyframe is reached; the time parameter is ignored.
	InterpolationStep Interpolation = iota

	// InterpolationLinear linearly interpolates between the starting and ending
	// keyframes using the type's Interpolate operation.
	InterpolationLinear

	// InterpolationCubicSpline evaluates a cubic Bézier segment reconstructed
	// from the keyframe values and their authored tangent derivatives. The
	// keyframe list is laid out as flat (in-tangent, value, out-tangent)
	// triplets, three entries per logical keyframe.
	InterpolationCubicSpline
)

// BlendInput is a single weighted contribution to a Blend operation.
type BlendInput[T any] struct {
	// Weight is the contribution's weight. It is not bound to the range [0.0, 1.0].
	Weight float32

	// Value is the input value to be blended.
	Value T

	// Additive controls how the value combines with the running accumulator.
	// When true the value is scaled by Weight and summed; when false the
	// accumulator is interpolated toward the value using Weight as the factor.
	Additive bool
}

// Animatable defines the two operations a value type must support to be driven
// by keyframe tracks. Implementations exist for scalars, vectors, quaternions,
// colors, booleans, and composite transforms; additional property types can be
// supported by implementing this interface and registering it with Register.
type Animatable[T any] interface {
	// Interpolate produces a value at factor t between a and b.
	// The t parameter is not clamped to [0.0, 1.0]; implementations must
	// return exactly a at t = 0 and exactly b at t = 1 (for rotations,
	// "exactly" means the same orientation).
	//
	// Parameters:
	//   - a: the value at t = 0
	//   - b: the value at t = 1
	//   - t: the interpolation factor
	//
	// Returns:
	//   - T: the interpolated value
	Interpolate(a, b T, t float32) T

	// Blend combines the inputs, in order, into a single value.
	// Additive inputs are weight-scaled and summed into the accumulator;
	// non-additive inputs fold left-to-right, each pulling the accumulator
	// toward the input by its own weight. This is not a weighted average:
	// the order of non-additive inputs matters, and callers must supply them
	// in a stable order such as animation layer priority.
	//
	// Parameters:
	//   - inputs: the ordered weighted contributions
	//
	// Returns:
	//   - T: the combined value, or the type's zero/identity for empty input
	Blend(inputs []BlendInput[T]) T
}
