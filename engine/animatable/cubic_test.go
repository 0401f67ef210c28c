package animatable_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	. "github.com/Carmen-Shannon/keyframe-go/engine/animatable"
)

func TestCubicBezierZeroDerivativesMatchLerp(t *testing.T) {
	// With zero derivatives the reconstructed control points collapse onto
	// the endpoints, so the curve passes through the same values as a
	// straight-line interpolation at t = 0, 0.5, and 1.
	for _, tt := range []float32{0, 0.5, 1} {
		got := InterpolateWithCubicBezier(Float32, 0, 0, 0, 10, tt, 1)
		assert.Equal(t, Float32.Interpolate(0, 10, tt), got)
	}
}

func TestCubicBezierZeroDerivativesVec3Boundaries(t *testing.T) {
	p0 := mgl32.Vec3{1, 2, 3}
	p3 := mgl32.Vec3{4, -5, 6}
	var zero mgl32.Vec3

	assert.Equal(t, p0, InterpolateWithCubicBezier(Vec3, p0, zero, zero, p3, 0, 2))
	assert.Equal(t, p3, InterpolateWithCubicBezier(Vec3, p0, zero, zero, p3, 1, 2))
}

func TestCubicBezierKnownValue(t *testing.T) {
	// p0 = p3 = 0, start derivative 6, end derivative 0, duration 1:
	// control points are P1 = 0 + 6/3 = 2 and P2 = 0 - 0/3 = 0, so
	// B(0.5) = 3*(1-t)^2*t*P1 = 3 * 0.25 * 0.5 * 2 = 0.75.
	got := InterpolateWithCubicBezier(Float32, 0, 6, 0, 0, 0.5, 1)
	assert.InDelta(t, 0.75, got, 1e-6)
}

func TestCubicBezierDurationScalesTangents(t *testing.T) {
	// Doubling the duration doubles the control point offsets.
	short := InterpolateWithCubicBezier(Float32, 0, 6, 0, 0, 0.5, 1)
	long := InterpolateWithCubicBezier(Float32, 0, 6, 0, 0, 0.5, 2)
	assert.InDelta(t, 2*short, long, 1e-6)
}

func TestCubicBezierWorksForQuaternions(t *testing.T) {
	// The reconstruction only requires Blend and Interpolate, so it must not
	// blow up for rotational types; boundary values keep their orientation.
	p0 := mgl32.QuatRotate(0.4, mgl32.Vec3{0, 1, 0})
	p3 := mgl32.QuatRotate(1.3, mgl32.Vec3{1, 0, 0})
	ident := mgl32.QuatIdent()

	assertSameOrientation(t, p0, InterpolateWithCubicBezier(Quat, p0, ident, ident, p3, 0, 1))
	assertSameOrientation(t, p3, InterpolateWithCubicBezier(Quat, p0, ident, ident, p3, 1, 1))
}
