package animatable_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/keyframe-go/common"
	. "github.com/Carmen-Shannon/keyframe-go/engine/animatable"
)

var TestScalarInterpolationIsExact = []struct {
	A float32
	B float32
	T float32
	E float32
}{
	{0, 10, 0, 0},
	{0, 10, 1, 10},
	{0, 10, 0.5, 5},
	{-3, 7, 0, -3},
	{-3, 7, 1, 7},
	{2.5, 2.5, 0.75, 2.5},
	{0, 10, 2, 20},   // extrapolation past the end
	{0, 10, -1, -10}, // extrapolation before the start
}

func TestFloat32Interpolate(t *testing.T) {
	for _, v := range TestScalarInterpolationIsExact {
		got := Float32.Interpolate(v.A, v.B, v.T)
		assert.Equal(t, v.E, got)
	}
}

func TestFloat64Interpolate(t *testing.T) {
	for _, v := range TestScalarInterpolationIsExact {
		got := Float64.Interpolate(float64(v.A), float64(v.B), v.T)
		assert.Equal(t, float64(v.E), got)
	}
}

func TestVec3InterpolateBoundaries(t *testing.T) {
	a := mgl32.Vec3{1, 2, 3}
	b := mgl32.Vec3{-4, 5, 9}

	assert.Equal(t, a, Vec3.Interpolate(a, b, 0))
	assert.Equal(t, b, Vec3.Interpolate(a, b, 1))
}

func TestColorInterpolateBoundaries(t *testing.T) {
	a := common.Color{R: 1, G: 0.5, B: 0.25, A: 1}
	b := common.Color{R: 0, G: 0.75, B: 1, A: 0.5}

	assert.Equal(t, a, Color.Interpolate(a, b, 0))
	assert.Equal(t, b, Color.Interpolate(a, b, 1))
}

func TestQuatInterpolateBoundaries(t *testing.T) {
	a := mgl32.QuatRotate(0.3, mgl32.Vec3{0, 1, 0})
	b := mgl32.QuatRotate(1.2, mgl32.Vec3{1, 0, 0})

	// Slerp may flip sign or renormalize, so compare orientations via the
	// absolute dot product rather than raw components.
	assertSameOrientation(t, a, Quat.Interpolate(a, b, 0))
	assertSameOrientation(t, b, Quat.Interpolate(a, b, 1))
}

func assertSameOrientation(t *testing.T, expected, got mgl32.Quat) {
	t.Helper()
	dot := expected.Dot(got)
	assert.InDelta(t, 1.0, math.Abs(float64(dot)), 1e-5)
}

func TestBlendSingleNonAdditiveMatchesInterpolateFromZero(t *testing.T) {
	got := Float32.Blend([]BlendInput[float32]{{Weight: 0.25, Value: 8, Additive: false}})
	assert.Equal(t, Float32.Interpolate(0, 8, 0.25), got)

	v := mgl32.Vec3{4, -2, 6}
	gotVec := Vec3.Blend([]BlendInput[mgl32.Vec3]{{Weight: 0.5, Value: v, Additive: false}})
	assert.Equal(t, Vec3.Interpolate(mgl32.Vec3{}, v, 0.5), gotVec)
}

func TestBlendAdditiveIsOrderIndependent(t *testing.T) {
	in1 := BlendInput[float32]{Weight: 0.5, Value: 10, Additive: true}
	in2 := BlendInput[float32]{Weight: 2, Value: 3, Additive: true}

	forward := Float32.Blend([]BlendInput[float32]{in1, in2})
	backward := Float32.Blend([]BlendInput[float32]{in2, in1})

	assert.Equal(t, float32(11), forward)
	assert.Equal(t, forward, backward)
}

func TestBlendNonAdditiveFoldsLeftToRight(t *testing.T) {
	// The override fold is not a weighted average: each input pulls the
	// accumulator toward itself by its own weight, so order matters.
	inputs := []BlendInput[float32]{
		{Weight: 1, Value: 10},
		{Weight: 0.5, Value: 20},
	}
	assert.Equal(t, float32(15), Float32.Blend(inputs))

	reversed := []BlendInput[float32]{inputs[1], inputs[0]}
	assert.Equal(t, float32(10), Float32.Blend(reversed))
}

func TestBlendEmptyYieldsZero(t *testing.T) {
	assert.Equal(t, float32(0), Float32.Blend(nil))
	assert.Equal(t, mgl32.Vec3{}, Vec3.Blend(nil))
	assert.Equal(t, common.Color{}, Color.Blend(nil))
	assert.Equal(t, false, Bool.Blend(nil))
	assertSameOrientation(t, mgl32.QuatIdent(), Quat.Blend(nil))
}

var TestBoolStepInterpolation = []struct {
	A bool
	B bool
	T float32
	E bool
}{
	{false, true, 0, false},
	{false, true, 0.5, false},
	{false, true, 0.999, false},
	{false, true, 1, true},
	{false, true, 1.5, true},
	{true, false, 0.25, true},
	{true, false, 1, false},
}

func TestBoolInterpolate(t *testing.T) {
	for _, v := range TestBoolStepInterpolation {
		assert.Equal(t, v.E, Bool.Interpolate(v.A, v.B, v.T))
	}
}

func TestBoolBlendSelectsGreatestWeight(t *testing.T) {
	got := Bool.Blend([]BlendInput[bool]{
		{Weight: 0.3, Value: false},
		{Weight: 0.9, Value: true},
	})
	assert.True(t, got)

	got = Bool.Blend([]BlendInput[bool]{
		{Weight: 0.9, Value: true},
		{Weight: 0.3, Value: false},
	})
	assert.True(t, got)
}

func TestTransformInterpolateBoundaries(t *testing.T) {
	a := common.Transform{
		Translation: mgl32.Vec3{1, 2, 3},
		Rotation:    mgl32.QuatRotate(0.5, mgl32.Vec3{0, 0, 1}),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
	b := common.Transform{
		Translation: mgl32.Vec3{-1, 0, 4},
		Rotation:    mgl32.QuatRotate(1.1, mgl32.Vec3{0, 1, 0}),
		Scale:       mgl32.Vec3{2, 2, 2},
	}

	got := Transform.Interpolate(a, b, 0)
	assert.Equal(t, a.Translation, got.Translation)
	assert.Equal(t, a.Scale, got.Scale)
	assertSameOrientation(t, a.Rotation, got.Rotation)

	got = Transform.Interpolate(a, b, 1)
	assert.Equal(t, b.Translation, got.Translation)
	assert.Equal(t, b.Scale, got.Scale)
	assertSameOrientation(t, b.Rotation, got.Rotation)
}

func TestTransformBlendAdditive(t *testing.T) {
	base := common.Transform{
		Translation: mgl32.Vec3{1, 0, 0},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}

	got := Transform.Blend([]BlendInput[common.Transform]{
		{Weight: 1, Value: base, Additive: true},
		{Weight: 0.5, Value: base, Additive: true},
	})

	assert.Equal(t, mgl32.Vec3{1.5, 0, 0}, got.Translation)
	assert.Equal(t, mgl32.Vec3{1.5, 1.5, 1.5}, got.Scale)
	assertSameOrientation(t, mgl32.QuatIdent(), got.Rotation)
}
