package animatable

import (
	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// The built-in Animatable implementations. Each is a stateless value; they are
// safe for concurrent use.
var (
	// Float32 animates float32 scalars with exact linear interpolation.
	Float32 Animatable[float32] = float32Animatable{}

	// Float64 animates float64 scalars with exact linear interpolation.
	Float64 Animatable[float64] = float64Animatable{}

	// Vec2 animates 2-component float32 vectors component-wise.
	Vec2 Animatable[mgl32.Vec2] = vec2Animatable{}

	// Vec3 animates 3-component float32 vectors component-wise.
	Vec3 Animatable[mgl32.Vec3] = vec3Animatable{}

	// Vec4 animates 4-component float32 vectors component-wise.
	Vec4 Animatable[mgl32.Vec4] = vec4Animatable{}

	// DVec2 animates 2-component float64 vectors component-wise.
	DVec2 Animatable[mgl64.Vec2] = dvec2Animatable{}

	// DVec3 animates 3-component float64 vectors component-wise.
	DVec3 Animatable[mgl64.Vec3] = dvec3Animatable{}

	// DVec4 animates 4-component float64 vectors component-wise.
	DVec4 Animatable[mgl64.Vec4] = dvec4Animatable{}

	// Quat animates unit quaternions with spherical linear interpolation.
	Quat Animatable[mgl32.Quat] = quatAnimatable{}

	// Color animates four-channel colors component-wise.
	Color Animatable[common.Color] = colorAnimatable{}

	// Bool animates booleans with step interpolation and max-weight-wins blending.
	Bool Animatable[bool] = boolAnimatable{}

	// Transform animates composite transforms, interpolating and blending
	// translation, rotation, and scale independently.
	Transform Animatable[common.Transform] = transformAnimatable{}
)

type float32Animatable struct{}

func (float32Animatable) Interpolate(a, b float32, t float32) float32 {
	return common.Lerp(a, b, t)
}

func (float32Animatable) Blend(inputs []BlendInput[float32]) float32 {
	var value float32
	for _, input := range inputs {
		if input.Additive {
			value += input.Weight * input.Value
		} else {
			value = common.Lerp(value, input.Value, input.Weight)
		}
	}
	return value
}

type float64Animatable struct{}

func (float64Animatable) Interpolate(a, b float64, t float32) float64 {
	return common.Lerp(a, b, float64(t))
}

func (float64Animatable) Blend(inputs []BlendInput[float64]) float64 {
	var value float64
	for _, input := range inputs {
		if input.Additive {
			value += float64(input.Weight) * input.Value
		} else {
			value = common.Lerp(value, input.Value, float64(input.Weight))
		}
	}
	return value
}

type vec2Animatable struct{}

func (vec2Animatable) Interpolate(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func (o vec2Animatable) Blend(inputs []BlendInput[mgl32.Vec2]) mgl32.Vec2 {
	var value mgl32.Vec2
	for _, input := range inputs {
		if input.Additive {
			value = value.Add(input.Value.Mul(input.Weight))
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type vec3Animatable struct{}

func (vec3Animatable) Interpolate(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func (o vec3Animatable) Blend(inputs []BlendInput[mgl32.Vec3]) mgl32.Vec3 {
	var value mgl32.Vec3
	for _, input := range inputs {
		if input.Additive {
			value = value.Add(input.Value.Mul(input.Weight))
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type vec4Animatable struct{}

func (vec4Animatable) Interpolate(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func (o vec4Animatable) Blend(inputs []BlendInput[mgl32.Vec4]) mgl32.Vec4 {
	var value mgl32.Vec4
	for _, input := range inputs {
		if input.Additive {
			value = value.Add(input.Value.Mul(input.Weight))
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type dvec2Animatable struct{}

func (dvec2Animatable) Interpolate(a, b mgl64.Vec2, t float32) mgl64.Vec2 {
	t64 := float64(t)
	return a.Mul(1 - t64).Add(b.Mul(t64))
}

func (o dvec2Animatable) Blend(inputs []BlendInput[mgl64.Vec2]) mgl64.Vec2 {
	var value mgl64.Vec2
	for _, input := range inputs {
		if input.Additive {
			value = value.Add(input.Value.Mul(float64(input.Weight)))
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type dvec3Animatable struct{}

func (dvec3Animatable) Interpolate(a, b mgl64.Vec3, t float32) mgl64.Vec3 {
	t64 := float64(t)
	return a.Mul(1 - t64).Add(b.Mul(t64))
}

func (o dvec3Animatable) Blend(inputs []BlendInput[mgl64.Vec3]) mgl64.Vec3 {
	var value mgl64.Vec3
	for _, input := range inputs {
		if input.Additive {
			value = value.Add(input.Value.Mul(float64(input.Weight)))
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type dvec4Animatable struct{}

func (dvec4Animatable) Interpolate(a, b mgl64.Vec4, t float32) mgl64.Vec4 {
	t64 := float64(t)
	return a.Mul(1 - t64).Add(b.Mul(t64))
}

func (o dvec4Animatable) Blend(inputs []BlendInput[mgl64.Vec4]) mgl64.Vec4 {
	var value mgl64.Vec4
	for _, input := range inputs {
		if input.Additive {
			value = value.Add(input.Value.Mul(float64(input.Weight)))
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type quatAnimatable struct{}

// Interpolate performs a slerp to smoothly interpolate between quaternions.
// Slerp keeps interpolated rotations on the unit sphere; naive linear blending
// of rotations produces non-constant angular velocity and can shrink magnitude.
func (quatAnimatable) Interpolate(a, b mgl32.Quat, t float32) mgl32.Quat {
	return mgl32.QuatSlerp(a, b, t)
}

// Blend folds every input into the accumulator with a slerp by the input's
// weight. Quaternions have no native addition that meaningfully preserves unit
// length, so additive inputs use the same slerp as non-additive ones.
func (o quatAnimatable) Blend(inputs []BlendInput[mgl32.Quat]) mgl32.Quat {
	value := mgl32.QuatIdent()
	for _, input := range inputs {
		value = o.Interpolate(value, input.Value, input.Weight)
	}
	return value
}

type colorAnimatable struct{}

func (colorAnimatable) Interpolate(a, b common.Color, t float32) common.Color {
	return common.Color{
		R: common.Lerp(a.R, b.R, t),
		G: common.Lerp(a.G, b.G, t),
		B: common.Lerp(a.B, b.B, t),
		A: common.Lerp(a.A, b.A, t),
	}
}

func (o colorAnimatable) Blend(inputs []BlendInput[common.Color]) common.Color {
	var value common.Color
	for _, input := range inputs {
		if input.Additive {
			value.R += input.Weight * input.Value.R
			value.G += input.Weight * input.Value.G
			value.B += input.Weight * input.Value.B
			value.A += input.Weight * input.Value.A
		} else {
			value = o.Interpolate(value, input.Value, input.Weight)
		}
	}
	return value
}

type boolAnimatable struct{}

// Interpolate is a step function: a until the t = 1 boundary is crossed, b
// after. Blending boolean values is not mathematically meaningful.
func (boolAnimatable) Interpolate(a, b bool, t float32) bool {
	if t >= 1 {
		return b
	}
	return a
}

// Blend selects the value carried by the input with the greatest weight, with
// later inputs winning ties. Booleans have no additive semantics, so the
// additive flag is ignored. Empty input yields false.
func (boolAnimatable) Blend(inputs []BlendInput[bool]) bool {
	value := false
	bestWeight := float32(0)
	found := false
	for _, input := range inputs {
		if !found || input.Weight >= bestWeight {
			value = input.Value
			bestWeight = input.Weight
			found = true
		}
	}
	return value
}

type transformAnimatable struct{}

func (transformAnimatable) Interpolate(a, b common.Transform, t float32) common.Transform {
	return common.Transform{
		Translation: Vec3.Interpolate(a.Translation, b.Translation, t),
		Rotation:    Quat.Interpolate(a.Rotation, b.Rotation, t),
		Scale:       Vec3.Interpolate(a.Scale, b.Scale, t),
	}
}

func (transformAnimatable) Blend(inputs []BlendInput[common.Transform]) common.Transform {
	var translation, scale mgl32.Vec3
	rotation := mgl32.QuatIdent()

	for _, input := range inputs {
		if input.Additive {
			translation = translation.Add(input.Value.Translation.Mul(input.Weight))
			scale = scale.Add(input.Value.Scale.Mul(input.Weight))
			rotation = Quat.Interpolate(rotation, input.Value.Rotation, input.Weight)
		} else {
			translation = Vec3.Interpolate(translation, input.Value.Translation, input.Weight)
			scale = Vec3.Interpolate(scale, input.Value.Scale, input.Weight)
			rotation = Quat.Interpolate(rotation, input.Value.Rotation, input.Weight)
		}
	}

	return common.Transform{
		Translation: translation,
		Rotation:    rotation,
		Scale:       scale,
	}
}
