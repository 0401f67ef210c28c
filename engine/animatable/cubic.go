package animatable

// InterpolateWithCubicBezier evaluates a cubic Bézier curve at t, given the
// two endpoint values p0 and p3 and the authored tangent derivatives d0 and d3
// at those endpoints. The derivatives are linearly scaled by duration, the
// time span between the two keyframes.
//
// The derivative of a cubic Bézier at its endpoints relates to the off-curve
// control points as P1 = P0 + B'(0)/3 and P2 = P3 - B'(1)/3, so the control
// points can be recovered with two additive blends. The curve is then
// evaluated with de Casteljau subdivision using repeated interpolation. Only
// the generic Blend and Interpolate operations are required, so this works for
// any Animatable type, not just vectors.
//
// Parameters:
//   - ops: the Animatable implementation for T
//   - p0: the starting keyframe value
//   - d0: the tangent derivative at the start
//   - d3: the tangent derivative at the end
//   - p3: the ending keyframe value
//   - t: the evaluation parameter, 0 at p0 and 1 at p3
//   - duration: the time span between the two keyframes
//
// Returns:
//   - T: the curve value at t
func InterpolateWithCubicBezier[T any](ops Animatable[T], p0, d0, d3, p3 T, t, duration float32) T {
	// Compute control points from derivatives.
	p1 := ops.Blend([]BlendInput[T]{
		{Weight: duration / 3.0, Value: d0, Additive: true},
		{Weight: 1.0, Value: p0, Additive: true},
	})
	p2 := ops.Blend([]BlendInput[T]{
		{Weight: duration / -3.0, Value: d3, Additive: true},
		{Weight: 1.0, Value: p3, Additive: true},
	})

	// Use de Casteljau subdivision to evaluate.
	p0p1 := ops.Interpolate(p0, p1, t)
	p1p2 := ops.Interpolate(p1, p2, t)
	p2p3 := ops.Interpolate(p2, p3, t)
	p0p1p2 := ops.Interpolate(p0p1, p1p2, t)
	p1p2p3 := ops.Interpolate(p1p2, p2p3, t)
	return ops.Interpolate(p0p1p2, p1p2p3, t)
}
