// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds the translation, rotation, and scale of an animatable object.
// It is the destination component for the common translation/rotation/scale
// keyframe tracks, and is itself animatable as a composite value.
type Transform struct {
	// Translation is the position offset in world or parent space.
	Translation mgl32.Vec3

	// Rotation is the orientation as a unit quaternion.
	Rotation mgl32.Quat

	// Scale is the per-axis scale factor.
	Scale mgl32.Vec3
}

// IdentityTransform returns a Transform with zero translation, identity rotation,
// and unit scale.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Color is a four-channel color value. The channels are not clamped; linear
// and perceptual color spaces are treated identically at this layer.
type Color struct {
	// R, G, B are the color channels.
	R, G, B float32

	// A is the alpha channel.
	A float32
}

// MorphWeights holds the per-target weights of a morphed mesh as a single flat
// slice, one entry per morph target. It is the destination component for
// morph-weight keyframe tracks.
type MorphWeights struct {
	// Weights is the current weight of each morph target.
	Weights []float32
}

// NewMorphWeights creates a MorphWeights component with targetCount weights,
// all initialized to zero.
//
// Parameters:
//   - targetCount: the number of morph targets in the mesh
//
// Returns:
//   - MorphWeights: the new component
func NewMorphWeights(targetCount int) MorphWeights {
	return MorphWeights{Weights: make([]float32, targetCount)}
}
