package game_object

import (
	"github.com/Carmen-Shannon/keyframe-go/common"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject participates in animation evaluation.
//
// Parameters:
//   - enabled: true to evaluate the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithComponent stores a component on the GameObject during construction.
// The argument must be a non-nil pointer to the component value.
//
// Parameters:
//   - component: a pointer to the component value
//
// Returns:
//   - GameObjectBuilderOption: functional option to store the component
func WithComponent(component any) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.SetComponent(component)
	}
}

// WithTransform stores a Transform component on the GameObject during construction.
//
// Parameters:
//   - transform: the initial transform value
//
// Returns:
//   - GameObjectBuilderOption: functional option to store the transform
func WithTransform(transform common.Transform) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.SetComponent(&transform)
	}
}

// WithMorphWeights stores a MorphWeights component with targetCount zeroed
// weights on the GameObject during construction.
//
// Parameters:
//   - targetCount: the number of morph targets in the mesh
//
// Returns:
//   - GameObjectBuilderOption: functional option to store the morph weights
func WithMorphWeights(targetCount int) GameObjectBuilderOption {
	return func(obj *gameObject) {
		weights := common.NewMorphWeights(targetCount)
		obj.SetComponent(&weights)
	}
}
