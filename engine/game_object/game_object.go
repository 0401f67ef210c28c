package game_object

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/keyframe-go/common"
)

// gameObject is the implementation of the GameObject interface.
type gameObject struct {
	id      uint64
	enabled atomic.Bool

	// mu guards the component map itself; the component data reached through
	// the stored pointers is written by track application, which is sequenced
	// per object by the caller.
	mu         sync.RWMutex
	components map[reflect.Type]any
}

// GameObject defines the interface for an animatable scene entity. Components
// are stored by their concrete type and handed out as pointers, so keyframe
// tracks can write property values in place. A component map lookup that
// misses is an ordinary result, never a panic: track application reports it as
// a recoverable error and the rest of the frame proceeds.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Enabled returns whether this object participates in animation evaluation.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether this object participates in animation evaluation.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Component returns a pointer to the component of the given type, or false
	// if the object does not have one.
	//
	// Parameters:
	//   - componentType: the component's concrete (non-pointer) type
	//
	// Returns:
	//   - any: a pointer to the stored component
	//   - bool: true if the component is present
	Component(componentType reflect.Type) (any, bool)

	// SetComponent stores a component on this object, replacing any existing
	// component of the same type. The argument must be a non-nil pointer to
	// the component value; anything else is ignored.
	//
	// Parameters:
	//   - component: a pointer to the component value
	SetComponent(component any)

	// RemoveComponent removes the component of the given type, if present.
	//
	// Parameters:
	//   - componentType: the component's concrete (non-pointer) type
	RemoveComponent(componentType reflect.Type)

	// Transform returns the object's Transform component, or nil if none is set.
	//
	// Returns:
	//   - *common.Transform: the transform or nil
	Transform() *common.Transform

	// MorphWeights returns the object's MorphWeights component, or nil if none is set.
	//
	// Returns:
	//   - *common.MorphWeights: the morph weights or nil
	MorphWeights() *common.MorphWeights
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		components: make(map[reflect.Type]any),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Component(componentType reflect.Type) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.components[componentType]
	return c, ok
}

func (g *gameObject) SetComponent(component any) {
	v := reflect.ValueOf(component)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	t := v.Type()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.components[t.Elem()] = component
}

func (g *gameObject) RemoveComponent(componentType reflect.Type) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.components, componentType)
}

func (g *gameObject) Transform() *common.Transform {
	c, ok := g.Component(reflect.TypeOf(common.Transform{}))
	if !ok {
		return nil
	}
	return c.(*common.Transform)
}

func (g *gameObject) MorphWeights() *common.MorphWeights {
	c, ok := g.Component(reflect.TypeOf(common.MorphWeights{}))
	if !ok {
		return nil
	}
	return c.(*common.MorphWeights)
}
