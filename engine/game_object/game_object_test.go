package game_object_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/Carmen-Shannon/keyframe-go/engine/game_object"
)

type health struct {
	Current float32
	Max     float32
}

var healthType = reflect.TypeOf(health{})

func TestNewGameObjectDefaults(t *testing.T) {
	obj := game_object.NewGameObject()
	assert.True(t, obj.Enabled())
	assert.Zero(t, obj.ID())
	assert.Nil(t, obj.Transform())
	assert.Nil(t, obj.MorphWeights())
}

func TestGameObjectOptions(t *testing.T) {
	obj := game_object.NewGameObject(
		game_object.WithID(42),
		game_object.WithEnabled(false),
		game_object.WithTransform(common.IdentityTransform()),
		game_object.WithMorphWeights(3),
	)

	assert.Equal(t, uint64(42), obj.ID())
	assert.False(t, obj.Enabled())
	if assert.NotNil(t, obj.Transform()) {
		assert.Equal(t, common.IdentityTransform(), *obj.Transform())
	}
	if assert.NotNil(t, obj.MorphWeights()) {
		assert.Len(t, obj.MorphWeights().Weights, 3)
	}
}

func TestGameObjectComponentRoundTrip(t *testing.T) {
	obj := game_object.NewGameObject()

	obj.SetComponent(&health{Current: 50, Max: 100})

	c, ok := obj.Component(healthType)
	assert.True(t, ok)
	assert.Equal(t, float32(50), c.(*health).Current)

	// the stored component is shared, not copied
	c.(*health).Current = 75
	c2, _ := obj.Component(healthType)
	assert.Equal(t, float32(75), c2.(*health).Current)
}

func TestGameObjectSetComponentIgnoresNonPointer(t *testing.T) {
	obj := game_object.NewGameObject()

	obj.SetComponent(health{})
	obj.SetComponent(nil)
	var h *health
	obj.SetComponent(h)

	_, ok := obj.Component(healthType)
	assert.False(t, ok)
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := game_object.NewGameObject()
	obj.SetComponent(&health{})

	obj.RemoveComponent(healthType)
	_, ok := obj.Component(healthType)
	assert.False(t, ok)
}

func TestGameObjectSetEnabled(t *testing.T) {
	obj := game_object.NewGameObject()
	obj.SetEnabled(false)
	assert.False(t, obj.Enabled())
	obj.SetEnabled(true)
	assert.True(t, obj.Enabled())
}

func TestGameObjectTransformIsWritable(t *testing.T) {
	obj := game_object.NewGameObject(game_object.WithTransform(common.IdentityTransform()))

	obj.Transform().Translation[0] = 5
	assert.Equal(t, float32(5), obj.Transform().Translation[0])
}
