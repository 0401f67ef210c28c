package track_test

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
	"github.com/Carmen-Shannon/keyframe-go/engine/game_object"
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

func newTransformObject() game_object.GameObject {
	return game_object.NewGameObject(game_object.WithTransform(common.IdentityTransform()))
}

func TestTranslationTrackLinear(t *testing.T) {
	obj := newTransformObject()
	tr := track.NewTranslation([]mgl32.Vec3{{0, 0, 0}, {10, 0, 0}, {20, 0, 0}})

	err := tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 0.5, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, obj.Transform().Translation)
}

func TestTranslationTrackStepIgnoresTime(t *testing.T) {
	obj := newTransformObject()
	tr := track.NewTranslation([]mgl32.Vec3{{1, 2, 3}, {7, 8, 9}})

	for _, time := range []float32{0, 0.5, 0.99} {
		err := tr.ApplyTweenedKeyframes(obj, animatable.InterpolationStep, 0, time, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Transform().Translation)
	}
}

func TestScaleTrackWritesScaleOnly(t *testing.T) {
	obj := newTransformObject()
	tr := track.NewScale([]mgl32.Vec3{{2, 2, 2}, {4, 4, 4}})

	err := tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 1, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{4, 4, 4}, obj.Transform().Scale)
	assert.Equal(t, mgl32.Vec3{}, obj.Transform().Translation)
}

func TestRotationTrackEndpoints(t *testing.T) {
	obj := newTransformObject()
	a := mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0})
	b := mgl32.QuatRotate(1.5, mgl32.Vec3{0, 1, 0})
	tr := track.NewRotation([]mgl32.Quat{a, b})

	err := tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 1, 1, 1)
	assert.NoError(t, err)

	dot := b.Dot(obj.Transform().Rotation)
	assert.InDelta(t, 1.0, float64(dot*dot), 1e-5)
}

func TestTrackComponentNotPresent(t *testing.T) {
	obj := game_object.NewGameObject() // no Transform component
	tr := track.NewTranslation([]mgl32.Vec3{{1, 1, 1}})

	err := tr.ApplySingleKeyframe(obj, 1)
	assert.ErrorIs(t, err, animatable.ErrComponentNotPresent)

	err = tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 0.5, 1, 1)
	assert.ErrorIs(t, err, animatable.ErrComponentNotPresent)
}

func TestEmptyTrackSingleKeyframe(t *testing.T) {
	obj := newTransformObject()
	tr := track.NewTranslation(nil)

	err := tr.ApplySingleKeyframe(obj, 1)
	assert.ErrorIs(t, err, animatable.ErrKeyframeNotPresent)
}

func TestTrackOutOfRangeStep(t *testing.T) {
	obj := newTransformObject()
	tr := track.NewTranslation([]mgl32.Vec3{{1, 1, 1}, {2, 2, 2}})

	err := tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 1, 0.5, 1, 1)
	assert.ErrorIs(t, err, animatable.ErrKeyframeNotPresent)
}

func TestKeyframeCountAccountsForCubicLayout(t *testing.T) {
	linear := track.NewTranslation(make([]mgl32.Vec3, 4))
	assert.Equal(t, 4, linear.KeyframeCount())

	cubic := track.NewTranslation(make([]mgl32.Vec3, 6), track.WithCubicKeyframes())
	assert.Equal(t, 2, cubic.KeyframeCount())
}

func TestTrackApplyWeightCrossFades(t *testing.T) {
	obj := newTransformObject()
	obj.Transform().Translation = mgl32.Vec3{100, 0, 0}

	tr := track.NewTranslation([]mgl32.Vec3{{0, 0, 0}, {10, 0, 0}})
	err := tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 1, 0.5, 1)
	assert.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{55, 0, 0}, obj.Transform().Translation)
}

func TestTrackCloneIsIndependent(t *testing.T) {
	tr := track.NewTranslation([]mgl32.Vec3{{1, 0, 0}, {2, 0, 0}})
	clone := tr.Clone()

	assert.Equal(t, tr.KeyframeCount(), clone.KeyframeCount())
	assert.Equal(t, tr.ComponentType(), clone.ComponentType())

	objA := newTransformObject()
	objB := newTransformObject()
	assert.NoError(t, tr.ApplySingleKeyframe(objA, 1))
	assert.NoError(t, clone.ApplySingleKeyframe(objB, 1))
	assert.Equal(t, objA.Transform().Translation, objB.Transform().Translation)
}

// sprite is a user component with nested animatable properties.
type sprite struct {
	Opacity float32
	Tint    common.Color
	Layers  []spriteLayer
}

type spriteLayer struct {
	Offset mgl32.Vec3
}

var spriteType = reflect.TypeOf(sprite{})

func newSpriteObject() game_object.GameObject {
	return game_object.NewGameObject(game_object.WithComponent(&sprite{
		Layers: make([]spriteLayer, 2),
	}))
}

func TestPropertyTrackScalarField(t *testing.T) {
	obj := newSpriteObject()
	tr, err := track.NewProperty(spriteType, "Opacity", []float32{0, 1})
	assert.NoError(t, err)

	err = tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 0.25, 1, 1)
	assert.NoError(t, err)

	c, ok := obj.Component(spriteType)
	assert.True(t, ok)
	assert.Equal(t, float32(0.25), c.(*sprite).Opacity)
}

func TestPropertyTrackNestedIndexedField(t *testing.T) {
	obj := newSpriteObject()
	tr, err := track.NewProperty(spriteType, "Layers[1].Offset", []mgl32.Vec3{{0, 0, 0}, {4, 0, 0}})
	assert.NoError(t, err)

	err = tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 0.5, 1, 1)
	assert.NoError(t, err)

	c, _ := obj.Component(spriteType)
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, c.(*sprite).Layers[1].Offset)
}

func TestPropertyTrackMissingField(t *testing.T) {
	obj := newSpriteObject()
	tr, err := track.NewProperty(spriteType, "Nope", []float32{0, 1})
	assert.NoError(t, err)

	err = tr.ApplySingleKeyframe(obj, 1)
	assert.ErrorIs(t, err, animatable.ErrPropertyNotPresent)
}

func TestPropertyTrackMalformedKeyframes(t *testing.T) {
	obj := newSpriteObject()

	// float64 keyframes against a float32 property: the entry for the
	// property's registered type rejects the list.
	tr, err := track.NewProperty(spriteType, "Opacity", []float64{0, 1})
	assert.NoError(t, err)

	err = tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 0.5, 1, 1)
	assert.ErrorIs(t, err, animatable.ErrMalformedKeyframes)
}

func TestPropertyTrackRejectsNonSliceKeyframes(t *testing.T) {
	_, err := track.NewProperty(spriteType, "Opacity", 3.5)
	assert.ErrorIs(t, err, animatable.ErrMalformedKeyframes)
}

func TestPropertyTrackIndexOutOfRange(t *testing.T) {
	obj := newSpriteObject()
	tr, err := track.NewProperty(spriteType, "Layers[5].Offset", []mgl32.Vec3{{1, 1, 1}})
	assert.NoError(t, err)

	err = tr.ApplySingleKeyframe(obj, 1)
	assert.ErrorIs(t, err, animatable.ErrPropertyNotPresent)
}

func TestMorphWeightsTrackLinear(t *testing.T) {
	obj := game_object.NewGameObject(game_object.WithMorphWeights(2))

	// 2 targets, 2 keyframes: target 0 goes 0 -> 10, target 1 goes 1 -> 3.
	tr, err := track.NewMorphWeights([]float32{0, 1, 10, 3}, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, tr.KeyframeCount())

	err = tr.ApplyTweenedKeyframes(obj, animatable.InterpolationLinear, 0, 0.5, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, []float32{5, 2}, obj.MorphWeights().Weights)
}

func TestMorphWeightsTrackValidation(t *testing.T) {
	_, err := track.NewMorphWeights([]float32{1, 2, 3}, 2)
	assert.ErrorIs(t, err, animatable.ErrMalformedKeyframes)

	_, err = track.NewMorphWeights([]float32{1, 2, 3}, 0)
	assert.ErrorIs(t, err, animatable.ErrMalformedKeyframes)
}

func TestMorphWeightsTrackComponentNotPresent(t *testing.T) {
	obj := game_object.NewGameObject()
	tr, err := track.NewMorphWeights([]float32{1, 2}, 2)
	assert.NoError(t, err)

	err = tr.ApplySingleKeyframe(obj, 1)
	assert.ErrorIs(t, err, animatable.ErrComponentNotPresent)
}
