package evaluator_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
	"github.com/Carmen-Shannon/keyframe-go/engine/evaluator"
	"github.com/Carmen-Shannon/keyframe-go/engine/game_object"
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

func newTransformObject() game_object.GameObject {
	return game_object.NewGameObject(game_object.WithTransform(common.IdentityTransform()))
}

func TestNewEvaluatorDefaults(t *testing.T) {
	e := evaluator.NewEvaluator()
	assert.GreaterOrEqual(t, e.Workers(), 1)

	e = evaluator.NewEvaluator(evaluator.WithWorkers(3), evaluator.WithQueueSize(16))
	assert.Equal(t, 3, e.Workers())
}

func TestEvaluateFrameParallelTargets(t *testing.T) {
	e := evaluator.NewEvaluator(evaluator.WithWorkers(4))

	const objects = 32
	applications := make([]evaluator.Application, 0, objects)
	targets := make([]game_object.GameObject, 0, objects)
	for i := 0; i < objects; i++ {
		obj := newTransformObject()
		targets = append(targets, obj)
		applications = append(applications, evaluator.Application{
			Target:        obj,
			Track:         track.NewTranslation([]mgl32.Vec3{{0, 0, 0}, {10, 0, 0}}),
			Interpolation: animatable.InterpolationLinear,
			Time:          0.5,
			Weight:        1,
			Duration:      1,
		})
	}

	results := e.EvaluateFrame(applications)
	assert.Len(t, results, objects)
	for i, err := range results {
		assert.NoError(t, err)
		assert.Equal(t, mgl32.Vec3{5, 0, 0}, targets[i].Transform().Translation)
	}
}

func TestEvaluateFrameSequencesSharedTarget(t *testing.T) {
	e := evaluator.NewEvaluator(evaluator.WithWorkers(4))
	obj := newTransformObject()

	// Two contributions to the same object: a full-weight base pose followed
	// by a half-weight cross-fade. Batch order must be preserved, otherwise
	// the accumulated translation differs.
	applications := []evaluator.Application{
		{
			Target:         obj,
			Track:          track.NewTranslation([]mgl32.Vec3{{10, 0, 0}}),
			Weight:         1,
			SingleKeyframe: true,
		},
		{
			Target:         obj,
			Track:          track.NewTranslation([]mgl32.Vec3{{20, 0, 0}}),
			Weight:         0.5,
			SingleKeyframe: true,
		},
	}

	for i := 0; i < 50; i++ {
		obj.Transform().Translation = mgl32.Vec3{}
		results := e.EvaluateFrame(applications)
		assert.NoError(t, results[0])
		assert.NoError(t, results[1])
		assert.Equal(t, mgl32.Vec3{15, 0, 0}, obj.Transform().Translation)
	}
}

func TestEvaluateFrameIsolatesFailures(t *testing.T) {
	e := evaluator.NewEvaluator(evaluator.WithWorkers(2))

	good := newTransformObject()
	bare := game_object.NewGameObject() // no Transform component

	applications := []evaluator.Application{
		{
			Target:         bare,
			Track:          track.NewTranslation([]mgl32.Vec3{{1, 0, 0}}),
			Weight:         1,
			SingleKeyframe: true,
		},
		{
			Target:         good,
			Track:          track.NewTranslation([]mgl32.Vec3{{1, 0, 0}}),
			Weight:         1,
			SingleKeyframe: true,
		},
	}

	results := e.EvaluateFrame(applications)
	assert.ErrorIs(t, results[0], animatable.ErrComponentNotPresent)
	assert.NoError(t, results[1])
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, good.Transform().Translation)
}

func TestEvaluateFrameNilTarget(t *testing.T) {
	e := evaluator.NewEvaluator(evaluator.WithWorkers(1))

	results := e.EvaluateFrame([]evaluator.Application{{
		Track:  track.NewTranslation([]mgl32.Vec3{{1, 0, 0}}),
		Weight: 1,
	}})
	assert.Error(t, results[0])
}

func TestEvaluateFrameEmptyBatch(t *testing.T) {
	e := evaluator.NewEvaluator(evaluator.WithWorkers(1))
	assert.Empty(t, e.EvaluateFrame(nil))
}

func TestApplicationApplyValidation(t *testing.T) {
	err := evaluator.Application{}.Apply()
	assert.Error(t, err)
}
