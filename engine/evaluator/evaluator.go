// Package evaluator fans per-frame track applications out across a worker
// pool. The animation stage is embarrassingly parallel across target objects:
// each destination property is written by exactly one accumulation sequence
// per frame, so the evaluator partitions the batch by target object and runs
// each object's applications sequentially on one worker, in batch order. No
// synchronization is needed inside the tracks themselves.
package evaluator

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/keyframe-go/common"
	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
	"github.com/Carmen-Shannon/keyframe-go/engine/track"
)

// Application is one track contribution to one target object for the current
// frame. The clip player decides the time cursor: it supplies the step index,
// the interpolation factor between the two steps, the blend weight, and the
// time span between the steps; the evaluator only applies them.
type Application struct {
	// Target is the object whose property the track writes.
	Target track.Target

	// Track is the keyframe track to apply.
	Track track.Track

	// Interpolation is the interpolation mode for this application.
	Interpolation animatable.Interpolation

	// StepStart is the index of the starting keyframe.
	StepStart int

	// Time is the interpolation factor between StepStart and StepStart+1,
	// ranging from 0 at the starting keyframe to 1 at the ending keyframe.
	Time float32

	// Weight is the blend factor of this contribution against the value
	// already on the object; 0 leaves it unchanged, 1 overwrites it.
	Weight float32

	// Duration is the time span in seconds between the two keyframes, used
	// for cubic tangent scaling.
	Duration float32

	// SingleKeyframe applies only keyframe 0 with Weight, ignoring the
	// tweening fields. Players use this for single-pose clips and for
	// clamping before the first keyframe.
	SingleKeyframe bool
}

// Apply runs this application against its target.
//
// Returns:
//   - error: the track application error, or nil on success
func (a Application) Apply() error {
	if a.Target == nil || a.Track == nil {
		return fmt.Errorf("application requires a target and a track")
	}
	if a.SingleKeyframe {
		return a.Track.ApplySingleKeyframe(a.Target, a.Weight)
	}
	return a.Track.ApplyTweenedKeyframes(a.Target, a.Interpolation, a.StepStart, a.Time, a.Weight, a.Duration)
}

// evaluator is the implementation of the Evaluator interface.
type evaluator struct {
	// pool manages a bounded set of reusable goroutines for the parallel
	// evaluation phase. Workers persist across frames, avoiding per-frame
	// goroutine spawn/teardown overhead.
	pool      worker.DynamicWorkerPool
	workers   int
	queueSize int
}

// Evaluator defines the public interface for the parallel animation
// evaluation stage. A single Evaluator is reused across frames; it holds no
// per-frame state.
type Evaluator interface {
	// Workers returns the configured worker count.
	//
	// Returns:
	//   - int: the number of pool workers
	Workers() int

	// EvaluateFrame applies every application in the batch and returns one
	// result slot per application, in batch order: nil for success, the track
	// application error otherwise. Applications sharing a target object run
	// sequentially in batch order on one worker, preserving the caller's
	// blend accumulation order; distinct targets run in parallel. A failing
	// application never prevents the others from being evaluated.
	//
	// Parameters:
	//   - applications: the frame's track applications
	//
	// Returns:
	//   - []error: per-application results aligned with the input
	EvaluateFrame(applications []Application) []error
}

var _ Evaluator = &evaluator{}

// NewEvaluator creates a new Evaluator configured with the given options.
// The worker count defaults to one less than the number of CPUs.
//
// Parameters:
//   - options: functional options to configure the evaluator
//
// Returns:
//   - Evaluator: the newly created evaluator
func NewEvaluator(options ...EvaluatorBuilderOption) Evaluator {
	e := &evaluator{}
	for _, option := range options {
		option(e)
	}

	e.workers = common.Coalesce(e.workers, max(runtime.NumCPU()-1, 1))
	e.queueSize = common.Coalesce(e.queueSize, 256)
	e.pool = worker.NewDynamicWorkerPool(e.workers, e.queueSize, 1*time.Second)

	return e
}

func (e *evaluator) Workers() int {
	return e.workers
}

func (e *evaluator) EvaluateFrame(applications []Application) []error {
	results := make([]error, len(applications))

	// Partition by target object so each destination is owned by one task.
	// Order within a partition is batch order, which is the caller's blend
	// accumulation order.
	partitions := make(map[track.Target][]int)
	order := make([]track.Target, 0, len(applications))
	for i, application := range applications {
		if application.Target == nil {
			results[i] = fmt.Errorf("application requires a target and a track")
			continue
		}
		if _, ok := partitions[application.Target]; !ok {
			order = append(order, application.Target)
		}
		partitions[application.Target] = append(partitions[application.Target], i)
	}

	// A WaitGroup provides the per-frame barrier since pool.Wait() blocks
	// until workers idle-exit, which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for _, target := range order {
		indices := partitions[target]

		wg.Add(1)
		id := taskID
		taskID++
		e.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for _, i := range indices {
					// Each slot is written by exactly one task; a failure is
					// recorded and the remaining applications still run.
					results[i] = applications[i].Apply()
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return results
}
