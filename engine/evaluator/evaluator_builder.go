package evaluator

// EvaluatorBuilderOption is a functional option for configuring an Evaluator during construction.
type EvaluatorBuilderOption func(*evaluator)

// WithWorkers sets the number of pool workers used to evaluate frames.
// Values less than one leave the default (one less than the number of CPUs).
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - EvaluatorBuilderOption: functional option to set the worker count
func WithWorkers(workers int) EvaluatorBuilderOption {
	return func(e *evaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithQueueSize sets the worker pool's task queue capacity. The default of
// 256 accommodates typical per-frame object counts with headroom.
//
// Parameters:
//   - queueSize: the queue capacity
//
// Returns:
//   - EvaluatorBuilderOption: functional option to set the queue capacity
func WithQueueSize(queueSize int) EvaluatorBuilderOption {
	return func(e *evaluator) {
		if queueSize > 0 {
			e.queueSize = queueSize
		}
	}
}
