package core

import "context"

type OptionKey string

const (
	FailFastOptionKey OptionKey = "fail_fast_options"
	WorkerOptionKey   OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}
type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type FailFastOptions struct {
	Enabled bool
}

// WithFailFast makes concurrent evaluation stop scheduling work after the
// first failure; the skipped positions are reported as cancelled.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, FailFastOptionKey, FailFastOptions{Enabled: enabled})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsFailFastEnabled(ctx context.Context, defaultFailFast bool) bool {
	options, ok := ctx.Value(FailFastOptionKey).(FailFastOptions)
	if ok {
		return options.Enabled
	}
	return defaultFailFast
}
