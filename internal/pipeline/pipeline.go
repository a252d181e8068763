package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/chain"
)

type Pipeline struct {
	Name   string
	steps  []string
	stages []Stage
}

// Compile builds the named pipeline from its step configs.
func (r *Registry) Compile(name string, steps []StepConfig) (*Pipeline, error) {
	stages, err := r.Stages(steps)
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", name, err)
	}

	p := &Pipeline{Name: name, stages: stages}
	for _, sc := range steps {
		p.steps = append(p.steps, sc.Step)
	}
	return p, nil
}

// Steps lists the step names, in order.
func (p *Pipeline) Steps() []string {
	return slices.Clone(p.steps)
}

// Run passes doc through every stage. The input document is never
// modified by the built-in steps.
func (p *Pipeline) Run(ctx context.Context, doc any) lambda.Result[any] {
	log := zap.L().Named("pipeline").With(zap.String("pipeline", p.Name))

	c := chain.FromValue(ctx, doc)
	for i, stage := range p.stages {
		i := i
		c = chain.ThenTry(c, stage).Ensure(func(context.Context, any) {
			log.Debug("step done", zap.Int("index", i), zap.String("step", p.steps[i]))
		})
	}

	return chain.Finally(c,
		func(_ context.Context, out any) lambda.Result[any] {
			return lambda.Success(out)
		},
		func(_ context.Context, err error) lambda.Result[any] {
			log.Warn("pipeline failed", zap.Error(err))
			return lambda.Fail[any](err)
		},
		func(_ context.Context, err error) lambda.Result[any] {
			log.Warn("pipeline cancelled", zap.Error(err))
			return lambda.Cancel[any](err)
		},
	)
}

// Runner holds the compiled pipelines of a config.
type Runner struct {
	pipelines map[string]*Pipeline
}

// NewRunner compiles every pipeline of cfg against r, failing on the first
// invalid one.
func NewRunner(r *Registry, cfg *Config) (*Runner, error) {
	run := &Runner{pipelines: make(map[string]*Pipeline, len(cfg.Pipelines))}
	for name, steps := range cfg.Pipelines {
		p, err := r.Compile(name, steps)
		if err != nil {
			return nil, err
		}
		run.pipelines[name] = p
	}
	return run, nil
}

// Names lists the compiled pipelines in sorted order.
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Runner) Pipeline(name string) (*Pipeline, error) {
	p, ok := r.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPipeline, name)
	}
	return p, nil
}

// Run runs the named pipeline on doc.
func (r *Runner) Run(ctx context.Context, name string, doc any) (any, error) {
	p, err := r.Pipeline(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := p.Run(ctx, doc)
	zap.L().Named("pipeline").Debug("pipeline finished",
		zap.String("pipeline", name),
		zap.String("outcome", outcome(res)),
		zap.Duration("elapsed", res.CreatedAt().Sub(start)),
	)
	return res.Get()
}

func outcome(r lambda.WithCancel[any]) string {
	switch {
	case r.IsSuccess():
		return "success"
	case r.IsCancel():
		return "cancelled"
	default:
		return "failed"
	}
}
