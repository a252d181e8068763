// Package pipeline runs declarative transformations over decoded documents.
//
// A pipeline is a list of named steps read from config. Every step is built
// by a registered Builder from its arguments, mostly by partially applying
// the helpers of seq, deep and text with the combinators of fn. Steps run
// in order through a chain, so the first failing step ends the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/ib-77/lambda/pkg/lambda/fn"
)

var (
	ErrUnknownStep     = errors.New("unknown step")
	ErrUnknownPipeline = errors.New("unknown pipeline")
	ErrBadArgs         = errors.New("bad step arguments")
)

// Stage transforms a document.
type Stage = func(ctx context.Context, doc any) (any, error)

// Builder turns decoded step arguments into a Stage. It receives the
// registry so that steps can nest other steps.
type Builder func(r *Registry, args map[string]any) (Stage, error)

type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns a registry holding the built-in steps.
func NewRegistry() *Registry {
	r := &Registry{builders: map[string]Builder{}}
	for name, b := range builtins() {
		r.Register(name, b)
	}
	return r
}

// Register adds or replaces the step called name.
func (r *Registry) Register(name string, b Builder) {
	r.builders[name] = b
}

// Names lists the registered steps in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stage builds one configured step.
func (r *Registry) Stage(sc StepConfig) (Stage, error) {
	b, ok := r.builders[sc.Step]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, sc.Step)
	}

	s, err := b(r, sc.Args)
	if err != nil {
		return nil, fmt.Errorf("step %q: %w", sc.Step, err)
	}
	return s, nil
}

// Stages builds every step, in order.
func (r *Registry) Stages(steps []StepConfig) ([]Stage, error) {
	stages := make([]Stage, 0, len(steps))
	for i, sc := range steps {
		s, err := r.Stage(sc)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		stages = append(stages, s)
	}
	return stages, nil
}

// lift turns a dynamic callable into a Stage. Panics raised by the call
// come back as errors.
func lift(f any) Stage {
	return func(_ context.Context, doc any) (any, error) {
		return fn.Try(f, doc)
	}
}

// sequence runs stages left to right, stopping at the first error.
func sequence(stages []Stage) Stage {
	return func(ctx context.Context, doc any) (any, error) {
		var err error
		for _, s := range stages {
			if doc, err = s(ctx, doc); err != nil {
				return nil, err
			}
		}
		return doc, nil
	}
}

// decodeArgs decodes raw step arguments into out. Unknown keys are an error;
// scalars are converted weakly ("3" fills an int), and durations parse
// from strings like "500ms".
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %w", ErrBadArgs, err)
	}
	return nil
}

// withArgs adapts a builder taking typed arguments to the Builder shape.
func withArgs[A any](build func(r *Registry, a A) (Stage, error)) Builder {
	return func(r *Registry, args map[string]any) (Stage, error) {
		var a A
		if err := decodeArgs(args, &a); err != nil {
			return nil, err
		}
		return build(r, a)
	}
}

// noArgs adapts a fixed callable to the Builder shape.
func noArgs(f any) Builder {
	return withArgs(func(_ *Registry, _ struct{}) (Stage, error) {
		return lift(f), nil
	})
}

func required(name, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", ErrBadArgs, name)
	}
	return nil
}
