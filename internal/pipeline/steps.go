package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
	"github.com/ib-77/lambda/pkg/lambda/deep"
	"github.com/ib-77/lambda/pkg/lambda/fn"
	"github.com/ib-77/lambda/pkg/lambda/mass"
	"github.com/ib-77/lambda/pkg/lambda/seq"
	"github.com/ib-77/lambda/pkg/lambda/text"
	"github.com/ib-77/lambda/pkg/lambda/typed"
)

type matchArgs struct {
	Match map[string]any `mapstructure:"match"`
}

type pathArgs struct {
	Path string `mapstructure:"path"`
}

type countArgs struct {
	N int `mapstructure:"n"`
}

type sortArgs struct {
	By      string `mapstructure:"by"`
	Numeric bool   `mapstructure:"numeric"`
}

type textArgs struct {
	Text string `mapstructure:"text"`
}

type extendArgs struct {
	With map[string]any `mapstructure:"with"`
	Deep bool           `mapstructure:"deep"`
}

type typeArgs struct {
	Type string `mapstructure:"type"`
}

type eachArgs struct {
	Steps    []StepConfig  `mapstructure:"steps"`
	Workers  int           `mapstructure:"workers"`
	FailFast bool          `mapstructure:"fail_fast"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func builtins() map[string]Builder {
	return map[string]Builder{
		"where":     withArgs(where(deep.Where)),
		"deepWhere": withArgs(where(deep.DeepWhere)),
		"get": withArgs(func(_ *Registry, a pathArgs) (Stage, error) {
			if err := required("path", a.Path); err != nil {
				return nil, err
			}
			return lift(fn.Partial(deep.Pluck, a.Path)), nil
		}),
		"pluck": withArgs(func(_ *Registry, a pathArgs) (Stage, error) {
			if err := required("path", a.Path); err != nil {
				return nil, err
			}
			return lift(fn.Partial(seq.Map[any, any], fn.Partial(deep.Pluck, a.Path))), nil
		}),
		"unique": noArgs(fn.Partial(seq.UniqueBy[any, string], show)),
		"sortBy": withArgs(sortBy),
		"take": withArgs(func(_ *Registry, a countArgs) (Stage, error) {
			return lift(fn.Partial(seq.Take[any], a.N)), nil
		}),
		"drop": withArgs(func(_ *Registry, a countArgs) (Stage, error) {
			return lift(fn.Partial(seq.Drop[any], a.N)), nil
		}),
		"reverse": noArgs(fn.Partial(fn.Apply, fn.NFlip(fn.Variadic))),
		"flatten": noArgs(seq.Flatten),
		"count": noArgs(func(xs []any) int {
			return len(xs)
		}),
		"compact": noArgs(fn.Partial(seq.Filter[any], fn.Truthy)),
		"ofType": withArgs(func(_ *Registry, a typeArgs) (Stage, error) {
			if err := required("type", a.Type); err != nil {
				return nil, err
			}
			return lift(fn.Partial(seq.Filter[any], fn.IsType.Bind(a.Type))), nil
		}),
		"groupBy": withArgs(func(_ *Registry, a pathArgs) (Stage, error) {
			if err := required("path", a.Path); err != nil {
				return nil, err
			}
			return lift(fn.Partial(seq.GroupBy[any, string], keyOf(a.Path))), nil
		}),
		"countBy": withArgs(func(_ *Registry, a pathArgs) (Stage, error) {
			if err := required("path", a.Path); err != nil {
				return nil, err
			}
			return lift(fn.Partial(seq.CountBy[any, string], keyOf(a.Path))), nil
		}),
		"template": withArgs(func(_ *Registry, a textArgs) (Stage, error) {
			return lift(fn.Partial(seq.Map[any, any], fn.Flip(text.Template).Bind(a.Text))), nil
		}),
		"format": withArgs(func(_ *Registry, a textArgs) (Stage, error) {
			return lift(fn.Partial(text.Format, lambda.Placeholder, a.Text)), nil
		}),
		"extend": withArgs(func(_ *Registry, a extendArgs) (Stage, error) {
			merge := deep.Extend
			if a.Deep {
				merge = deep.DeepExtend
			}
			return lift(func(obj deep.Object) deep.Object {
				return merge(deep.DeepClone(obj).(deep.Object), a.With)
			}), nil
		}),
		"values": noArgs(deep.Values),
		"pairs":  noArgs(deep.Pairs),
		"each":   withArgs(each),
	}
}

func where(match func(deep.Object, []any) []any) func(*Registry, matchArgs) (Stage, error) {
	return func(_ *Registry, a matchArgs) (Stage, error) {
		if len(a.Match) == 0 {
			return nil, fmt.Errorf("%w: match is required", ErrBadArgs)
		}
		return lift(fn.Partial(match, a.Match)), nil
	}
}

func sortBy(_ *Registry, a sortArgs) (Stage, error) {
	if err := required("by", a.By); err != nil {
		return nil, err
	}

	if a.Numeric {
		return lift(fn.Partial(seq.SortBy[any, float64], typed.Compose2(number, pluck(a.By)))), nil
	}
	return lift(fn.Partial(seq.SortBy[any, string], keyOf(a.By))), nil
}

// each runs nested steps on every element of a list concurrently.
func each(r *Registry, a eachArgs) (Stage, error) {
	stages, err := r.Stages(a.Steps)
	if err != nil {
		return nil, err
	}
	inner := sequence(stages)

	return func(ctx context.Context, doc any) (any, error) {
		xs, ok := doc.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: each needs a list, got %s", lambda.ErrInvalidArgument, fn.TypeOf(doc))
		}

		ctx = core.WithFailFast(core.WithWorkerOptions(ctx, a.Workers), a.FailFast)
		if a.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.Timeout)
			defer cancel()
		}

		zap.L().Named("pipeline").Debug("each", zap.Int("items", len(xs)), zap.Int("workers", a.Workers))
		out, err := mass.Values(mass.Try[any, any](ctx, inner, xs))
		if err != nil {
			return nil, err
		}
		return out, nil
	}, nil
}

func pluck(path string) func(any) any {
	return typed.Partial1(deep.Pluck, path)
}

// keyOf renders the value at path as a grouping key.
func keyOf(path string) func(any) string {
	return typed.Compose2(show, pluck(path))
}

func show(x any) string {
	if x == nil {
		return ""
	}
	return fmt.Sprint(x)
}

// number reads numbers and numeric strings; anything else sorts as zero.
func number(x any) float64 {
	var f float64
	if err := mapstructure.WeakDecode(x, &f); err != nil {
		return 0
	}
	return f
}
