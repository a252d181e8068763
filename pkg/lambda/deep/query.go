package deep

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ib-77/lambda/pkg/lambda/fn"
)

// Pluck follows a dot separated path through records and lists; list
// segments are indexes. Any missing step yields nil.
func Pluck(path string, x any) any {
	for _, seg := range strings.Split(path, ".") {
		switch v := x.(type) {
		case Object:
			x = v[seg]
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			x = v[i]
		default:
			return nil
		}
	}
	return x
}

// DeepPluck applies Pluck repeatedly, collecting every truthy value until the
// path runs out: DeepPluck("parent", node) lists all ancestors.
func DeepPluck(path string, x any) []any {
	out := []any{}
	for {
		x = Pluck(path, x)
		if !fn.Truthy(x) {
			return out
		}
		out = append(out, x)
	}
}

// Where keeps the records of xs holding every entry of match.
func Where(match Object, xs []any) []any {
	return lo.Filter(xs, func(x any, _ int) bool {
		obj, ok := x.(Object)
		return ok && matches(match, obj, false)
	})
}

// DeepWhere is Where with nested records in match matched recursively
// instead of compared whole.
func DeepWhere(match Object, xs []any) []any {
	return lo.Filter(xs, func(x any, _ int) bool {
		obj, ok := x.(Object)
		return ok && matches(match, obj, true)
	})
}

func matches(match, obj Object, nested bool) bool {
	for k, want := range match {
		got, ok := obj[k]
		if !ok {
			return false
		}

		wantObj, wok := want.(Object)
		gotObj, gok := got.(Object)
		if nested && wok && gok {
			if !matches(wantObj, gotObj, true) {
				return false
			}
			continue
		}

		if !Equal(want, got) {
			return false
		}
	}
	return true
}
