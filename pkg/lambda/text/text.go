// Package text has small string interpolation and matching helpers.
package text

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	positional = regexp.MustCompile(`%(\d+)`)
	named      = regexp.MustCompile(`#\{(.+?)\}`)
)

// Format replaces %1, %2, ... in s with the matching element of xs, counted
// from one. Missing or nil elements become the empty string.
func Format(xs []any, s string) string {
	return positional.ReplaceAllStringFunc(s, func(m string) string {
		i, err := strconv.Atoi(m[1:])
		if err != nil || i < 1 || i > len(xs) {
			return ""
		}
		return show(xs[i-1])
	})
}

// Template replaces #{key} in s with obj[key]. Missing or nil entries become
// the empty string.
func Template(obj map[string]any, s string) string {
	return named.ReplaceAllStringFunc(s, func(m string) string {
		return show(obj[m[2:len(m)-1]])
	})
}

// GMatch returns the capture groups of every match of re in s, flattened in
// match order. Groups that did not participate yield the empty string.
func GMatch(re *regexp.Regexp, s string) []string {
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1:]...)
	}
	return out
}

func show(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
