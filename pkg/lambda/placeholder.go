package lambda

import "github.com/google/uuid"

type placeholder struct {
	id uuid.UUID
}

func (p *placeholder) String() string {
	return "lambda.Placeholder(" + p.id.String() + ")"
}

// Placeholder marks an argument slot of a partial application that is filled
// at call time. It is compared by identity only; no other value, including
// another value of the same shape, is ever treated as a placeholder.
var Placeholder any = &placeholder{id: uuid.New()}

// IsPlaceholder reports whether v is the Placeholder marker.
func IsPlaceholder(v any) bool {
	p, ok := v.(*placeholder)
	return ok && p == Placeholder
}

// CountPlaceholders returns how many Placeholder markers args holds.
func CountPlaceholders(args []any) int {
	n := 0
	for _, a := range args {
		if IsPlaceholder(a) {
			n++
		}
	}
	return n
}
