package fn

import (
	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

// Try calls f with args and returns a failure as an error instead of a
// panic: engine errors (lambda.ErrArityMismatch, lambda.ErrInvalidArgument),
// errors returned by f, and panics carrying an error raised anywhere below.
func Try(f any, args ...any) (res any, err error) {
	defer lambda.Recover(&err)
	return core.Call(f, args...)
}
