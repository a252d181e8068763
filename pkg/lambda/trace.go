package lambda

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Debug returns a checked debug entry on the global zap logger, or nil when
// debug output is disabled. The global logger is a no-op until the host
// program installs one with zap.ReplaceGlobals.
//
//	if ce := lambda.Debug("curry saturated"); ce != nil {
//		ce.Write(zap.Int("arity", n))
//	}
func Debug(msg string) *zapcore.CheckedEntry {
	l := zap.L()
	if !l.Core().Enabled(zapcore.DebugLevel) {
		return nil
	}
	return l.Named("lambda").Check(zapcore.DebugLevel, msg)
}
