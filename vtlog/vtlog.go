// Package vtlog is the ambient logging seam for the rest of the module
// (SPEC_FULL.md §10). It wraps go.uber.org/zap behind a package-level
// *zap.SugaredLogger that callers can inject via SetLogger; the default is
// a no-op discard logger, so a consumer who never calls SetLogger sees
// nothing on stdout/stderr. The engine must never write to the controlling
// terminal on its own — that would corrupt the very screen it composites.
package vtlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu      sync.RWMutex
	current = zap.NewNop().Sugar()
)

// SetLogger installs l as the process-wide logger. Passing nil restores the
// no-op discard logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	current = l.Sugar()
}

// L returns the currently installed logger.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
