// Package safego provides a panic-recovering goroutine launcher for fire-and-forget work.
package safego

import (
	"github.com/osa911/giraffecloud-portal/internal/logging"
)

// Go launches fn in a new goroutine. A panic inside fn is recovered and
// logged instead of crashing the process.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.GetGlobalLogger().Error("recovered panic in background goroutine: %v", r)
			}
		}()
		fn()
	}()
}
