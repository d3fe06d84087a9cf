//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// Each goroutine gets its own Runtime, keyed by goroutine id: the engine
// is single-threaded per logical task (spec §5), and a goroutine is the
// natural unit of "one logical task" in Go.
var runtimes sync.Map

// GetRuntime returns the calling goroutine's runtime, creating one on
// first use.
func GetRuntime() *Runtime {
	gid := goid.Get()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}

// DropRuntime releases the calling goroutine's runtime, if any. Callers
// that spin up a short-lived goroutine purely to run reactive code should
// call this before it exits, or the map entry leaks for the process
// lifetime.
func DropRuntime() {
	runtimes.Delete(goid.Get())
}
