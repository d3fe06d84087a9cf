//go:build wasm

package internal

import "sync"

// wasm has no real goroutine concurrency worth keying on, so a single
// process-wide runtime suffices.
var once sync.Once
var globalRuntime *Runtime

func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})
	return globalRuntime
}

func DropRuntime() {}
