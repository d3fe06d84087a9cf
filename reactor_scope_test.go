package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	t.Run("disposes every effect created inside it, LIFO", func(t *testing.T) {
		log := []string{}

		scope := NewScope()

		scope.Run(func() {
			NewEffect(func() {
				OnCleanup(func() { log = append(log, "first disposed") })
			})
			NewEffect(func() {
				OnCleanup(func() { log = append(log, "second disposed") })
			})
		})

		scope.Dispose()

		assert.Equal(t, []string{"second disposed", "first disposed"}, log)
	})

	t.Run("nested scope disposes with its parent", func(t *testing.T) {
		disposed := false

		outer := NewScope()
		outer.Run(func() {
			inner := NewScope()
			inner.OnDispose(func() { disposed = true })
		})

		outer.Dispose()

		assert.True(t, disposed)
	})

	t.Run("a disposed signal rejects further access", func(t *testing.T) {
		count := NewSignal(0)
		count.Dispose()

		assert.Panics(t, func() { count.Read() })
	})

	t.Run("OnError catches a panic raised inside Run instead of propagating it", func(t *testing.T) {
		var caught any

		scope := NewScope()
		scope.OnError(func(r any) { caught = r })

		assert.NotPanics(t, func() {
			scope.Run(func() { panic("body fault") })
		})
		assert.Equal(t, "body fault", caught)
	})

	t.Run("a panic inside Run propagates when no catcher is registered", func(t *testing.T) {
		scope := NewScope()

		assert.Panics(t, func() {
			scope.Run(func() { panic("uncaught") })
		})
	})
}
