package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Run("read returns current value", func(t *testing.T) {
		count := NewSignal(0)
		assert.Equal(t, 0, count.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
	})

	t.Run("peek does not create a dependency", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("peeked %d", count.Peek()))
		})

		count.Write(10)

		assert.Equal(t, []string{"peeked 0"}, log)
	})

	t.Run("write suppresses a no-op change", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Read()))
		})

		count.Write(0) // same value: no re-run
		count.Write(1)

		assert.Equal(t, []string{
			"changed 0",
			"changed 1",
		}, log)
	})

	t.Run("with never equal propagates every write", func(t *testing.T) {
		log := []string{}

		type box struct{ items []int }
		shared := NewSignal(box{}, WithNeverEqual())

		NewEffect(func() {
			log = append(log, fmt.Sprintf("len=%d", len(shared.Read().items)))
		})

		b := shared.Peek()
		b.items = append(b.items, 1)
		shared.Write(b) // same struct header twice over, but never-equal forces propagation

		b2 := shared.Peek()
		b2.items = append(b2.items, 2)
		shared.Write(b2)

		assert.Equal(t, []string{"len=0", "len=1", "len=2"}, log)
	})

	t.Run("notify forces propagation without a value change", func(t *testing.T) {
		lengths := []int{}

		mutable := NewSignal([]int{1, 2, 3})
		NewEffect(func() {
			lengths = append(lengths, len(mutable.Read()))
		})

		mutable.Notify() // no write happened; this just forces a second run

		assert.Equal(t, []int{3, 3}, lengths)
	})

	t.Run("auto dispose on unwatched tears down once the last subscriber goes", func(t *testing.T) {
		disposed := false

		count := NewSignal(0, WithAutoDispose())
		count.OnDispose(func() { disposed = true })

		eff := NewEffect(func() { count.Read() })
		assert.False(t, disposed)

		eff.Dispose()
		assert.True(t, disposed)
	})
}
