package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatcher(t *testing.T) {
	t.Run("fires with the new and old value on every change", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewWatcher(count.Read, func(newValue, oldValue int) {
			log = append(log, fmt.Sprintf("%d -> %d", oldValue, newValue))
		})

		count.Write(4)
		count.Write(7)

		assert.Equal(t, []string{
			"0 -> 4",
			"4 -> 7",
		}, log)
	})

	t.Run("immediately fires once at creation with a nil-like old value", func(t *testing.T) {
		log := []string{}

		count := NewSignal(3)
		NewWatcher(count.Read, func(newValue, oldValue int) {
			log = append(log, fmt.Sprintf("%d -> %d", oldValue, newValue))
		}, Immediately[int]())

		assert.Equal(t, []string{"0 -> 3"}, log)
	})

	t.Run("once plus when delivers exactly one qualifying change", func(t *testing.T) {
		var got []int

		count := NewSignal(0)
		NewWatcher(
			count.Read,
			func(newValue, oldValue int) { got = append(got, newValue) },
			Once[int](),
			When[int](func(newValue, oldValue int) bool { return newValue-oldValue > 2 }),
		)

		count.Write(1) // delta 1: skipped by When
		count.Write(4) // delta 3 from 1: qualifies, fires once with new=4, old=1
		count.Write(10) // once already fired: no further callback

		assert.Equal(t, []int{4}, got)
	})

	t.Run("pause suppresses callbacks until resume", func(t *testing.T) {
		var got []int

		count := NewSignal(0)
		w := NewWatcher(count.Read, func(newValue, oldValue int) { got = append(got, newValue) })

		w.Pause()
		count.Write(1)
		count.Write(2)
		assert.Equal(t, []int(nil), got)

		w.Resume()
		assert.Equal(t, []int{2}, got)
	})

	t.Run("ignore updates absorbs writes made inside it without firing", func(t *testing.T) {
		var got []int

		count := NewSignal(0)
		w := NewWatcher(count.Read, func(newValue, oldValue int) { got = append(got, newValue) })

		w.IgnoreUpdates(func() {
			count.Write(5)
		})
		assert.Equal(t, []int(nil), got)

		count.Write(9)
		assert.Equal(t, []int{9}, got)
	})
}
