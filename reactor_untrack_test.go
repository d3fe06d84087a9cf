package reactor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntracked(t *testing.T) {
	t.Run("does not track reads performed inside it", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		NewEffect(func() {
			var c int
			Untracked(func() { c = count.Read() })
			log = append(log, fmt.Sprintf("effect %d", c))
		})

		count.Write(10)

		assert.Equal(t, []string{"effect 0"}, log)
	})
}

func TestCycleGuard(t *testing.T) {
	t.Run("a self-referencing computed returns its cached value instead of looping forever", func(t *testing.T) {
		var self *Computed[int]
		self = NewComputed(func() int {
			if self == nil {
				return 0
			}
			return self.Peek() + 1
		})

		assert.NotPanics(t, func() { self.Read() })
		assert.Equal(t, 1, self.Peek())
	})
}
