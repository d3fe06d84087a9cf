package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("derives value from signal", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputed(func() int {
			log = append(log, "doubling")
			return count.Read() * 2
		})
		plusTwo := NewComputed(func() int {
			log = append(log, "adding")
			return double.Read() + 2
		})

		assert.Equal(t, 1, count.Read())
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 4, plusTwo.Read())

		count.Write(10)
		assert.Equal(t, 20, double.Read())
		assert.Equal(t, 22, plusTwo.Read())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("never runs before the first read", func(t *testing.T) {
		ran := false

		count := NewSignal(1)
		_ = NewComputed(func() int {
			ran = true
			return count.Read() * 2
		})

		assert.False(t, ran)
	})

	t.Run("does not propagate when its own value is unchanged", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		a := NewComputed(func() int {
			log = append(log, "running a")
			return count.Read() * 0 // always 0
		})
		b := NewComputed(func() int {
			log = append(log, "running b")
			return a.Read() + 1
		})

		a.Read()
		b.Read()

		count.Write(10) // a recomputes, still 0, so b never reruns

		b.Read()

		assert.Equal(t, []string{
			"running a",
			"running b",
			"running a",
		}, log)
	})

	t.Run("write through applies the setter inside a batch", func(t *testing.T) {
		log := []string{}

		celsius := NewSignal(0.0)
		fahrenheit := NewWritableComputed(
			func() float64 { return celsius.Read()*9/5 + 32 },
			func(f float64) { celsius.Write((f - 32) * 5 / 9) },
		)

		NewEffect(func() {
			log = append(log, "celsius")
			celsius.Read()
		})

		assert.Equal(t, 32.0, fahrenheit.Read())

		fahrenheit.Write(212)
		assert.InDelta(t, 100.0, celsius.Read(), 0.0001)

		assert.Equal(t, []string{"celsius", "celsius"}, log)
	})
}
