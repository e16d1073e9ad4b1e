package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoplayStartIsIdempotent(t *testing.T) {
	var a Autoplay

	first, started := a.Start()
	assert.True(t, started)
	assert.NotZero(t, first)

	second, started := a.Start()
	assert.False(t, started)
	assert.Equal(t, first, second, "a second start keeps the existing timer")
	assert.True(t, a.Running())
}

func TestAutoplayStopIsIdempotent(t *testing.T) {
	var a Autoplay

	assert.False(t, a.Stop(), "stopping with no timer is a no-op")

	a.Start()
	assert.True(t, a.Stop())
	assert.False(t, a.Stop())
	assert.False(t, a.Running())
	assert.Zero(t, a.Handle())
}

func TestAutoplayDropsTicksFromCancelledTimers(t *testing.T) {
	var a Autoplay

	old, _ := a.Start()
	a.Stop()
	current, started := a.Start()

	assert.True(t, started)
	assert.NotEqual(t, old, current)
	assert.False(t, a.Accept(old))
	assert.True(t, a.Accept(current))
	assert.False(t, a.Accept(0))
}
