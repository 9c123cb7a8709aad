package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColourParse(t *testing.T) {
	c, err := ColourParse("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, float32(1), c.R)
	assert.Equal(t, float32(0), c.G)
	assert.Equal(t, float32(0), c.B)
	assert.InDelta(t, 0.5, c.A, 0.01)
	assert.Equal(t, "#ff000080", c.String())
}

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#000000ff"))
	assert.True(t, ColourValidate("#AbCdEf12"))
	assert.False(t, ColourValidate("#000000"))
	assert.False(t, ColourValidate("000000ff"))
	assert.False(t, ColourValidate("#000000ffff"))
	assert.False(t, ColourValidate("#gg0000ff"))

	_, err := ColourParse("black")
	assert.Error(t, err)
}

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next())
	d.Set(time.Now().Add(-time.Second))
	assert.GreaterOrEqual(t, d.Next(), time.Second)
}

func TestFrameLimiter(t *testing.T) {
	now := time.Unix(1000, 0)
	var slept []time.Duration
	l := NewFrameLimiter(10)
	l.clock = func() time.Time { return now }
	l.sleep = func(d time.Duration) { slept = append(slept, d) }

	assert.Equal(t, time.Duration(0), l.Wait())

	now = now.Add(40 * time.Millisecond)
	assert.Equal(t, 60*time.Millisecond, l.Wait())

	now = now.Add(60*time.Millisecond + 150*time.Millisecond)
	assert.Equal(t, time.Duration(0), l.Wait())

	assert.Equal(t, []time.Duration{60 * time.Millisecond}, slept)
}

func TestFrameLimiterDisabled(t *testing.T) {
	l := NewFrameLimiter(0)
	l.sleep = func(time.Duration) { t.Fatal("should not sleep") }
	assert.Equal(t, time.Duration(0), l.Wait())
	assert.Equal(t, time.Duration(0), l.Wait())
}
