package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackTracker(t *testing.T) {
	st := NewStackTracker(0)

	st.Apply(1000, 3)
	assert.Equal(t, 3, st.Stacks())
	st.Stack(3000, 5)
	st.Remove(6000)
	assert.Equal(t, 0, st.Stacks())
	st.Apply(8000, 1)
	st.End(10000)

	assert.Equal(t, int64(3*2000+5*3000+1*2000), st.StackTime)
	assert.Equal(t, int64(7000), st.Uptime)
}

func TestStackTrackerIgnoresTimeGoingBackwards(t *testing.T) {
	st := NewStackTracker(5000)
	st.Apply(6000, 2)
	st.Stack(5500, 4)
	st.End(7000)

	// the late stack change takes effect from 6000
	assert.Equal(t, int64(4000), st.StackTime)
	assert.Equal(t, int64(1000), st.Uptime)
}

func TestStackTrackerNoBuff(t *testing.T) {
	st := NewStackTracker(0)
	st.End(10000)
	assert.Zero(t, st.StackTime)
	assert.Zero(t, st.Uptime)
}
