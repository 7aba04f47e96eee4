package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateQueueWrapsAndGrows(t *testing.T) {
	var q gateQueue

	// Interleave pushes and pops so head walks around the ring before it grows.
	next := 0.0
	expectFront := 0.0
	for round := 0; round < 5; round++ {
		for i := 0; i < 6; i++ {
			q.pushBack(Gate{X: next})
			next++
		}
		for i := 0; i < 4; i++ {
			assert.Equal(t, expectFront, q.popFront().X)
			expectFront++
		}
	}

	require.Equal(t, 10, q.len())
	gates := q.appendTo(nil)
	for i, g := range gates {
		assert.Equal(t, expectFront+float64(i), g.X)
	}
	assert.Equal(t, next-1, q.back().X)
}

func TestGateQueueCopyFromIsIndependent(t *testing.T) {
	var a, b gateQueue
	for i := 0; i < 12; i++ {
		a.pushBack(Gate{X: float64(i)})
	}
	a.popFront()
	a.popFront()

	b.copyFrom(&a)
	require.Equal(t, a.len(), b.len())
	assert.Equal(t, a.appendTo(nil), b.appendTo(nil))

	b.front().X = 99
	assert.Equal(t, 2.0, a.front().X)
}

func TestGateQueueClear(t *testing.T) {
	var q gateQueue
	q.pushBack(Gate{X: 1})
	q.pushBack(Gate{X: 2})
	q.clear()

	assert.Zero(t, q.len())
	q.pushBack(Gate{X: 3})
	assert.Equal(t, 3.0, q.front().X)
	assert.Equal(t, 3.0, q.back().X)
}
