package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorScrollsWithCursor(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 3, 12)

	sel, off := n.Move(1)
	assert.Equal(t, 1, sel)
	assert.Equal(t, 0, off)

	sel, off = n.Move(3)
	assert.Equal(t, 4, sel)
	assert.Equal(t, 2, off)

	sel, off = n.End()
	assert.Equal(t, 11, sel)
	assert.Equal(t, 9, off)

	sel, off = n.Move(5)
	assert.Equal(t, 11, sel)
	assert.Equal(t, 9, off)

	sel, off = n.Home()
	assert.Zero(t, sel)
	assert.Zero(t, off)
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(5, 4, 3, 0)

	assert.Zero(t, n.SelectedIndex())
	assert.Zero(t, n.ViewportOffset())

	sel, _ := n.Move(1)
	assert.Zero(t, sel)
}

func TestNavigatorShrinkingList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(10, 8, 3, 4)

	assert.Equal(t, 3, n.SelectedIndex())
	assert.Equal(t, 1, n.ViewportOffset())
}
