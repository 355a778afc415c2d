package logic

// Navigator moves the card cursor and keeps it inside the visible window
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int // in cards
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
	n.total = total
	n.clamp()
}

func (n *Navigator) SelectedIndex() int  { return n.selectedIndex }
func (n *Navigator) ViewportOffset() int { return n.viewportOffset }

// Move shifts the cursor by delta cards
func (n *Navigator) Move(delta int) (int, int) {
	n.selectedIndex += delta
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// Home jumps to the first card
func (n *Navigator) Home() (int, int) {
	n.selectedIndex = 0
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// End jumps to the last card
func (n *Navigator) End() (int, int) {
	n.selectedIndex = n.total - 1
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.total {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}

	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	if maxOffset := n.total - n.viewportHeight; n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
