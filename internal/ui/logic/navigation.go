package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clampSelection()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move applies a navigation direction and returns the new index and offset
func (n *Navigator) Move(direction string) (int, int) {
	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= n.pageSize()
	case "pagedown":
		n.selectedIndex += n.pageSize()
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}
	return n.SetSelectedIndex(n.selectedIndex)
}

// pageSize leaves some overlap between pages
func (n *Navigator) pageSize() int {
	size := n.viewportHeight - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (n *Navigator) clampSelection() {
	if n.selectedIndex > n.totalItems-1 {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected item
// visible, leaving room for the scroll indicators.
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	for n.selectedIndex >= n.viewportOffset+n.EffectiveHeight(n.viewportOffset) {
		n.viewportOffset++
	}

	maxOffset := 0
	if n.totalItems > n.viewportHeight {
		// At the bottom only the top indicator is drawn
		maxOffset = n.totalItems - n.EffectiveHeight(n.totalItems)
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// EffectiveHeight returns how many rows fit at offset once scroll
// indicators are drawn.
func (n *Navigator) EffectiveHeight(offset int) int {
	height := n.viewportHeight
	if offset > 0 {
		height--
	}
	if offset+height < n.totalItems {
		height--
	}
	if height < 1 {
		height = 1
	}
	return height
}

// Window describes which rows of a list are on screen
type Window struct {
	Start int // first visible row
	End   int // one past the last visible row
	Above int // rows hidden above
	Below int // rows hidden below
}

// VisibleWindow returns the on-screen slice of a list of total rows
// drawn at offset in height lines.
func VisibleWindow(offset, height, total int) Window {
	n := Navigator{viewportHeight: height, totalItems: total}
	if offset > total-1 {
		offset = total - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + n.EffectiveHeight(offset)
	if end > total {
		end = total
	}
	return Window{Start: offset, End: end, Above: offset, Below: total - end}
}
