package input

// Mouse tracks the pointer cell and left button for menu interaction
type Mouse struct {
	X, Y        int
	Valid       bool // false until the first mouse event
	LeftDown    bool
	justPressed bool
}

// Move records a pointer position and button state
func (m *Mouse) Move(x, y int, leftDown bool) {
	if leftDown && !m.LeftDown {
		m.justPressed = true
	}
	m.X, m.Y = x, y
	m.Valid = true
	m.LeftDown = leftDown
}

// JustPressed reports a left-button down edge since the last EndFrame
func (m *Mouse) JustPressed() bool {
	return m.justPressed
}

// EndFrame clears edge-triggered state
func (m *Mouse) EndFrame() {
	m.justPressed = false
}
