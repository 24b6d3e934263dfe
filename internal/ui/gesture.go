package ui

import "go-weather/pkg/util/numberutils"

// offsetStep is the gradient phase shift per city slot crossed.
const offsetStep = 0.1

// Axis is the direction cities are laid out along.
type Axis int

const (
	AxisHorizontal Axis = iota // wide terminals: one column per city
	AxisVertical               // narrow terminals: one band per city
)

// Gesture tracks a press-drag-release sequence and the gradient offset it produces.
type Gesture struct {
	active   bool
	startX   int
	startY   int
	baseline float64
	offset   float64
}

func (g Gesture) Active() bool {
	return g.active
}

func (g Gesture) Offset() float64 {
	return g.offset
}

// Begin starts a drag at (x, y).
func (g *Gesture) Begin(x, y int) {
	g.active = true
	g.startX = x
	g.startY = y
	g.baseline = g.offset
}

// Move updates the offset from the pointer position. extent is the length of the
// layout axis and slots the number of cities sharing it.
func (g *Gesture) Move(x, y int, axis Axis, extent, slots int) {
	if !g.active || extent <= 0 || slots <= 0 {
		return
	}

	delta := float64(x - g.startX)
	if axis == AxisVertical {
		delta = float64(y - g.startY)
	}

	slot := float64(extent) / float64(slots)
	crossed := numberutils.RoundHalfUp(delta / slot)
	g.offset = g.baseline - crossed*offsetStep
}

// End finishes the drag and snaps the offset back to zero.
func (g *Gesture) End() {
	g.active = false
	g.offset = 0
	g.baseline = 0
}
