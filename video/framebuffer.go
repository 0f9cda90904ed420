// Package video implements the 40x25 text-mode framebuffer that the bus
// memory-maps into the address window $0400-$07E7.
package video

import "sync/atomic"

const (
	// Width is the number of character columns on screen.
	Width = 40
	// Height is the number of character rows on screen.
	Height = 25
	// Size is the total number of character cells.
	Size = Width * Height

	// Start and End are the bus addresses the framebuffer occupies.
	Start uint16 = 0x0400
	End   uint16 = 0x0400 + Size - 1

	// SpaceChar is the default fill character used by Clear and ScrollUp.
	SpaceChar byte = 0x20
)

// Framebuffer is a dense 40x25 character grid with a dirty flag and an
// advisory cursor position. It has no notion of color, font, or pixels --
// rendering it to a screen is an external collaborator's job.
type Framebuffer struct {
	cells   [Size]byte
	cursorX int
	cursorY int
	dirty   atomic.Bool
}

// New returns a Framebuffer cleared to spaces.
func New() *Framebuffer {
	fb := &Framebuffer{}
	fb.Clear(SpaceChar)
	return fb
}

// Contains reports whether addr falls within the framebuffer's address window.
func Contains(addr uint16) bool {
	return addr >= Start && addr <= End
}

// ReadAt returns the raw cell value at a bus address within the window.
// Addresses outside the window return 0.
func (fb *Framebuffer) ReadAt(addr uint16) byte {
	if !Contains(addr) {
		return 0
	}
	return fb.cells[addr-Start]
}

// WriteAt stores a raw cell value at a bus address within the window and
// marks the framebuffer dirty. Addresses outside the window are a no-op.
func (fb *Framebuffer) WriteAt(addr uint16, v byte) {
	if !Contains(addr) {
		return
	}
	fb.cells[addr-Start] = v
	fb.dirty.Store(true)
}

// GetChar returns the character at column x, row y. Out-of-range
// coordinates silently return 0.
func (fb *Framebuffer) GetChar(x, y int) byte {
	if !inBounds(x, y) {
		return 0
	}
	return fb.cells[offset(x, y)]
}

// SetChar stores the character at column x, row y and marks the
// framebuffer dirty. Out-of-range coordinates are a silent no-op.
func (fb *Framebuffer) SetChar(x, y int, v byte) {
	if !inBounds(x, y) {
		return
	}
	fb.cells[offset(x, y)] = v
	fb.dirty.Store(true)
}

// ScrollUp copies rows 1..Height-1 into rows 0..Height-2 and fills the
// bottom row with spaces.
func (fb *Framebuffer) ScrollUp() {
	for y := 0; y < Height-1; y++ {
		copy(fb.cells[y*Width:(y+1)*Width], fb.cells[(y+1)*Width:(y+2)*Width])
	}
	for x := 0; x < Width; x++ {
		fb.cells[offset(x, Height-1)] = SpaceChar
	}
	fb.dirty.Store(true)
}

// Clear fills every cell with fill and resets the cursor to (0,0).
func (fb *Framebuffer) Clear(fill byte) {
	for i := range fb.cells {
		fb.cells[i] = fill
	}
	fb.cursorX, fb.cursorY = 0, 0
	fb.dirty.Store(true)
}

// SetCursor updates the advisory cursor position. Out-of-range coordinates
// are a silent no-op.
func (fb *Framebuffer) SetCursor(x, y int) {
	if !inBounds(x, y) {
		return
	}
	fb.cursorX, fb.cursorY = x, y
}

// GetCursor returns the advisory cursor position.
func (fb *Framebuffer) GetCursor() (x, y int) {
	return fb.cursorX, fb.cursorY
}

// IsDirty reports whether any cell has been written since the last
// ClearDirty. Safe to call concurrently with WriteAt/SetChar.
func (fb *Framebuffer) IsDirty() bool {
	return fb.dirty.Load()
}

// ClearDirty acknowledges pending writes.
func (fb *Framebuffer) ClearDirty() {
	fb.dirty.Store(false)
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func offset(x, y int) int {
	return y*Width + x
}
