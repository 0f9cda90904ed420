// Package system wires the bus, CPU, framebuffer, peripheral, and reset
// circuit into one runnable computer, and loads a kernel ROM image onto
// it according to a segment map.
package system

import (
	"io"

	"github.com/dmoore-dev/go6502computer/bus"
	"github.com/dmoore-dev/go6502computer/cpu"
	"github.com/dmoore-dev/go6502computer/peripheral"
	"github.com/dmoore-dev/go6502computer/reset"
	"github.com/dmoore-dev/go6502computer/video"
)

// System is the assembled computer: everything the spec's step loop and
// power-on sequence need, with no external dependency beyond the
// collaborator interfaces in §6 (a FileHost for the peripheral).
type System struct {
	Bus         *bus.Bus
	CPU         *cpu.CPU
	Framebuffer *video.Framebuffer
	Peripheral  *peripheral.Peripheral
	Reset       *reset.Circuit
}

// New assembles a fresh, unpowered System.
func New() *System {
	fb := video.New()
	per := peripheral.New()
	b := bus.New(fb, per)
	c := cpu.New(b)

	return &System{
		Bus:         b,
		CPU:         c,
		Framebuffer: fb,
		Peripheral:  per,
		Reset:       reset.New(c),
	}
}

// PowerOn reads a flat kernel ROM image and its ld65-style segment map,
// loads the CODE/JUMPS/VECS segments onto the bus at their mapped
// addresses, and issues a power-on reset. Any other segment named in the
// map is ignored; a missing required segment or an unreadable image is
// reported as an error, never a panic.
func (s *System) PowerOn(rom io.Reader, segmentMap io.Reader) error {
	image, err := readROMImage(rom)
	if err != nil {
		return err
	}

	segments, err := ParseSegmentMap(segmentMap)
	if err != nil {
		return err
	}

	if err := loadSegments(image, segments, s.Bus.LoadImage); err != nil {
		return err
	}

	s.Reset.PowerOnReset()
	return nil
}

// Run executes up to maxSteps instructions, pumping any pending peripheral
// file operation after each one. It stops early -- returning the number of
// instructions actually executed -- if the CPU halts on an illegal opcode.
func (s *System) Run(maxSteps int, host peripheral.FileHost) int {
	executed := 0
	for ; executed < maxSteps; executed++ {
		if !s.CPU.Step() {
			break
		}
		s.Peripheral.PumpFileOps(s.Bus, host)
	}
	return executed
}
