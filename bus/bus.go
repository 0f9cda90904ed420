// Package bus implements the 64 KiB memory map that the CPU, framebuffer,
// and peripheral all see through a single point of dispatch. It is the
// only shared resource in the system: the CPU borrows it for the duration
// of a Step, and the peripheral's PumpFileOps borrows it for the duration
// of a load or save.
package bus

import (
	"github.com/dmoore-dev/go6502computer/peripheral"
	"github.com/dmoore-dev/go6502computer/video"
)

// Bus routes every 16-bit address to RAM, the framebuffer, or the
// peripheral register block. There is no write protection anywhere --
// the ROM image is simply RAM that normal code happens not to overwrite.
type Bus struct {
	ram         [65536]byte
	Framebuffer *video.Framebuffer
	Peripheral  *peripheral.Peripheral
}

// New wires a Bus to the given framebuffer and peripheral.
func New(fb *video.Framebuffer, p *peripheral.Peripheral) *Bus {
	return &Bus{
		Framebuffer: fb,
		Peripheral:  p,
	}
}

// Read dispatches a byte read to the framebuffer, the peripheral, or RAM.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case video.Contains(addr):
		return b.Framebuffer.ReadAt(addr)
	case peripheral.Contains(addr):
		return b.Peripheral.ReadAt(addr)
	default:
		return b.ram[addr]
	}
}

// Write dispatches a byte write to the framebuffer, the peripheral, or RAM.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case video.Contains(addr):
		b.Framebuffer.WriteAt(addr, v)
	case peripheral.Contains(addr):
		b.Peripheral.WriteAt(addr, v)
	default:
		b.ram[addr] = v
	}
}

// ReadWord reads a little-endian 16-bit value, with each byte going
// through the normal dispatch path (so a word that straddles a mapped
// window reads each half from its own target).
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord writes a little-endian 16-bit value directly to RAM, bypassing
// the framebuffer/peripheral dispatch entirely. This asymmetry with
// ReadWord is legacy behavior from the reference implementation, kept
// deliberately so a caller can install reset/IRQ vectors into the top of
// RAM without a write to those addresses ever being able to land on a
// peripheral register. (System.PowerOn installs the VECS segment with
// LoadImage, which also bypasses dispatch.)
func (b *Bus) WriteWord(addr uint16, v uint16) {
	b.ram[addr] = byte(v)
	b.ram[addr+1] = byte(v >> 8)
}

// LoadImage copies data into RAM starting at base, bypassing dispatch.
// Used to install ROM/program images before the peripherals are exercised.
func (b *Bus) LoadImage(data []byte, base uint16) {
	for i, v := range data {
		b.ram[int(base)+i] = v
	}
}
