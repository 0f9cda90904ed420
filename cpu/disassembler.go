package cpu

import "fmt"

// logStep writes one line per executed instruction to Logger when Disasm
// is enabled: address, mnemonic, registers, and the cycle cost just
// charged. It runs after the instruction so the addressing mode's
// resolved address is available, unlike a disassembler that reads ahead
// of a live PC.
func (c *CPU) logStep(entry opcodeEntry, cycles uint64) {
	c.lastDisasm = fmt.Sprintf(
		"$%04X: %s  A=%02X X=%02X Y=%02X SP=%02X P=%02X  +%d cyc (total %d)",
		c.instrPC, entry.Name, c.A, c.X, c.Y, c.SP, c.P, cycles, c.Cycles,
	)
	c.Logger.Println(c.lastDisasm)
}

// LastDisassembly returns the most recently logged instruction line, or
// the empty string if Disasm has never been on.
func (c *CPU) LastDisassembly() string {
	return c.lastDisasm
}
