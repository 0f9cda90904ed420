package cpu

// addrModeFunc resolves the effective address (or marks implied/
// accumulator mode) for one instruction and advances PC past the
// operand bytes. It returns 1 if the mode *might* need an extra cycle for
// a page crossing, 0 otherwise; whether that extra cycle actually lands
// depends on the instruction (see opFunc).
type addrModeFunc func(c *CPU) byte

// Implied: no operand, nothing to fetch.
func amIMP(c *CPU) byte {
	c.impliedAddr = true
	return 0
}

// Accumulator: the operand is the A register itself.
func amACC(c *CPU) byte {
	c.usingAccumulator = true
	return 0
}

// Immediate: the operand byte at PC is the value.
func amIMM(c *CPU) byte {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

// Zero page.
func amZP0(c *CPU) byte {
	c.addrAbs = uint16(c.read(c.PC))
	c.PC++
	return 0
}

// Zero page, X -- wraps within page 0.
func amZPX(c *CPU) byte {
	c.addrAbs = uint16(c.read(c.PC)+c.X) & 0xFF
	c.PC++
	return 0
}

// Zero page, Y -- wraps within page 0.
func amZPY(c *CPU) byte {
	c.addrAbs = uint16(c.read(c.PC)+c.Y) & 0xFF
	c.PC++
	return 0
}

// Absolute.
func amABS(c *CPU) byte {
	c.addrAbs = c.readWord(c.PC)
	c.PC += 2
	return 0
}

// Absolute, X.
func amABX(c *CPU) byte {
	base := c.readWord(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.X)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// Absolute, Y.
func amABY(c *CPU) byte {
	base := c.readWord(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// Indirect -- JMP only. Reads the pointer straightforwardly; does not
// reproduce the famous page-wrap bug some NMOS parts have (see DESIGN.md).
func amIND(c *CPU) byte {
	ptr := c.readWord(c.PC)
	c.PC += 2
	c.addrAbs = c.readWord(ptr)
	return 0
}

// (Indirect,X) -- the zero-page pointer fetch wraps within page 0.
func amIZX(c *CPU) byte {
	base := uint16(c.read(c.PC)+c.X) & 0xFF
	c.PC++
	lo := c.read(base)
	hi := c.read((base + 1) & 0xFF)
	c.addrAbs = uint16(hi)<<8 | uint16(lo)
	return 0
}

// (Indirect),Y -- the zero-page pointer fetch wraps within page 0; the Y
// index is added after the pointer is resolved.
func amIZY(c *CPU) byte {
	zp := uint16(c.read(c.PC))
	c.PC++
	lo := c.read(zp)
	hi := c.read((zp + 1) & 0xFF)
	base := uint16(hi)<<8 | uint16(lo)
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// Relative -- used only by branches. Stores the sign-extended displacement
// in addrRel; the branch opcode itself computes the target and any extra
// cycles once it knows whether the branch is taken.
func amREL(c *CPU) byte {
	offset := c.read(c.PC)
	c.PC++

	c.addrRel = uint16(offset)
	if offset&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}
