package cpu

// opFunc executes one instruction's operation (after its addressing mode
// has resolved addrAbs/addrRel/impliedAddr/usingAccumulator) and returns 1
// if the instruction cares about the addressing mode's page-cross penalty,
// 0 otherwise. The final extra cycle for a step is addrExtra & opExtra,
// mirroring the reference implementation's bitwise gate between mode and
// instruction.
type opFunc func(c *CPU) byte

func carryBit(on bool) int {
	if on {
		return 1
	}
	return 0
}

// ADC - Add with Carry. Binary path uses the classic signed-overflow
// detector; decimal path adds nibble by nibble, carrying a digit overflow
// (sum > 9) into the next nibble before combining, rather than correcting
// the already-folded 8-bit binary sum.
func opADC(c *CPU) byte {
	c.fetch()
	a, m := c.A, c.fetched
	sum := int(a) + int(m) + carryBit(c.flagSet(FlagC))

	if !c.flagSet(FlagD) {
		r := byte(sum)
		c.SetFlag(FlagC, sum > 0xFF)
		c.SetFlag(FlagV, (a^r)&(m^r)&0x80 != 0)
		c.A = r
	} else {
		al := int(a&0x0F) + int(m&0x0F) + carryBit(c.flagSet(FlagC))
		ah := int(a>>4) + int(m>>4)
		if al > 9 {
			al -= 10
			ah++
		}
		if ah > 9 {
			ah -= 10
			c.SetFlag(FlagC, true)
		} else {
			c.SetFlag(FlagC, false)
		}
		c.A = byte((ah << 4) | (al & 0x0F))
	}
	c.updateZN(c.A)
	return 1
}

// SBC - Subtract with Carry (borrow = 1-C). Decimal path applies the
// borrow-direction nibble correction, the mirror image of ADC's.
func opSBC(c *CPU) byte {
	c.fetch()
	a, m := c.A, c.fetched
	borrow := carryBit(!c.flagSet(FlagC))

	if !c.flagSet(FlagD) {
		r := int(a) - int(m) - borrow
		rb := byte(r)
		c.SetFlag(FlagC, r >= 0)
		c.SetFlag(FlagV, (a^m)&(a^rb)&0x80 != 0)
		c.A = rb
	} else {
		al := int(a&0x0F) - int(m&0x0F) - borrow
		ah := int(a>>4) - int(m>>4)
		if al < 0 {
			al -= 6
			ah--
		}
		if ah < 0 {
			ah -= 6
		}
		c.SetFlag(FlagC, int(a)-int(m)-borrow >= 0)
		c.A = byte((ah << 4) | (al & 0x0F))
	}
	c.updateZN(c.A)
	return 1
}

func opAND(c *CPU) byte { c.fetch(); c.A &= c.fetched; c.updateZN(c.A); return 1 }
func opEOR(c *CPU) byte { c.fetch(); c.A ^= c.fetched; c.updateZN(c.A); return 1 }
func opORA(c *CPU) byte { c.fetch(); c.A |= c.fetched; c.updateZN(c.A); return 1 }

func opLDA(c *CPU) byte { c.fetch(); c.A = c.fetched; c.updateZN(c.A); return 1 }
func opLDX(c *CPU) byte { c.fetch(); c.X = c.fetched; c.updateZN(c.X); return 1 }
func opLDY(c *CPU) byte { c.fetch(); c.Y = c.fetched; c.updateZN(c.Y); return 1 }

func opSTA(c *CPU) byte { c.write(c.addrAbs, c.A); return 0 }
func opSTX(c *CPU) byte { c.write(c.addrAbs, c.X); return 0 }
func opSTY(c *CPU) byte { c.write(c.addrAbs, c.Y); return 0 }

// compare computes reg-M as a wide subtraction without writing any
// register, per the CMP/CPX/CPY family.
func (c *CPU) compare(reg, m byte) {
	c.SetFlag(FlagC, reg >= m)
	c.SetFlag(FlagZ, reg == m)
	c.SetFlag(FlagN, (reg-m)&0x80 != 0)
}

func opCMP(c *CPU) byte { c.fetch(); c.compare(c.A, c.fetched); return 1 }
func opCPX(c *CPU) byte { c.fetch(); c.compare(c.X, c.fetched); return 1 }
func opCPY(c *CPU) byte { c.fetch(); c.compare(c.Y, c.fetched); return 1 }

func opBIT(c *CPU) byte {
	c.fetch()
	c.SetFlag(FlagZ, c.A&c.fetched == 0)
	c.SetFlag(FlagV, c.fetched&0x40 != 0)
	c.SetFlag(FlagN, c.fetched&0x80 != 0)
	return 0
}

func opASL(c *CPU) byte {
	c.fetch()
	c.SetFlag(FlagC, c.fetched&0x80 != 0)
	result := c.fetched << 1
	c.updateZN(result)
	c.writeBack(result)
	return 0
}

func opLSR(c *CPU) byte {
	c.fetch()
	c.SetFlag(FlagC, c.fetched&0x01 != 0)
	result := c.fetched >> 1
	c.updateZN(result)
	c.writeBack(result)
	return 0
}

func opROL(c *CPU) byte {
	c.fetch()
	var carryIn byte
	if c.flagSet(FlagC) {
		carryIn = 1
	}
	c.SetFlag(FlagC, c.fetched&0x80 != 0)
	result := (c.fetched << 1) | carryIn
	c.updateZN(result)
	c.writeBack(result)
	return 0
}

func opROR(c *CPU) byte {
	c.fetch()
	var carryIn byte
	if c.flagSet(FlagC) {
		carryIn = 0x80
	}
	c.SetFlag(FlagC, c.fetched&0x01 != 0)
	result := (c.fetched >> 1) | carryIn
	c.updateZN(result)
	c.writeBack(result)
	return 0
}

func opINC(c *CPU) byte {
	c.fetch()
	result := c.fetched + 1
	c.updateZN(result)
	c.writeBack(result)
	return 0
}

func opDEC(c *CPU) byte {
	c.fetch()
	result := c.fetched - 1
	c.updateZN(result)
	c.writeBack(result)
	return 0
}

func opTAX(c *CPU) byte { c.X = c.A; c.updateZN(c.X); return 0 }
func opTAY(c *CPU) byte { c.Y = c.A; c.updateZN(c.Y); return 0 }
func opTXA(c *CPU) byte { c.A = c.X; c.updateZN(c.A); return 0 }
func opTYA(c *CPU) byte { c.A = c.Y; c.updateZN(c.A); return 0 }
func opTSX(c *CPU) byte { c.X = c.SP; c.updateZN(c.X); return 0 }
func opTXS(c *CPU) byte { c.SP = c.X; return 0 }

func opINX(c *CPU) byte { c.X++; c.updateZN(c.X); return 0 }
func opINY(c *CPU) byte { c.Y++; c.updateZN(c.Y); return 0 }
func opDEX(c *CPU) byte { c.X--; c.updateZN(c.X); return 0 }
func opDEY(c *CPU) byte { c.Y--; c.updateZN(c.Y); return 0 }

func opCLC(c *CPU) byte { c.SetFlag(FlagC, false); return 0 }
func opSEC(c *CPU) byte { c.SetFlag(FlagC, true); return 0 }
func opCLI(c *CPU) byte { c.SetFlag(FlagI, false); return 0 }
func opSEI(c *CPU) byte { c.SetFlag(FlagI, true); return 0 }
func opCLD(c *CPU) byte { c.SetFlag(FlagD, false); return 0 }
func opSED(c *CPU) byte { c.SetFlag(FlagD, true); return 0 }
func opCLV(c *CPU) byte { c.SetFlag(FlagV, false); return 0 }

func opNOP(c *CPU) byte { return 0 }

func opPHA(c *CPU) byte { c.push(c.A); return 0 }
func opPLA(c *CPU) byte { c.A = c.pull(); c.updateZN(c.A); return 0 }

// PHP pushes P with B and U forced set; those bits never live in the
// register itself, only in the pushed byte.
func opPHP(c *CPU) byte {
	c.push(c.P | byte(FlagB) | byte(FlagU))
	return 0
}

// PLP pulls into P, then clears B and forces U -- the inverse masking of PHP.
func opPLP(c *CPU) byte {
	c.P = c.pull()
	c.SetFlag(FlagB, false)
	c.SetFlag(FlagU, true)
	return 0
}

func opJMP(c *CPU) byte { c.PC = c.addrAbs; return 0 }

// JSR pushes the address of the last byte of the JSR instruction (the
// operand's high byte), one less than the address of the following
// instruction that amABS already advanced PC to.
func opJSR(c *CPU) byte {
	c.pushWord(c.PC - 1)
	c.PC = c.addrAbs
	return 0
}

func opRTS(c *CPU) byte {
	c.PC = c.pullWord() + 1
	return 0
}

// BRK advances PC by one extra padding byte, pushes PC then P (with B and
// U forced set), sets I, and loads PC from the IRQ/BRK vector.
func opBRK(c *CPU) byte {
	c.PC++
	c.pushWord(c.PC)
	c.push(c.P | byte(FlagB) | byte(FlagU))
	c.SetFlag(FlagI, true)
	c.PC = c.readWord(IRQVector)
	return 0
}

// RTI pulls P (masked like PLP) then PC, with no +1 adjustment.
func opRTI(c *CPU) byte {
	c.P = c.pull()
	c.SetFlag(FlagB, false)
	c.SetFlag(FlagU, true)
	c.PC = c.pullWord()
	return 0
}

// branchIf takes the branch when cond is true, charging one extra cycle
// for the taken branch and a second if the target crosses a page.
func (c *CPU) branchIf(cond bool) byte {
	if cond {
		c.extraCycles++
		from := c.PC
		target := c.PC + c.addrRel
		if target&0xFF00 != from&0xFF00 {
			c.extraCycles++
		}
		c.PC = target
	}
	return 0
}

func opBPL(c *CPU) byte { return c.branchIf(!c.flagSet(FlagN)) }
func opBMI(c *CPU) byte { return c.branchIf(c.flagSet(FlagN)) }
func opBVC(c *CPU) byte { return c.branchIf(!c.flagSet(FlagV)) }
func opBVS(c *CPU) byte { return c.branchIf(c.flagSet(FlagV)) }
func opBCC(c *CPU) byte { return c.branchIf(!c.flagSet(FlagC)) }
func opBCS(c *CPU) byte { return c.branchIf(c.flagSet(FlagC)) }
func opBNE(c *CPU) byte { return c.branchIf(!c.flagSet(FlagZ)) }
func opBEQ(c *CPU) byte { return c.branchIf(c.flagSet(FlagZ)) }
