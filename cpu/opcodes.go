package cpu

// opcodeEntry binds one opcode byte to its mnemonic, operation, addressing
// mode, and base cycle count. Entries with Illegal set are never dispatched
// through Op/Mode -- Step reports the illegal opcode and halts first.
type opcodeEntry struct {
	Name       string
	Op         opFunc
	Mode       addrModeFunc
	BaseCycles byte
	Illegal    bool
}

// op is a shorthand for building one legal table entry.
func op(name string, fn opFunc, mode addrModeFunc, cycles byte) opcodeEntry {
	return opcodeEntry{Name: name, Op: fn, Mode: mode, BaseCycles: cycles}
}

// opcodeTable is the 256-entry legal/illegal dispatch table, laid out in
// the conventional 16x16 hex grid. Unassigned slots default to Illegal.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry
	for i := range t {
		t[i] = opcodeEntry{Illegal: true}
	}

	set := func(code byte, e opcodeEntry) { t[code] = e }

	set(0x00, op("BRK", opBRK, amIMP, 7))
	set(0x01, op("ORA", opORA, amIZX, 6))
	set(0x05, op("ORA", opORA, amZP0, 3))
	set(0x06, op("ASL", opASL, amZP0, 5))
	set(0x08, op("PHP", opPHP, amIMP, 3))
	set(0x09, op("ORA", opORA, amIMM, 2))
	set(0x0A, op("ASL", opASL, amACC, 2))
	set(0x0D, op("ORA", opORA, amABS, 4))
	set(0x0E, op("ASL", opASL, amABS, 6))

	set(0x10, op("BPL", opBPL, amREL, 2))
	set(0x11, op("ORA", opORA, amIZY, 5))
	set(0x15, op("ORA", opORA, amZPX, 4))
	set(0x16, op("ASL", opASL, amZPX, 6))
	set(0x18, op("CLC", opCLC, amIMP, 2))
	set(0x19, op("ORA", opORA, amABY, 4))
	set(0x1D, op("ORA", opORA, amABX, 4))
	set(0x1E, op("ASL", opASL, amABX, 7))

	set(0x20, op("JSR", opJSR, amABS, 6))
	set(0x21, op("AND", opAND, amIZX, 6))
	set(0x24, op("BIT", opBIT, amZP0, 3))
	set(0x25, op("AND", opAND, amZP0, 3))
	set(0x26, op("ROL", opROL, amZP0, 5))
	set(0x28, op("PLP", opPLP, amIMP, 4))
	set(0x29, op("AND", opAND, amIMM, 2))
	set(0x2A, op("ROL", opROL, amACC, 2))
	set(0x2C, op("BIT", opBIT, amABS, 4))
	set(0x2D, op("AND", opAND, amABS, 4))
	set(0x2E, op("ROL", opROL, amABS, 6))

	set(0x30, op("BMI", opBMI, amREL, 2))
	set(0x31, op("AND", opAND, amIZY, 5))
	set(0x35, op("AND", opAND, amZPX, 4))
	set(0x36, op("ROL", opROL, amZPX, 6))
	set(0x38, op("SEC", opSEC, amIMP, 2))
	set(0x39, op("AND", opAND, amABY, 4))
	set(0x3D, op("AND", opAND, amABX, 4))
	set(0x3E, op("ROL", opROL, amABX, 7))

	set(0x40, op("RTI", opRTI, amIMP, 6))
	set(0x41, op("EOR", opEOR, amIZX, 6))
	set(0x45, op("EOR", opEOR, amZP0, 3))
	set(0x46, op("LSR", opLSR, amZP0, 5))
	set(0x48, op("PHA", opPHA, amIMP, 3))
	set(0x49, op("EOR", opEOR, amIMM, 2))
	set(0x4A, op("LSR", opLSR, amACC, 2))
	set(0x4C, op("JMP", opJMP, amABS, 3))
	set(0x4D, op("EOR", opEOR, amABS, 4))
	set(0x4E, op("LSR", opLSR, amABS, 6))

	set(0x50, op("BVC", opBVC, amREL, 2))
	set(0x51, op("EOR", opEOR, amIZY, 5))
	set(0x55, op("EOR", opEOR, amZPX, 4))
	set(0x56, op("LSR", opLSR, amZPX, 6))
	set(0x58, op("CLI", opCLI, amIMP, 2))
	set(0x59, op("EOR", opEOR, amABY, 4))
	set(0x5D, op("EOR", opEOR, amABX, 4))
	set(0x5E, op("LSR", opLSR, amABX, 7))

	set(0x60, op("RTS", opRTS, amIMP, 6))
	set(0x61, op("ADC", opADC, amIZX, 6))
	set(0x65, op("ADC", opADC, amZP0, 3))
	set(0x66, op("ROR", opROR, amZP0, 5))
	set(0x68, op("PLA", opPLA, amIMP, 4))
	set(0x69, op("ADC", opADC, amIMM, 2))
	set(0x6A, op("ROR", opROR, amACC, 2))
	set(0x6C, op("JMP", opJMP, amIND, 5))
	set(0x6D, op("ADC", opADC, amABS, 4))
	set(0x6E, op("ROR", opROR, amABS, 6))

	set(0x70, op("BVS", opBVS, amREL, 2))
	set(0x71, op("ADC", opADC, amIZY, 5))
	set(0x75, op("ADC", opADC, amZPX, 4))
	set(0x76, op("ROR", opROR, amZPX, 6))
	set(0x78, op("SEI", opSEI, amIMP, 2))
	set(0x79, op("ADC", opADC, amABY, 4))
	set(0x7D, op("ADC", opADC, amABX, 4))
	set(0x7E, op("ROR", opROR, amABX, 7))

	set(0x81, op("STA", opSTA, amIZX, 6))
	set(0x84, op("STY", opSTY, amZP0, 3))
	set(0x85, op("STA", opSTA, amZP0, 3))
	set(0x86, op("STX", opSTX, amZP0, 3))
	set(0x88, op("DEY", opDEY, amIMP, 2))
	set(0x8A, op("TXA", opTXA, amIMP, 2))
	set(0x8C, op("STY", opSTY, amABS, 4))
	set(0x8D, op("STA", opSTA, amABS, 4))
	set(0x8E, op("STX", opSTX, amABS, 4))

	set(0x90, op("BCC", opBCC, amREL, 2))
	set(0x91, op("STA", opSTA, amIZY, 6))
	set(0x94, op("STY", opSTY, amZPX, 4))
	set(0x95, op("STA", opSTA, amZPX, 4))
	set(0x96, op("STX", opSTX, amZPY, 4))
	set(0x98, op("TYA", opTYA, amIMP, 2))
	set(0x99, op("STA", opSTA, amABY, 5))
	set(0x9A, op("TXS", opTXS, amIMP, 2))
	set(0x9D, op("STA", opSTA, amABX, 5))

	set(0xA0, op("LDY", opLDY, amIMM, 2))
	set(0xA1, op("LDA", opLDA, amIZX, 6))
	set(0xA2, op("LDX", opLDX, amIMM, 2))
	set(0xA4, op("LDY", opLDY, amZP0, 3))
	set(0xA5, op("LDA", opLDA, amZP0, 3))
	set(0xA6, op("LDX", opLDX, amZP0, 3))
	set(0xA8, op("TAY", opTAY, amIMP, 2))
	set(0xA9, op("LDA", opLDA, amIMM, 2))
	set(0xAA, op("TAX", opTAX, amIMP, 2))
	set(0xAC, op("LDY", opLDY, amABS, 4))
	set(0xAD, op("LDA", opLDA, amABS, 4))
	set(0xAE, op("LDX", opLDX, amABS, 4))

	set(0xB0, op("BCS", opBCS, amREL, 2))
	set(0xB1, op("LDA", opLDA, amIZY, 5))
	set(0xB4, op("LDY", opLDY, amZPX, 4))
	set(0xB5, op("LDA", opLDA, amZPX, 4))
	set(0xB6, op("LDX", opLDX, amZPY, 4))
	set(0xB8, op("CLV", opCLV, amIMP, 2))
	set(0xB9, op("LDA", opLDA, amABY, 4))
	set(0xBA, op("TSX", opTSX, amIMP, 2))
	set(0xBC, op("LDY", opLDY, amABX, 4))
	set(0xBD, op("LDA", opLDA, amABX, 4))
	set(0xBE, op("LDX", opLDX, amABY, 4))

	set(0xC0, op("CPY", opCPY, amIMM, 2))
	set(0xC1, op("CMP", opCMP, amIZX, 6))
	set(0xC4, op("CPY", opCPY, amZP0, 3))
	set(0xC5, op("CMP", opCMP, amZP0, 3))
	set(0xC6, op("DEC", opDEC, amZP0, 5))
	set(0xC8, op("INY", opINY, amIMP, 2))
	set(0xC9, op("CMP", opCMP, amIMM, 2))
	set(0xCA, op("DEX", opDEX, amIMP, 2))
	set(0xCC, op("CPY", opCPY, amABS, 4))
	set(0xCD, op("CMP", opCMP, amABS, 4))
	set(0xCE, op("DEC", opDEC, amABS, 6))

	set(0xD0, op("BNE", opBNE, amREL, 2))
	set(0xD1, op("CMP", opCMP, amIZY, 5))
	set(0xD5, op("CMP", opCMP, amZPX, 4))
	set(0xD6, op("DEC", opDEC, amZPX, 6))
	set(0xD8, op("CLD", opCLD, amIMP, 2))
	set(0xD9, op("CMP", opCMP, amABY, 4))
	set(0xDD, op("CMP", opCMP, amABX, 4))
	set(0xDE, op("DEC", opDEC, amABX, 7))

	set(0xE0, op("CPX", opCPX, amIMM, 2))
	set(0xE1, op("SBC", opSBC, amIZX, 6))
	set(0xE4, op("CPX", opCPX, amZP0, 3))
	set(0xE5, op("SBC", opSBC, amZP0, 3))
	set(0xE6, op("INC", opINC, amZP0, 5))
	set(0xE8, op("INX", opINX, amIMP, 2))
	set(0xE9, op("SBC", opSBC, amIMM, 2))
	set(0xEA, op("NOP", opNOP, amIMP, 2))
	set(0xEC, op("CPX", opCPX, amABS, 4))
	set(0xED, op("SBC", opSBC, amABS, 4))
	set(0xEE, op("INC", opINC, amABS, 6))

	set(0xF0, op("BEQ", opBEQ, amREL, 2))
	set(0xF1, op("SBC", opSBC, amIZY, 5))
	set(0xF5, op("SBC", opSBC, amZPX, 4))
	set(0xF6, op("INC", opINC, amZPX, 6))
	set(0xF8, op("SED", opSED, amIMP, 2))
	set(0xF9, op("SBC", opSBC, amABY, 4))
	set(0xFD, op("SBC", opSBC, amABX, 4))
	set(0xFE, op("INC", opINC, amABX, 7))

	return t
}
