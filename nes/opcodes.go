package nes

// opEntry describes one of the 256 opcode bytes: its mnemonic (used by the
// disassembler and the CPU trace log), its addressing mode, base cycle cost, whether a
// page-crossing address calculation adds a cycle, and its executor.
type opEntry struct {
	name          string
	mode          func(*Cpu6502)
	cycles        byte
	pageSensitive bool
	exec          func(*Cpu6502)
}

var opcodeTable [256]opEntry

// opRow is a compact (opcode, entry) pair used only to build opcodeTable at
// package init; it keeps the 256-slot table from turning into 256 lines of
// near-identical struct literals.
type opRow struct {
	op byte
	e  opEntry
}

// Short aliases for the addressing-mode functions, used only to keep the
// opcode table below from running wide.
var (
	mIMP = amIMP
	mACC = amACC
	mIMM = amIMM
	mZP0 = amZP0
	mZPX = amZPX
	mZPY = amZPY
	mABS = amABS
	mABX = amABX
	mABY = amABY
	mREL = amREL
	mIND = amIND
	mIZX = amIZX
	mIZY = amIZY
)

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opEntry{name: "NOP", mode: mIMP, cycles: 2, exec: opXXX}
	}

	rows := []opRow{
		// ADC
		{0x69, opEntry{"ADC", mIMM, 2, false, opADC}},
		{0x65, opEntry{"ADC", mZP0, 3, false, opADC}},
		{0x75, opEntry{"ADC", mZPX, 4, false, opADC}},
		{0x6D, opEntry{"ADC", mABS, 4, false, opADC}},
		{0x7D, opEntry{"ADC", mABX, 4, true, opADC}},
		{0x79, opEntry{"ADC", mABY, 4, true, opADC}},
		{0x61, opEntry{"ADC", mIZX, 6, false, opADC}},
		{0x71, opEntry{"ADC", mIZY, 5, true, opADC}},

		// SBC (+ 0xEB unofficial alias)
		{0xE9, opEntry{"SBC", mIMM, 2, false, opSBC}},
		{0xEB, opEntry{"SBC", mIMM, 2, false, opSBC}},
		{0xE5, opEntry{"SBC", mZP0, 3, false, opSBC}},
		{0xF5, opEntry{"SBC", mZPX, 4, false, opSBC}},
		{0xED, opEntry{"SBC", mABS, 4, false, opSBC}},
		{0xFD, opEntry{"SBC", mABX, 4, true, opSBC}},
		{0xF9, opEntry{"SBC", mABY, 4, true, opSBC}},
		{0xE1, opEntry{"SBC", mIZX, 6, false, opSBC}},
		{0xF1, opEntry{"SBC", mIZY, 5, true, opSBC}},

		// AND
		{0x29, opEntry{"AND", mIMM, 2, false, opAND}},
		{0x25, opEntry{"AND", mZP0, 3, false, opAND}},
		{0x35, opEntry{"AND", mZPX, 4, false, opAND}},
		{0x2D, opEntry{"AND", mABS, 4, false, opAND}},
		{0x3D, opEntry{"AND", mABX, 4, true, opAND}},
		{0x39, opEntry{"AND", mABY, 4, true, opAND}},
		{0x21, opEntry{"AND", mIZX, 6, false, opAND}},
		{0x31, opEntry{"AND", mIZY, 5, true, opAND}},

		// ORA
		{0x09, opEntry{"ORA", mIMM, 2, false, opORA}},
		{0x05, opEntry{"ORA", mZP0, 3, false, opORA}},
		{0x15, opEntry{"ORA", mZPX, 4, false, opORA}},
		{0x0D, opEntry{"ORA", mABS, 4, false, opORA}},
		{0x1D, opEntry{"ORA", mABX, 4, true, opORA}},
		{0x19, opEntry{"ORA", mABY, 4, true, opORA}},
		{0x01, opEntry{"ORA", mIZX, 6, false, opORA}},
		{0x11, opEntry{"ORA", mIZY, 5, true, opORA}},

		// EOR
		{0x49, opEntry{"EOR", mIMM, 2, false, opEOR}},
		{0x45, opEntry{"EOR", mZP0, 3, false, opEOR}},
		{0x55, opEntry{"EOR", mZPX, 4, false, opEOR}},
		{0x4D, opEntry{"EOR", mABS, 4, false, opEOR}},
		{0x5D, opEntry{"EOR", mABX, 4, true, opEOR}},
		{0x59, opEntry{"EOR", mABY, 4, true, opEOR}},
		{0x41, opEntry{"EOR", mIZX, 6, false, opEOR}},
		{0x51, opEntry{"EOR", mIZY, 5, true, opEOR}},

		// ASL / LSR / ROL / ROR
		{0x0A, opEntry{"ASL", mACC, 2, false, opASL}},
		{0x06, opEntry{"ASL", mZP0, 5, false, opASL}},
		{0x16, opEntry{"ASL", mZPX, 6, false, opASL}},
		{0x0E, opEntry{"ASL", mABS, 6, false, opASL}},
		{0x1E, opEntry{"ASL", mABX, 7, false, opASL}},

		{0x4A, opEntry{"LSR", mACC, 2, false, opLSR}},
		{0x46, opEntry{"LSR", mZP0, 5, false, opLSR}},
		{0x56, opEntry{"LSR", mZPX, 6, false, opLSR}},
		{0x4E, opEntry{"LSR", mABS, 6, false, opLSR}},
		{0x5E, opEntry{"LSR", mABX, 7, false, opLSR}},

		{0x2A, opEntry{"ROL", mACC, 2, false, opROL}},
		{0x26, opEntry{"ROL", mZP0, 5, false, opROL}},
		{0x36, opEntry{"ROL", mZPX, 6, false, opROL}},
		{0x2E, opEntry{"ROL", mABS, 6, false, opROL}},
		{0x3E, opEntry{"ROL", mABX, 7, false, opROL}},

		{0x6A, opEntry{"ROR", mACC, 2, false, opROR}},
		{0x66, opEntry{"ROR", mZP0, 5, false, opROR}},
		{0x76, opEntry{"ROR", mZPX, 6, false, opROR}},
		{0x6E, opEntry{"ROR", mABS, 6, false, opROR}},
		{0x7E, opEntry{"ROR", mABX, 7, false, opROR}},

		// Branches
		{0x90, opEntry{"BCC", mREL, 2, false, opBCC}},
		{0xB0, opEntry{"BCS", mREL, 2, false, opBCS}},
		{0xF0, opEntry{"BEQ", mREL, 2, false, opBEQ}},
		{0xD0, opEntry{"BNE", mREL, 2, false, opBNE}},
		{0x30, opEntry{"BMI", mREL, 2, false, opBMI}},
		{0x10, opEntry{"BPL", mREL, 2, false, opBPL}},
		{0x50, opEntry{"BVC", mREL, 2, false, opBVC}},
		{0x70, opEntry{"BVS", mREL, 2, false, opBVS}},

		// BIT
		{0x24, opEntry{"BIT", mZP0, 3, false, opBIT}},
		{0x2C, opEntry{"BIT", mABS, 4, false, opBIT}},

		// BRK / flags
		{0x00, opEntry{"BRK", mIMP, 7, false, opBRK}},
		{0x18, opEntry{"CLC", mIMP, 2, false, opCLC}},
		{0xD8, opEntry{"CLD", mIMP, 2, false, opCLD}},
		{0x58, opEntry{"CLI", mIMP, 2, false, opCLI}},
		{0xB8, opEntry{"CLV", mIMP, 2, false, opCLV}},
		{0x38, opEntry{"SEC", mIMP, 2, false, opSEC}},
		{0xF8, opEntry{"SED", mIMP, 2, false, opSED}},
		{0x78, opEntry{"SEI", mIMP, 2, false, opSEI}},

		// Compare
		{0xC9, opEntry{"CMP", mIMM, 2, false, opCMP}},
		{0xC5, opEntry{"CMP", mZP0, 3, false, opCMP}},
		{0xD5, opEntry{"CMP", mZPX, 4, false, opCMP}},
		{0xCD, opEntry{"CMP", mABS, 4, false, opCMP}},
		{0xDD, opEntry{"CMP", mABX, 4, true, opCMP}},
		{0xD9, opEntry{"CMP", mABY, 4, true, opCMP}},
		{0xC1, opEntry{"CMP", mIZX, 6, false, opCMP}},
		{0xD1, opEntry{"CMP", mIZY, 5, true, opCMP}},
		{0xE0, opEntry{"CPX", mIMM, 2, false, opCPX}},
		{0xE4, opEntry{"CPX", mZP0, 3, false, opCPX}},
		{0xEC, opEntry{"CPX", mABS, 4, false, opCPX}},
		{0xC0, opEntry{"CPY", mIMM, 2, false, opCPY}},
		{0xC4, opEntry{"CPY", mZP0, 3, false, opCPY}},
		{0xCC, opEntry{"CPY", mABS, 4, false, opCPY}},

		// INC/DEC, register inc/dec
		{0xC6, opEntry{"DEC", mZP0, 5, false, opDEC}},
		{0xD6, opEntry{"DEC", mZPX, 6, false, opDEC}},
		{0xCE, opEntry{"DEC", mABS, 6, false, opDEC}},
		{0xDE, opEntry{"DEC", mABX, 7, false, opDEC}},
		{0xE6, opEntry{"INC", mZP0, 5, false, opINC}},
		{0xF6, opEntry{"INC", mZPX, 6, false, opINC}},
		{0xEE, opEntry{"INC", mABS, 6, false, opINC}},
		{0xFE, opEntry{"INC", mABX, 7, false, opINC}},
		{0xCA, opEntry{"DEX", mIMP, 2, false, opDEX}},
		{0x88, opEntry{"DEY", mIMP, 2, false, opDEY}},
		{0xE8, opEntry{"INX", mIMP, 2, false, opINX}},
		{0xC8, opEntry{"INY", mIMP, 2, false, opINY}},

		// Jumps / calls / returns
		{0x4C, opEntry{"JMP", mABS, 3, false, opJMP}},
		{0x6C, opEntry{"JMP", mIND, 5, false, opJMP}},
		{0x20, opEntry{"JSR", mABS, 6, false, opJSR}},
		{0x60, opEntry{"RTS", mIMP, 6, false, opRTS}},
		{0x40, opEntry{"RTI", mIMP, 6, false, opRTI}},

		// Loads / stores
		{0xA9, opEntry{"LDA", mIMM, 2, false, opLDA}},
		{0xA5, opEntry{"LDA", mZP0, 3, false, opLDA}},
		{0xB5, opEntry{"LDA", mZPX, 4, false, opLDA}},
		{0xAD, opEntry{"LDA", mABS, 4, false, opLDA}},
		{0xBD, opEntry{"LDA", mABX, 4, true, opLDA}},
		{0xB9, opEntry{"LDA", mABY, 4, true, opLDA}},
		{0xA1, opEntry{"LDA", mIZX, 6, false, opLDA}},
		{0xB1, opEntry{"LDA", mIZY, 5, true, opLDA}},

		{0xA2, opEntry{"LDX", mIMM, 2, false, opLDX}},
		{0xA6, opEntry{"LDX", mZP0, 3, false, opLDX}},
		{0xB6, opEntry{"LDX", mZPY, 4, false, opLDX}},
		{0xAE, opEntry{"LDX", mABS, 4, false, opLDX}},
		{0xBE, opEntry{"LDX", mABY, 4, true, opLDX}},

		{0xA0, opEntry{"LDY", mIMM, 2, false, opLDY}},
		{0xA4, opEntry{"LDY", mZP0, 3, false, opLDY}},
		{0xB4, opEntry{"LDY", mZPX, 4, false, opLDY}},
		{0xAC, opEntry{"LDY", mABS, 4, false, opLDY}},
		{0xBC, opEntry{"LDY", mABX, 4, true, opLDY}},

		{0x85, opEntry{"STA", mZP0, 3, false, opSTA}},
		{0x95, opEntry{"STA", mZPX, 4, false, opSTA}},
		{0x8D, opEntry{"STA", mABS, 4, false, opSTA}},
		{0x9D, opEntry{"STA", mABX, 5, false, opSTA}},
		{0x99, opEntry{"STA", mABY, 5, false, opSTA}},
		{0x81, opEntry{"STA", mIZX, 6, false, opSTA}},
		{0x91, opEntry{"STA", mIZY, 6, false, opSTA}},

		{0x86, opEntry{"STX", mZP0, 3, false, opSTX}},
		{0x96, opEntry{"STX", mZPY, 4, false, opSTX}},
		{0x8E, opEntry{"STX", mABS, 4, false, opSTX}},

		{0x84, opEntry{"STY", mZP0, 3, false, opSTY}},
		{0x94, opEntry{"STY", mZPX, 4, false, opSTY}},
		{0x8C, opEntry{"STY", mABS, 4, false, opSTY}},

		// Register transfers / stack
		{0xAA, opEntry{"TAX", mIMP, 2, false, opTAX}},
		{0xA8, opEntry{"TAY", mIMP, 2, false, opTAY}},
		{0x8A, opEntry{"TXA", mIMP, 2, false, opTXA}},
		{0x98, opEntry{"TYA", mIMP, 2, false, opTYA}},
		{0xBA, opEntry{"TSX", mIMP, 2, false, opTSX}},
		{0x9A, opEntry{"TXS", mIMP, 2, false, opTXS}},
		{0x48, opEntry{"PHA", mIMP, 3, false, opPHA}},
		{0x08, opEntry{"PHP", mIMP, 3, false, opPHP}},
		{0x68, opEntry{"PLA", mIMP, 4, false, opPLA}},
		{0x28, opEntry{"PLP", mIMP, 4, false, opPLP}},

		// NOP
		{0xEA, opEntry{"NOP", mIMP, 2, false, opNOP}},

		// Unofficial NOPs
		{0x1A, opEntry{"NOP", mIMP, 2, false, opNOP}},
		{0x3A, opEntry{"NOP", mIMP, 2, false, opNOP}},
		{0x5A, opEntry{"NOP", mIMP, 2, false, opNOP}},
		{0x7A, opEntry{"NOP", mIMP, 2, false, opNOP}},
		{0xDA, opEntry{"NOP", mIMP, 2, false, opNOP}},
		{0xFA, opEntry{"NOP", mIMP, 2, false, opNOP}},
		{0x80, opEntry{"NOP", mIMM, 2, false, opNOP}},
		{0x82, opEntry{"NOP", mIMM, 2, false, opNOP}},
		{0x89, opEntry{"NOP", mIMM, 2, false, opNOP}},
		{0xC2, opEntry{"NOP", mIMM, 2, false, opNOP}},
		{0xE2, opEntry{"NOP", mIMM, 2, false, opNOP}},
		{0x04, opEntry{"NOP", mZP0, 3, false, opNOP}},
		{0x44, opEntry{"NOP", mZP0, 3, false, opNOP}},
		{0x64, opEntry{"NOP", mZP0, 3, false, opNOP}},
		{0x14, opEntry{"NOP", mZPX, 4, false, opNOP}},
		{0x34, opEntry{"NOP", mZPX, 4, false, opNOP}},
		{0x54, opEntry{"NOP", mZPX, 4, false, opNOP}},
		{0x74, opEntry{"NOP", mZPX, 4, false, opNOP}},
		{0xD4, opEntry{"NOP", mZPX, 4, false, opNOP}},
		{0xF4, opEntry{"NOP", mZPX, 4, false, opNOP}},
		{0x0C, opEntry{"NOP", mABS, 4, false, opNOP}},
		{0x1C, opEntry{"NOP", mABX, 4, true, opNOP}},
		{0x3C, opEntry{"NOP", mABX, 4, true, opNOP}},
		{0x5C, opEntry{"NOP", mABX, 4, true, opNOP}},
		{0x7C, opEntry{"NOP", mABX, 4, true, opNOP}},
		{0xDC, opEntry{"NOP", mABX, 4, true, opNOP}},
		{0xFC, opEntry{"NOP", mABX, 4, true, opNOP}},

		// LAX
		{0xA7, opEntry{"LAX", mZP0, 3, false, opLAX}},
		{0xB7, opEntry{"LAX", mZPY, 4, false, opLAX}},
		{0xAF, opEntry{"LAX", mABS, 4, false, opLAX}},
		{0xBF, opEntry{"LAX", mABY, 4, true, opLAX}},
		{0xA3, opEntry{"LAX", mIZX, 6, false, opLAX}},
		{0xB3, opEntry{"LAX", mIZY, 5, true, opLAX}},

		// SAX
		{0x87, opEntry{"SAX", mZP0, 3, false, opSAX}},
		{0x97, opEntry{"SAX", mZPY, 4, false, opSAX}},
		{0x8F, opEntry{"SAX", mABS, 4, false, opSAX}},
		{0x83, opEntry{"SAX", mIZX, 6, false, opSAX}},

		// DCP
		{0xC7, opEntry{"DCP", mZP0, 5, false, opDCP}},
		{0xD7, opEntry{"DCP", mZPX, 6, false, opDCP}},
		{0xCF, opEntry{"DCP", mABS, 6, false, opDCP}},
		{0xDF, opEntry{"DCP", mABX, 7, false, opDCP}},
		{0xDB, opEntry{"DCP", mABY, 7, false, opDCP}},
		{0xC3, opEntry{"DCP", mIZX, 8, false, opDCP}},
		{0xD3, opEntry{"DCP", mIZY, 8, false, opDCP}},

		// ISB / ISC
		{0xE7, opEntry{"ISB", mZP0, 5, false, opISB}},
		{0xF7, opEntry{"ISB", mZPX, 6, false, opISB}},
		{0xEF, opEntry{"ISB", mABS, 6, false, opISB}},
		{0xFF, opEntry{"ISB", mABX, 7, false, opISB}},
		{0xFB, opEntry{"ISB", mABY, 7, false, opISB}},
		{0xE3, opEntry{"ISB", mIZX, 8, false, opISB}},
		{0xF3, opEntry{"ISB", mIZY, 8, false, opISB}},

		// SLO
		{0x07, opEntry{"SLO", mZP0, 5, false, opSLO}},
		{0x17, opEntry{"SLO", mZPX, 6, false, opSLO}},
		{0x0F, opEntry{"SLO", mABS, 6, false, opSLO}},
		{0x1F, opEntry{"SLO", mABX, 7, false, opSLO}},
		{0x1B, opEntry{"SLO", mABY, 7, false, opSLO}},
		{0x03, opEntry{"SLO", mIZX, 8, false, opSLO}},
		{0x13, opEntry{"SLO", mIZY, 8, false, opSLO}},

		// RLA
		{0x27, opEntry{"RLA", mZP0, 5, false, opRLA}},
		{0x37, opEntry{"RLA", mZPX, 6, false, opRLA}},
		{0x2F, opEntry{"RLA", mABS, 6, false, opRLA}},
		{0x3F, opEntry{"RLA", mABX, 7, false, opRLA}},
		{0x3B, opEntry{"RLA", mABY, 7, false, opRLA}},
		{0x23, opEntry{"RLA", mIZX, 8, false, opRLA}},
		{0x33, opEntry{"RLA", mIZY, 8, false, opRLA}},

		// SRE
		{0x47, opEntry{"SRE", mZP0, 5, false, opSRE}},
		{0x57, opEntry{"SRE", mZPX, 6, false, opSRE}},
		{0x4F, opEntry{"SRE", mABS, 6, false, opSRE}},
		{0x5F, opEntry{"SRE", mABX, 7, false, opSRE}},
		{0x5B, opEntry{"SRE", mABY, 7, false, opSRE}},
		{0x43, opEntry{"SRE", mIZX, 8, false, opSRE}},
		{0x53, opEntry{"SRE", mIZY, 8, false, opSRE}},

		// RRA
		{0x67, opEntry{"RRA", mZP0, 5, false, opRRA}},
		{0x77, opEntry{"RRA", mZPX, 6, false, opRRA}},
		{0x6F, opEntry{"RRA", mABS, 6, false, opRRA}},
		{0x7F, opEntry{"RRA", mABX, 7, false, opRRA}},
		{0x7B, opEntry{"RRA", mABY, 7, false, opRRA}},
		{0x63, opEntry{"RRA", mIZX, 8, false, opRRA}},
		{0x73, opEntry{"RRA", mIZY, 8, false, opRRA}},
	}

	for _, r := range rows {
		opcodeTable[r.op] = r.e
	}
}
