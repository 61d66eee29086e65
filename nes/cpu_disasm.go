package nes

import (
	"fmt"
	"reflect"
)

func fnPtr(f func(*Cpu6502)) uintptr { return reflect.ValueOf(f).Pointer() }

// operandLength maps an addressing-mode function to the number of operand
// bytes it consumes, keyed by function pointer since Go func values aren't
// otherwise comparable.
var operandLength = map[uintptr]int{}

func init() {
	operandLength[fnPtr(mIMP)] = 0
	operandLength[fnPtr(mACC)] = 0
	operandLength[fnPtr(mIMM)] = 1
	operandLength[fnPtr(mZP0)] = 1
	operandLength[fnPtr(mZPX)] = 1
	operandLength[fnPtr(mZPY)] = 1
	operandLength[fnPtr(mREL)] = 1
	operandLength[fnPtr(mIZX)] = 1
	operandLength[fnPtr(mIZY)] = 1
	operandLength[fnPtr(mABS)] = 2
	operandLength[fnPtr(mABX)] = 2
	operandLength[fnPtr(mABY)] = 2
	operandLength[fnPtr(mIND)] = 2
}

// Disassemble walks [lo, hi] and returns one text line per instruction,
// keyed by its address, grounded on the teacher's map[uint16]string
// disassembler shape but rebuilt against the new opcode table. It reads
// through the CPU's own bus so the debug overlay can disassemble live PRG
// without the caller threading a *CpuBus through.
func (cpu *Cpu6502) Disassemble(lo, hi uint16) map[uint16]string {
	out := make(map[uint16]string)

	addr := uint32(lo)
	for addr <= uint32(hi) {
		pc := uint16(addr)
		opcode := cpu.bus.Read(pc)
		entry := opcodeTable[opcode]
		length := operandLength[fnPtr(entry.mode)]

		switch length {
		case 1:
			operand := cpu.bus.Read(pc + 1)
			out[pc] = fmt.Sprintf("$%04X: %s $%02X", pc, entry.name, operand)
		case 2:
			operand := cpu.bus.ReadWord(pc + 1)
			out[pc] = fmt.Sprintf("$%04X: %s $%04X", pc, entry.name, operand)
		default:
			out[pc] = fmt.Sprintf("$%04X: %s", pc, entry.name)
		}

		addr += uint32(length) + 1
	}

	return out
}
