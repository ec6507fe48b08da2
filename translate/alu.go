package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// rcCheck emits the CR0 compare-against-zero block for opcodes whose
// mnemonic ends in '.': a signed 32-bit compare of the result against
// zero, recording XER's summary-overflow bit alongside lt/gt/eq.
func rcCheck(fs *FuncState, result string) []string {
	cr0 := fs.Names.CR(0)
	return []string{fmt.Sprintf(
		"%s.compare<int32_t>(int32_t(%s), 0, %s);", cr0, result, fs.Names.XER(),
	)}
}

// baseOrZero elides the base-register read when ra == 0, per the
// "treat r0 as zero" rule for ADDI/ADDIS and D-form loads/stores.
func baseOrZero(fs *FuncState, ra int, lane string) string {
	if ra == 0 {
		return "0"
	}
	return fs.Names.R(ra) + "." + lane
}

func translateALU(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	var out []string
	rt := in.Operands[0].Reg

	switch in.Op {
	case disasm.OpADD:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst := fs.Names.R(rt)
		out = append(out, fmt.Sprintf("%s.u64 = %s.u64 + %s.u64;", dst, fs.Names.R(ra), fs.Names.R(rb)))

	case disasm.OpADDC:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		xer := fs.Names.XER()
		out = append(out,
			fmt.Sprintf("%s.ca = uint32_t(%s.u32) + uint32_t(%s.u32) < uint32_t(%s.u32);", xer, a, b, a),
			fmt.Sprintf("%s.u64 = %s.u64 + %s.u64;", dst, a, b),
		)

	case disasm.OpADDE:
		// A three-operand add (ra + rb + xer.ca) can carry out even when
		// ra+rb alone does not, so the carry-out test needs both clauses:
		// one for the ra+rb overflow, one for the +ca overflow.
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		xer := fs.Names.XER()
		temp := fs.Names.Temp()
		out = append(out,
			fmt.Sprintf("%s.u8 = (%s.u32 + %s.u32 < %s.u32) | (%s.u32 + %s.u32 + %s.ca < %s.ca);", temp, a, b, a, a, b, xer, xer),
			fmt.Sprintf("%s.u64 = %s.u64 + %s.u64 + %s.ca;", dst, a, b, xer),
			fmt.Sprintf("%s.ca = %s.u8;", xer, temp),
		)

	case disasm.OpADDZE:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		xer := fs.Names.XER()
		out = append(out,
			fmt.Sprintf("%s.ca = uint32_t(%s.u32) + %s.ca < uint64_t(%s.u32) + 0;", xer, a, xer, a),
			fmt.Sprintf("%s.u64 = %s.u64 + %s.ca;", dst, a, xer),
		)

	case disasm.OpADDI:
		ra := in.Operands[1].Reg
		dst := fs.Names.R(rt)
		if ra == 0 {
			out = append(out, fmt.Sprintf("%s.s64 = %d;", dst, in.Operands[2].Value))
		} else {
			out = append(out, fmt.Sprintf("%s.s64 = %s.s64 + %d;", dst, fs.Names.R(ra), in.Operands[2].Value))
		}

	case disasm.OpADDIS:
		ra := in.Operands[1].Reg
		dst := fs.Names.R(rt)
		shifted := in.Operands[2].Value << 16
		if ra == 0 {
			out = append(out, fmt.Sprintf("%s.s64 = %d;", dst, shifted))
		} else {
			out = append(out, fmt.Sprintf("%s.s64 = %s.s64 + %d;", dst, fs.Names.R(ra), shifted))
		}

	case disasm.OpADDIC:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		xer := fs.Names.XER()
		imm := in.Operands[2].Value
		out = append(out,
			fmt.Sprintf("%s.ca = uint32_t(%s.u32) + uint32_t(int32_t(%d)) < uint64_t(%s.u32);", xer, a, imm, a),
			fmt.Sprintf("%s.s64 = %s.s64 + %d;", dst, a, imm),
		)
		if in.RC {
			out = append(out, rcCheck(fs, dst+".s32")...)
		}

	case disasm.OpSUBFIC:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		xer := fs.Names.XER()
		imm := in.Operands[2].Value
		out = append(out,
			fmt.Sprintf("%s.ca = uint64_t(%d) >= %s.u64;", xer, imm, a),
			fmt.Sprintf("%s.s64 = %d - %s.s64;", dst, imm, a),
		)

	case disasm.OpSUBF, disasm.OpSUBFC, disasm.OpSUBFE:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		xer := fs.Names.XER()
		if in.Op != disasm.OpSUBF {
			carryIn := "1"
			if in.Op == disasm.OpSUBFE {
				carryIn = xer + ".ca"
			}
			out = append(out, fmt.Sprintf("%s.ca = %s.u64 >= %s.u64;", xer, b, a))
			out = append(out, fmt.Sprintf("%s.u64 = ~%s.u64 + %s.u64 + %s;", dst, a, b, carryIn))
		} else {
			out = append(out, fmt.Sprintf("%s.u64 = %s.u64 - %s.u64;", dst, b, a))
		}

	case disasm.OpAND, disasm.OpANDC, disasm.OpOR, disasm.OpORC, disasm.OpXOR, disasm.OpNAND, disasm.OpNOR:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		expr := map[disasm.OpID]string{
			disasm.OpAND:  "%s.u64 & %s.u64",
			disasm.OpANDC: "%s.u64 & ~%s.u64",
			disasm.OpOR:   "%s.u64 | %s.u64",
			disasm.OpORC:  "%s.u64 | ~%s.u64",
			disasm.OpXOR:  "%s.u64 ^ %s.u64",
			disasm.OpNAND: "~(%s.u64 & %s.u64)",
			disasm.OpNOR:  "~(%s.u64 | %s.u64)",
		}[in.Op]
		out = append(out, fmt.Sprintf("%s.u64 = "+expr+";", dst, a, b))

	case disasm.OpNOT:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.u64 = ~%s.u64;", fs.Names.R(rt), fs.Names.R(ra)))

	case disasm.OpANDI, disasm.OpANDIS:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		imm := uint64(uint32(in.Operands[2].Value))
		if in.Op == disasm.OpANDIS {
			imm <<= 16
		}
		out = append(out, fmt.Sprintf("%s.u64 = %s.u64 & 0x%X;", dst, a, imm))
		out = append(out, rcCheck(fs, dst+".s32")...)

	case disasm.OpORI, disasm.OpORIS, disasm.OpXORI, disasm.OpXORIS:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		imm := uint64(uint32(in.Operands[2].Value))
		if in.Op == disasm.OpORIS || in.Op == disasm.OpXORIS {
			imm <<= 16
		}
		op := "|"
		if in.Op == disasm.OpXORI || in.Op == disasm.OpXORIS {
			op = "^"
		}
		out = append(out, fmt.Sprintf("%s.u64 = %s.u64 %s 0x%X;", dst, a, op, imm))

	case disasm.OpMULLW, disasm.OpMULHW, disasm.OpMULHWU:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		switch in.Op {
		case disasm.OpMULLW:
			out = append(out, fmt.Sprintf("%s.s64 = int64_t(%s.s32) * int64_t(%s.s32);", dst, a, b))
		case disasm.OpMULHW:
			out = append(out, fmt.Sprintf("%s.s64 = (int64_t(%s.s32) * int64_t(%s.s32)) >> 32;", dst, a, b))
		case disasm.OpMULHWU:
			out = append(out, fmt.Sprintf("%s.u64 = (uint64_t(%s.u32) * uint64_t(%s.u32)) >> 32;", dst, a, b))
		}

	case disasm.OpMULLD:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		out = append(out, fmt.Sprintf("%s.s64 = %s.s64 * %s.s64;", fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)))

	case disasm.OpMULLI:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.s64 = %s.s64 * %d;", fs.Names.R(rt), fs.Names.R(ra), in.Operands[2].Value))

	case disasm.OpDIVW, disasm.OpDIVWU, disasm.OpDIVD, disasm.OpDIVDU:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		switch in.Op {
		case disasm.OpDIVW:
			out = append(out, fmt.Sprintf("%s.s64 = int32_t(%s.s32) / int32_t(%s.s32);", dst, a, b))
		case disasm.OpDIVWU:
			out = append(out, fmt.Sprintf("%s.u64 = uint32_t(%s.u32) / uint32_t(%s.u32);", dst, a, b))
		case disasm.OpDIVD:
			out = append(out, fmt.Sprintf("%s.s64 = %s.s64 / %s.s64;", dst, a, b))
		case disasm.OpDIVDU:
			out = append(out, fmt.Sprintf("%s.u64 = %s.u64 / %s.u64;", dst, a, b))
		}

	case disasm.OpNEG:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.s64 = -%s.s64;", fs.Names.R(rt), fs.Names.R(ra)))

	case disasm.OpEXTSB:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.s64 = int8_t(%s.u8);", fs.Names.R(rt), fs.Names.R(ra)))
	case disasm.OpEXTSH:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.s64 = int16_t(%s.u16);", fs.Names.R(rt), fs.Names.R(ra)))
	case disasm.OpEXTSW:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.s64 = int32_t(%s.u32);", fs.Names.R(rt), fs.Names.R(ra)))

	default:
		return nil, false
	}

	if in.RC && in.Op != disasm.OpADDIC && in.Op != disasm.OpANDI && in.Op != disasm.OpANDIS {
		out = append(out, rcCheck(fs, fs.Names.R(rt)+".s32")...)
	}
	return out, true
}
