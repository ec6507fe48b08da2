package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// rotl32 and rotl64 are the textual forms of the host's rotate helpers;
// the translator never evaluates a rotation itself, it only emits the
// call and the mask to AND against afterward.
func rotl32(value, amount string) string {
	return fmt.Sprintf("std::rotl<uint32_t>(%s, %s)", value, amount)
}

func rotl64(value, amount string) string {
	return fmt.Sprintf("std::rotl<uint64_t>(%s, %s)", value, amount)
}

func translateRotate(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	var out []string
	rt := in.Operands[0].Reg

	switch in.Op {
	case disasm.OpRLWINM, disasm.OpRLWIMI:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		sh := in.Operands[2]
		mb := int(in.Operands[3].Value >> 8)
		me := int(in.Operands[3].Value & 0xFF)
		mask := ComputeMask(uint32(mb+32), uint32(me+32))

		var amount string
		if sh.Kind == disasm.OperandImmediate {
			amount = fmt.Sprintf("%d", sh.Value)
		} else {
			amount = fs.Names.R(sh.Reg) + ".u32 & 0x1F"
		}
		rotated := rotl32(a+".u32", amount)

		switch in.Op {
		case disasm.OpRLWINM:
			out = append(out, fmt.Sprintf("%s.u64 = %s & 0x%X;", dst, rotated, uint32(mask)))
		case disasm.OpRLWIMI:
			out = append(out, fmt.Sprintf("%s.u32 = (%s & 0x%X) | (%s.u32 & 0x%X);", dst, rotated, uint32(mask), dst, ^uint32(mask)))
		}

	case disasm.OpRLDICL, disasm.OpRLDICR, disasm.OpRLDIMI:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		sh := in.Operands[2]
		var mb, me int
		switch in.Op {
		case disasm.OpRLDICL:
			mb, me = int(in.Operands[3].Value), 63
		case disasm.OpRLDICR:
			mb, me = 0, int(in.Operands[3].Value)
		case disasm.OpRLDIMI:
			mb, me = int(in.Operands[3].Value), 63-int(sh.Value)
		}
		mask := ComputeMask(uint32(mb), uint32(me))

		var amount string
		if sh.Kind == disasm.OperandImmediate {
			amount = fmt.Sprintf("%d", sh.Value)
		} else {
			amount = fs.Names.R(sh.Reg) + ".u64 & 0x3F"
		}
		rotated := rotl64(a+".u64", amount)

		if in.Op == disasm.OpRLDIMI {
			out = append(out, fmt.Sprintf("%s.u64 = (%s & 0x%Xull) | (%s.u64 & 0x%Xull);", dst, rotated, mask, dst, ^mask))
		} else {
			out = append(out, fmt.Sprintf("%s.u64 = %s & 0x%Xull;", dst, rotated, mask))
		}

	case disasm.OpSLW:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		out = append(out, fmt.Sprintf(
			"%s.u64 = (%s.u32 & 0x3F) >= 32 ? 0 : uint32_t(%s.u32 << (%s.u32 & 0x3F));",
			fs.Names.R(rt), fs.Names.R(rb), fs.Names.R(ra), fs.Names.R(rb),
		))
	case disasm.OpSRW:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		out = append(out, fmt.Sprintf(
			"%s.u64 = (%s.u32 & 0x3F) >= 32 ? 0 : uint32_t(%s.u32 >> (%s.u32 & 0x3F));",
			fs.Names.R(rt), fs.Names.R(rb), fs.Names.R(ra), fs.Names.R(rb),
		))
	case disasm.OpSLD:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		out = append(out, fmt.Sprintf(
			"%s.u64 = (%s.u64 & 0x7F) >= 64 ? 0 : (%s.u64 << (%s.u64 & 0x7F));",
			fs.Names.R(rt), fs.Names.R(rb), fs.Names.R(ra), fs.Names.R(rb),
		))
	case disasm.OpSRD:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		out = append(out, fmt.Sprintf(
			"%s.u64 = (%s.u64 & 0x7F) >= 64 ? 0 : (%s.u64 >> (%s.u64 & 0x7F));",
			fs.Names.R(rt), fs.Names.R(rb), fs.Names.R(ra), fs.Names.R(rb),
		))

	case disasm.OpSRAW:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		xer := fs.Names.XER()
		out = append(out,
			fmt.Sprintf("%s.ca = %s.s32 < 0 && (%s.u32 & ((1ull << (%s.u32 & 0x3F)) - 1)) != 0;", xer, a, a, b),
			fmt.Sprintf("%s.s64 = int32_t(%s.s32) >> std::min<uint32_t>(%s.u32 & 0x3F, 31);", dst, a, b),
		)
	case disasm.OpSRAD:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		dst, a, b := fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(rb)
		xer := fs.Names.XER()
		out = append(out,
			fmt.Sprintf("%s.ca = %s.s64 < 0 && (%s.u64 & ((1ull << (%s.u64 & 0x7F)) - 1)) != 0;", xer, a, a, b),
			fmt.Sprintf("%s.s64 = %s.s64 >> std::min<uint64_t>(%s.u64 & 0x7F, 63);", dst, a, b),
		)
	case disasm.OpSRAWI, disasm.OpSRADI:
		ra := in.Operands[1].Reg
		dst, a := fs.Names.R(rt), fs.Names.R(ra)
		sh := in.Operands[2].Value
		xer := fs.Names.XER()
		if in.Op == disasm.OpSRAWI {
			out = append(out,
				fmt.Sprintf("%s.ca = %s.s32 < 0 && (%s.u32 & 0x%X) != 0;", xer, a, a, uint32((1<<uint(sh))-1)),
				fmt.Sprintf("%s.s64 = int32_t(%s.s32) >> %d;", dst, a, sh),
			)
		} else {
			out = append(out,
				fmt.Sprintf("%s.ca = %s.s64 < 0 && (%s.u64 & 0x%Xull) != 0;", xer, a, a, uint64((1<<uint(sh))-1)),
				fmt.Sprintf("%s.s64 = %s.s64 >> %d;", dst, a, sh),
			)
		}

	case disasm.OpCNTLZW:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.u64 = %s.u32 == 0 ? 32 : std::countl_zero(%s.u32);", fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(ra)))
	case disasm.OpCNTLZD:
		ra := in.Operands[1].Reg
		out = append(out, fmt.Sprintf("%s.u64 = %s.u64 == 0 ? 64 : std::countl_zero(%s.u64);", fs.Names.R(rt), fs.Names.R(ra), fs.Names.R(ra)))

	default:
		return nil, false
	}

	if in.RC {
		out = append(out, rcCheck(fs, fs.Names.R(rt)+".s32")...)
	}
	return out, true
}
