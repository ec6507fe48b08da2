package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
)

// translateCompare lowers the cmp* family to a single templated compare
// call against the designated CR field, mirroring rcCheck's shape but
// parameterized over the CR field the instruction names explicitly.
func translateCompare(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	crField := in.Operands[0].Reg
	cr := fs.Names.CR(crField)
	xer := fs.Names.XER()

	switch in.Op {
	case disasm.OpCMPW:
		a, b := in.Operands[1].Reg, in.Operands[2].Reg
		return []string{fmt.Sprintf("%s.compare<int32_t>(%s.s32, %s.s32, %s);", cr, fs.Names.R(a), fs.Names.R(b), xer)}, true
	case disasm.OpCMPD:
		a, b := in.Operands[1].Reg, in.Operands[2].Reg
		return []string{fmt.Sprintf("%s.compare<int64_t>(%s.s64, %s.s64, %s);", cr, fs.Names.R(a), fs.Names.R(b), xer)}, true
	case disasm.OpCMPLW:
		a, b := in.Operands[1].Reg, in.Operands[2].Reg
		return []string{fmt.Sprintf("%s.compare<uint32_t>(%s.u32, %s.u32, %s);", cr, fs.Names.R(a), fs.Names.R(b), xer)}, true
	case disasm.OpCMPLD:
		a, b := in.Operands[1].Reg, in.Operands[2].Reg
		return []string{fmt.Sprintf("%s.compare<uint64_t>(%s.u64, %s.u64, %s);", cr, fs.Names.R(a), fs.Names.R(b), xer)}, true

	case disasm.OpCMPWI:
		a := in.Operands[1].Reg
		return []string{fmt.Sprintf("%s.compare<int32_t>(%s.s32, %d, %s);", cr, fs.Names.R(a), in.Operands[2].Value, xer)}, true
	case disasm.OpCMPDI:
		a := in.Operands[1].Reg
		return []string{fmt.Sprintf("%s.compare<int64_t>(%s.s64, %d, %s);", cr, fs.Names.R(a), in.Operands[2].Value, xer)}, true
	case disasm.OpCMPLWI:
		a := in.Operands[1].Reg
		return []string{fmt.Sprintf("%s.compare<uint32_t>(%s.u32, %du, %s);", cr, fs.Names.R(a), uint32(in.Operands[2].Value), xer)}, true
	case disasm.OpCMPLDI:
		a := in.Operands[1].Reg
		return []string{fmt.Sprintf("%s.compare<uint64_t>(%s.u64, %dull, %s);", cr, fs.Names.R(a), uint64(in.Operands[2].Value), xer)}, true

	case disasm.OpFCMPU:
		a, b := in.Operands[1].Reg, in.Operands[2].Reg
		out := setCSR(fs, guest.CSRFPU)
		out = append(out, fmt.Sprintf("%s.compare(%s.f64, %s.f64);", cr, fs.Names.F(a), fs.Names.F(b)))
		return out, true
	}
	return nil, false
}
