package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
)

// vecLaneOp applies op to each of the four f32 lanes of a 128-bit
// vector register pair, matching the whole-vector semantics VMX128
// arithmetic ops carry (no partial-lane operations in the decoded set).
func vecLaneOp(dst, a, b, op string) []string {
	out := make([]string, 4)
	for i := 0; i < 4; i++ {
		lane := fmt.Sprintf(".f32[%d]", i)
		out[i] = fmt.Sprintf("%s%s = %s%s %s %s%s;", dst, lane, a, lane, op, b, lane)
	}
	return out
}

func translateVMX(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	saved := fs.CSR
	pre := setCSR(fs, guest.CSRVMX)
	vd, va, vb := in.Operands[0].Reg, in.Operands[1].Reg, in.Operands[2].Reg
	dst, a, b := fs.Names.V(vd), fs.Names.V(va), fs.Names.V(vb)

	switch in.Op {
	case disasm.OpVADDFP:
		return append(pre, vecLaneOp(dst, a, b, "+")...), true
	case disasm.OpVSUBFP:
		return append(pre, vecLaneOp(dst, a, b, "-")...), true
	case disasm.OpVAND:
		return append(pre, fmt.Sprintf("%s.u64[0] = %s.u64[0] & %s.u64[0]; %s.u64[1] = %s.u64[1] & %s.u64[1];", dst, a, b, dst, a, b)), true
	case disasm.OpVANDC:
		return append(pre, fmt.Sprintf("%s.u64[0] = %s.u64[0] & ~%s.u64[0]; %s.u64[1] = %s.u64[1] & ~%s.u64[1];", dst, a, b, dst, a, b)), true
	case disasm.OpVOR:
		return append(pre, fmt.Sprintf("%s.u64[0] = %s.u64[0] | %s.u64[0]; %s.u64[1] = %s.u64[1] | %s.u64[1];", dst, a, b, dst, a, b)), true
	case disasm.OpVXOR:
		return append(pre, fmt.Sprintf("%s.u64[0] = %s.u64[0] ^ %s.u64[0]; %s.u64[1] = %s.u64[1] ^ %s.u64[1];", dst, a, b, dst, a, b)), true
	case disasm.OpVMAXFP:
		var out []string
		for i := 0; i < 4; i++ {
			lane := fmt.Sprintf(".f32[%d]", i)
			out = append(out, fmt.Sprintf("%s%s = std::max(%s%s, %s%s);", dst, lane, a, lane, b, lane))
		}
		return append(pre, out...), true
	case disasm.OpVMINFP:
		var out []string
		for i := 0; i < 4; i++ {
			lane := fmt.Sprintf(".f32[%d]", i)
			out = append(out, fmt.Sprintf("%s%s = std::min(%s%s, %s%s);", dst, lane, a, lane, b, lane))
		}
		return append(pre, out...), true

	case disasm.OpVMADDFP:
		// Simplified to a 3-operand vd = vd*va + vb form (see DESIGN.md).
		var out []string
		for i := 0; i < 4; i++ {
			lane := fmt.Sprintf(".f32[%d]", i)
			out = append(out, fmt.Sprintf("%s%s = %s%s * %s%s + %s%s;", dst, lane, dst, lane, a, lane, b, lane))
		}
		return append(pre, out...), true
	case disasm.OpVNMSUBFP:
		var out []string
		for i := 0; i < 4; i++ {
			lane := fmt.Sprintf(".f32[%d]", i)
			out = append(out, fmt.Sprintf("%s%s = -(%s%s * %s%s - %s%s);", dst, lane, dst, lane, a, lane, b, lane))
		}
		return append(pre, out...), true
	}
	// Not a VMX opcode: nothing was emitted, so the tracked mode is unchanged.
	fs.CSR = saved
	return nil, false
}
