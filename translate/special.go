package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// crPackExpr builds the 32-bit packed-CR expression ctx.cr0..ctx.cr7
// resolve to under mfcr/mtcr, in architectural field order (cr0 in the
// high nibble).
func crPackExpr(fs *FuncState) string {
	parts := make([]string, 8)
	for i := 0; i < 8; i++ {
		parts[i] = fmt.Sprintf("(%s.value() << %d)", fs.Names.CR(i), (7-i)*4)
	}
	expr := parts[0]
	for _, p := range parts[1:] {
		expr += " | " + p
	}
	return expr
}

func translateSpecial(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	rt := in.Operands[0].Reg

	switch in.Op {
	case disasm.OpMFCR:
		return []string{fmt.Sprintf("%s.u64 = %s;", fs.Names.R(rt), crPackExpr(fs))}, true

	case disasm.OpMTCR:
		var out []string
		src := fs.Names.R(rt)
		for i := 0; i < 8; i++ {
			out = append(out, fmt.Sprintf("%s.setFromBits((%s.u32 >> %d) & 0xF);", fs.Names.CR(i), src, (7-i)*4))
		}
		return out, true

	case disasm.OpMFOCRF:
		// Only the CR6 field is consulted in practice by the code this
		// translator was built against; other field selectors collapse
		// to the same CR6 read.
		return []string{fmt.Sprintf("%s.u64 = %s.value();", fs.Names.R(rt), fs.Names.CR(6))}, true

	case disasm.OpMFLR:
		return []string{fmt.Sprintf("%s.u64 = %s;", fs.Names.R(rt), fs.Names.LR())}, true
	case disasm.OpMTLR:
		return []string{fmt.Sprintf("%s = %s.u64;", fs.Names.LR(), fs.Names.R(rt))}, true

	case disasm.OpMFMSR:
		return []string{fmt.Sprintf("%s.u64 = ctx.msr;", fs.Names.R(rt))}, true
	case disasm.OpMTMSRD:
		return []string{fmt.Sprintf("ctx.msr = (ctx.msr & ~0x8020ull) | (%s.u64 & 0x8020ull);", fs.Names.R(rt))}, true

	case disasm.OpMFTB:
		return []string{fmt.Sprintf("%s.u64 = PPC_READ_TB();", fs.Names.R(rt))}, true

	case disasm.OpMTCTR:
		return []string{fmt.Sprintf("%s.u64 = %s.u64;", fs.Names.CTR(), fs.Names.R(rt))}, true
	case disasm.OpMTXER:
		return []string{fmt.Sprintf("%s.loadFromGuest(%s.u64);", fs.Names.XER(), fs.Names.R(rt))}, true
	}
	return nil, false
}
