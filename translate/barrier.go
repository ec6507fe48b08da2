package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// translateBarrier lowers the memory-barrier and cache-hint family.
// None of these have an architectural effect worth modeling on a
// single-threaded, non-self-modifying host, so most become no-ops; the
// few retained (dcbz) mutate guest memory and must stay.
func translateBarrier(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	switch in.Op {
	case disasm.OpEIEIO, disasm.OpLWSYNC, disasm.OpSYNC, disasm.OpDB16CYC,
		disasm.OpDCBF, disasm.OpDCBT, disasm.OpDCBTST, disasm.OpNOP,
		disasm.OpATTN, disasm.OpCCTPL, disasm.OpCCTPM:
		return nil, true

	case disasm.OpTWI, disasm.OpTDLGEI, disasm.OpTDLLEI, disasm.OpTWLGEI, disasm.OpTWLLEI:
		// Conditional traps guard invariants the guest never expects to
		// fire in a working binary; left unmodeled rather than aborting
		// the generated function on an always-false guess.
		return nil, true

	case disasm.OpDCBZ, disasm.OpDCBZL:
		ra, rb := in.Operands[0].Reg, in.Operands[1].Reg
		ea := indexedEA(fs, ra, rb)
		return []string{fmt.Sprintf("memset(base + ((%s) & ~31u), 0, 32);", ea)}, true
	}
	return nil, false
}
