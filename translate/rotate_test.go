package translate

import (
	"fmt"
	"testing"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

func TestComputeMaskContiguous(t *testing.T) {
	// mb=8, me=15 (both +32 as RLWINM's translator call does): a
	// contiguous 8-bit field starting at bit 40 from the MSB.
	got := ComputeMask(40, 47)
	var expect uint64
	for b := uint32(40); b <= 47; b++ {
		expect |= 1 << (63 - b)
	}
	if got != expect {
		t.Fatalf("ComputeMask(40,47) = 0x%X, want 0x%X", got, expect)
	}
}

func TestComputeMaskWrapping(t *testing.T) {
	// mb > me selects the complement of the [me+1, mb-1] contiguous range.
	got := ComputeMask(60, 3)
	var middle uint64
	for b := uint32(4); b <= 59; b++ {
		middle |= 1 << (63 - b)
	}
	expect := ^middle
	if got != expect {
		t.Fatalf("ComputeMask(60,3) = 0x%X, want 0x%X", got, expect)
	}
}

func TestTranslateRLWINM(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpRLWINM,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandGPR, Reg: 4},
			{Kind: disasm.OperandImmediate, Value: 8},
			{Kind: disasm.OperandImmediate, Value: 0<<8 | 23},
		},
		NumOps: 4,
	}
	lines, ok := translateRotate(fs, in)
	if !ok {
		t.Fatalf("translateRotate did not recognize RLWINM")
	}
	mask := uint32(ComputeMask(32, 55))
	want := fmt.Sprintf("ctx.r3.u64 = std::rotl<uint32_t>(ctx.r4.u32, 8) & 0x%X;", mask)
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}

func TestTranslateCNTLZW(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpCNTLZW,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandGPR, Reg: 4},
		},
		NumOps: 2,
	}
	lines, ok := translateRotate(fs, in)
	if !ok {
		t.Fatalf("translateRotate did not recognize CNTLZW")
	}
	want := "ctx.r3.u64 = ctx.r4.u32 == 0 ? 32 : std::countl_zero(ctx.r4.u32);"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}
