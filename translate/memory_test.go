package translate

import (
	"testing"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

func TestTranslateLWZ(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpLWZ,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandMemDisp, Reg: 4, Value: 8},
		},
		NumOps: 2,
	}
	lines, ok := translateMemory(fs, in)
	if !ok {
		t.Fatalf("translateMemory did not recognize LWZ")
	}
	want := "ctx.r3.u32 = PPC_LOAD_U32(base, ctx.r4.u32 + 8);"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}

func TestTranslateLWZZeroBaseElided(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpLWZ,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandMemDisp, Reg: 0, Value: 16},
		},
		NumOps: 2,
	}
	lines, ok := translateMemory(fs, in)
	if !ok {
		t.Fatalf("translateMemory did not recognize LWZ")
	}
	want := "ctx.r3.u32 = PPC_LOAD_U32(base, 16);"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}

// TestTranslateLWZUAliasSafe checks that an update-form load stages the
// effective address into a temporary before the base register is
// overwritten, so a destination that aliases the base still sees the
// pre-update value.
func TestTranslateLWZUAliasSafe(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpLWZU,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 4},
			{Kind: disasm.OperandMemDisp, Reg: 4, Value: 4},
		},
		NumOps: 2,
	}
	lines, ok := translateMemory(fs, in)
	if !ok {
		t.Fatalf("translateMemory did not recognize LWZU")
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 staged lines, got %v", lines)
	}
	if lines[0] != "ea = ctx.r4.u32 + 4;" {
		t.Fatalf("expected staged EA first, got %q", lines[0])
	}
	if lines[1] != "ctx.r4.u32 = PPC_LOAD_U32(base, ea);" {
		t.Fatalf("expected load to use staged EA, got %q", lines[1])
	}
	if lines[2] != "ctx.r4.u32 = ea;" {
		t.Fatalf("expected base writeback from staged EA, got %q", lines[2])
	}
}

func TestTranslateSTWCXSetsCR0Eq(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpSTWCX,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandGPR, Reg: 0},
			{Kind: disasm.OperandGPR, Reg: 4},
		},
		NumOps: 3,
	}
	lines, ok := translateMemory(fs, in)
	if !ok {
		t.Fatalf("translateMemory did not recognize STWCX.")
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %v", lines)
	}
	want := []string{
		"ctx.cr0.lt = 0;",
		"ctx.cr0.gt = 0;",
		"ctx.cr0.eq = _InterlockedCompareExchange(reinterpret_cast<long*>(base + ctx.r4.u32), __builtin_bswap32(ctx.r3.s32), ctx.reserved.s32) == ctx.reserved.s32;",
		"ctx.cr0.so = ctx.xer.so;",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestTranslateLWARXSnapshotsRawValue(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpLWARX,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandGPR, Reg: 0},
			{Kind: disasm.OperandGPR, Reg: 4},
		},
		NumOps: 3,
	}
	lines, ok := translateMemory(fs, in)
	if !ok {
		t.Fatalf("translateMemory did not recognize LWARX")
	}
	want := []string{
		"ctx.reserved.u32 = *(uint32_t*)(base + ctx.r4.u32);",
		"ctx.r3.u64 = __builtin_bswap32(ctx.reserved.u32);",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}
