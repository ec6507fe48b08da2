package translate

import (
	"strings"
	"testing"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
	"github.com/xenonrecomp/ppcrecomp/switchtable"
)

func TestTranslateBGotoWithinFunction(t *testing.T) {
	fs := NewFuncState(guest.DefaultConfig(), switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{
		Op:       disasm.OpB,
		Operands: [4]disasm.Operand{{Kind: disasm.OperandTarget, Value: 0x1020}},
		NumOps:   1,
	}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize B")
	}
	want := "goto loc_1020;"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}

func TestTranslateBOutOfFunctionTailCalls(t *testing.T) {
	fs := NewFuncState(guest.DefaultConfig(), switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{
		Op:       disasm.OpB,
		Operands: [4]disasm.Operand{{Kind: disasm.OperandTarget, Value: 0x9000}},
		NumOps:   1,
	}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize B")
	}
	if len(lines) != 2 || lines[0] != "sub_00009000(ctx, base);" || lines[1] != "return;" {
		t.Fatalf("unexpected tail-call emission: %v", lines)
	}
}

func TestTranslateBCTRConsumesSwitchTable(t *testing.T) {
	switches := switchtable.NewStore()
	switches.Add(switchtable.Table{Base: 0x1010, Reg: 11, Labels: []uint32{0x1020, 0x1024}})
	switches.Arm(0x1010)

	fs := NewFuncState(guest.DefaultConfig(), switches, nil, 0x1000, 0x100)
	in := disasm.Instruction{Op: disasm.OpBCTR}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BCTR")
	}
	want := []string{
		"switch (ctx.r11.u64) {",
		"case 0:",
		"\tgoto loc_1020;",
		"case 1:",
		"\tgoto loc_1024;",
		"default:",
		"\t__builtin_unreachable();",
		"}",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
	if switches.Armed() {
		t.Fatalf("switch table should be consumed exactly once")
	}
}

func TestTranslateBCTRSwitchCaseOutsideFunctionIsUnreachable(t *testing.T) {
	switches := switchtable.NewStore()
	switches.Add(switchtable.Table{Base: 0x1010, Reg: 11, Labels: []uint32{0x1020, 0x9000}})
	switches.Arm(0x1010)

	fs := NewFuncState(guest.DefaultConfig(), switches, nil, 0x1000, 0x100)
	in := disasm.Instruction{Op: disasm.OpBCTR, Address: 0x1010}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BCTR")
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "// ERROR: 0x9000") || !strings.Contains(joined, "case 1:\n\t// ERROR: 0x9000\n\treturn;") {
		t.Fatalf("expected an out-of-range case to error and return, got %v", lines)
	}
	if strings.Contains(joined, "goto loc_9000") {
		t.Fatalf("out-of-range case must not emit a goto, got %v", lines)
	}
}

func TestTranslateBCTRFallsBackToIndirectCall(t *testing.T) {
	fs := NewFuncState(guest.DefaultConfig(), switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{Op: disasm.OpBCTR}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BCTR")
	}
	want := []string{
		"PPC_CALL_INDIRECT_FUNC(ctx.ctr.u32);",
		"return;",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestTranslateBCTRLWritesLRAndContinues(t *testing.T) {
	fs := NewFuncState(guest.DefaultConfig(), switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{Op: disasm.OpBCTRL, Address: 0x1008}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BCTRL")
	}
	want := []string{
		"ctx.lr = 0x100C;",
		"PPC_CALL_INDIRECT_FUNC(ctx.ctr.u32);",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestTranslateBCTRLSkipLRSuppressesWrite(t *testing.T) {
	cfg := guest.DefaultConfig()
	cfg.SkipLR = true
	fs := NewFuncState(cfg, switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{Op: disasm.OpBCTRL, Address: 0x1008}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BCTRL")
	}
	if len(lines) != 1 || lines[0] != "PPC_CALL_INDIRECT_FUNC(ctx.ctr.u32);" {
		t.Fatalf("expected ctx.lr write to be suppressed, got %v", lines)
	}
}

func TestTranslateBLWritesLinkRegister(t *testing.T) {
	fs := NewFuncState(guest.DefaultConfig(), switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{
		Op:       disasm.OpBL,
		Address:  0x1000,
		Operands: [4]disasm.Operand{{Kind: disasm.OperandTarget, Value: 0x9000}},
		NumOps:   1,
	}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BL")
	}
	want := []string{"ctx.lr = 0x1004;", "sub_00009000(ctx, base);"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestTranslateBLSetJmpLowering(t *testing.T) {
	cfg := guest.DefaultConfig()
	cfg.SetJmpAddress = 0x9000
	fs := NewFuncState(cfg, switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{
		Op:       disasm.OpBL,
		Address:  0x1000,
		Operands: [4]disasm.Operand{{Kind: disasm.OperandTarget, Value: 0x9000}},
		NumOps:   1,
	}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BL")
	}
	want := []string{
		"env = ctx;",
		"ctx.r3.s64 = setjmp(*reinterpret_cast<jmp_buf*>(base + ctx.r3.u32));",
		"if (ctx.r3.s64 != 0) ctx = env;",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
}

func TestTranslateBLLongJmpLowering(t *testing.T) {
	cfg := guest.DefaultConfig()
	cfg.LongJmpAddress = 0x9004
	fs := NewFuncState(cfg, switchtable.NewStore(), nil, 0x1000, 0x100)
	in := disasm.Instruction{
		Op:       disasm.OpBL,
		Address:  0x1000,
		Operands: [4]disasm.Operand{{Kind: disasm.OperandTarget, Value: 0x9004}},
		NumOps:   1,
	}
	lines, ok := translateBranch(fs, in)
	if !ok {
		t.Fatalf("translateBranch did not recognize BL")
	}
	want := "longjmp(*reinterpret_cast<jmp_buf*>(base + ctx.r3.u32), ctx.r4.s32);"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %v, want [%q]", lines, want)
	}
}
