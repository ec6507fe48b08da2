package translate

import (
	"strings"
	"testing"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
)

func vmxInstruction(op disasm.OpID, vd, va, vb int) disasm.Instruction {
	return disasm.Instruction{
		Op: op,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandVMX, Reg: vd},
			{Kind: disasm.OperandVMX, Reg: va},
			{Kind: disasm.OperandVMX, Reg: vb},
		},
		NumOps: 3,
	}
}

func TestTranslateVADDFPEmitsFourLanes(t *testing.T) {
	fs := newTestFuncState()
	// Start already in VMX mode so only the lane statements are emitted.
	fs.CSR = guest.CSRVMX
	lines, ok := translateVMX(fs, vmxInstruction(disasm.OpVADDFP, 1, 2, 3))
	if !ok {
		t.Fatalf("expected VADDFP to translate")
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lane statements, got %d: %v", len(lines), lines)
	}
	want := "ctx.v1.f32[0] = ctx.v2.f32[0] + ctx.v3.f32[0];"
	if lines[0] != want {
		t.Fatalf("want %q, got %q", want, lines[0])
	}
	want3 := "ctx.v1.f32[3] = ctx.v2.f32[3] + ctx.v3.f32[3];"
	if lines[3] != want3 {
		t.Fatalf("want %q, got %q", want3, lines[3])
	}
}

func TestTranslateVMXSwitchesCSRToVMXOnce(t *testing.T) {
	fs := newTestFuncState()
	lines, ok := translateVMX(fs, vmxInstruction(disasm.OpVADDFP, 1, 2, 3))
	if !ok {
		t.Fatalf("expected VADDFP to translate")
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "enableFlushMode") {
		t.Fatalf("expected the first VMX op to switch the CSR, got:\n%s", joined)
	}
	if fs.CSR != guest.CSRVMX {
		t.Fatalf("expected fs.CSR to be CSRVMX, got %v", fs.CSR)
	}

	lines2, ok := translateVMX(fs, vmxInstruction(disasm.OpVSUBFP, 1, 2, 3))
	if !ok {
		t.Fatalf("expected VSUBFP to translate")
	}
	if strings.Contains(strings.Join(lines2, "\n"), "enableFlushMode") {
		t.Fatalf("expected no repeated CSR switch on a second VMX op, got %v", lines2)
	}
}

func TestTranslateVANDCombinesBothQuadwordHalves(t *testing.T) {
	fs := newTestFuncState()
	lines, ok := translateVMX(fs, vmxInstruction(disasm.OpVAND, 0, 1, 2))
	if !ok {
		t.Fatalf("expected VAND to translate")
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "ctx.v0.u64[0] = ctx.v1.u64[0] & ctx.v2.u64[0];") {
		t.Fatalf("expected the low 64 bits to be ANDed, got:\n%s", joined)
	}
	if !strings.Contains(joined, "ctx.v0.u64[1] = ctx.v1.u64[1] & ctx.v2.u64[1];") {
		t.Fatalf("expected the high 64 bits to be ANDed, got:\n%s", joined)
	}
}

func TestTranslateVMADDFPUsesThreeOperandForm(t *testing.T) {
	fs := newTestFuncState()
	// Start already in VMX mode so only the lane statements are emitted.
	fs.CSR = guest.CSRVMX
	lines, ok := translateVMX(fs, vmxInstruction(disasm.OpVMADDFP, 4, 5, 6))
	if !ok {
		t.Fatalf("expected VMADDFP to translate")
	}
	want := "ctx.v4.f32[0] = ctx.v4.f32[0] * ctx.v5.f32[0] + ctx.v6.f32[0];"
	if lines[0] != want {
		t.Fatalf("want %q, got %q", want, lines[0])
	}
}

func TestTranslateVMXUnrecognizedOpcodeFallsThrough(t *testing.T) {
	fs := newTestFuncState()
	if _, ok := translateVMX(fs, disasm.Instruction{Op: disasm.OpADD}); ok {
		t.Fatalf("expected a non-VMX opcode to fall through")
	}
}
