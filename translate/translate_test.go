package translate

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

func TestTranslateDispatchesToRecognizingFamily(t *testing.T) {
	fs := newTestFuncState()
	in := disasm.Instruction{
		Op: disasm.OpADD,
		Operands: [4]disasm.Operand{
			{Kind: disasm.OperandGPR, Reg: 3},
			{Kind: disasm.OperandGPR, Reg: 4},
			{Kind: disasm.OperandGPR, Reg: 5},
		},
		NumOps: 3,
	}
	lines, ok := Translate(fs, nil, in)
	if !ok {
		t.Fatalf("expected ADD to be recognized")
	}
	want := "ctx.r3.u64 = ctx.r4.u64 + ctx.r5.u64;"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("want %q, got %v", want, lines)
	}
	if fs.Imperfect {
		t.Fatalf("expected Imperfect to stay false after a recognized opcode")
	}
}

func TestTranslateUnrecognizedOpcodeMarksImperfect(t *testing.T) {
	fs := newTestFuncState()
	_, ok := Translate(fs, nil, disasm.Instruction{Op: disasm.OpUnknown})
	if ok {
		t.Fatalf("expected an unrecognized opcode to return ok=false")
	}
	if !fs.Imperfect {
		t.Fatalf("expected Imperfect to be set after an unrecognized opcode")
	}
}

func TestRewriteVUPKAppliesHalfwordQuirk(t *testing.T) {
	in := disasm.Instruction{Op: disasm.OpVUPKHSB128, Word: 0x60 << 6}
	got := rewriteVUPK(in)
	if got.Op != disasm.OpVUPKHSH128 {
		t.Fatalf("expected the quirk field to rewrite to the halfword opcode, got %v", got.Op)
	}
}

func TestRewriteVUPKLeavesOtherEncodingsAlone(t *testing.T) {
	in := disasm.Instruction{Op: disasm.OpVUPKHSB128, Word: 0x10 << 6}
	got := rewriteVUPK(in)
	if got.Op != disasm.OpVUPKHSB128 {
		t.Fatalf("expected a non-quirk encoding to stay OpVUPKHSB128, got %v", got.Op)
	}
}

func TestAuditRCWarnsWhenCRFieldMissingFromEmission(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	in := disasm.Instruction{Op: disasm.OpADD, RC: true, Mnemonic: "add.", Address: 0x1000}

	auditRC(newTestFuncState(), logger, in, []string{"ctx.r3.u64 = ctx.r4.u64 + ctx.r5.u64;"})
	if !strings.Contains(buf.String(), "RC-bit set but CR field not referenced") {
		t.Fatalf("expected a warning when the emission omits the expected CR field, got:\n%s", buf.String())
	}
}

func TestAuditRCStaysSilentWhenCRFieldPresent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	in := disasm.Instruction{Op: disasm.OpADD, RC: true, Mnemonic: "add.", Address: 0x1000}

	auditRC(newTestFuncState(), logger, in, []string{"ctx.cr0.compare<int64_t>(ctx.r3.s64, 0, ctx.xer);"})
	if buf.Len() != 0 {
		t.Fatalf("expected no warning when cr0 is referenced, got:\n%s", buf.String())
	}
}
