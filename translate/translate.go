package translate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// rewriteVUPK reinterprets VUPKHSB128/VUPKLSB128 as the halfword variant
// when the raw instruction's third operand field is 0x60: the guest
// compiler emits the byte-unpack encoding but means the halfword one,
// and every caller in the wild relies on that quirk.
func rewriteVUPK(in disasm.Instruction) disasm.Instruction {
	const quirkField = 0x60
	switch in.Op {
	case disasm.OpVUPKHSB128:
		if (in.Word>>6)&0x7F == quirkField {
			in.Op = disasm.OpVUPKHSH128
		}
	case disasm.OpVUPKLSB128:
		if (in.Word>>6)&0x7F == quirkField {
			in.Op = disasm.OpVUPKLSH128
		}
	}
	return in
}

// families lists the per-opcode-family emitters in dispatch order. Each
// returns (lines, true) when it recognizes the opcode, or (nil, false)
// to fall through to the next family.
var families = []func(*FuncState, disasm.Instruction) ([]string, bool){
	translateALU,
	translateRotate,
	translateCompare,
	translateBranch,
	translateMemory,
	translateFP,
	translateVMX,
	translateSpecial,
	translateBarrier,
}

// Translate lowers one decoded instruction to zero or more host
// statement lines. The bool result is false when no family recognized
// the opcode; the caller emits a comment and continues rather than
// aborting the function.
func Translate(fs *FuncState, logger *slog.Logger, in disasm.Instruction) ([]string, bool) {
	in = rewriteVUPK(in)
	fs.Logger = logger

	for _, family := range families {
		lines, ok := family(fs, in)
		if !ok {
			continue
		}
		auditRC(fs, logger, in, lines)
		return lines, true
	}
	fs.Imperfect = true
	return nil, false
}

// auditRC warns when an RC-bit opcode's emission didn't reference the
// CR field it claims to set - a signal the family emitter forgot the
// compare, not an attempt to recover from it.
func auditRC(fs *FuncState, logger *slog.Logger, in disasm.Instruction, lines []string) {
	if !in.RC || logger == nil {
		return
	}
	crWant := "cr0"
	if in.Op == disasm.OpMFOCRF {
		crWant = "cr6"
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, crWant) {
		logger.Warn("RC-bit set but CR field not referenced in emission",
			slog.String("mnemonic", in.Mnemonic),
			slog.String("address", fmt.Sprintf("%08X", in.Address)),
			slog.String("expected_cr", crWant),
		)
	}
}
