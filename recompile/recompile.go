// Package recompile turns one guest function's instruction stream into
// its host-language text rendering, in three linear passes over the
// same address range: label discovery, instruction emission, and
// prologue finalization.
package recompile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
	"github.com/xenonrecomp/ppcrecomp/image"
	"github.com/xenonrecomp/ppcrecomp/switchtable"
	"github.com/xenonrecomp/ppcrecomp/translate"
)

// marker words the guest toolchain emits immediately before a bctr to
// signal that a switch-table entry keyed on the bctr's own address
// should be consulted for its targets, instead of falling back to an
// unresolved indirect branch.
const (
	markerWordA uint32 = 0x07008038
	markerWordB uint32 = 0x00000060
)

// Result is one recompiled function's rendering and whether every
// instruction in its range was recognized by the translator.
type Result struct {
	Name     string
	Base     uint32
	Size     uint32
	Lines    []string
	Complete bool
}

// Function recompiles img's function fn into host-language text. logger
// may be nil; it receives the per-instruction diagnostics: decode
// failures, untranslated instructions, RC-bit audit misses, a bctr after
// a marker word with no switch-table entry, and switch cases that jump
// outside the function.
func Function(ctx context.Context, cfg guest.Config, img *image.Image, dec disasm.Disassembler, switches *switchtable.Store, logger *slog.Logger, fn image.Function, name string) Result {
	labels := discoverLabels(img, dec, switches, fn)
	fs := translate.NewFuncState(cfg, switches, img, fn.Base, fn.Size)

	body := emitBody(ctx, fs, img, dec, switches, logger, fn, labels)

	var out []string
	out = append(out, fmt.Sprintf("void %s(PPCContext& ctx, uint8_t* base)", name))
	out = append(out, "{")
	for _, decl := range fs.Locals.Declarations() {
		out = append(out, "\t"+decl)
	}
	out = append(out, body...)
	out = append(out, "}")

	return Result{Name: name, Base: fn.Base, Size: fn.Size, Lines: out, Complete: !fs.Imperfect}
}

// discoverLabels is pass 1: every address that is the target of an
// intra-function branch, or an entry in a switch table armed somewhere
// in the function, becomes a loc_X label, so pass 2 knows where to
// emit label statements without backpatching.
func discoverLabels(img *image.Image, dec disasm.Disassembler, switches *switchtable.Store, fn image.Function) map[uint32]bool {
	labels := map[uint32]bool{}
	for addr := fn.Base; addr < fn.Base+fn.Size; addr += 4 {
		word, ok := img.Buffer.Read32(addr)
		if !ok {
			continue
		}
		in, ok := dec.Decode(word, addr)
		if !ok {
			continue
		}
		target, isBranch := branchTarget(in)
		if isBranch && target >= fn.Base && target < fn.Base+fn.Size {
			labels[target] = true
		}
	}
	for _, table := range switches.InRange(fn.Base, fn.Size) {
		for _, label := range table.Labels {
			if label >= fn.Base && label < fn.Base+fn.Size {
				labels[label] = true
			}
		}
	}
	return labels
}

func branchTarget(in disasm.Instruction) (uint32, bool) {
	switch in.Op {
	case disasm.OpB, disasm.OpBEQ, disasm.OpBNE, disasm.OpBGT, disasm.OpBGE,
		disasm.OpBLT, disasm.OpBLE, disasm.OpBDZ, disasm.OpBDNZ, disasm.OpBDNZF:
		return uint32(in.Operands[0].Value), true
	}
	return 0, false
}

// emitBody is pass 2: a single linear walk that emits label statements,
// arms switch tables on the marker-word diagnostic, decodes and
// translates each instruction, and resets CSR at every join point.
func emitBody(ctx context.Context, fs *translate.FuncState, img *image.Image, dec disasm.Disassembler, switches *switchtable.Store, logger *slog.Logger, fn image.Function, labels map[uint32]bool) []string {
	var out []string
	pendingArm := false

	for addr := fn.Base; addr < fn.Base+fn.Size; addr += 4 {
		select {
		case <-ctx.Done():
			return out
		default:
		}

		if labels[addr] {
			out = append(out, fmt.Sprintf("%s:", labelFor(addr)))
			fs.ResetJoinPoint()
		}

		word, ok := img.Buffer.Read32(addr)
		if !ok {
			continue
		}

		if pendingArm {
			switches.Arm(addr)
			pendingArm = false
		}
		if word == markerWordA || word == markerWordB {
			pendingArm = true
			continue
		}

		in, ok := dec.Decode(word, addr)
		if !ok {
			if word != 0 {
				out = append(out, fmt.Sprintf("// unrecognized instruction word 0x%08X at 0x%08X", word, addr))
				if logger != nil {
					logger.Warn("unrecognized instruction word",
						slog.String("address", fmt.Sprintf("%08X", addr)),
						slog.Uint64("word", uint64(word)))
				}
				fs.Imperfect = true
			}
			continue
		}

		if in.Op == disasm.OpBCTR && !switches.Armed() && logger != nil {
			if prev, ok := img.Buffer.Read32(addr - 4); ok && (prev == markerWordA || prev == markerWordB) {
				logger.Warn("bctr after a switch marker word has no switch-table entry",
					slog.String("address", fmt.Sprintf("%08X", addr)))
			}
		}

		lines, ok := translate.Translate(fs, logger, in)
		if !ok {
			out = append(out, fmt.Sprintf("// untranslated %s at 0x%08X", in.Mnemonic, addr))
			if logger != nil {
				logger.Warn("untranslated instruction",
					slog.String("mnemonic", in.Mnemonic),
					slog.String("address", fmt.Sprintf("%08X", addr)))
			}
			continue
		}
		for _, l := range lines {
			out = append(out, "\t"+l)
		}
	}
	return out
}

func labelFor(addr uint32) string {
	return fmt.Sprintf("loc_%X", addr)
}
