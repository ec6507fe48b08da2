// Package translate implements the per-instruction translation engine:
// the mapping from each decoded PowerPC/AltiVec/VMX128 instruction to a
// sequence of host-language statements realizing its architectural
// effects.
package translate

import (
	"fmt"
	"log/slog"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
	"github.com/xenonrecomp/ppcrecomp/image"
	"github.com/xenonrecomp/ppcrecomp/switchtable"
)

// FuncState is the mutable per-function context threaded through a
// linear pass over one function's instructions: the local-variable
// shadow set, the CSR flush-mode state machine, and the switch-table
// arming state. It is reset between functions, never between
// instructions within one.
type FuncState struct {
	Names  *guest.Names
	Locals *guest.LocalVariables
	CSR    guest.CSRState

	Base uint32
	Size uint32

	Switches *switchtable.Store
	Image    *image.Image

	// Logger receives per-instruction diagnostics (e.g. a switch-table
	// entry that jumps outside its enclosing function). Set by Translate
	// on every call; nil is a valid no-op logger for family emitters.
	Logger *slog.Logger

	// Imperfect is set once the translator returns false for any
	// instruction in this function, meaning not every instruction in
	// the function was recognized.
	Imperfect bool
}

// NewFuncState begins a fresh function scan: label entry always resets
// CSR to Unknown, so a freshly constructed FuncState starts Unknown too.
func NewFuncState(cfg guest.Config, switches *switchtable.Store, img *image.Image, base, size uint32) *FuncState {
	locals := &guest.LocalVariables{}
	return &FuncState{
		Names:    guest.NewNames(cfg, locals),
		Locals:   locals,
		CSR:      guest.CSRUnknown,
		Base:     base,
		Size:     size,
		Switches: switches,
		Image:    img,
	}
}

// ResetJoinPoint resets CSR to Unknown at a label or after a call: any
// join point forces Unknown, guaranteeing correctness at the cost of a
// possible redundant re-emit of the flush-mode switch.
func (fs *FuncState) ResetJoinPoint() {
	fs.CSR = guest.CSRUnknown
}

func locLabel(addr uint32) string {
	return fmt.Sprintf("loc_%X", addr)
}

func (fs *FuncState) inFunction(addr uint32) bool {
	return addr >= fs.Base && addr < fs.Base+fs.Size
}

// lvalue reads one operand of kind GPR/FPR/VMX as a named lvalue.
func (fs *FuncState) lvalue(op disasm.Operand) string {
	switch op.Kind {
	case disasm.OperandGPR:
		return fs.Names.R(op.Reg)
	case disasm.OperandFPR:
		return fs.Names.F(op.Reg)
	case disasm.OperandVMX:
		return fs.Names.V(op.Reg)
	case disasm.OperandCR:
		return fs.Names.CR(op.Reg)
	}
	return ""
}
