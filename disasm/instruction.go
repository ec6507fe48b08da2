// Package disasm defines the decoded-instruction shape the translator
// consumes and a reference decoder for the PowerPC/VMX128 subset this
// repository's translator implements. A production disassembler is an
// external collaborator, reachable only through the Disassembler
// interface; this package's Decoder is reference-quality, built to
// exercise the translator and recompiler end to end.
package disasm

// Instruction is one decoded guest instruction: its dense opcode id,
// mnemonic, address, raw 32-bit word, and up to four operands. The raw
// word is retained because two opcodes (VUPKHSB128/VUPKLSB128) are
// pre-dispatch rewritten based on a raw operand field, and because the
// function recompiler's BCTR diagnostic inspects the previous
// instruction's raw word.
type Instruction struct {
	Op       OpID
	Mnemonic string
	Address  uint32
	Word     uint32
	Operands [4]Operand
	NumOps   int
	RC       bool // mnemonic ends in '.' - record bit set
	OE       bool // mnemonic carries 'o' (ADDO etc.) - overflow bit set
}

// OperandKind distinguishes the operand shapes used across the
// translator's opcode families.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandGPR
	OperandFPR
	OperandVMX
	OperandCR
	OperandImmediate // signed or unsigned per opcode's own convention
	OperandMemDisp   // displacement(base) - Value=disp, Reg=base
	OperandTarget    // branch target address, pre-resolved to absolute
)

// Operand is a single decoded operand slot.
type Operand struct {
	Kind  OperandKind
	Reg   int
	Value int64
}

// Disassembler decodes one guest instruction word at a guest address.
// Returning ok=false models a decode failure: the function recompiler
// emits a comment and logs if the word was nonzero, then continues.
type Disassembler interface {
	Decode(word uint32, address uint32) (Instruction, bool)
}
