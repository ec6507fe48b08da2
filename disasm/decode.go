package disasm

// Decoder is the reference PowerPC/VMX128 decoder. It implements a
// genuine subset of the real instruction encoding - enough to decode
// the opcode families the translator recognizes from raw 32-bit guest
// words - rather than a production-complete Xenon disassembler.
type Decoder struct{}

func bits(w uint32, hi, lo uint) uint32 {
	n := hi - lo + 1
	mask := uint32(1)<<n - 1
	return (w >> lo) & mask
}

func signExt16(v uint32) int64 {
	return int64(int16(uint16(v)))
}

func signExt14(v uint32) int64 {
	v &= 0x3FFF
	if v&0x2000 != 0 {
		return int64(v) - 0x4000
	}
	return int64(v)
}

func signExt24(v uint32) int64 {
	v &= 0xFFFFFF
	if v&0x800000 != 0 {
		return int64(v) - 0x1000000
	}
	return int64(v)
}

// field accessors named the way the PowerPC ISA manual names them.
func opcd(w uint32) uint32 { return bits(w, 31, 26) }
func rtField(w uint32) int { return int(bits(w, 25, 21)) }
func raField(w uint32) int { return int(bits(w, 20, 16)) }
func rbField(w uint32) int { return int(bits(w, 15, 11)) }
func xoX(w uint32) uint32  { return bits(w, 10, 1) }
func rcBit(w uint32) bool  { return bits(w, 0, 0) != 0 }
func oeBit(w uint32) bool  { return bits(w, 10, 10) != 0 }
func d16(w uint32) uint32  { return bits(w, 15, 0) }

// Decode implements the Disassembler interface.
func (Decoder) Decode(word uint32, address uint32) (Instruction, bool) {
	op := opcd(word)
	in := Instruction{Word: word, Address: address}

	switch op {
	case 7, 8, 10, 11, 12, 13, 14, 15, 24, 25, 26, 27, 28, 29,
		32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45,
		48, 49, 50, 51, 52, 53, 54, 55:
		return decodeDForm(word, address)
	case 18:
		return decodeIForm(word, address)
	case 16:
		return decodeBForm(word, address)
	case 19:
		return decodeXLForm(word, address)
	case 31:
		return decodeOp31(word, address)
	case 20, 21, 23:
		return decodeMForm(word, address)
	case 30:
		return decodeMDForm(word, address)
	case 58:
		return decodeDSForm(word, address, true)
	case 62:
		return decodeDSForm(word, address, false)
	case 59, 63:
		return decodeFPForm(word, address)
	case 4:
		return decodeVMX(word, address)
	}
	_ = in
	return Instruction{}, false
}

func finish(in Instruction, op OpID, rc bool) (Instruction, bool) {
	in.Op = op
	in.RC = rc
	in.Mnemonic = Mnemonics[op]
	return in, true
}

// decodeDForm covers every D-form integer opcode: ADDI family, compare
// immediates, logical immediates, and D-form loads/stores.
func decodeDForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	rt := rtField(word)
	ra := raField(word)
	imm := d16(word)

	in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
	in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
	in.Operands[2] = Operand{Kind: OperandImmediate, Value: signExt16(imm)}
	in.NumOps = 3

	switch opcd(word) {
	case 14:
		return finish(in, OpADDI, false)
	case 15:
		return finish(in, OpADDIS, false)
	case 12:
		return finish(in, OpADDIC, false)
	case 13: // addic. - same GPR destination as addic, CR0 compare via RC
		return finish(in, OpADDIC, true)
	case 28:
		return finish(in, OpANDI, true)
	case 29:
		return finish(in, OpANDIS, true)
	case 24:
		return finish(in, OpORI, false)
	case 25:
		return finish(in, OpORIS, false)
	case 26:
		return finish(in, OpXORI, false)
	case 27:
		return finish(in, OpXORIS, false)
	case 8:
		in.Operands[0], in.Operands[1] = Operand{Kind: OperandGPR, Reg: rt}, Operand{Kind: OperandGPR, Reg: ra}
		return finish(in, OpSUBFIC, false)
	case 7:
		return finish(in, OpMULLI, false)
	case 11: // cmpwi/cmpdi, L bit in bit 21
		crf := int(bits(word, 25, 23))
		l := bits(word, 21, 21)
		in.Operands[0] = Operand{Kind: OperandCR, Reg: crf}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[2] = Operand{Kind: OperandImmediate, Value: signExt16(imm)}
		if l != 0 {
			return finish(in, OpCMPDI, false)
		}
		return finish(in, OpCMPWI, false)
	case 10:
		crf := int(bits(word, 25, 23))
		l := bits(word, 21, 21)
		in.Operands[0] = Operand{Kind: OperandCR, Reg: crf}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[2] = Operand{Kind: OperandImmediate, Value: int64(imm)}
		if l != 0 {
			return finish(in, OpCMPLDI, false)
		}
		return finish(in, OpCMPLWI, false)
	case 34:
		return loadStoreD(in, rt, ra, imm, OpLBZ)
	case 35:
		return loadStoreD(in, rt, ra, imm, OpLBZU)
	case 40:
		return loadStoreD(in, rt, ra, imm, OpLHZ)
	case 42:
		return loadStoreD(in, rt, ra, imm, OpLHA)
	case 32:
		return loadStoreD(in, rt, ra, imm, OpLWZ)
	case 33:
		return loadStoreD(in, rt, ra, imm, OpLWZU)
	case 38:
		return loadStoreD(in, rt, ra, imm, OpSTB)
	case 39:
		return loadStoreD(in, rt, ra, imm, OpSTBU)
	case 44:
		return loadStoreD(in, rt, ra, imm, OpSTH)
	case 36:
		return loadStoreD(in, rt, ra, imm, OpSTW)
	case 37:
		return loadStoreD(in, rt, ra, imm, OpSTWU)
	case 48:
		in.Operands[0] = Operand{Kind: OperandFPR, Reg: rt}
		return loadStoreD(in, rt, ra, imm, OpLFS)
	case 50:
		in.Operands[0] = Operand{Kind: OperandFPR, Reg: rt}
		return loadStoreD(in, rt, ra, imm, OpLFD)
	case 52:
		in.Operands[0] = Operand{Kind: OperandFPR, Reg: rt}
		return loadStoreD(in, rt, ra, imm, OpSTFS)
	case 54:
		in.Operands[0] = Operand{Kind: OperandFPR, Reg: rt}
		return loadStoreD(in, rt, ra, imm, OpSTFD)
	}
	return Instruction{}, false
}

func loadStoreD(in Instruction, rt, ra int, imm uint32, op OpID) (Instruction, bool) {
	in.Operands[1] = Operand{Kind: OperandMemDisp, Value: signExt16(imm), Reg: ra}
	in.NumOps = 2
	return finish(in, op, false)
}

func decodeDSForm(word uint32, address uint32, isLoad bool) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	rt := rtField(word)
	ra := raField(word)
	ds := bits(word, 15, 2) << 2
	disp := signExt16(ds)
	xo := bits(word, 1, 0)
	in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
	in.Operands[1] = Operand{Kind: OperandMemDisp, Value: disp, Reg: ra}
	in.NumOps = 2
	if isLoad {
		if xo == 1 {
			return finish(in, OpLDU, false)
		}
		return finish(in, OpLD, false)
	}
	if xo == 1 {
		return finish(in, OpSTDU, false)
	}
	return finish(in, OpSTD, false)
}

func decodeIForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	li := bits(word, 25, 2) << 2
	aa := bits(word, 1, 1)
	lk := bits(word, 0, 0)
	target := uint32(signExt24(li))
	if aa == 0 {
		target += address
	}
	in.Operands[0] = Operand{Kind: OperandTarget, Value: int64(target)}
	in.NumOps = 1
	if lk != 0 {
		return finish(in, OpBL, false)
	}
	return finish(in, OpB, false)
}

func decodeBForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	bo := bits(word, 25, 21)
	bi := bits(word, 20, 16)
	bd := bits(word, 15, 2) << 2
	aa := bits(word, 1, 1)
	target := uint32(signExt14(bd))
	if aa == 0 {
		target += address
	}
	in.Operands[0] = Operand{Kind: OperandTarget, Value: int64(target)}
	in.Operands[1] = Operand{Kind: OperandCR, Reg: int(bi / 4)}
	in.NumOps = 2

	cond := bi % 4 // 0=lt,1=gt,2=eq,3=so
	switch {
	case bo&0x10 != 0: // branch always / no CR test
		if bo&0x04 == 0 { // BDNZ/BDZ forms (CTR decrement)
			if bo&0x02 != 0 {
				return finish(in, OpBDZ, false)
			}
			return finish(in, OpBDNZ, false)
		}
		return finish(in, OpB, false)
	case bo&0x04 == 0 && bo&0x10 == 0:
		// BDNZF/BDZF: decrement CTR and test condition false
		return finish(in, OpBDNZF, false)
	default:
		taken := bo&0x08 != 0
		switch cond {
		case 0:
			if taken {
				return finish(in, OpBLT, false)
			}
			return finish(in, OpBGE, false)
		case 1:
			if taken {
				return finish(in, OpBGT, false)
			}
			return finish(in, OpBLE, false)
		case 2:
			if taken {
				return finish(in, OpBEQ, false)
			}
			return finish(in, OpBNE, false)
		}
	}
	return Instruction{}, false
}

func decodeXLForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	bo := bits(word, 25, 21)
	bi := bits(word, 20, 16)
	xo := xoX(word)
	lk := rcBit(word)
	in.Operands[0] = Operand{Kind: OperandCR, Reg: int(bi / 4)}
	in.NumOps = 1
	cond := bi % 4
	always := bo&0x10 != 0

	switch xo {
	case 16: // bclr
		if always {
			if lk {
				return finish(in, OpBLRL, false)
			}
			return finish(in, OpBLR, false)
		}
		taken := bo&0x08 != 0
		switch cond {
		case 0:
			if taken {
				return finish(in, OpBLTLR, false)
			}
		case 1:
			if taken {
				return finish(in, OpBGTLR, false)
			}
		case 2:
			if taken {
				return finish(in, OpBEQLR, false)
			}
			return finish(in, OpBNELR, false)
		}
		if bo&0x04 != 0 && bo&0x02 != 0 {
			return finish(in, OpBDZLR, false)
		}
		return finish(in, OpBLR, false)
	case 528: // bcctr
		if always {
			if lk {
				return finish(in, OpBCTRL, false)
			}
			return finish(in, OpBCTR, false)
		}
		if cond == 2 && bo&0x08 == 0 {
			return finish(in, OpBNECTR, false)
		}
		return finish(in, OpBCTR, false)
	case 0: // mcrf and friends - not separately modeled
		return Instruction{}, false
	}
	return Instruction{}, false
}

// M-form: RLWINM/RLWIMI family (opcd 20/21/23).
func decodeMForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	rs := rtField(word)
	ra := raField(word)
	rb := rbField(word)
	mb := int(bits(word, 10, 6))
	me := int(bits(word, 5, 1))
	rc := rcBit(word)

	in.Operands[0] = Operand{Kind: OperandGPR, Reg: ra}
	in.Operands[1] = Operand{Kind: OperandGPR, Reg: rs}
	in.Operands[2] = Operand{Kind: OperandImmediate, Value: int64(rb)}
	in.Operands[3] = Operand{Kind: OperandImmediate, Value: int64(mb)<<8 | int64(me)}
	in.NumOps = 4

	switch opcd(word) {
	case 21:
		return finish(in, OpRLWINM, rc)
	case 20:
		return finish(in, OpRLWIMI, rc)
	case 23:
		return finish(in, OpRLWINM, rc) // rlwnm: variable-shift rotate, shares RLWINM lowering
	}
	return Instruction{}, false
}

// MD-form: RLDICL/RLDICR/RLDIMI (opcd 30).
func decodeMDForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	rs := rtField(word)
	ra := raField(word)
	sh := int(bits(word, 15, 11)) | int(bits(word, 1, 1))<<5
	mb := int(bits(word, 10, 6)) | int(bits(word, 5, 5))<<5
	xo := bits(word, 4, 2)
	rc := rcBit(word)

	in.Operands[0] = Operand{Kind: OperandGPR, Reg: ra}
	in.Operands[1] = Operand{Kind: OperandGPR, Reg: rs}
	in.Operands[2] = Operand{Kind: OperandImmediate, Value: int64(sh)}
	in.Operands[3] = Operand{Kind: OperandImmediate, Value: int64(mb)}
	in.NumOps = 4

	switch xo {
	case 0:
		return finish(in, OpRLDICL, rc)
	case 1:
		return finish(in, OpRLDICR, rc)
	case 3:
		return finish(in, OpRLDIMI, rc)
	}
	return Instruction{}, false
}

func decodeFPForm(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	frt := rtField(word)
	fra := raField(word)
	frb := rbField(word)
	frc := int(bits(word, 10, 6))
	xo := bits(word, 5, 1)
	rc := rcBit(word)
	single := opcd(word) == 59

	in.Operands[0] = Operand{Kind: OperandFPR, Reg: frt}
	in.Operands[1] = Operand{Kind: OperandFPR, Reg: fra}
	in.Operands[2] = Operand{Kind: OperandFPR, Reg: frb}
	in.Operands[3] = Operand{Kind: OperandFPR, Reg: frc}
	in.NumOps = 4

	switch xo {
	case 21:
		if single {
			return finish(in, OpFADDS, rc)
		}
		return finish(in, OpFADD, rc)
	case 20:
		if single {
			return finish(in, OpFSUBS, rc)
		}
		return finish(in, OpFSUB, rc)
	case 18:
		if single {
			return finish(in, OpFDIVS, rc)
		}
		return finish(in, OpFDIV, rc)
	case 25:
		if single {
			return finish(in, OpFMULS, rc)
		}
		return finish(in, OpFMUL, rc)
	case 22:
		return finish(in, OpFSQRT, rc)
	}

	xo10 := xoX(word)
	switch xo10 {
	case 72:
		return finish(in, OpFMR, rc)
	case 40:
		return finish(in, OpFNEG, rc)
	case 264:
		return finish(in, OpFABS, rc)
	case 136:
		return finish(in, OpFNABS, rc)
	case 12:
		return finish(in, OpFRSP, rc)
	case 14:
		return finish(in, OpFCTIWZ, rc)
	case 583:
		return finish(in, OpMFFS, rc)
	}
	return Instruction{}, false
}

// decodeVMX covers opcd 4 (VMX/AltiVec/VMX128); only a representative
// subset of the real extended-opcode space is modeled (see DESIGN.md).
func decodeVMX(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	vd := rtField(word)
	va := raField(word)
	vb := rbField(word)
	xo := bits(word, 10, 0)

	in.Operands[0] = Operand{Kind: OperandVMX, Reg: vd}
	in.Operands[1] = Operand{Kind: OperandVMX, Reg: va}
	in.Operands[2] = Operand{Kind: OperandVMX, Reg: vb}
	in.NumOps = 3

	switch xo {
	case 10:
		return finish(in, OpVADDFP, false)
	case 74:
		return finish(in, OpVSUBFP, false)
	case 1036:
		return finish(in, OpVMADDFP, false)
	case 1228:
		return finish(in, OpVNMSUBFP, false)
	case 1028:
		return finish(in, OpVAND, false)
	case 1092:
		return finish(in, OpVANDC, false)
	case 1156:
		return finish(in, OpVOR, false)
	case 1220:
		return finish(in, OpVXOR, false)
	case 714:
		return finish(in, OpVMAXFP, false)
	case 778:
		return finish(in, OpVMINFP, false)
	}
	return Instruction{}, false
}

// decodeOp31 covers the large opcd-31 X-form space: integer ALU,
// shifts, compares, indexed loads/stores, reservations, and the
// special-register moves.
func decodeOp31(word uint32, address uint32) (Instruction, bool) {
	in := Instruction{Word: word, Address: address}
	rt := rtField(word)
	ra := raField(word)
	rb := rbField(word)
	rc := rcBit(word)
	oe := oeBit(word)
	xo := xoX(word)

	gprABC := func(op OpID) (Instruction, bool) {
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[2] = Operand{Kind: OperandGPR, Reg: rb}
		in.NumOps = 3
		in.OE = oe
		return finish(in, op, rc)
	}
	gprAB2 := func(op OpID) (Instruction, bool) {
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.NumOps = 2
		in.OE = oe
		return finish(in, op, rc)
	}
	idxLoadStore := func(op OpID) (Instruction, bool) {
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[2] = Operand{Kind: OperandGPR, Reg: rb}
		in.NumOps = 3
		return finish(in, op, false)
	}

	switch xo {
	case 266:
		return gprABC(OpADD)
	case 10:
		return gprABC(OpADDC)
	case 138:
		return gprABC(OpADDE)
	case 202:
		return gprAB2(OpADDZE)
	case 28:
		return gprABC(OpAND)
	case 60:
		return gprABC(OpANDC)
	case 476:
		return gprABC(OpNAND)
	case 104:
		return gprAB2(OpNEG)
	case 124:
		if ra == rb {
			return gprAB2(OpNOT)
		}
		return gprABC(OpNOR)
	case 444:
		if ra == rb {
			return gprAB2(OpNOT)
		}
		return gprABC(OpOR)
	case 412:
		return gprABC(OpORC)
	case 40:
		in.Operands[0], in.Operands[1], in.Operands[2] =
			Operand{Kind: OperandGPR, Reg: rt}, Operand{Kind: OperandGPR, Reg: rb}, Operand{Kind: OperandGPR, Reg: ra}
		in.NumOps, in.OE = 3, oe
		return finish(in, OpSUBF, rc)
	case 8:
		in.Operands[0], in.Operands[1], in.Operands[2] =
			Operand{Kind: OperandGPR, Reg: rt}, Operand{Kind: OperandGPR, Reg: rb}, Operand{Kind: OperandGPR, Reg: ra}
		in.NumOps, in.OE = 3, oe
		return finish(in, OpSUBFC, rc)
	case 136:
		in.Operands[0], in.Operands[1], in.Operands[2] =
			Operand{Kind: OperandGPR, Reg: rt}, Operand{Kind: OperandGPR, Reg: rb}, Operand{Kind: OperandGPR, Reg: ra}
		in.NumOps, in.OE = 3, oe
		return finish(in, OpSUBFE, rc)
	case 316:
		return gprABC(OpXOR)
	case 75:
		return gprABC(OpMULHW)
	case 11:
		return gprABC(OpMULHWU)
	case 235:
		return gprABC(OpMULLW)
	case 233:
		return gprABC(OpMULLD)
	case 489:
		return gprABC(OpDIVD)
	case 457:
		return gprABC(OpDIVDU)
	case 491:
		return gprABC(OpDIVW)
	case 459:
		return gprABC(OpDIVWU)
	case 954:
		return gprAB2(OpEXTSB)
	case 922:
		return gprAB2(OpEXTSH)
	case 986:
		return gprAB2(OpEXTSW)
	case 0: // cmp
		crf := int(bits(word, 25, 23))
		l := bits(word, 21, 21)
		in.Operands[0] = Operand{Kind: OperandCR, Reg: crf}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[2] = Operand{Kind: OperandGPR, Reg: rb}
		in.NumOps = 3
		if l != 0 {
			return finish(in, OpCMPD, false)
		}
		return finish(in, OpCMPW, false)
	case 32: // cmpl
		crf := int(bits(word, 25, 23))
		l := bits(word, 21, 21)
		in.Operands[0] = Operand{Kind: OperandCR, Reg: crf}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[2] = Operand{Kind: OperandGPR, Reg: rb}
		in.NumOps = 3
		if l != 0 {
			return finish(in, OpCMPLD, false)
		}
		return finish(in, OpCMPLW, false)
	case 26:
		return gprAB2(OpCNTLZW)
	case 58:
		return gprAB2(OpCNTLZD)
	case 24:
		return gprABC(OpSLW)
	case 536:
		return gprABC(OpSRW)
	case 27:
		return gprABC(OpSLD)
	case 539:
		return gprABC(OpSRD)
	case 792:
		return gprABC(OpSRAW)
	case 824: // sradi has a split SH field, treat rb as shift amount here
		return gprABC(OpSRAD)
	case 87:
		return idxLoadStore(OpLBZX)
	case 119:
		return idxLoadStore(OpLBZX)
	case 279:
		return idxLoadStore(OpLHZX)
	case 343:
		return idxLoadStore(OpLHAX)
	case 23:
		return idxLoadStore(OpLWZX)
	case 21:
		return idxLoadStore(OpLDX)
	case 215:
		return idxLoadStore(OpSTBX)
	case 407:
		return idxLoadStore(OpSTHX)
	case 151:
		return idxLoadStore(OpSTWX)
	case 183:
		return idxLoadStore(OpSTWUX)
	case 149:
		return idxLoadStore(OpSTDX)
	case 20:
		return idxLoadStore(OpLWARX)
	case 84:
		return idxLoadStore(OpLDARX)
	case 150:
		return idxLoadStore(OpSTWCX)
	case 214:
		return idxLoadStore(OpSTDCX)
	case 534:
		return idxLoadStore(OpLWBRX)
	case 662:
		return idxLoadStore(OpSTWBRX)
	case 19:
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.NumOps = 1
		return finish(in, OpMFCR, false)
	case 144:
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.NumOps = 1
		return finish(in, OpMTCR, false)
	case 339: // mfspr: spr field spans ra/rb swapped, lr=8, ctr=9
		spr := int(bits(word, 20, 11))
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.NumOps = 1
		switch spr {
		case 0x100: // LR
			return finish(in, OpMFLR, false)
		case 0x120: // CTR
			return finish(in, OpMFTB, false)
		}
		return finish(in, OpMFLR, false)
	case 467:
		spr := int(bits(word, 20, 11))
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: rt}
		in.NumOps = 1
		switch spr {
		case 0x100:
			return finish(in, OpMTLR, false)
		case 0x120:
			return finish(in, OpMTCTR, false)
		case 0x20:
			return finish(in, OpMTXER, false)
		}
		return finish(in, OpMTLR, false)
	case 854:
		return finish(in, OpEIEIO, false)
	case 598:
		return finish(in, OpSYNC, false)
	case 86:
		return finish(in, OpDCBF, false)
	case 278:
		return finish(in, OpDCBT, false)
	case 246:
		return finish(in, OpDCBTST, false)
	case 1014:
		in.Operands[0] = Operand{Kind: OperandGPR, Reg: ra}
		in.Operands[1] = Operand{Kind: OperandGPR, Reg: rb}
		in.NumOps = 2
		return finish(in, OpDCBZ, false)
	}
	return Instruction{}, false
}
