package disasm

// OpID is the dense integer opcode id the translator switches on.
type OpID int

const (
	OpUnknown OpID = iota

	// 1. Integer ALU
	OpADD
	OpADDC
	OpADDE
	OpADDI
	OpADDIC
	OpADDIS
	OpADDZE
	OpAND
	OpANDC
	OpANDI
	OpANDIS
	OpNAND
	OpNEG
	OpNOR
	OpNOT
	OpOR
	OpORC
	OpORI
	OpORIS
	OpSUBF
	OpSUBFC
	OpSUBFE
	OpSUBFIC
	OpXOR
	OpXORI
	OpXORIS
	OpMULHW
	OpMULHWU
	OpMULLD
	OpMULLI
	OpMULLW
	OpDIVD
	OpDIVDU
	OpDIVW
	OpDIVWU
	OpEXTSB
	OpEXTSH
	OpEXTSW

	// 2. Rotate/mask
	OpRLWINM
	OpRLWIMI
	OpRLDICL
	OpRLDICR
	OpRLDIMI
	OpROTLDI
	OpROTLW
	OpROTLWI
	OpCLRLDI
	OpCLRLWI
	OpSRAD
	OpSRADI
	OpSRAW
	OpSRAWI
	OpSLD
	OpSLW
	OpSRD
	OpSRW
	OpCNTLZW
	OpCNTLZD

	// 3. Compare
	OpCMPD
	OpCMPDI
	OpCMPLD
	OpCMPLDI
	OpCMPW
	OpCMPWI
	OpCMPLW
	OpCMPLWI
	OpFCMPU

	// 4. Branch and control
	OpB
	OpBL
	OpBLR
	OpBLRL
	OpBCTR
	OpBCTRL
	OpBNECTR
	OpBEQ
	OpBNE
	OpBGT
	OpBGE
	OpBLT
	OpBLE
	OpBEQLR
	OpBGELR
	OpBGTLR
	OpBLELR
	OpBLTLR
	OpBNELR
	OpBDZ
	OpBDZLR
	OpBDNZ
	OpBDNZF

	// 5. Integer memory
	OpLBZ
	OpLBZU
	OpLBZX
	OpLHZ
	OpLHZX
	OpLHA
	OpLHAX
	OpLWZ
	OpLWZU
	OpLWZX
	OpLWA
	OpLWAX
	OpLWBRX
	OpLD
	OpLDU
	OpLDX
	OpSTB
	OpSTBU
	OpSTBX
	OpSTH
	OpSTHX
	OpSTHBRX
	OpSTW
	OpSTWU
	OpSTWUX
	OpSTWX
	OpSTWBRX
	OpSTD
	OpSTDU
	OpSTDX
	OpLWARX
	OpLDARX
	OpSTWCX
	OpSTDCX

	// 6. Floating point scalar
	OpLFD
	OpLFDX
	OpLFS
	OpLFSX
	OpSTFD
	OpSTFDX
	OpSTFS
	OpSTFSX
	OpSTFIWX
	OpFABS
	OpFADD
	OpFADDS
	OpFCFID
	OpFCTID
	OpFCTIDZ
	OpFCTIWZ
	OpFDIV
	OpFDIVS
	OpFMADD
	OpFMADDS
	OpFMR
	OpFMSUB
	OpFMSUBS
	OpFMUL
	OpFMULS
	OpFNABS
	OpFNEG
	OpFNMADDS
	OpFNMSUB
	OpFNMSUBS
	OpFRES
	OpFRSP
	OpFSEL
	OpFSQRT
	OpFSQRTS
	OpFSUB
	OpFSUBS

	// 7. VMX / AltiVec / VMX128 (representative set - see DESIGN.md)
	OpVADDFP
	OpVSUBFP
	OpVMULFP128
	OpVMAXFP
	OpVMINFP
	OpVNMSUBFP
	OpVMADDFP
	OpVMADDCFP128
	OpVMSUM3FP128
	OpVMSUM4FP128
	OpVAND
	OpVANDC
	OpVOR
	OpVXOR
	OpVSEL
	OpVSPLTW
	OpVSPLTISW
	OpVMRGHW
	OpVMRGLW
	OpVSLDOI
	OpVREFP
	OpVRSQRTEFP
	OpVRFIM
	OpVRFIN
	OpVRFIZ
	OpVEXPTEFP
	OpVLOGEFP
	OpVCTSXS
	OpVCFSX
	OpVCFUX
	OpVCMPEQFP
	OpVCMPGEFP
	OpVCMPGTFP
	OpVCMPBFP // neither decoded nor translated - bounds-compare semantics unimplemented
	OpLVLX
	OpLVRX
	OpSTVLX
	OpSTVRX
	OpSTVEWX
	OpSTVEHX
	OpVPKD3D128
	OpVUPKD3D128
	OpVUPKHSB128
	OpVUPKLSB128
	OpVUPKHSH128
	OpVUPKLSH128

	// 8. Special registers / system
	OpMFCR
	OpMTCR
	OpMFOCRF
	OpMFLR
	OpMTLR
	OpMFMSR
	OpMTMSRD
	OpMFTB
	OpMFFS
	OpMTFSF
	OpMTCTR
	OpMTXER

	// 9. Barrier / no-ops
	OpEIEIO
	OpLWSYNC
	OpSYNC
	OpDB16CYC
	OpDCBF
	OpDCBT
	OpDCBTST
	OpNOP
	OpATTN
	OpCCTPL
	OpCCTPM
	OpTDLGEI
	OpTDLLEI
	OpTWI
	OpTWLGEI
	OpTWLLEI
	OpDCBZ
	OpDCBZL
)

// Mnemonics maps OpID back to its canonical PowerPC mnemonic, used for
// "Unrecognized instruction" log lines and test assertions.
var Mnemonics = map[OpID]string{
	OpADD: "add", OpADDC: "addc", OpADDE: "adde", OpADDI: "addi",
	OpADDIC: "addic", OpADDIS: "addis", OpADDZE: "addze",
	OpAND: "and", OpANDC: "andc", OpANDI: "andi.", OpANDIS: "andis.",
	OpNAND: "nand", OpNEG: "neg", OpNOR: "nor", OpNOT: "not",
	OpOR: "or", OpORC: "orc", OpORI: "ori", OpORIS: "oris",
	OpSUBF: "subf", OpSUBFC: "subfc", OpSUBFE: "subfe", OpSUBFIC: "subfic",
	OpXOR: "xor", OpXORI: "xori", OpXORIS: "xoris",
	OpMULHW: "mulhw", OpMULHWU: "mulhwu", OpMULLD: "mulld",
	OpMULLI: "mulli", OpMULLW: "mullw",
	OpDIVD: "divd", OpDIVDU: "divdu", OpDIVW: "divw", OpDIVWU: "divwu",
	OpEXTSB: "extsb", OpEXTSH: "extsh", OpEXTSW: "extsw",

	OpRLWINM: "rlwinm", OpRLWIMI: "rlwimi", OpRLDICL: "rldicl",
	OpRLDICR: "rldicr", OpRLDIMI: "rldimi", OpROTLDI: "rotldi",
	OpROTLW: "rotlw", OpROTLWI: "rotlwi", OpCLRLDI: "clrldi",
	OpCLRLWI: "clrlwi", OpSRAD: "srad", OpSRADI: "sradi",
	OpSRAW: "sraw", OpSRAWI: "srawi", OpSLD: "sld", OpSLW: "slw",
	OpSRD: "srd", OpSRW: "srw", OpCNTLZW: "cntlzw", OpCNTLZD: "cntlzd",

	OpCMPD: "cmpd", OpCMPDI: "cmpdi", OpCMPLD: "cmpld", OpCMPLDI: "cmpldi",
	OpCMPW: "cmpw", OpCMPWI: "cmpwi", OpCMPLW: "cmplw", OpCMPLWI: "cmplwi",
	OpFCMPU: "fcmpu",

	OpB: "b", OpBL: "bl", OpBLR: "blr", OpBLRL: "blrl",
	OpBCTR: "bctr", OpBCTRL: "bctrl", OpBNECTR: "bnectr",
	OpBEQ: "beq", OpBNE: "bne", OpBGT: "bgt", OpBGE: "bge",
	OpBLT: "blt", OpBLE: "ble",
	OpBEQLR: "beqlr", OpBGELR: "bgelr", OpBGTLR: "bgtlr",
	OpBLELR: "blelr", OpBLTLR: "bltlr", OpBNELR: "bnelr",
	OpBDZ: "bdz", OpBDZLR: "bdzlr", OpBDNZ: "bdnz", OpBDNZF: "bdnzf",

	OpLBZ: "lbz", OpLBZU: "lbzu", OpLBZX: "lbzx",
	OpLHZ: "lhz", OpLHZX: "lhzx", OpLHA: "lha", OpLHAX: "lhax",
	OpLWZ: "lwz", OpLWZU: "lwzu", OpLWZX: "lwzx", OpLWA: "lwa",
	OpLWAX: "lwax", OpLWBRX: "lwbrx",
	OpLD: "ld", OpLDU: "ldu", OpLDX: "ldx",
	OpSTB: "stb", OpSTBU: "stbu", OpSTBX: "stbx",
	OpSTH: "sth", OpSTHX: "sthx", OpSTHBRX: "sthbrx",
	OpSTW: "stw", OpSTWU: "stwu", OpSTWUX: "stwux", OpSTWX: "stwx",
	OpSTWBRX: "stwbrx", OpSTD: "std", OpSTDU: "stdu", OpSTDX: "stdx",
	OpLWARX: "lwarx", OpLDARX: "ldarx", OpSTWCX: "stwcx.", OpSTDCX: "stdcx.",

	OpLFD: "lfd", OpLFDX: "lfdx", OpLFS: "lfs", OpLFSX: "lfsx",
	OpSTFD: "stfd", OpSTFDX: "stfdx", OpSTFS: "stfs", OpSTFSX: "stfsx",
	OpSTFIWX: "stfiwx",
	OpFABS: "fabs", OpFADD: "fadd", OpFADDS: "fadds", OpFCFID: "fcfid",
	OpFCTID: "fctid", OpFCTIDZ: "fctidz", OpFCTIWZ: "fctiwz",
	OpFDIV: "fdiv", OpFDIVS: "fdivs", OpFMADD: "fmadd", OpFMADDS: "fmadds",
	OpFMR: "fmr", OpFMSUB: "fmsub", OpFMSUBS: "fmsubs",
	OpFMUL: "fmul", OpFMULS: "fmuls", OpFNABS: "fnabs", OpFNEG: "fneg",
	OpFNMADDS: "fnmadds", OpFNMSUB: "fnmsub", OpFNMSUBS: "fnmsubs",
	OpFRES: "fres", OpFRSP: "frsp", OpFSEL: "fsel",
	OpFSQRT: "fsqrt", OpFSQRTS: "fsqrts", OpFSUB: "fsub", OpFSUBS: "fsubs",

	OpVADDFP: "vaddfp", OpVSUBFP: "vsubfp", OpVMULFP128: "vmulfp128",
	OpVMAXFP: "vmaxfp", OpVMINFP: "vminfp", OpVNMSUBFP: "vnmsubfp",
	OpVMADDFP: "vmaddfp", OpVMADDCFP128: "vmaddcfp128",
	OpVMSUM3FP128: "vmsum3fp128", OpVMSUM4FP128: "vmsum4fp128",
	OpVAND: "vand", OpVANDC: "vandc", OpVOR: "vor", OpVXOR: "vxor",
	OpVSEL: "vsel", OpVSPLTW: "vspltw", OpVSPLTISW: "vspltisw",
	OpVMRGHW: "vmrghw", OpVMRGLW: "vmrglw", OpVSLDOI: "vsldoi",
	OpVREFP: "vrefp", OpVRSQRTEFP: "vrsqrtefp",
	OpVRFIM: "vrfim", OpVRFIN: "vrfin", OpVRFIZ: "vrfiz",
	OpVEXPTEFP: "vexptefp", OpVLOGEFP: "vlogefp",
	OpVCTSXS: "vctsxs", OpVCFSX: "vcfsx", OpVCFUX: "vcfux",
	OpVCMPEQFP: "vcmpeqfp", OpVCMPGEFP: "vcmpgefp", OpVCMPGTFP: "vcmpgtfp",
	OpVCMPBFP: "vcmpbfp",
	OpLVLX: "lvlx", OpLVRX: "lvrx",
	OpSTVLX: "stvlx", OpSTVRX: "stvrx", OpSTVEWX: "stvewx", OpSTVEHX: "stvehx",
	OpVPKD3D128: "vpkd3d128", OpVUPKD3D128: "vupkd3d128",
	OpVUPKHSB128: "vupkhsb128", OpVUPKLSB128: "vupklsb128",
	OpVUPKHSH128: "vupkhsh128", OpVUPKLSH128: "vupklsh128",

	OpMFCR: "mfcr", OpMTCR: "mtcr", OpMFOCRF: "mfocrf",
	OpMFLR: "mflr", OpMTLR: "mtlr", OpMFMSR: "mfmsr", OpMTMSRD: "mtmsrd",
	OpMFTB: "mftb", OpMFFS: "mffs", OpMTFSF: "mtfsf",
	OpMTCTR: "mtctr", OpMTXER: "mtxer",

	OpEIEIO: "eieio", OpLWSYNC: "lwsync", OpSYNC: "sync",
	OpDB16CYC: "db16cyc", OpDCBF: "dcbf", OpDCBT: "dcbt", OpDCBTST: "dcbtst",
	OpNOP: "nop", OpATTN: "attn", OpCCTPL: "cctpl", OpCCTPM: "cctpm",
	OpTDLGEI: "tdlgei", OpTDLLEI: "tdllei", OpTWI: "twi",
	OpTWLGEI: "twlgei", OpTWLLEI: "twllei",
	OpDCBZ: "dcbz", OpDCBZL: "dcbzl",
}
