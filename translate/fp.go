package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
	"github.com/xenonrecomp/ppcrecomp/guest"
)

func translateFP(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	saved := fs.CSR
	pre := setCSR(fs, guest.CSRFPU)

	switch in.Op {
	case disasm.OpLFS:
		rt := in.Operands[0].Reg
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return append(pre, fmt.Sprintf("%s.f64 = double(PPC_LOAD_F32(base, %s));", fs.Names.F(rt), ea)), true
	case disasm.OpLFD:
		rt := in.Operands[0].Reg
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return append(pre, fmt.Sprintf("%s.f64 = PPC_LOAD_F64(base, %s);", fs.Names.F(rt), ea)), true
	case disasm.OpSTFS:
		rt := in.Operands[0].Reg
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return append(pre, fmt.Sprintf("PPC_STORE_F32(base, %s, float(%s.f64));", ea, fs.Names.F(rt))), true
	case disasm.OpSTFD:
		rt := in.Operands[0].Reg
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return append(pre, fmt.Sprintf("PPC_STORE_F64(base, %s, %s.f64);", ea, fs.Names.F(rt))), true
	case disasm.OpSTFIWX:
		rt, ra, rb := in.Operands[0].Reg, in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		return append(pre, fmt.Sprintf("PPC_STORE_U32(base, %s, %s.u32);", ea, fs.Names.F(rt))), true

	case disasm.OpFADD, disasm.OpFADDS, disasm.OpFSUB, disasm.OpFSUBS,
		disasm.OpFMUL, disasm.OpFMULS, disasm.OpFDIV, disasm.OpFDIVS:
		rt, a, b := in.Operands[0].Reg, in.Operands[1].Reg, in.Operands[2].Reg
		op := map[disasm.OpID]string{
			disasm.OpFADD: "+", disasm.OpFADDS: "+",
			disasm.OpFSUB: "-", disasm.OpFSUBS: "-",
			disasm.OpFMUL: "*", disasm.OpFMULS: "*",
			disasm.OpFDIV: "/", disasm.OpFDIVS: "/",
		}[in.Op]
		expr := fmt.Sprintf("%s.f64 %s %s.f64", fs.Names.F(a), op, fs.Names.F(b))
		dst := fs.Names.F(rt)
		switch in.Op {
		case disasm.OpFADDS, disasm.OpFSUBS, disasm.OpFMULS, disasm.OpFDIVS:
			return append(pre, fmt.Sprintf("%s.f64 = double(float(%s));", dst, expr)), true
		default:
			return append(pre, fmt.Sprintf("%s.f64 = %s;", dst, expr)), true
		}

	case disasm.OpFMADD, disasm.OpFMADDS, disasm.OpFMSUB, disasm.OpFMSUBS,
		disasm.OpFNMSUB, disasm.OpFNMSUBS, disasm.OpFNMADDS:
		rt, a, c, b := in.Operands[0].Reg, in.Operands[1].Reg, in.Operands[2].Reg, in.Operands[3].Reg
		sign := ""
		single := false
		switch in.Op {
		case disasm.OpFMSUB, disasm.OpFMSUBS:
			sign = "-"
		case disasm.OpFNMSUB, disasm.OpFNMSUBS:
			sign = "-"
		}
		switch in.Op {
		case disasm.OpFMADDS, disasm.OpFMSUBS, disasm.OpFNMSUBS, disasm.OpFNMADDS:
			single = true
		}
		expr := fmt.Sprintf("%s.f64 * %s.f64 %s %s.f64", fs.Names.F(a), fs.Names.F(c), orPlus(sign), fs.Names.F(b))
		negated := in.Op == disasm.OpFNMSUB || in.Op == disasm.OpFNMSUBS || in.Op == disasm.OpFNMADDS
		if negated {
			expr = "-(" + expr + ")"
		}
		dst := fs.Names.F(rt)
		if single {
			return append(pre, fmt.Sprintf("%s.f64 = double(float(%s));", dst, expr)), true
		}
		return append(pre, fmt.Sprintf("%s.f64 = %s;", dst, expr)), true

	case disasm.OpFSQRT, disasm.OpFSQRTS:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		dst := fs.Names.F(rt)
		if in.Op == disasm.OpFSQRTS {
			return append(pre, fmt.Sprintf("%s.f64 = double(float(std::sqrt(%s.f64)));", dst, fs.Names.F(b))), true
		}
		return append(pre, fmt.Sprintf("%s.f64 = std::sqrt(%s.f64);", dst, fs.Names.F(b))), true

	case disasm.OpFRES:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = double(1.0f / float(%s.f64));", fs.Names.F(rt), fs.Names.F(b))), true

	case disasm.OpFABS:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = std::fabs(%s.f64);", fs.Names.F(rt), fs.Names.F(b))), true
	case disasm.OpFNABS:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = -std::fabs(%s.f64);", fs.Names.F(rt), fs.Names.F(b))), true
	case disasm.OpFNEG:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = -%s.f64;", fs.Names.F(rt), fs.Names.F(b))), true
	case disasm.OpFMR:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = %s.f64;", fs.Names.F(rt), fs.Names.F(b))), true
	case disasm.OpFRSP:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = double(float(%s.f64));", fs.Names.F(rt), fs.Names.F(b))), true

	case disasm.OpFSEL:
		rt, a, c, b := in.Operands[0].Reg, in.Operands[1].Reg, in.Operands[2].Reg, in.Operands[3].Reg
		return append(pre, fmt.Sprintf("%s.f64 = (%s.f64 >= 0.0) ? %s.f64 : %s.f64;",
			fs.Names.F(rt), fs.Names.F(a), fs.Names.F(c), fs.Names.F(b))), true

	case disasm.OpFCTIWZ:
		// Truncating convert-to-int32, saturating to INT_MAX on overflow
		// rather than wrapping the way a bare cast would.
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		bf := fs.Names.F(b)
		return append(pre, fmt.Sprintf("%s.s64 = (%s.f64 > double(INT_MAX)) ? INT_MAX : _mm_cvttsd_si32(_mm_load_sd(&%s.f64));", fs.Names.F(rt), bf, bf)), true
	case disasm.OpFCTID:
		// Round-to-nearest convert-to-int64 (no Z suffix), saturating.
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		bf := fs.Names.F(b)
		return append(pre, fmt.Sprintf("%s.s64 = (%s.f64 > double(LLONG_MAX)) ? LLONG_MAX : _mm_cvtsd_si64(_mm_load_sd(&%s.f64));", fs.Names.F(rt), bf, bf)), true
	case disasm.OpFCTIDZ:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		bf := fs.Names.F(b)
		return append(pre, fmt.Sprintf("%s.s64 = (%s.f64 > double(LLONG_MAX)) ? LLONG_MAX : _mm_cvttsd_si64(_mm_load_sd(&%s.f64));", fs.Names.F(rt), bf, bf)), true
	case disasm.OpFCFID:
		rt, b := in.Operands[0].Reg, in.Operands[1].Reg
		return append(pre, fmt.Sprintf("%s.f64 = double(%s.s64);", fs.Names.F(rt), fs.Names.F(b))), true

	case disasm.OpMFFS:
		rt := in.Operands[0].Reg
		return append(pre, fmt.Sprintf("%s.u64 = ctx.fpscr.loadFromHost();", fs.Names.F(rt))), true
	case disasm.OpMTFSF:
		b := in.Operands[0].Reg
		return append(pre, fmt.Sprintf("ctx.fpscr.storeFromGuest(%s.u64);", fs.Names.F(b))), true
	}
	// Not an FP opcode: nothing was emitted, so the tracked mode is unchanged.
	fs.CSR = saved
	return nil, false
}

func orPlus(sign string) string {
	if sign == "" {
		return "+"
	}
	return sign
}
