package translate

import (
	"fmt"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// effectiveAddress returns the non-update-form EA expression for a
// D-form or DS-form memory operand, eliding the base register entirely
// when ra is r0 (treated as the constant zero).
func effectiveAddress(fs *FuncState, ra int, disp int64) string {
	if ra == 0 {
		return fmt.Sprintf("%d", disp)
	}
	if disp == 0 {
		return fs.Names.R(ra) + ".u32"
	}
	return fmt.Sprintf("%s.u32 + %d", fs.Names.R(ra), disp)
}

// stageUpdateEA stages the EA into the ea local before the load/store so
// that a destination register aliasing the base register still sees the
// pre-update base value. The caller writes the base back from ea itself
// after the load/store statement.
func stageUpdateEA(fs *FuncState, ra int, disp int64) (string, []string) {
	ea := fs.Names.EA()
	pre := []string{fmt.Sprintf("%s = %s.u32 + %d;", ea, fs.Names.R(ra), disp)}
	return ea, pre
}

func translateMemory(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	rt := in.Operands[0].Reg

	loadPlain := func(lane string, loadFn string) []string {
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return []string{fmt.Sprintf("%s.%s = %s(base, %s);", fs.Names.R(rt), lane, loadFn, ea)}
	}
	storePlain := func(lane string, storeFn string) []string {
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return []string{fmt.Sprintf("%s(base, %s, %s.%s);", storeFn, ea, fs.Names.R(rt), lane)}
	}
	loadUpdate := func(lane string, loadFn string) []string {
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea, pre := stageUpdateEA(fs, ra, disp)
		out := pre
		out = append(out, fmt.Sprintf("%s.%s = %s(base, %s);", fs.Names.R(rt), lane, loadFn, ea))
		out = append(out, fmt.Sprintf("%s.u32 = %s;", fs.Names.R(ra), ea))
		return out
	}
	storeUpdate := func(lane string, storeFn string) []string {
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea, pre := stageUpdateEA(fs, ra, disp)
		out := pre
		out = append(out, fmt.Sprintf("%s(base, %s, %s.%s);", storeFn, ea, fs.Names.R(rt), lane))
		out = append(out, fmt.Sprintf("%s.u32 = %s;", fs.Names.R(ra), ea))
		return out
	}

	switch in.Op {
	case disasm.OpLBZ:
		return loadPlain("u8", "PPC_LOAD_U8"), true
	case disasm.OpLBZU:
		return loadUpdate("u8", "PPC_LOAD_U8"), true
	case disasm.OpLHZ:
		return loadPlain("u16", "PPC_LOAD_U16"), true
	case disasm.OpLHA:
		ra := in.Operands[1].Reg
		disp := in.Operands[1].Value
		ea := effectiveAddress(fs, ra, disp)
		return []string{fmt.Sprintf("%s.s64 = int16_t(PPC_LOAD_U16(base, %s));", fs.Names.R(rt), ea)}, true
	case disasm.OpLWZ:
		return loadPlain("u32", "PPC_LOAD_U32"), true
	case disasm.OpLWZU:
		return loadUpdate("u32", "PPC_LOAD_U32"), true
	case disasm.OpLD:
		return loadPlain("u64", "PPC_LOAD_U64"), true
	case disasm.OpLDU:
		return loadUpdate("u64", "PPC_LOAD_U64"), true

	case disasm.OpSTB:
		return storePlain("u8", "PPC_STORE_U8"), true
	case disasm.OpSTBU:
		return storeUpdate("u8", "PPC_STORE_U8"), true
	case disasm.OpSTH:
		return storePlain("u16", "PPC_STORE_U16"), true
	case disasm.OpSTW:
		return storePlain("u32", "PPC_STORE_U32"), true
	case disasm.OpSTWU:
		return storeUpdate("u32", "PPC_STORE_U32"), true
	case disasm.OpSTD, disasm.OpSTDU:
		if in.Op == disasm.OpSTD {
			return storePlain("u64", "PPC_STORE_U64"), true
		}
		return storeUpdate("u64", "PPC_STORE_U64"), true

	case disasm.OpLBZX, disasm.OpLHZX, disasm.OpLWZX, disasm.OpLHAX, disasm.OpLDX, disasm.OpLWAX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		type loadShape struct{ fn, lane, signed string }
		shape := map[disasm.OpID]loadShape{
			disasm.OpLBZX: {"PPC_LOAD_U8", "u8", ""},
			disasm.OpLHZX: {"PPC_LOAD_U16", "u16", ""},
			disasm.OpLWZX: {"PPC_LOAD_U32", "u32", ""},
			disasm.OpLHAX: {"PPC_LOAD_U16", "s64", "int16_t"},
			disasm.OpLDX:  {"PPC_LOAD_U64", "u64", ""},
			disasm.OpLWAX: {"PPC_LOAD_U32", "s64", "int32_t"},
		}[in.Op]
		if shape.signed != "" {
			return []string{fmt.Sprintf("%s.%s = %s(%s(base, %s));", fs.Names.R(rt), shape.lane, shape.signed, shape.fn, ea)}, true
		}
		return []string{fmt.Sprintf("%s.%s = %s(base, %s);", fs.Names.R(rt), shape.lane, shape.fn, ea)}, true

	case disasm.OpSTBX, disasm.OpSTHX, disasm.OpSTWX, disasm.OpSTDX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		type storeShape struct{ fn, lane string }
		shape := map[disasm.OpID]storeShape{
			disasm.OpSTBX: {"PPC_STORE_U8", "u8"},
			disasm.OpSTHX: {"PPC_STORE_U16", "u16"},
			disasm.OpSTWX: {"PPC_STORE_U32", "u32"},
			disasm.OpSTDX: {"PPC_STORE_U64", "u64"},
		}[in.Op]
		return []string{fmt.Sprintf("%s(base, %s, %s.%s);", shape.fn, ea, fs.Names.R(rt), shape.lane)}, true

	case disasm.OpSTWUX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := fs.Names.EA()
		out := []string{fmt.Sprintf("%s = %s.u32 + %s.u32;", ea, fs.Names.R(ra), fs.Names.R(rb))}
		out = append(out, fmt.Sprintf("PPC_STORE_U32(base, %s, %s.u32);", ea, fs.Names.R(rt)))
		out = append(out, fmt.Sprintf("%s.u32 = %s;", fs.Names.R(ra), ea))
		return out, true

	case disasm.OpLWBRX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		return []string{fmt.Sprintf("%s.u32 = __builtin_bswap32(PPC_LOAD_U32(base, %s));", fs.Names.R(rt), ea)}, true
	case disasm.OpSTWBRX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		return []string{fmt.Sprintf("PPC_STORE_U32(base, %s, __builtin_bswap32(%s.u32));", ea, fs.Names.R(rt))}, true
	case disasm.OpSTHBRX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		return []string{fmt.Sprintf("PPC_STORE_U16(base, %s, __builtin_bswap16(%s.u16));", ea, fs.Names.R(rt))}, true

	case disasm.OpLWARX, disasm.OpLDARX:
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		reserved := fs.Names.Reserved()
		if in.Op == disasm.OpLDARX {
			return []string{
				fmt.Sprintf("%s.u64 = *(uint64_t*)(base + %s);", reserved, ea),
				fmt.Sprintf("%s.u64 = __builtin_bswap64(%s.u64);", fs.Names.R(rt), reserved),
			}, true
		}
		return []string{
			fmt.Sprintf("%s.u32 = *(uint32_t*)(base + %s);", reserved, ea),
			fmt.Sprintf("%s.u64 = __builtin_bswap32(%s.u32);", fs.Names.R(rt), reserved),
		}, true

	case disasm.OpSTWCX, disasm.OpSTDCX:
		// The reservation snapshot holds the raw host-endian word read at
		// lwarx/ldarx time; the store-conditional CAS's comparand is that
		// same raw value, so the exchange only commits if nothing else
		// touched the guest word in between.
		ra, rb := in.Operands[1].Reg, in.Operands[2].Reg
		ea := indexedEA(fs, ra, rb)
		reserved := fs.Names.Reserved()
		cr0 := fs.Names.CR(0)
		xer := fs.Names.XER()
		rtName := fs.Names.R(rt)
		if in.Op == disasm.OpSTDCX {
			return []string{
				fmt.Sprintf("%s.lt = 0;", cr0),
				fmt.Sprintf("%s.gt = 0;", cr0),
				fmt.Sprintf("%s.eq = _InterlockedCompareExchange64(reinterpret_cast<__int64*>(base + %s), __builtin_bswap64(%s.s64), %s.s64) == %s.s64;", cr0, ea, rtName, reserved, reserved),
				fmt.Sprintf("%s.so = %s.so;", cr0, xer),
			}, true
		}
		return []string{
			fmt.Sprintf("%s.lt = 0;", cr0),
			fmt.Sprintf("%s.gt = 0;", cr0),
			fmt.Sprintf("%s.eq = _InterlockedCompareExchange(reinterpret_cast<long*>(base + %s), __builtin_bswap32(%s.s32), %s.s32) == %s.s32;", cr0, ea, rtName, reserved, reserved),
			fmt.Sprintf("%s.so = %s.so;", cr0, xer),
		}, true
	}
	return nil, false
}

func indexedEA(fs *FuncState, ra, rb int) string {
	if ra == 0 {
		return fs.Names.R(rb) + ".u32"
	}
	return fmt.Sprintf("%s.u32 + %s.u32", fs.Names.R(ra), fs.Names.R(rb))
}
