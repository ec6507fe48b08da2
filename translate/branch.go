package translate

import (
	"fmt"
	"log/slog"

	"github.com/xenonrecomp/ppcrecomp/disasm"
)

// callTarget resolves a direct call target to a host function name: the
// image's symbol table when one covers the address, otherwise a
// synthesized sub_XXXXXXXX name so every address has a stable name.
func callTarget(fs *FuncState, addr uint32) string {
	if fs.Image != nil {
		if sym, ok := fs.Image.SymbolAt(addr); ok && sym.Name != "" {
			return sym.Name
		}
	}
	return fmt.Sprintf("sub_%08X", addr)
}

// emitCall appends a call statement for a direct or indirect call and
// resets the CSR state: any call is a join point, since the callee may
// leave the FPU/VMX flush mode in either state.
func emitCall(fs *FuncState, callee string) []string {
	fs.ResetJoinPoint()
	return []string{fmt.Sprintf("%s(ctx, base);", callee)}
}

func crFieldName(cr string, cond int) string {
	switch cond {
	case 0:
		return cr + ".lt"
	case 1:
		return cr + ".gt"
	case 2:
		return cr + ".eq"
	case 3:
		return cr + ".so"
	}
	return cr + ".eq"
}

// condFromOp reports the CR bit an Op tests and whether it is tested
// true (branch taken when set) as opposed to false.
func condFromOp(op disasm.OpID) (bit int, taken bool) {
	switch op {
	case disasm.OpBLT, disasm.OpBLTLR:
		return 0, true
	case disasm.OpBGE, disasm.OpBGELR:
		return 0, false
	case disasm.OpBGT, disasm.OpBGTLR:
		return 1, true
	case disasm.OpBLE, disasm.OpBLELR:
		return 1, false
	case disasm.OpBEQ, disasm.OpBEQLR:
		return 2, true
	case disasm.OpBNE, disasm.OpBNELR, disasm.OpBNECTR:
		return 2, false
	}
	return 2, true
}

func translateBranch(fs *FuncState, in disasm.Instruction) ([]string, bool) {
	switch in.Op {
	case disasm.OpB:
		target := uint32(in.Operands[0].Value)
		if fs.inFunction(target) {
			return []string{fmt.Sprintf("goto %s;", locLabel(target))}, true
		}
		out := emitCall(fs, callTarget(fs, target))
		out = append(out, "return;")
		return out, true

	case disasm.OpBL:
		target := uint32(in.Operands[0].Value)
		cfg := fs.Names.Config()
		switch {
		case cfg.SetJmpAddress != 0 && target == cfg.SetJmpAddress:
			r3, env := fs.Names.R(3), fs.Names.Env()
			return []string{
				fmt.Sprintf("%s = ctx;", env),
				fmt.Sprintf("%s.s64 = setjmp(*reinterpret_cast<jmp_buf*>(base + %s.u32));", r3, r3),
				fmt.Sprintf("if (%s.s64 != 0) ctx = %s;", r3, env),
			}, true
		case cfg.LongJmpAddress != 0 && target == cfg.LongJmpAddress:
			r3, r4 := fs.Names.R(3), fs.Names.R(4)
			return []string{fmt.Sprintf("longjmp(*reinterpret_cast<jmp_buf*>(base + %s.u32), %s.s32);", r3, r4)}, true
		}
		var out []string
		if !cfg.SkipLR {
			out = append(out, fmt.Sprintf("ctx.lr = 0x%X;", in.Address+4))
		}
		out = append(out, emitCall(fs, callTarget(fs, target))...)
		return out, true

	case disasm.OpBLR:
		return []string{"return;"}, true

	case disasm.OpBLRL:
		// Lowered to a debug trap: the callee address arrives only in
		// ctx.lr at runtime, and no call through it is emitted.
		return []string{"__builtin_debugtrap();"}, true

	case disasm.OpBCTR, disasm.OpBCTRL:
		ctr := fs.Names.CTR()
		if table, ok := fs.Switches.Consume(); ok {
			reg := fs.Names.R(int(table.Reg))
			var out []string
			out = append(out, fmt.Sprintf("switch (%s.u64) {", reg))
			for i, label := range table.Labels {
				out = append(out, fmt.Sprintf("case %d:", i))
				if !fs.inFunction(label) {
					out = append(out, fmt.Sprintf("\t// ERROR: 0x%X", label))
					if fs.Logger != nil {
						fs.Logger.Error("switch case jumps outside its enclosing function",
							slog.String("address", fmt.Sprintf("%08X", in.Address)),
							slog.String("target", fmt.Sprintf("%08X", label)))
					}
					out = append(out, "\treturn;")
					continue
				}
				out = append(out, fmt.Sprintf("\tgoto %s;", locLabel(label)))
			}
			out = append(out, "default:")
			out = append(out, "\t__builtin_unreachable();")
			out = append(out, "}")
			return out, true
		}

		cfg := fs.Names.Config()
		var out []string
		if in.Op == disasm.OpBCTRL && !cfg.SkipLR {
			out = append(out, fmt.Sprintf("ctx.lr = 0x%X;", in.Address+4))
		}
		out = append(out, fmt.Sprintf("PPC_CALL_INDIRECT_FUNC(%s.u32);", ctr))
		if in.Op == disasm.OpBCTR {
			out = append(out, "return;")
		} else {
			fs.ResetJoinPoint()
		}
		return out, true

	case disasm.OpBNECTR:
		cr := fs.Names.CR(in.Operands[0].Reg)
		body := []string{
			fmt.Sprintf("PPC_CALL_INDIRECT_FUNC(%s.u32);", fs.Names.CTR()),
			"return;",
		}
		out := []string{fmt.Sprintf("if (!%s) {", crFieldName(cr, 2))}
		out = append(out, indent(body)...)
		out = append(out, "}")
		fs.ResetJoinPoint()
		return out, true

	case disasm.OpBEQ, disasm.OpBNE, disasm.OpBGT, disasm.OpBGE, disasm.OpBLT, disasm.OpBLE:
		target := uint32(in.Operands[0].Value)
		cr := fs.Names.CR(in.Operands[1].Reg)
		bit, taken := condFromOp(in.Op)
		field := crFieldName(cr, bit)
		if !taken {
			field = "!" + field
		}
		return []string{fmt.Sprintf("if (%s) goto %s;", field, locLabel(target))}, true

	case disasm.OpBEQLR, disasm.OpBNELR, disasm.OpBGTLR, disasm.OpBGELR, disasm.OpBLTLR, disasm.OpBLELR:
		cr := fs.Names.CR(in.Operands[0].Reg)
		bit, taken := condFromOp(in.Op)
		field := crFieldName(cr, bit)
		if !taken {
			field = "!" + field
		}
		return []string{fmt.Sprintf("if (%s) return;", field)}, true

	case disasm.OpBDZ, disasm.OpBDNZ:
		target := uint32(in.Operands[0].Value)
		ctr := fs.Names.CTR()
		test := "== 0"
		if in.Op == disasm.OpBDNZ {
			test = "!= 0"
		}
		return []string{
			fmt.Sprintf("%s.u64--;", ctr),
			fmt.Sprintf("if (%s.u64 %s) goto %s;", ctr, test, locLabel(target)),
		}, true

	case disasm.OpBDZLR:
		ctr := fs.Names.CTR()
		return []string{
			fmt.Sprintf("%s.u64--;", ctr),
			fmt.Sprintf("if (%s.u64 == 0) return;", ctr),
		}, true

	case disasm.OpBDNZF:
		// Decoder collapses every BDNZF variant to the "branch if CTR
		// nonzero after decrement and the eq bit is clear" shortcut.
		target := uint32(in.Operands[0].Value)
		ctr := fs.Names.CTR()
		cr := fs.Names.CR(in.Operands[1].Reg)
		return []string{
			fmt.Sprintf("%s.u64--;", ctr),
			fmt.Sprintf("if (%s.u64 != 0 && !%s.eq) goto %s;", ctr, cr, locLabel(target)),
		}, true
	}
	return nil, false
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "  " + l
	}
	return out
}
