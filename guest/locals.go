package guest

// LocalVariables is the per-function shadow-use bitset: it is set when
// the translator decides to route a register through a function-local
// instead of the context struct, and consumed by the function
// recompiler to emit declarations at function entry in canonical order.
type LocalVariables struct {
	R  [NumGPR]bool
	F  [NumFPR]bool
	V  [NumVMX]bool
	CR [NumCR]bool

	CTR      bool
	XER      bool
	Reserved bool
	Temp     bool
	VTemp    bool
	Env      bool
	EA       bool
}

// Declarations returns the C-style local-variable declaration lines for
// every shadow flagged as used, in canonical order: ctr, xer, reserved,
// cr0..cr7, r0..r31, f0..f31, v0..v127, env, temp, vTemp, ea.
func (l *LocalVariables) Declarations() []string {
	var out []string
	if l.CTR {
		out = append(out, "PPCRegister ctr;")
	}
	if l.XER {
		out = append(out, "PPCXERRegister xer;")
	}
	if l.Reserved {
		out = append(out, "PPCRegister reserved;")
	}
	for i := 0; i < NumCR; i++ {
		if l.CR[i] {
			out = append(out, crLocalDecl(i))
		}
	}
	for i := 0; i < NumGPR; i++ {
		if l.R[i] {
			out = append(out, gprLocalDecl(i))
		}
	}
	for i := 0; i < NumFPR; i++ {
		if l.F[i] {
			out = append(out, fprLocalDecl(i))
		}
	}
	for i := 0; i < NumVMX; i++ {
		if l.V[i] {
			out = append(out, vmxLocalDecl(i))
		}
	}
	if l.Env {
		out = append(out, "PPCContext env;")
	}
	if l.Temp {
		out = append(out, "PPCRegister temp;")
	}
	if l.VTemp {
		out = append(out, "PPCVRegister vTemp;")
	}
	if l.EA {
		out = append(out, "uint32_t ea;")
	}
	return out
}
