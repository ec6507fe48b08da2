package guest

import "fmt"

func crLocalDecl(i int) string { return fmt.Sprintf("PPCCRRegister cr%d;", i) }
func gprLocalDecl(i int) string { return fmt.Sprintf("PPCRegister r%d;", i) }
func fprLocalDecl(i int) string { return fmt.Sprintf("PPCRegister f%d;", i) }
func vmxLocalDecl(i int) string { return fmt.Sprintf("PPCVRegister v%d;", i) }

// Names resolves the textual lvalue for every addressable piece of guest
// state, given a config and the local-variable set it mutates. The
// resolved name is purely a function of (class, index, config) - never
// of how the caller intends to use it - so the same index always
// resolves to the same name within one function.
type Names struct {
	cfg    Config
	locals *LocalVariables
}

// NewNames builds a Names resolver over the given config and the
// function's local-variable set, which it mutates as shadowed operands
// are resolved.
func NewNames(cfg Config, locals *LocalVariables) *Names {
	return &Names{cfg: cfg, locals: locals}
}

// R resolves GPR index r to "rN" (shadowed) or "ctx.rN".
func (n *Names) R(r int) string {
	if n.cfg.ShadowGPR(r) {
		n.locals.R[r] = true
		return fmt.Sprintf("r%d", r)
	}
	return fmt.Sprintf("ctx.r%d", r)
}

// F resolves FPR index f.
func (n *Names) F(f int) string {
	if n.cfg.ShadowFPR(f) {
		n.locals.F[f] = true
		return fmt.Sprintf("f%d", f)
	}
	return fmt.Sprintf("ctx.f%d", f)
}

// V resolves vector register index v.
func (n *Names) V(v int) string {
	if n.cfg.ShadowVMX(v) {
		n.locals.V[v] = true
		return fmt.Sprintf("v%d", v)
	}
	return fmt.Sprintf("ctx.v%d", v)
}

// CR resolves condition-register field i (0..7).
func (n *Names) CR(i int) string {
	if n.cfg.ShadowCR(i) {
		n.locals.CR[i] = true
		return fmt.Sprintf("cr%d", i)
	}
	return fmt.Sprintf("ctx.cr%d", i)
}

// CTR resolves the count register.
func (n *Names) CTR() string {
	if n.cfg.CTRAsLocalVariable {
		n.locals.CTR = true
		return "ctr"
	}
	return "ctx.ctr"
}

// XER resolves the XER register.
func (n *Names) XER() string {
	if n.cfg.XERAsLocalVariable {
		n.locals.XER = true
		return "xer"
	}
	return "ctx.xer"
}

// Reserved resolves the lwarx/ldarx reservation holder.
func (n *Names) Reserved() string {
	if n.cfg.ReservedAsLocalVariable {
		n.locals.Reserved = true
		return "reserved"
	}
	return "ctx.reserved"
}

// Temp resolves the scalar scratch local used for staging (e.g. ADDE's
// carry, computed before xer.ca is overwritten). Always a local - there
// is no context-field form. LFS does not use it; it loads through
// PPC_LOAD_F32 directly.
func (n *Names) Temp() string {
	n.locals.Temp = true
	return "temp"
}

// VTemp resolves the vector scratch local.
func (n *Names) VTemp() string {
	n.locals.VTemp = true
	return "vTemp"
}

// Env resolves the setjmp/longjmp context-save local.
func (n *Names) Env() string {
	n.locals.Env = true
	return "env"
}

// EA resolves the staged effective-address local used by *U update
// forms so that a destination aliasing the base register stays correct.
func (n *Names) EA() string {
	n.locals.EA = true
	return "ea"
}

// LR resolves the link register. Never shadowed.
func (n *Names) LR() string { return "ctx.lr" }

// Config returns the resolver's underlying configuration, read-only.
func (n *Names) Config() Config { return n.cfg }
