package translate

import "github.com/xenonrecomp/ppcrecomp/guest"

// setCSR emits the flush-mode switch iff fs's tracked state differs
// from want. Every scalar-FP opcode forces FPU; every vector-FP opcode
// forces VMX; a label or call resets to Unknown so the next opcode
// always re-emits rather than risk a stale mode at a join point.
func setCSR(fs *FuncState, want guest.CSRState) []string {
	if fs.CSR == want {
		return nil
	}
	fs.CSR = want
	switch want {
	case guest.CSRFPU:
		return []string{"ctx.fpscr.disableFlushMode();"}
	case guest.CSRVMX:
		return []string{"ctx.fpscr.enableFlushMode();"}
	}
	return nil
}
