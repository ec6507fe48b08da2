// registers.go - Guest register model for the PowerPC recompiler

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
Buy me a coffee: https://ko-fi.com/intuition/tip

License: GPLv3 or later
*/

/*
registers.go - Guest register class layout

This file centralises the shape of the guest CPU context that every
emitted host function addresses: general-purpose registers, floating
point registers, 128-bit vector registers, the eight condition-register
fields, and the scalar special registers (LR, CTR, XER, FPSCR/flush
mode). Individual register *lanes* (u64, s32, f32[4]...) are not
represented as Go types here - they are names the translator package
emits as text (ctx.r3.u64, ctx.v12.f32[2], ...) against a host runtime
this repository does not implement.

REGISTER CLASS OVERVIEW
========================

Class   Count   Context field          Shadow-local name (when shadowed)
------------------------------------------------------------------------
GPR     32      ctx.rN                 rN
FPR     32      ctx.fN                 fN
VMX128  128     ctx.vN                 vN
CR      8       ctx.crN                crN
-       1       ctx.ctr                ctr
-       1       ctx.xer                xer
-       1       ctx.reserved           reserved
-       1       ctx.lr                 (never shadowed)

Scratch vs. callee-saved split (used by the "non-argument" and
"non-volatile" shadow knobs in Config):

  scratch GPRs: r0, r2, r11, r12
  scratch FPRs: f0
  scratch VMX:  v32..v63
  saved GPRs:   r14..r31
  saved FPRs:   f14..f31
  saved VMX:    v14..v31, v64..v127
*/

package guest

// Register class sizes.
const (
	NumGPR = 32
	NumFPR = 32
	NumVMX = 128
	NumCR  = 8
)

// IsScratchGPR reports whether r is one of the volatile scratch GPRs
// (r0, r2, r11, r12) eligible for the nonArgumentRegistersAsLocalVariables
// shadow knob.
func IsScratchGPR(r int) bool {
	return r == 0 || r == 2 || r == 11 || r == 12
}

// IsScratchFPR reports whether f is the single volatile scratch FPR (f0).
func IsScratchFPR(f int) bool {
	return f == 0
}

// IsScratchVMX reports whether v falls in the volatile scratch vector
// range v32..v63.
func IsScratchVMX(v int) bool {
	return v >= 32 && v <= 63
}

// IsSavedGPR reports whether r is a callee-saved GPR (r14..r31).
func IsSavedGPR(r int) bool {
	return r >= 14 && r <= 31
}

// IsSavedFPR reports whether f is a callee-saved FPR (f14..f31).
func IsSavedFPR(f int) bool {
	return f >= 14 && f <= 31
}

// IsSavedVMX reports whether v is a callee-saved vector register
// (v14..v31 or v64..v127).
func IsSavedVMX(v int) bool {
	return (v >= 14 && v <= 31) || (v >= 64 && v <= 127)
}
