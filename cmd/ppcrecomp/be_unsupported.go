//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// The recompiler targets a little-endian x86-64 host runtime; PPC_LOAD_U*/
// PPC_STORE_U* byte-swap assuming that the host itself is little-endian.
var _ = "ppcrecomp requires a little-endian host architecture" + 1
