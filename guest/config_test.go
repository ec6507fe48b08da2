package guest

import "testing"

func TestShadowFPRScratchAndSaved(t *testing.T) {
	scratch := Config{NonArgumentRegistersAsLocals: true}
	if !scratch.ShadowFPR(0) {
		t.Fatalf("expected f0 to shadow under non-argument config")
	}
	if scratch.ShadowFPR(20) {
		t.Fatalf("expected f20 to stay context-resident under non-argument config")
	}

	saved := Config{NonVolatileRegistersAsLocals: true}
	if !saved.ShadowFPR(20) {
		t.Fatalf("expected f20 to shadow under non-volatile config")
	}
	if saved.ShadowFPR(0) {
		t.Fatalf("expected f0 to stay context-resident under non-volatile config")
	}
}

func TestShadowVMXCombinesBothKnobs(t *testing.T) {
	cfg := Config{NonArgumentRegistersAsLocals: true, NonVolatileRegistersAsLocals: true}
	if !cfg.ShadowVMX(40) {
		t.Fatalf("expected scratch v40 to shadow")
	}
	if !cfg.ShadowVMX(20) {
		t.Fatalf("expected saved v20 to shadow")
	}
	if cfg.ShadowVMX(100) != IsSavedVMX(100) {
		t.Fatalf("expected v100 shadow decision to track IsSavedVMX")
	}
	if cfg.ShadowVMX(5) {
		t.Fatalf("expected non-scratch non-saved v5 to stay context-resident")
	}
}

func TestDefaultConfigShadowsNothing(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ShadowGPR(0) || cfg.ShadowFPR(0) || cfg.ShadowVMX(32) || cfg.ShadowCR(0) {
		t.Fatalf("expected the default config to shadow nothing")
	}
}
