package guest

import "testing"

func TestIsScratchGPR(t *testing.T) {
	for _, r := range []int{0, 2, 11, 12} {
		if !IsScratchGPR(r) {
			t.Fatalf("expected r%d to be scratch", r)
		}
	}
	for _, r := range []int{1, 3, 10, 13, 31} {
		if IsScratchGPR(r) {
			t.Fatalf("expected r%d to not be scratch", r)
		}
	}
}

func TestIsSavedGPRBoundaries(t *testing.T) {
	if IsSavedGPR(13) {
		t.Fatalf("expected r13 to fall outside the saved range")
	}
	if !IsSavedGPR(14) || !IsSavedGPR(31) {
		t.Fatalf("expected r14 and r31 to be saved boundary values")
	}
	if IsSavedGPR(32) {
		t.Fatalf("expected r32 to fall outside the GPR saved range")
	}
}

func TestIsSavedVMXBothRanges(t *testing.T) {
	if !IsSavedVMX(14) || !IsSavedVMX(31) {
		t.Fatalf("expected v14 and v31 to be saved")
	}
	if !IsSavedVMX(64) || !IsSavedVMX(127) {
		t.Fatalf("expected v64 and v127 to be saved")
	}
	if IsSavedVMX(32) || IsSavedVMX(63) || IsSavedVMX(13) {
		t.Fatalf("expected scratch/volatile vector registers to not be saved")
	}
}

func TestIsScratchVMXRange(t *testing.T) {
	if !IsScratchVMX(32) || !IsScratchVMX(63) {
		t.Fatalf("expected v32 and v63 to be scratch boundary values")
	}
	if IsScratchVMX(31) || IsScratchVMX(64) {
		t.Fatalf("expected v31 and v64 to fall outside the scratch range")
	}
}
