package guest

import "testing"

func TestDeclarationsCanonicalOrder(t *testing.T) {
	l := &LocalVariables{}
	l.EA = true
	l.R[5] = true
	l.CTR = true
	l.CR[2] = true
	l.VTemp = true
	l.F[1] = true

	got := l.Declarations()
	want := []string{
		"PPCRegister ctr;",
		"PPCCRRegister cr2;",
		"PPCRegister r5;",
		"PPCRegister f1;",
		"PPCVRegister vTemp;",
		"uint32_t ea;",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d declarations, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("declaration %d: want %q, got %q (full: %v)", i, want[i], got[i], got)
		}
	}
}

func TestDeclarationsEmptyWhenNothingUsed(t *testing.T) {
	l := &LocalVariables{}
	if got := l.Declarations(); len(got) != 0 {
		t.Fatalf("expected no declarations, got %v", got)
	}
}
