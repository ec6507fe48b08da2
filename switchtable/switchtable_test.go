package switchtable

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArmConsumeSingleShot(t *testing.T) {
	s := NewStore()
	s.Add(Table{Base: 0x1000, Reg: 11, Labels: []uint32{0x1010, 0x1020}})

	if !s.Arm(0x1000) {
		t.Fatalf("expected Arm to succeed for a known base address")
	}
	if !s.Armed() {
		t.Fatalf("expected the store to report armed after Arm")
	}
	// A second Arm call before Consume must not replace or re-arm.
	if s.Arm(0x1000) {
		t.Fatalf("expected a second Arm to fail while already armed")
	}

	table, ok := s.Consume()
	if !ok || table.Base != 0x1000 || len(table.Labels) != 2 {
		t.Fatalf("unexpected consumed table: %+v ok=%v", table, ok)
	}
	if s.Armed() {
		t.Fatalf("expected the store to be unarmed after Consume")
	}
	if _, ok := s.Consume(); ok {
		t.Fatalf("expected a second Consume to find nothing armed")
	}
}

func TestArmUnknownBaseIsNoop(t *testing.T) {
	s := NewStore()
	if s.Arm(0xDEAD) {
		t.Fatalf("expected Arm to fail for an address with no table")
	}
}

func TestInRangeFiltersByBranchSiteAddress(t *testing.T) {
	s := NewStore()
	s.Add(Table{Base: 0x1000, Reg: 11, Labels: []uint32{0x1010}})
	s.Add(Table{Base: 0x2000, Reg: 3, Labels: []uint32{0x2010}})

	tables := s.InRange(0x1000, 0x100)
	if len(tables) != 1 || tables[0].Base != 0x1000 {
		t.Fatalf("expected only the in-range table, got %+v", tables)
	}

	if len(s.InRange(0x3000, 0x100)) != 0 {
		t.Fatalf("expected no tables in an unrelated range")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "switches.toml")
	doc := `
[[switch]]
base = 0x82a2f1a0
r = 11
labels = [0x82a2f1b0, 0x82a2f1c0]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	table, ok := store.Lookup(0x82a2f1a0)
	if !ok {
		t.Fatalf("expected a table at 0x82a2f1a0")
	}
	if table.Reg != 11 || len(table.Labels) != 2 || table.Labels[1] != 0x82a2f1c0 {
		t.Fatalf("unexpected table contents: %+v", table)
	}
}
