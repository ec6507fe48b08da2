// Package switchtable loads and indexes the side-channel table that
// tells the recompiler how to lower a computed jump (bctr) into a
// switch statement, since the jump table itself lives in guest data and
// cannot be recovered from the instruction alone.
package switchtable

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Table is one armed switch-table entry: the branch-site address that
// owns it, the GPR holding the case value at that site, and the
// ordered list of intra-function jump targets indexed by case value.
type Table struct {
	Base   uint32   `toml:"base"`
	Reg    uint8    `toml:"r"`
	Labels []uint32 `toml:"labels"`
}

type document struct {
	Switch []Table `toml:"switch"`
}

// Store is a read-only-after-load mapping from branch-site address to
// Table, plus the single-slot "armed" iterator a BCTR opcode consumes.
type Store struct {
	byBase map[uint32]Table
	armed  *Table
}

// NewStore returns an empty store, useful for tests that construct
// tables programmatically instead of loading a document.
func NewStore() *Store {
	return &Store{byBase: make(map[uint32]Table)}
}

// Load parses a TOML document of the form:
//
//	[[switch]]
//	base = 0x82a2f1a0
//	r = 11
//	labels = [0x82a2f1b0, 0x82a2f1c0]
func Load(path string) (*Store, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("switchtable: parse %s: %w", path, err)
	}
	s := NewStore()
	for _, t := range doc.Switch {
		s.byBase[t.Base] = t
	}
	return s, nil
}

// Add registers a table directly, for tests and for image-embedded
// switch data.
func (s *Store) Add(t Table) {
	s.byBase[t.Base] = t
}

// Lookup returns the table at a branch-site address, if any.
func (s *Store) Lookup(addr uint32) (Table, bool) {
	t, ok := s.byBase[addr]
	return t, ok
}

// Arm records that the table at addr (if one exists) should be consumed
// by the next BCTR seen during emission, unless a table is already
// armed. Returns true if a table was armed by this call.
func (s *Store) Arm(addr uint32) bool {
	if s.armed != nil {
		return false
	}
	if t, ok := s.byBase[addr]; ok {
		s.armed = &t
		return true
	}
	return false
}

// Consume clears and returns the currently armed table, if any. After
// consumption no further opcode sees it armed; a function body may
// consume multiple distinct entries sequentially via repeated
// Arm/Consume pairs.
func (s *Store) Consume() (Table, bool) {
	if s.armed == nil {
		return Table{}, false
	}
	t := *s.armed
	s.armed = nil
	return t, true
}

// Armed reports whether a table is currently armed, without consuming it.
func (s *Store) Armed() bool {
	return s.armed != nil
}

// InRange returns every table whose branch-site address falls within
// [base, base+size), for label discovery: a switch-table target is a
// valid intra-function label even when nothing else branches to it
// directly.
func (s *Store) InRange(base, size uint32) []Table {
	var out []Table
	for addr, t := range s.byBase {
		if addr >= base && addr < base+size {
			out = append(out, t)
		}
	}
	return out
}
