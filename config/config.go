// Package config loads the recompiler's Config knobs from a TOML
// document, the same document family the switch-table store reads.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/xenonrecomp/ppcrecomp/guest"
)

// document mirrors guest.Config with TOML field tags; kept separate so
// guest.Config stays free of serialization concerns.
type document struct {
	SkipLR  bool `toml:"skip_lr"`
	SkipMSR bool `toml:"skip_msr"`

	CTRAsLocalVariable      bool `toml:"ctr_as_local_variable"`
	XERAsLocalVariable      bool `toml:"xer_as_local_variable"`
	ReservedAsLocalVariable bool `toml:"reserved_as_local_variable"`
	CRRegistersAsLocals     bool `toml:"cr_registers_as_locals"`

	NonArgumentRegistersAsLocals bool `toml:"non_argument_registers_as_locals"`
	NonVolatileRegistersAsLocals bool `toml:"non_volatile_registers_as_locals"`

	SetJmpAddress  uint32 `toml:"set_jmp_address"`
	LongJmpAddress uint32 `toml:"long_jmp_address"`
}

// Load parses a Config TOML document. A missing file is not implicitly
// defaulted by this function - callers that want DefaultConfig() on a
// missing path should check os.IsNotExist themselves.
func Load(path string) (guest.Config, error) {
	var d document
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return guest.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return guest.Config{
		SkipLR:                       d.SkipLR,
		SkipMSR:                      d.SkipMSR,
		CTRAsLocalVariable:           d.CTRAsLocalVariable,
		XERAsLocalVariable:           d.XERAsLocalVariable,
		ReservedAsLocalVariable:      d.ReservedAsLocalVariable,
		CRRegistersAsLocals:          d.CRRegistersAsLocals,
		NonArgumentRegistersAsLocals: d.NonArgumentRegistersAsLocals,
		NonVolatileRegistersAsLocals: d.NonVolatileRegistersAsLocals,
		SetJmpAddress:                d.SetJmpAddress,
		LongJmpAddress:               d.LongJmpAddress,
	}, nil
}
