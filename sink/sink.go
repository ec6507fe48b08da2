// Package sink buffers recompiled functions and partitions them across
// output files, eliding writes to files whose content hasn't changed
// since the last run.
package sink

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// FuncsPerFile is the flush boundary: once this many functions have
// accumulated in the current batch, they are rendered to one
// ppc_recomp.<N>.cpp file and the batch resets.
const FuncsPerFile = 256

// Function is one recompiled function ready for output.
type Function struct {
	Name  string
	Lines []string
}

// Sink accumulates functions and partitions them into numbered source
// files plus the function-mapping table and shared headers a host
// build links against.
type Sink struct {
	outDir    string
	batch     []Function
	fileIndex int
	allNames  []string
}

// New returns a Sink writing under outDir, creating it if necessary.
func New(outDir string) (*Sink, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("sink: create out dir: %w", err)
	}
	return &Sink{outDir: outDir}, nil
}

// Add appends one recompiled function, flushing the batch to disk once
// it reaches FuncsPerFile.
func (s *Sink) Add(fn Function) error {
	s.batch = append(s.batch, fn)
	s.allNames = append(s.allNames, fn.Name)
	if len(s.batch) >= FuncsPerFile {
		return s.flush()
	}
	return nil
}

// Finish flushes any remaining partial batch and writes the shared
// header, config header, and function-mapping table.
func (s *Sink) Finish() error {
	if err := s.flush(); err != nil {
		return err
	}
	if err := s.writeIfChanged("ppc_config.h", []byte(configHeader)); err != nil {
		return err
	}
	if err := s.writeIfChanged("ppc_recomp_shared.h", []byte(sharedHeader(s.allNames))); err != nil {
		return err
	}
	return s.writeIfChanged("ppc_func_mapping.cpp", []byte(funcMapping(s.allNames)))
}

func (s *Sink) flush() error {
	if len(s.batch) == 0 {
		return nil
	}
	name := fmt.Sprintf("ppc_recomp.%d.cpp", s.fileIndex)
	s.fileIndex++

	var b strings.Builder
	b.WriteString("#include \"ppc_recomp_shared.h\"\n\n")
	for _, fn := range s.batch {
		for _, l := range fn.Lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	s.batch = s.batch[:0]
	return s.writeIfChanged(name, []byte(b.String()))
}

// writeIfChanged skips the write entirely when the existing file's
// fingerprint already matches the new content, so an unmodified
// function set never perturbs file mtimes between runs.
func (s *Sink) writeIfChanged(name string, content []byte) error {
	path := filepath.Join(s.outDir, name)

	if existing, err := os.ReadFile(path); err == nil {
		if fingerprint(existing) == fingerprint(content) {
			return nil
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("sink: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("sink: rename %s: %w", path, err)
	}
	return nil
}

// fingerprint is a 128-bit content digest built from two 64-bit xxhash
// passes: the second folds the first's output back into the input so
// the two halves aren't simple repeats of one pass.
func fingerprint(data []byte) [2]uint64 {
	lo := xxhash.Sum64(data)
	var tail [8]byte
	binary.LittleEndian.PutUint64(tail[:], lo)
	hi := xxhash.Sum64(append(data, tail[:]...))
	return [2]uint64{lo, hi}
}

func funcMapping(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("#include \"ppc_recomp_shared.h\"\n\n")
	b.WriteString("PPCFuncMapping PPCFuncMappings[] = {\n")
	for _, n := range sorted {
		fmt.Fprintf(&b, "\t{ %s_base, %s },\n", n, n)
	}
	b.WriteString("\t{ 0, nullptr },\n")
	b.WriteString("};\n")
	return b.String()
}

func sharedHeader(names []string) string {
	var b strings.Builder
	b.WriteString("#pragma once\n\n#include \"ppc_context.h\"\n\n")
	for _, n := range names {
		fmt.Fprintf(&b, "void %s(PPCContext& ctx, uint8_t* base);\n", n)
	}
	return b.String()
}

const configHeader = `#pragma once

// Generated configuration knobs consumed by every ppc_recomp.*.cpp unit.
#define PPC_CONFIG_SKIP_LR 0
#define PPC_CONFIG_SKIP_MSR 0
`
