package image

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// flat container magic: "PRCF" (PPC Recomp Container Flat).
var flatMagic = [4]byte{'P', 'R', 'C', 'F'}

// FlatLoader loads the reference flat container format used by this
// repository's tests and CLI smoke tests in place of a production
// XEX/PE parser; a production image format is an external collaborator
// reachable only through the Loader interface.
//
// Layout (all header integers little-endian, host-side metadata; the
// code section itself is the guest's big-endian byte stream):
//
//	magic        [4]byte  "PRCF"
//	baseAddress  uint32
//	codeSize     uint32
//	numFunctions uint32
//	numSymbols   uint32
//	functions    numFunctions * {base uint32, size uint32}
//	symbols      numSymbols * {address uint32, kind uint8, nameLen uint16, name []byte}
//	code         codeSize bytes
type FlatLoader struct{}

func (FlatLoader) Load(path string) (*Image, error) {
	data, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("image: open %s: %w", path, err)
	}
	return parseFlat(data)
}

func parseFlat(data []byte) (*Image, error) {
	if len(data) < 20 || !bytes.Equal(data[:4], flatMagic[:]) {
		return nil, fmt.Errorf("image: not a flat container (bad magic)")
	}
	base := binary.LittleEndian.Uint32(data[4:8])
	codeSize := binary.LittleEndian.Uint32(data[8:12])
	numFuncs := binary.LittleEndian.Uint32(data[12:16])
	numSyms := binary.LittleEndian.Uint32(data[16:20])

	off := 20
	funcs := make([]Function, 0, numFuncs)
	for i := uint32(0); i < numFuncs; i++ {
		if off+8 > len(data) {
			return nil, fmt.Errorf("image: truncated function table")
		}
		funcs = append(funcs, Function{
			Base: binary.LittleEndian.Uint32(data[off : off+4]),
			Size: binary.LittleEndian.Uint32(data[off+4 : off+8]),
		})
		off += 8
	}

	syms := make([]Symbol, 0, numSyms)
	for i := uint32(0); i < numSyms; i++ {
		if off+7 > len(data) {
			return nil, fmt.Errorf("image: truncated symbol table")
		}
		addr := binary.LittleEndian.Uint32(data[off : off+4])
		kind := SymbolKind(data[off+4])
		nameLen := int(binary.LittleEndian.Uint16(data[off+5 : off+7]))
		off += 7
		if off+nameLen > len(data) {
			return nil, fmt.Errorf("image: truncated symbol name")
		}
		name := string(data[off : off+nameLen])
		off += nameLen
		syms = append(syms, Symbol{Address: addr, Name: name, Kind: kind})
	}

	if off+int(codeSize) > len(data) {
		return nil, fmt.Errorf("image: truncated code section")
	}
	code := data[off : off+int(codeSize)]

	return &Image{
		Buffer:    NewBuffer(code, base),
		Functions: funcs,
		Symbols:   syms,
	}, nil
}

// mapFile reads the file contents. On platforms where mmap-ing a
// read-only view is worthwhile, mmapFile (build-tag gated) is used
// instead; both return the same []byte shape.
func mapFile(path string) ([]byte, error) {
	if data, err := mmapFile(path); err == nil {
		return data, nil
	}
	return os.ReadFile(path)
}
