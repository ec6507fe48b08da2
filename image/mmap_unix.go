//go:build linux || darwin

package image

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile memory-maps path read-only, keeping the image file-backed
// instead of copied into the Go heap for the duration of the run.
func mmapFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return nil, os.ErrInvalid
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return data, nil
}
