//go:build !(linux || darwin)

package image

import "os"

// mmapFile has no portable implementation on this platform; mapFile
// falls back to a plain read.
func mmapFile(path string) ([]byte, error) {
	return nil, os.ErrNotExist
}
