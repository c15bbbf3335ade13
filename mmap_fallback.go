//go:build !unix

package ip2bin

import (
	"io"
	"os"
)

// mapFile reads the whole file into memory on platforms without a usable
// memory map. Lookups behave identically, only open cost differs.
func mapFile(f *os.File, size int) ([]byte, func() error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}
