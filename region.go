package ip2bin

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// region is a read-only view over the mapped database file. All offsets are
// 1-based, matching the BIN format literature; every read is bounds-checked
// so a corrupt file can never cause a panic.
type region struct {
	data []byte
}

func (r *region) len() uint32 {
	return uint32(len(r.data))
}

func (r *region) u8(off uint32) (uint8, error) {
	if off == 0 || off > r.len() {
		return 0, fmt.Errorf("read u8 at %d: past end of file (%d bytes)", off, r.len())
	}
	return r.data[off-1], nil
}

func (r *region) u32(off uint32) (uint32, error) {
	if off == 0 || uint64(off)+3 > uint64(r.len()) {
		return 0, fmt.Errorf("read u32 at %d: past end of file (%d bytes)", off, r.len())
	}
	return binary.LittleEndian.Uint32(r.data[off-1:]), nil
}

func (r *region) f32(off uint32) (float32, error) {
	u, err := r.u32(off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// u128 reads a 128-bit IP_FROM value. The 16 bytes are stored in reverse
// network order, so the low half comes first.
func (r *region) u128(off uint32) (uint128, error) {
	if off == 0 || uint64(off)+15 > uint64(r.len()) {
		return uint128{}, fmt.Errorf("read u128 at %d: past end of file (%d bytes)", off, r.len())
	}
	b := r.data[off-1:]
	return uint128{
		hi: binary.LittleEndian.Uint64(b[8:16]),
		lo: binary.LittleEndian.Uint64(b[0:8]),
	}, nil
}

// pstring reads a length-prefixed string: one length byte followed by that
// many bytes of UTF-8. The returned string shares the mapped region's
// backing memory and must not outlive the DB.
func (r *region) pstring(off uint32) (string, error) {
	n, err := r.u8(off)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if uint64(off)+uint64(n) > uint64(r.len()) {
		return "", fmt.Errorf("read string at %d: %d bytes past end of file (%d bytes)", off, n, r.len())
	}
	return unsafe.String(&r.data[off], int(n)), nil
}
