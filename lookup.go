package ip2bin

import (
	"fmt"
	"math"
)

// resolveV4 binary-searches the IPv4 table for the row whose range contains
// key, returning the row's absolute 1-based file offset. The search bounds
// are narrowed by the index directory when the file carries one (keyed by
// the key's top 16 bits, one (low,high) row pair per entry).
func (db *DB) resolveV4(key uint32) (uint32, error) {
	if key == math.MaxUint32 {
		// the terminal sentinel row never matches directly
		key--
	}

	lo, hi := int64(0), int64(db.h.ip4Count)
	if db.h.ip4Index > 0 {
		pos := db.h.ip4Index + key>>16<<3
		l, err := db.r.u32(pos)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv4 index: %v", ErrInvalidDatabase, err)
		}
		h, err := db.r.u32(pos + 4)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv4 index: %v", ErrInvalidDatabase, err)
		}
		lo, hi = int64(l), int64(h)
	}

	width := uint32(db.h.columns) * 4
	for lo <= hi {
		mid := (lo + hi) >> 1
		off := db.h.ip4Base + uint32(mid)*width
		from, err := db.r.u32(off)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv4 row %d: %v", ErrInvalidDatabase, mid, err)
		}
		to, err := db.r.u32(off + width)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv4 row %d: %v", ErrInvalidDatabase, mid+1, err)
		}
		switch {
		case key < from:
			hi = mid - 1
		case key >= to:
			lo = mid + 1
		default:
			return off, nil
		}
	}
	return 0, ErrAddressNotFound
}

// resolveV6 is resolveV4 over the IPv6 table: 16-byte IP_FROM values and an
// index directory keyed by the address's top 16 bits.
func (db *DB) resolveV6(key uint128) (uint32, error) {
	if key.hi == ^uint64(0) && key.lo == ^uint64(0) {
		// the terminal sentinel row never matches directly
		key.lo--
	}

	lo, hi := int64(0), int64(db.h.ip6Count)
	if db.h.ip6Index > 0 {
		pos := db.h.ip6Index + uint32(key.hi>>48)<<3
		l, err := db.r.u32(pos)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv6 index: %v", ErrInvalidDatabase, err)
		}
		h, err := db.r.u32(pos + 4)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv6 index: %v", ErrInvalidDatabase, err)
		}
		lo, hi = int64(l), int64(h)
	}

	width := uint32(db.h.columns)*4 + 12
	for lo <= hi {
		mid := (lo + hi) >> 1
		off := db.h.ip6Base + uint32(mid)*width
		from, err := db.r.u128(off)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv6 row %d: %v", ErrInvalidDatabase, mid, err)
		}
		to, err := db.r.u128(off + width)
		if err != nil {
			return 0, fmt.Errorf("%w: IPv6 row %d: %v", ErrInvalidDatabase, mid+1, err)
		}
		switch {
		case key.Less(from):
			hi = mid - 1
		case !key.Less(to):
			lo = mid + 1
		default:
			return off, nil
		}
	}
	return 0, ErrAddressNotFound
}
