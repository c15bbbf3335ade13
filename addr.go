package ip2bin

import (
	"encoding/binary"
	"net/netip"
)

// uint128 represents a 128-bit unsigned integer using two uint64s.
type uint128 struct {
	hi uint64
	lo uint64
}

// Less returns true if n < v.
func (n uint128) Less(v uint128) bool {
	return n.hi < v.hi || (n.hi == v.hi && n.lo < v.lo)
}

// canonicalKey converts an address into the numeric key used for range
// lookup and selects the table to search. IPv6 addresses embedding an IPv4
// address (v4-mapped, 6to4, Teredo) are routed to the IPv4 table.
func canonicalKey(a netip.Addr) (key uint128, is4 bool) {
	b := a.As16()
	key = uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
	switch {
	case key.hi>>48 == 0x2002:
		// 6to4 -> v4mapped
		key.hi, key.lo = 0, (key.hi>>16)&0xffffffff|0xffff00000000
	case key.hi>>32 == 0x20010000:
		// teredo -> v4mapped
		key.hi, key.lo = 0, (^key.lo)&0xffffffff|0xffff00000000
	}
	if key.hi == 0 && key.lo>>32 == 0xffff {
		// v4mapped -> v4
		key.lo &= 0xffffffff
		is4 = true
	}
	return key, is4
}
