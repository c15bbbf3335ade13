package ip2bin

import "encoding/binary"

// binFile assembles a syntactically valid BIN database image in memory:
// 64-byte header, string pool, row tables (each terminated by a sentinel
// row), and optional index directories. Rows must be appended in ascending
// IP_FROM order.
type binFile struct {
	product uint8
	dbType  uint8
	columns uint8
	year    uint8
	month   uint8
	day     uint8

	pool []byte
	v4   []v4row
	v6   []v6row

	v4Index bool
	v6Index bool
}

type v4row struct {
	from uint32
	cols []uint32
}

type v6row struct {
	hi, lo uint64
	cols   []uint32
}

func newBinFile(product Product, dbType, columns uint8) *binFile {
	return &binFile{
		product: uint8(product),
		dbType:  dbType,
		columns: columns,
		year:    24,
		month:   6,
		day:     1,
	}
}

// addStr appends a length-prefixed string to the pool and returns its
// 0-based file offset, as stored in pointer columns.
func (b *binFile) addStr(s string) uint32 {
	off := uint32(64 + len(b.pool))
	b.pool = append(b.pool, byte(len(s)))
	b.pool = append(b.pool, s...)
	return off
}

// addCountry appends a short code and long name back to back, the way the
// real format stores countries, and returns the shared pointer. The long
// name always lands at pointer+3, so short codes under two characters
// (the "-" placeholder) are padded.
func (b *binFile) addCountry(short, long string) uint32 {
	if len(short) > 2 {
		panic("country short code must be at most 2 chars")
	}
	off := b.addStr(short)
	for uint32(64+len(b.pool)) < off+3 {
		b.pool = append(b.pool, 0)
	}
	b.addStr(long)
	return off
}

func (b *binFile) addV4(from uint32, cols ...uint32) {
	b.v4 = append(b.v4, v4row{from: from, cols: cols})
}

func (b *binFile) addV6(hi, lo uint64, cols ...uint32) {
	b.v6 = append(b.v6, v6row{hi: hi, lo: lo, cols: cols})
}

func (b *binFile) bytes() []byte {
	w4 := int(b.columns) * 4
	w6 := int(b.columns)*4 + 12

	cur := 64 + len(b.pool)
	var base4, base6, idx4, idx6 int
	if len(b.v4) > 0 {
		base4 = cur
		cur += (len(b.v4) + 1) * w4
	}
	if len(b.v6) > 0 {
		base6 = cur
		cur += (len(b.v6) + 1) * w6
	}
	if b.v4Index {
		idx4 = cur
		cur += 65536 * 8
	}
	if b.v6Index {
		idx6 = cur
		cur += 65536 * 8
	}

	buf := make([]byte, cur)
	le := binary.LittleEndian

	buf[0] = b.dbType
	buf[1] = b.columns
	buf[2], buf[3], buf[4] = b.year, b.month, b.day
	le.PutUint32(buf[5:], uint32(len(b.v4)))
	if base4 != 0 {
		le.PutUint32(buf[9:], uint32(base4+1))
	}
	le.PutUint32(buf[13:], uint32(len(b.v6)))
	if base6 != 0 {
		le.PutUint32(buf[17:], uint32(base6+1))
	}
	if idx4 != 0 {
		le.PutUint32(buf[21:], uint32(idx4+1))
	}
	if idx6 != 0 {
		le.PutUint32(buf[25:], uint32(idx6+1))
	}
	buf[29] = b.product
	buf[30] = 1
	le.PutUint32(buf[31:], uint32(len(buf)))

	copy(buf[64:], b.pool)

	for i, row := range b.v4 {
		off := base4 + i*w4
		le.PutUint32(buf[off:], row.from)
		for j, c := range row.cols {
			le.PutUint32(buf[off+4+4*j:], c)
		}
	}
	if len(b.v4) > 0 {
		le.PutUint32(buf[base4+len(b.v4)*w4:], 0xffffffff)
	}

	for i, row := range b.v6 {
		off := base6 + i*w6
		le.PutUint64(buf[off:], row.lo)
		le.PutUint64(buf[off+8:], row.hi)
		for j, c := range row.cols {
			le.PutUint32(buf[off+16+4*j:], c)
		}
	}
	if len(b.v6) > 0 {
		off := base6 + len(b.v6)*w6
		le.PutUint64(buf[off:], ^uint64(0))
		le.PutUint64(buf[off+8:], ^uint64(0))
	}

	if idx4 != 0 {
		b.fillIndexV4(buf, idx4)
	}
	if idx6 != 0 {
		b.fillIndexV6(buf, idx6)
	}
	return buf
}

// fillIndexV4 populates the 65536-entry directory: for each /16 prefix, the
// first and last row whose range intersects it.
func (b *binFile) fillIndexV4(buf []byte, idx int) {
	le := binary.LittleEndian
	for p := 0; p < 65536; p++ {
		pStart := uint32(p) << 16
		pEnd := pStart | 0xffff // inclusive
		lo, hi, found := 0, 0, false
		for i, row := range b.v4 {
			to := uint32(0xffffffff) // exclusive
			if i+1 < len(b.v4) {
				to = b.v4[i+1].from
			}
			if row.from <= pEnd && to > pStart {
				if !found {
					lo, found = i, true
				}
				hi = i
			}
		}
		le.PutUint32(buf[idx+p*8:], uint32(lo))
		le.PutUint32(buf[idx+p*8+4:], uint32(hi))
	}
}

func (b *binFile) fillIndexV6(buf []byte, idx int) {
	le := binary.LittleEndian
	for p := 0; p < 65536; p++ {
		pStart := uint64(p) << 48
		pEnd := pStart | 0xffffffffffff // inclusive hi-half bound
		lo, hi, found := 0, 0, false
		for i, row := range b.v6 {
			toHi, toLo := ^uint64(0), ^uint64(0) // exclusive
			if i+1 < len(b.v6) {
				toHi, toLo = b.v6[i+1].hi, b.v6[i+1].lo
			}
			after := toHi > pStart || (toHi == pStart && toLo > 0)
			if row.hi <= pEnd && after {
				if !found {
					lo, found = i, true
				}
				hi = i
			}
		}
		le.PutUint32(buf[idx+p*8:], uint32(lo))
		le.PutUint32(buf[idx+p*8+4:], uint32(hi))
	}
}
