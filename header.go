package ip2bin

import "fmt"

// header is the fixed BIN file prefix, decoded once at open.
type header struct {
	product  Product
	dbType   uint8
	columns  uint8
	year     uint8
	month    uint8
	day      uint8
	ip4Count uint32
	ip4Base  uint32
	ip6Count uint32
	ip6Base  uint32
	ip4Index uint32
	ip6Index uint32
	license  uint8
	fileSize uint32
}

// readHeader decodes and validates the fixed file prefix. Offsets are
// 1-based per the BIN format: db_type@1, column_count@2, yy/mm/dd@3..5,
// then six u32s at 6/10/14/18/22/26, product and license codes at 30/31,
// and the file size at 32.
func readHeader(r *region) (h header, err error) {
	if r.len() < 64 {
		return h, fmt.Errorf("%w: file too small for header (%d bytes)", ErrInvalidDatabase, r.len())
	}
	h.dbType, _ = r.u8(1)
	h.columns, _ = r.u8(2)
	h.year, _ = r.u8(3)
	h.month, _ = r.u8(4)
	h.day, _ = r.u8(5)
	h.ip4Count, _ = r.u32(6)
	h.ip4Base, _ = r.u32(10)
	h.ip6Count, _ = r.u32(14)
	h.ip6Base, _ = r.u32(18)
	h.ip4Index, _ = r.u32(22)
	h.ip6Index, _ = r.u32(26)
	productCode, _ := r.u8(30)
	h.license, _ = r.u8(31)
	h.fileSize, _ = r.u32(32)

	if h.dbType == 'P' && h.columns == 'K' {
		return h, fmt.Errorf("%w: file is zipped", ErrInvalidDatabase)
	}

	switch productCode {
	case uint8(ProductLocation), uint8(ProductProxy):
		h.product = Product(productCode)
	case 0:
		// pre-2021 files have no product code; they are Location databases
		if h.year > 20 {
			return h, fmt.Errorf("%w: unknown product code %d", ErrInvalidDatabase, productCode)
		}
		h.product = ProductLocation
	default:
		return h, fmt.Errorf("%w: unknown product code %d", ErrInvalidDatabase, productCode)
	}

	if h.dbType == 0 || h.dbType > h.product.maxType() {
		return h, fmt.Errorf("%w: unsupported %s type %d", ErrInvalidDatabase, h.product, h.dbType)
	}
	if h.columns == 0 {
		return h, fmt.Errorf("%w: zero column count", ErrInvalidDatabase)
	}
	if h.month == 0 || h.month > 12 || h.day == 0 || h.day > 31 {
		return h, fmt.Errorf("%w: bad date 20%02d-%02d-%02d", ErrInvalidDatabase, h.year, h.month, h.day)
	}
	if h.ip4Count != 0 || h.ip6Count != 0 {
		if h.ip4Count != 0 && h.ip4Base == 0 {
			return h, fmt.Errorf("%w: missing IPv4 table base address", ErrInvalidDatabase)
		}
		if h.ip6Count != 0 && h.ip6Base == 0 {
			return h, fmt.Errorf("%w: missing IPv6 table base address", ErrInvalidDatabase)
		}
	} else {
		return h, fmt.Errorf("%w: database has no ranges", ErrInvalidDatabase)
	}

	// row tables must fit inside the file; the sentinel row after each
	// table is not part of this check
	w4 := uint64(h.columns) * 4
	if h.ip4Count != 0 && uint64(h.ip4Base)-1+uint64(h.ip4Count)*w4 > uint64(r.len()) {
		return h, fmt.Errorf("%w: IPv4 table extends past end of file", ErrInvalidDatabase)
	}
	w6 := uint64(h.columns)*4 + 12
	if h.ip6Count != 0 && uint64(h.ip6Base)-1+uint64(h.ip6Count)*w6 > uint64(r.len()) {
		return h, fmt.Errorf("%w: IPv6 table extends past end of file", ErrInvalidDatabase)
	}
	return h, nil
}
