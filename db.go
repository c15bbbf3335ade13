// Package ip2bin reads IP2Location and IP2Proxy binary databases.
//
// A database file is memory-mapped at open time; lookups are read-only
// binary searches over the mapped region and are safe to run concurrently
// without synchronization. String fields in returned records share the
// mapped region's memory, so records must not be used after Close.
package ip2bin

import (
	"fmt"
	"math"
	"net/netip"
	"os"
	"strconv"
)

// DB is an open IP2Location or IP2Proxy database. It is immutable after
// open and freely shareable across goroutines.
type DB struct {
	r      region
	h      header
	fields Field
	unmap  func() error
}

// FromFile opens the BIN database at path, memory-mapping it read-only.
func FromFile(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	size := fi.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidDatabase)
	}
	if size > math.MaxUint32 {
		return nil, fmt.Errorf("%w: file too large (%d bytes)", ErrInvalidDatabase, size)
	}

	data, unmap, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("map database: %w", err)
	}
	db, err := newDB(data, unmap)
	if err != nil && unmap != nil {
		unmap()
	}
	return db, err
}

// FromBytes opens a BIN database from an in-memory image. The DB keeps a
// reference to data; the caller must not modify it.
func FromBytes(data []byte) (*DB, error) {
	return newDB(data, nil)
}

func newDB(data []byte, unmap func() error) (*DB, error) {
	db := &DB{r: region{data: data}, unmap: unmap}
	h, err := readHeader(&db.r)
	if err != nil {
		return nil, err
	}
	db.h = h
	db.fields = fieldsFor(h.product, h.dbType)
	return db, nil
}

// Close releases the file mapping. Records returned by earlier lookups must
// not be used afterwards. Close must not be called concurrently with
// lookups.
func (db *DB) Close() error {
	db.r.data = nil
	if db.unmap != nil {
		unmap := db.unmap
		db.unmap = nil
		return unmap()
	}
	return nil
}

// Product returns the database product.
func (db *DB) Product() Product {
	return db.h.product
}

// DBType returns the database's type code (the N in DBN/PXN), which selects
// the column layout.
func (db *DB) DBType() uint8 {
	return db.h.dbType
}

// Columns returns the number of columns per row, IP_FROM included.
func (db *DB) Columns() uint8 {
	return db.h.columns
}

// Date returns the database release date.
func (db *DB) Date() (year, month, day int) {
	return 2000 + int(db.h.year), int(db.h.month), int(db.h.day)
}

// Version formats the release date as YYYY-MM-DD.
func (db *DB) Version() string {
	return fmt.Sprintf("20%02d-%02d-%02d", db.h.year, db.h.month, db.h.day)
}

// Has reports whether the database's type carries f.
func (db *DB) Has(f Field) bool {
	return db.fields&f != 0
}

// HasIPv4 reports whether the database contains IPv4 ranges.
func (db *DB) HasIPv4() bool {
	return db.h.ip4Count != 0
}

// HasIPv6 reports whether the database contains IPv6 ranges.
func (db *DB) HasIPv6() bool {
	return db.h.ip6Count != 0
}

// String returns a human-readable description of the database.
func (db *DB) String() string {
	s := make([]byte, 0, 256)
	s = append(s, db.h.product.String()...)
	s = append(s, ' ')
	s = append(s, db.h.product.prefix()...)
	s = strconv.AppendInt(s, int64(db.h.dbType), 10)
	s = append(s, ' ')
	s = append(s, db.Version()...)
	s = append(s, " ["...)
	for n, f := 0, Field(1); f < fieldMax; f <<= 1 {
		if db.Has(f) {
			if n != 0 {
				s = append(s, ',')
			}
			s = append(s, f.String()...)
			n++
		}
	}
	s = append(s, "] ("...)
	if v4, v6 := db.HasIPv4(), db.HasIPv6(); v4 && !v6 {
		s = append(s, "IPv4"...)
	} else if !v4 && v6 {
		s = append(s, "IPv6"...)
	} else {
		s = append(s, "IPv4+IPv6"...)
	}
	s = append(s, ')')
	return string(s)
}

// LookupString parses ip and calls IPLookup.
func (db *DB) LookupString(ip string) (Record, error) {
	a, err := netip.ParseAddr(ip)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return db.IPLookup(a)
}

// IPLookup resolves a to its database row and decodes it. The returned
// record's IP field carries a's canonical text, and its string fields
// share the mapped file's memory.
func (db *DB) IPLookup(a netip.Addr) (Record, error) {
	if !a.IsValid() {
		return Record{}, ErrInvalidAddress
	}

	key, is4 := canonicalKey(a)

	var rowOff, iplen uint32
	var err error
	if is4 {
		if !db.HasIPv4() {
			return Record{}, fmt.Errorf("%w: database has no IPv4 ranges", ErrAddressNotSupported)
		}
		iplen = 4
		rowOff, err = db.resolveV4(uint32(key.lo))
	} else {
		if !db.HasIPv6() {
			return Record{}, fmt.Errorf("%w: database has no IPv6 ranges", ErrAddressNotSupported)
		}
		iplen = 16
		rowOff, err = db.resolveV6(key)
	}
	if err != nil {
		return Record{}, err
	}

	switch db.h.product {
	case ProductProxy:
		rec, err := db.materializeProxy(rowOff, iplen)
		if err != nil {
			return Record{}, err
		}
		rec.IP = a.String()
		return Record{Proxy: rec}, nil
	default:
		rec, err := db.materializeLocation(rowOff, iplen)
		if err != nil {
			return Record{}, err
		}
		rec.IP = a.String()
		return Record{Location: rec}, nil
	}
}
