package ip2bin

import "errors"

var (
	// ErrInvalidDatabase is returned when the file is not a valid
	// IP2Location or IP2Proxy BIN database (unknown product code,
	// inconsistent header fields, or a truncated file).
	ErrInvalidDatabase = errors.New("invalid BIN database (ensure you are using an up-to-date IP2Location/IP2Proxy BIN file)")

	// ErrInvalidAddress is returned when the queried IP address cannot be
	// parsed.
	ErrInvalidAddress = errors.New("invalid IP address")

	// ErrAddressNotSupported is returned when the address maps to a table
	// the database does not contain (e.g. a native IPv6 query against an
	// IPv4-only database).
	ErrAddressNotSupported = errors.New("IP address not supported by this database")

	// ErrAddressNotFound is returned when the address does not fall within
	// any range in the database.
	ErrAddressNotFound = errors.New("IP address not found")

	// ErrRecordNotFound is returned when a matched row references data
	// outside the file.
	ErrRecordNotFound = errors.New("record not found")
)
