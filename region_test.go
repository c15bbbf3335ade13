package ip2bin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionReads(t *testing.T) {
	r := &region{data: []byte{
		0x01, 0x02, 0x03, 0x04, // u32 0x04030201 at offset 1
		0x00, 0x00, 0x80, 0x3f, // 1.0f at offset 5
		0x05, 'h', 'e', 'l', 'l', 'o',
	}}

	v8, err := r.u8(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)

	v32, err := r.u32(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v32)

	f, err := r.f32(5)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f)

	s, err := r.pstring(9)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestRegionBounds(t *testing.T) {
	r := &region{data: make([]byte, 16)}

	_, err := r.u8(0)
	assert.Error(t, err, "offsets are 1-based")
	_, err = r.u8(17)
	assert.Error(t, err)
	_, err = r.u32(14)
	assert.Error(t, err)
	_, err = r.u128(2)
	assert.Error(t, err)

	_, err = r.u32(13)
	assert.NoError(t, err)
	_, err = r.u128(1)
	assert.NoError(t, err)
}

func TestRegionPstringTruncated(t *testing.T) {
	r := &region{data: []byte{0x05, 'h', 'i'}}
	_, err := r.pstring(1)
	assert.Error(t, err, "length byte claims more than the file holds")

	r = &region{data: []byte{0x00}}
	s, err := r.pstring(1)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestRegionU128ByteOrder(t *testing.T) {
	// stored low half first, both halves little-endian
	data := make([]byte, 16)
	data[0] = 0x01 // lo = 1
	data[15] = 0x20
	r := &region{data: data}

	v, err := r.u128(1)
	require.NoError(t, err)
	assert.Equal(t, uint128{hi: 0x2000000000000000, lo: 1}, v)
}

func TestRegionF32NaN(t *testing.T) {
	data := make([]byte, 4)
	data[2], data[3] = 0xc0, 0x7f
	r := &region{data: data}

	f, err := r.f32(1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(f)))
}
