// Package wire provides the primitive byte-level codec shared by every
// message schema: fixed-width integer and IEEE-754 float encode/decode in
// little-endian wire order, plus affine scaled-integer <-> real conversions.
//
// The wire format is little-endian on every platform. This package never
// relies on host memory order or an unsafe reinterpret of a native float;
// every multi-byte value is assembled byte-by-byte through
// encoding/binary.LittleEndian, which is the fix for a real bug in the
// systems this spec was distilled from: an early C implementation's float
// codec special-cased a big-endian host by shifting
// "(JAUS_FLOAT_SIZE_BYTES-i-1)*8" into an accumulator and memcpy-ing the
// result over the float's bit pattern, which is both non-portable and, on
// at least one historical build, silently wrong on the UDP-framed send
// path. Writing the IEEE-754 bit pattern as a plain little-endian uint32/
// uint64 sidesteps the whole class of bug.
package wire

import (
	"encoding/binary"
	"math"
)

// Engine is the byte-order engine used for every wire operation in this
// module. JAUS is little-endian only (§6 "Payload endianness"), so this is
// not configurable per message the way mebo's EndianEngine is per blob;
// it exists as a named value so call sites read as intentional rather than
// as a bare package-level function, and so tests can assert against the
// same engine encoding/binary.LittleEndian exposes.
var Engine = binary.LittleEndian

// EncodeU8 writes v into buf[0]. Returns false if buf is empty.
func EncodeU8(v uint8, buf []byte) bool {
	if len(buf) < 1 {
		return false
	}
	buf[0] = v
	return true
}

// DecodeU8 reads a uint8 from buf[0].
func DecodeU8(buf []byte) (uint8, bool) {
	if len(buf) < 1 {
		return 0, false
	}
	return buf[0], true
}

// EncodeU16 writes v into buf[0:2], little-endian.
func EncodeU16(v uint16, buf []byte) bool {
	if len(buf) < 2 {
		return false
	}
	Engine.PutUint16(buf, v)
	return true
}

// DecodeU16 reads a little-endian uint16 from buf[0:2].
func DecodeU16(buf []byte) (uint16, bool) {
	if len(buf) < 2 {
		return 0, false
	}
	return Engine.Uint16(buf), true
}

// EncodeU32 writes v into buf[0:4], little-endian.
func EncodeU32(v uint32, buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	Engine.PutUint32(buf, v)
	return true
}

// DecodeU32 reads a little-endian uint32 from buf[0:4].
func DecodeU32(buf []byte) (uint32, bool) {
	if len(buf) < 4 {
		return 0, false
	}
	return Engine.Uint32(buf), true
}

// EncodeU64 writes v into buf[0:8], little-endian.
func EncodeU64(v uint64, buf []byte) bool {
	if len(buf) < 8 {
		return false
	}
	Engine.PutUint64(buf, v)
	return true
}

// DecodeU64 reads a little-endian uint64 from buf[0:8].
func DecodeU64(buf []byte) (uint64, bool) {
	if len(buf) < 8 {
		return 0, false
	}
	return Engine.Uint64(buf), true
}

// EncodeI8 writes v's two's-complement representation into buf[0].
func EncodeI8(v int8, buf []byte) bool {
	return EncodeU8(uint8(v), buf)
}

// DecodeI8 reads a two's-complement int8 from buf[0].
func DecodeI8(buf []byte) (int8, bool) {
	u, ok := DecodeU8(buf)
	return int8(u), ok
}

// EncodeI16 writes v's two's-complement representation into buf[0:2].
func EncodeI16(v int16, buf []byte) bool {
	return EncodeU16(uint16(v), buf)
}

// DecodeI16 reads a two's-complement int16 from buf[0:2].
func DecodeI16(buf []byte) (int16, bool) {
	u, ok := DecodeU16(buf)
	return int16(u), ok
}

// EncodeI32 writes v's two's-complement representation into buf[0:4].
func EncodeI32(v int32, buf []byte) bool {
	return EncodeU32(uint32(v), buf)
}

// DecodeI32 reads a two's-complement int32 from buf[0:4].
func DecodeI32(buf []byte) (int32, bool) {
	u, ok := DecodeU32(buf)
	return int32(u), ok
}

// EncodeI64 writes v's two's-complement representation into buf[0:8].
func EncodeI64(v int64, buf []byte) bool {
	return EncodeU64(uint64(v), buf)
}

// DecodeI64 reads a two's-complement int64 from buf[0:8].
func DecodeI64(buf []byte) (int64, bool) {
	u, ok := DecodeU64(buf)
	return int64(u), ok
}

// EncodeF32 writes the IEEE-754 bit pattern of v into buf[0:4], little-endian.
func EncodeF32(v float32, buf []byte) bool {
	return EncodeU32(math.Float32bits(v), buf)
}

// DecodeF32 reads a little-endian IEEE-754 float32 from buf[0:4].
func DecodeF32(buf []byte) (float32, bool) {
	u, ok := DecodeU32(buf)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(u), true
}

// EncodeF64 writes the IEEE-754 bit pattern of v into buf[0:8], little-endian.
func EncodeF64(v float64, buf []byte) bool {
	return EncodeU64(math.Float64bits(v), buf)
}

// DecodeF64 reads a little-endian IEEE-754 float64 from buf[0:8].
func DecodeF64(buf []byte) (float64, bool) {
	u, ok := DecodeU64(buf)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(u), true
}
