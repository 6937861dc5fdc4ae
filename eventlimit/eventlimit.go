// Package eventlimit implements the Event Limit tagged variant: a 1-byte
// discriminator followed by a value whose width and encoding depend on
// that discriminator. CreateEvent's lowerLimit/upperLimit/stateLimit
// fields, and a world-model feature class's attribute field, are both
// instances of this same shape.
package eventlimit

import (
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/wire"
)

// Kind identifies which field of a Value is populated and how it is
// encoded on the wire.
type Kind uint8

const (
	KindByte   Kind = 0
	KindShort  Kind = 1
	KindInt    Kind = 2
	KindLong   Kind = 3
	KindUShort Kind = 4
	KindUInt   Kind = 5
	KindULong  Kind = 6
	KindFloat  Kind = 7
	KindDouble Kind = 8
	KindRGB    Kind = 9
	KindString Kind = 10
)

// MaxStringLength is the largest string payload a string-kind Value can
// carry; it is length-prefixed by a single byte.
const MaxStringLength = 255

// RGB is a 3-byte red/green/blue triple, used by world-model feature
// classes and by event limits of KindRGB.
type RGB struct {
	R, G, B uint8
}

// Value is a single instance of the Event Limit tagged variant. Exactly
// the field matching Kind is meaningful; the others are zero.
type Value struct {
	Kind Kind

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	UShort uint16
	UInt   uint32
	ULong  uint64
	Float  float32
	Double float64
	RGB    RGB
	String string
}

// Size returns the number of payload bytes (excluding the discriminator
// byte) Kind occupies on the wire. KindString is variable-length and its
// size depends on the encoded Value, so Size must be called on a populated
// Value rather than a bare Kind.
func (v Value) Size() int {
	switch v.Kind {
	case KindByte:
		return 1
	case KindShort:
		return 2
	case KindInt:
		return 4
	case KindLong:
		return 8
	case KindUShort:
		return 2
	case KindUInt:
		return 4
	case KindULong:
		return 8
	case KindFloat:
		return 4
	case KindDouble:
		return 8
	case KindRGB:
		return 3
	case KindString:
		return 1 + len(v.String)
	default:
		return 0
	}
}

// WireSize returns the total encoded size of v, including its leading
// discriminator byte.
func (v Value) WireSize() int {
	return 1 + v.Size()
}

// Encode writes the discriminator byte followed by v's payload into buf,
// returning the number of bytes written.
func (v Value) Encode(buf []byte) (int, error) {
	need := v.WireSize()
	if len(buf) < need {
		return 0, errs.ErrBufferTooSmall
	}

	buf[0] = uint8(v.Kind)
	payload := buf[1:]

	switch v.Kind {
	case KindByte:
		wire.EncodeI8(v.Byte, payload)
	case KindShort:
		wire.EncodeI16(v.Short, payload)
	case KindInt:
		wire.EncodeI32(v.Int, payload)
	case KindLong:
		wire.EncodeI64(v.Long, payload)
	case KindUShort:
		wire.EncodeU16(v.UShort, payload)
	case KindUInt:
		wire.EncodeU32(v.UInt, payload)
	case KindULong:
		wire.EncodeU64(v.ULong, payload)
	case KindFloat:
		wire.EncodeF32(v.Float, payload)
	case KindDouble:
		wire.EncodeF64(v.Double, payload)
	case KindRGB:
		payload[0] = v.RGB.R
		payload[1] = v.RGB.G
		payload[2] = v.RGB.B
	case KindString:
		if len(v.String) > MaxStringLength {
			return 0, errs.ErrBufferTooSmall
		}
		payload[0] = uint8(len(v.String))
		copy(payload[1:], v.String)
	default:
		return 0, errs.ErrUnknownVariant
	}

	return need, nil
}

// AnyKind tells Decode to accept whatever discriminator it finds on the
// wire, skipping the expected-type check.
const AnyKind Kind = 0xFF

// Decode reads a discriminator byte and its matching payload from buf,
// returning the decoded Value and the number of bytes consumed. If
// expected is not AnyKind, the decoded discriminator must equal it or
// Decode fails with errs.ErrEventLimitKindMismatch.
func Decode(buf []byte, expected Kind) (Value, int, error) {
	if len(buf) < 1 {
		return Value{}, 0, errs.ErrBufferTooSmall
	}

	kind := Kind(buf[0])
	if expected != AnyKind && kind != expected {
		return Value{}, 0, errs.ErrEventLimitKindMismatch
	}

	payload := buf[1:]

	v := Value{Kind: kind}

	switch kind {
	case KindByte:
		if len(payload) < 1 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.Byte, _ = wire.DecodeI8(payload)
	case KindShort:
		if len(payload) < 2 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.Short, _ = wire.DecodeI16(payload)
	case KindInt:
		if len(payload) < 4 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.Int, _ = wire.DecodeI32(payload)
	case KindLong:
		if len(payload) < 8 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.Long, _ = wire.DecodeI64(payload)
	case KindUShort:
		if len(payload) < 2 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.UShort, _ = wire.DecodeU16(payload)
	case KindUInt:
		if len(payload) < 4 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.UInt, _ = wire.DecodeU32(payload)
	case KindULong:
		if len(payload) < 8 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.ULong, _ = wire.DecodeU64(payload)
	case KindFloat:
		if len(payload) < 4 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.Float, _ = wire.DecodeF32(payload)
	case KindDouble:
		if len(payload) < 8 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.Double, _ = wire.DecodeF64(payload)
	case KindRGB:
		if len(payload) < 3 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.RGB = RGB{R: payload[0], G: payload[1], B: payload[2]}
	case KindString:
		if len(payload) < 1 {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		n := int(payload[0])
		if len(payload) < 1+n {
			return Value{}, 0, errs.ErrBufferTooSmall
		}
		v.String = string(payload[1 : 1+n])
	default:
		return Value{}, 0, errs.ErrUnknownVariant
	}

	return v, v.WireSize(), nil
}

// FeatureClassAttribute is a world-model feature class's attribute field,
// which reuses the Event Limit tagged-variant codec verbatim.
type FeatureClassAttribute = Value

// DecodeFeatureClassAttribute decodes a feature class attribute using the
// same discriminator table as an event limit. A feature class carries no
// separate expected-type field, so any discriminator is accepted.
func DecodeFeatureClassAttribute(buf []byte) (FeatureClassAttribute, int, error) {
	return Decode(buf, AnyKind)
}
