package eventlimit

import "github.com/jaus-project/jauscore/errs"

// FeatureClass identifies a world-model feature: a numeric class ID and a
// tagged-variant attribute describing the feature's reported state.
type FeatureClass struct {
	ID        uint16
	Attribute FeatureClassAttribute
}

// WireSize returns the total encoded size of fc.
func (fc FeatureClass) WireSize() int {
	return 2 + fc.Attribute.WireSize()
}

// Encode writes fc into buf, returning the number of bytes written.
func (fc FeatureClass) Encode(buf []byte) (int, error) {
	need := fc.WireSize()
	if len(buf) < need {
		return 0, errs.ErrBufferTooSmall
	}

	buf[0] = uint8(fc.ID)
	buf[1] = uint8(fc.ID >> 8)

	n, err := fc.Attribute.Encode(buf[2:])
	if err != nil {
		return 0, err
	}

	return 2 + n, nil
}

// DecodeFeatureClass reads a FeatureClass from buf, returning the decoded
// value and the number of bytes consumed.
func DecodeFeatureClass(buf []byte) (FeatureClass, int, error) {
	if len(buf) < 2 {
		return FeatureClass{}, 0, errs.ErrBufferTooSmall
	}

	fc := FeatureClass{
		ID: uint16(buf[0]) | uint16(buf[1])<<8,
	}

	attr, n, err := DecodeFeatureClassAttribute(buf[2:])
	if err != nil {
		return FeatureClass{}, 0, err
	}
	fc.Attribute = attr

	return fc, 2 + n, nil
}
