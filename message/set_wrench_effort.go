package message

import (
	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/wire"
)

// SetWrenchEffort bit positions within its 2-byte presence vector.
const (
	swePropulsiveLinearX      = 0
	swePropulsiveLinearY      = 1
	swePropulsiveLinearZ      = 2
	swePropulsiveRotationalX  = 3
	swePropulsiveRotationalY  = 4
	swePropulsiveRotationalZ  = 5
	sweResistiveLinearX       = 6
	sweResistiveLinearY       = 7
	sweResistiveLinearZ       = 8
	sweResistiveRotationalX   = 9
	sweResistiveRotationalY   = 10
	sweResistiveRotationalZ   = 11
)

const (
	swePropulsiveMin = -100.0
	swePropulsiveMax = 100.0
	sweResistiveMin  = 0.0
	sweResistiveMax  = 100.0
)

// SetWrenchEffort commands a component's propulsive and resistive effort
// along each linear and rotational axis. Every field is optional; the
// payload only carries the ones the caller sets.
type SetWrenchEffort struct {
	Header header.Header

	PropulsiveLinearX, PropulsiveLinearY, PropulsiveLinearZ          *float64
	PropulsiveRotationalX, PropulsiveRotationalY, PropulsiveRotationalZ *float64
	ResistiveLinearX, ResistiveLinearY, ResistiveLinearZ             *float64
	ResistiveRotationalX, ResistiveRotationalY, ResistiveRotationalZ *float64
}

// NewSetWrenchEffort builds a SetWrenchEffort addressed from source to
// destination, with every field absent.
func NewSetWrenchEffort(destination, source addr.Address) SetWrenchEffort {
	return SetWrenchEffort{Header: header.New(CCSetWrenchEffort, destination, source)}
}

func (m SetWrenchEffort) presenceVector() uint16 {
	var pv uint16
	set := func(bit int, present bool) {
		if present {
			pv = uint16(header.Set(pv, uint(bit)))
		}
	}
	set(swePropulsiveLinearX, m.PropulsiveLinearX != nil)
	set(swePropulsiveLinearY, m.PropulsiveLinearY != nil)
	set(swePropulsiveLinearZ, m.PropulsiveLinearZ != nil)
	set(swePropulsiveRotationalX, m.PropulsiveRotationalX != nil)
	set(swePropulsiveRotationalY, m.PropulsiveRotationalY != nil)
	set(swePropulsiveRotationalZ, m.PropulsiveRotationalZ != nil)
	set(sweResistiveLinearX, m.ResistiveLinearX != nil)
	set(sweResistiveLinearY, m.ResistiveLinearY != nil)
	set(sweResistiveLinearZ, m.ResistiveLinearZ != nil)
	set(sweResistiveRotationalX, m.ResistiveRotationalX != nil)
	set(sweResistiveRotationalY, m.ResistiveRotationalY != nil)
	set(sweResistiveRotationalZ, m.ResistiveRotationalZ != nil)

	return pv
}

// SizeBytes returns the encoded payload size (2-byte presence vector plus
// one entry per present field).
func (m SetWrenchEffort) SizeBytes() int {
	n := 2
	for _, p := range []*float64{
		m.PropulsiveLinearX, m.PropulsiveLinearY, m.PropulsiveLinearZ,
		m.PropulsiveRotationalX, m.PropulsiveRotationalY, m.PropulsiveRotationalZ,
	} {
		if p != nil {
			n += 2
		}
	}
	for _, p := range []*float64{
		m.ResistiveLinearX, m.ResistiveLinearY, m.ResistiveLinearZ,
		m.ResistiveRotationalX, m.ResistiveRotationalY, m.ResistiveRotationalZ,
	} {
		if p != nil {
			n += 1
		}
	}

	return n
}

// ToBuffer encodes the payload (presence vector plus present scaled
// fields) and frames it behind a 16-byte header.
func (m SetWrenchEffort) ToBuffer() []byte {
	payload := make([]byte, m.SizeBytes())
	wire.EncodeU16(m.presenceVector(), payload[0:2])

	i := 2
	writePropulsive := func(v *float64) {
		if v == nil {
			return
		}
		wire.EncodeI16(wire.ScaleToI16(*v, swePropulsiveMin, swePropulsiveMax), payload[i:i+2])
		i += 2
	}
	writeResistive := func(v *float64) {
		if v == nil {
			return
		}
		wire.EncodeU8(wire.ScaleToU8(*v, sweResistiveMin, sweResistiveMax), payload[i:i+1])
		i += 1
	}

	writePropulsive(m.PropulsiveLinearX)
	writePropulsive(m.PropulsiveLinearY)
	writePropulsive(m.PropulsiveLinearZ)
	writePropulsive(m.PropulsiveRotationalX)
	writePropulsive(m.PropulsiveRotationalY)
	writePropulsive(m.PropulsiveRotationalZ)
	writeResistive(m.ResistiveLinearX)
	writeResistive(m.ResistiveLinearY)
	writeResistive(m.ResistiveLinearZ)
	writeResistive(m.ResistiveRotationalX)
	writeResistive(m.ResistiveRotationalY)
	writeResistive(m.ResistiveRotationalZ)

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m SetWrenchEffort) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseSetWrenchEffort decodes a SetWrenchEffort from a framed buffer,
// with or without a leading "JAUS" marker.
func ParseSetWrenchEffort(buf []byte) (SetWrenchEffort, error) {
	h, payload, err := unpack(buf, CCSetWrenchEffort)
	if err != nil {
		return SetWrenchEffort{}, err
	}

	if len(payload) < 2 {
		return SetWrenchEffort{}, errs.ErrBufferTooSmall
	}
	pv, _ := wire.DecodeU16(payload[0:2])

	m := SetWrenchEffort{Header: h}
	i := 2

	readPropulsive := func(bit uint) (*float64, error) {
		if !header.Test(pv, bit) {
			return nil, nil
		}
		if len(payload) < i+2 {
			return nil, errs.ErrBufferTooSmall
		}
		raw, _ := wire.DecodeI16(payload[i : i+2])
		i += 2
		v := wire.I16ToScale(raw, swePropulsiveMin, swePropulsiveMax)

		return &v, nil
	}
	readResistive := func(bit uint) (*float64, error) {
		if !header.Test(pv, bit) {
			return nil, nil
		}
		if len(payload) < i+1 {
			return nil, errs.ErrBufferTooSmall
		}
		raw, _ := wire.DecodeU8(payload[i : i+1])
		i += 1
		v := wire.U8ToScale(raw, sweResistiveMin, sweResistiveMax)

		return &v, nil
	}

	var fieldErr error
	assign := func(dst **float64, bit uint, resistive bool) {
		if fieldErr != nil {
			return
		}
		if resistive {
			*dst, fieldErr = readResistive(bit)
		} else {
			*dst, fieldErr = readPropulsive(bit)
		}
	}

	assign(&m.PropulsiveLinearX, swePropulsiveLinearX, false)
	assign(&m.PropulsiveLinearY, swePropulsiveLinearY, false)
	assign(&m.PropulsiveLinearZ, swePropulsiveLinearZ, false)
	assign(&m.PropulsiveRotationalX, swePropulsiveRotationalX, false)
	assign(&m.PropulsiveRotationalY, swePropulsiveRotationalY, false)
	assign(&m.PropulsiveRotationalZ, swePropulsiveRotationalZ, false)
	assign(&m.ResistiveLinearX, sweResistiveLinearX, true)
	assign(&m.ResistiveLinearY, sweResistiveLinearY, true)
	assign(&m.ResistiveLinearZ, sweResistiveLinearZ, true)
	assign(&m.ResistiveRotationalX, sweResistiveRotationalX, true)
	assign(&m.ResistiveRotationalY, sweResistiveRotationalY, true)
	assign(&m.ResistiveRotationalZ, sweResistiveRotationalZ, true)
	if fieldErr != nil {
		return SetWrenchEffort{}, fieldErr
	}

	if i != len(payload) {
		return SetWrenchEffort{}, errs.ErrLengthMismatch
	}

	return m, nil
}
