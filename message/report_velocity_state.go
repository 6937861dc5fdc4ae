package message

import (
	"math"

	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/wire"
)

// ReportVelocityState bit positions within its 2-byte presence vector.
// Every field, including the timestamp, is optional.
const (
	rvsVelocityX   = 0
	rvsVelocityY   = 1
	rvsVelocityZ   = 2
	rvsVelocityRms = 3
	rvsRollRate    = 4
	rvsPitchRate   = 5
	rvsYawRate     = 6
	rvsRateRms     = 7
	rvsTimeStamp   = 8
)

const (
	rvsVelocityMin = -65.534
	rvsVelocityMax = 65.534
	rvsVelocityRmsMin = 0.0
	rvsVelocityRmsMax = 100.0
	rvsRateMin     = -32.767
	rvsRateMax     = 32.767
	rvsRateRmsMin  = 0.0
)

// rvsRateRmsMax is JAUS_PI, the documented upper bound for the rms rate
// field.
var rvsRateRmsMax = math.Pi

// ReportVelocityState reports a platform's linear velocity and angular
// rate along each axis, each field optional and individually scaled.
type ReportVelocityState struct {
	Header header.Header

	VelocityX, VelocityY, VelocityZ *float64
	VelocityRms                     *float64
	RollRate, PitchRate, YawRate    *float64
	RateRms                         *float64
	TimeStamp                       *uint32
}

// NewReportVelocityState builds a ReportVelocityState addressed from
// source to destination, with every field absent.
func NewReportVelocityState(destination, source addr.Address) ReportVelocityState {
	return ReportVelocityState{Header: header.New(CCReportVelocityState, destination, source)}
}

func (m ReportVelocityState) presenceVector() uint16 {
	var pv uint16
	set := func(bit int, present bool) {
		if present {
			pv = uint16(header.Set(pv, uint(bit)))
		}
	}
	set(rvsVelocityX, m.VelocityX != nil)
	set(rvsVelocityY, m.VelocityY != nil)
	set(rvsVelocityZ, m.VelocityZ != nil)
	set(rvsVelocityRms, m.VelocityRms != nil)
	set(rvsRollRate, m.RollRate != nil)
	set(rvsPitchRate, m.PitchRate != nil)
	set(rvsYawRate, m.YawRate != nil)
	set(rvsRateRms, m.RateRms != nil)
	set(rvsTimeStamp, m.TimeStamp != nil)

	return pv
}

// SizeBytes returns the encoded payload size.
func (m ReportVelocityState) SizeBytes() int {
	n := 2
	for _, p := range []*float64{m.VelocityX, m.VelocityY, m.VelocityZ} {
		if p != nil {
			n += 4
		}
	}
	if m.VelocityRms != nil {
		n += 4
	}
	for _, p := range []*float64{m.RollRate, m.PitchRate, m.YawRate} {
		if p != nil {
			n += 2
		}
	}
	if m.RateRms != nil {
		n += 2
	}
	if m.TimeStamp != nil {
		n += 4
	}

	return n
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m ReportVelocityState) ToBuffer() []byte {
	payload := make([]byte, m.SizeBytes())
	wire.EncodeU16(m.presenceVector(), payload[0:2])

	i := 2
	writeVelocity := func(v *float64) {
		if v == nil {
			return
		}
		wire.EncodeI32(wire.ScaleToI32(*v, rvsVelocityMin, rvsVelocityMax), payload[i:i+4])
		i += 4
	}
	writeRate := func(v *float64) {
		if v == nil {
			return
		}
		wire.EncodeI16(wire.ScaleToI16(*v, rvsRateMin, rvsRateMax), payload[i:i+2])
		i += 2
	}

	writeVelocity(m.VelocityX)
	writeVelocity(m.VelocityY)
	writeVelocity(m.VelocityZ)
	if m.VelocityRms != nil {
		wire.EncodeU32(wire.ScaleToU32(*m.VelocityRms, rvsVelocityRmsMin, rvsVelocityRmsMax), payload[i:i+4])
		i += 4
	}
	writeRate(m.RollRate)
	writeRate(m.PitchRate)
	writeRate(m.YawRate)
	if m.RateRms != nil {
		wire.EncodeU16(wire.ScaleToU16(*m.RateRms, rvsRateRmsMin, rvsRateRmsMax), payload[i:i+2])
		i += 2
	}
	if m.TimeStamp != nil {
		wire.EncodeU32(*m.TimeStamp, payload[i:i+4])
		i += 4
	}

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m ReportVelocityState) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseReportVelocityState decodes a ReportVelocityState from a framed
// buffer, with or without a leading "JAUS" marker.
func ParseReportVelocityState(buf []byte) (ReportVelocityState, error) {
	h, payload, err := unpack(buf, CCReportVelocityState)
	if err != nil {
		return ReportVelocityState{}, err
	}

	if len(payload) < 2 {
		return ReportVelocityState{}, errs.ErrBufferTooSmall
	}
	pv, _ := wire.DecodeU16(payload[0:2])

	m := ReportVelocityState{Header: h}
	i := 2
	var fieldErr error

	readVelocity := func(bit uint) *float64 {
		if fieldErr != nil || !header.Test(pv, bit) {
			return nil
		}
		if len(payload) < i+4 {
			fieldErr = errs.ErrBufferTooSmall
			return nil
		}
		raw, _ := wire.DecodeI32(payload[i : i+4])
		i += 4
		v := wire.I32ToScale(raw, rvsVelocityMin, rvsVelocityMax)

		return &v
	}
	readRate := func(bit uint) *float64 {
		if fieldErr != nil || !header.Test(pv, bit) {
			return nil
		}
		if len(payload) < i+2 {
			fieldErr = errs.ErrBufferTooSmall
			return nil
		}
		raw, _ := wire.DecodeI16(payload[i : i+2])
		i += 2
		v := wire.I16ToScale(raw, rvsRateMin, rvsRateMax)

		return &v
	}

	m.VelocityX = readVelocity(rvsVelocityX)
	m.VelocityY = readVelocity(rvsVelocityY)
	m.VelocityZ = readVelocity(rvsVelocityZ)

	if fieldErr == nil && header.Test(pv, rvsVelocityRms) {
		if len(payload) < i+4 {
			fieldErr = errs.ErrBufferTooSmall
		} else {
			raw, _ := wire.DecodeU32(payload[i : i+4])
			i += 4
			v := wire.U32ToScale(raw, rvsVelocityRmsMin, rvsVelocityRmsMax)
			m.VelocityRms = &v
		}
	}

	m.RollRate = readRate(rvsRollRate)
	m.PitchRate = readRate(rvsPitchRate)
	m.YawRate = readRate(rvsYawRate)

	if fieldErr == nil && header.Test(pv, rvsRateRms) {
		if len(payload) < i+2 {
			fieldErr = errs.ErrBufferTooSmall
		} else {
			raw, _ := wire.DecodeU16(payload[i : i+2])
			i += 2
			v := wire.U16ToScale(raw, rvsRateRmsMin, rvsRateRmsMax)
			m.RateRms = &v
		}
	}

	if fieldErr == nil && header.Test(pv, rvsTimeStamp) {
		if len(payload) < i+4 {
			fieldErr = errs.ErrBufferTooSmall
		} else {
			ts, _ := wire.DecodeU32(payload[i : i+4])
			i += 4
			m.TimeStamp = &ts
		}
	}

	if fieldErr != nil {
		return ReportVelocityState{}, fieldErr
	}

	if i != len(payload) {
		return ReportVelocityState{}, errs.ErrLengthMismatch
	}

	return m, nil
}
