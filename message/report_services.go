package message

import (
	"github.com/jaus-project/jauscore/addr"
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/wire"
)

// ServiceCommand is one command a service accepts or emits, identified by
// command code plus the presence vector of optional fields the service
// supports for it.
type ServiceCommand struct {
	CommandCode     uint16
	PresenceVector  uint32
}

// Service describes one service a component provides: a type code, the
// commands it accepts as input, and the commands it emits as output.
type Service struct {
	ServiceType uint16
	Inputs      []ServiceCommand
	Outputs     []ServiceCommand
}

func (s Service) sizeBytes() int {
	return 2 + 1 + len(s.Inputs)*6 + 1 + len(s.Outputs)*6
}

// ReportServices lists every service a component provides. The service
// list must carry at least one entry.
type ReportServices struct {
	Header   header.Header
	Services []Service
}

// NewReportServices builds a ReportServices addressed from source to
// destination. It returns errs.ErrEmptyServiceList if services is empty;
// the schema requires at least one entry.
func NewReportServices(destination, source addr.Address, services []Service) (ReportServices, error) {
	if len(services) == 0 {
		return ReportServices{}, errs.ErrEmptyServiceList
	}

	return ReportServices{
		Header:   header.New(CCReportServices, destination, source),
		Services: services,
	}, nil
}

// SizeBytes returns the encoded payload size.
func (m ReportServices) SizeBytes() int {
	n := 1
	for _, s := range m.Services {
		n += s.sizeBytes()
	}

	return n
}

// ToBuffer encodes the payload and frames it behind a 16-byte header.
func (m ReportServices) ToBuffer() []byte {
	payload := make([]byte, m.SizeBytes())
	payload[0] = uint8(len(m.Services))

	i := 1
	for _, s := range m.Services {
		wire.EncodeU16(s.ServiceType, payload[i:i+2])
		i += 2

		payload[i] = uint8(len(s.Inputs))
		i++
		for _, in := range s.Inputs {
			wire.EncodeU16(in.CommandCode, payload[i:i+2])
			wire.EncodeU32(in.PresenceVector, payload[i+2:i+6])
			i += 6
		}

		payload[i] = uint8(len(s.Outputs))
		i++
		for _, out := range s.Outputs {
			wire.EncodeU16(out.CommandCode, payload[i:i+2])
			wire.EncodeU32(out.PresenceVector, payload[i+2:i+6])
			i += 6
		}
	}

	return finish(m.Header, payload)
}

// ToUDPBuffer is ToBuffer with a leading "JAUS" marker.
func (m ReportServices) ToUDPBuffer() []byte {
	payload := m.ToBuffer()[header.SizeBytes:]
	return finishUDP(m.Header, payload)
}

// ParseReportServices decodes a ReportServices from a framed buffer, with
// or without a leading "JAUS" marker. It returns errs.ErrEmptyServiceList
// if the encoded service count is zero.
func ParseReportServices(buf []byte) (ReportServices, error) {
	h, payload, err := unpack(buf, CCReportServices)
	if err != nil {
		return ReportServices{}, err
	}

	if len(payload) < 1 {
		return ReportServices{}, errs.ErrBufferTooSmall
	}
	count := int(payload[0])
	if count == 0 {
		return ReportServices{}, errs.ErrEmptyServiceList
	}

	m := ReportServices{Header: h, Services: make([]Service, 0, count)}
	i := 1

	readCommands := func() ([]ServiceCommand, error) {
		if len(payload) < i+1 {
			return nil, errs.ErrBufferTooSmall
		}
		n := int(payload[i])
		i++

		if n == 0 {
			return nil, nil
		}

		cmds := make([]ServiceCommand, 0, n)
		for j := 0; j < n; j++ {
			if len(payload) < i+6 {
				return nil, errs.ErrBufferTooSmall
			}
			cc, _ := wire.DecodeU16(payload[i : i+2])
			pv, _ := wire.DecodeU32(payload[i+2 : i+6])
			cmds = append(cmds, ServiceCommand{CommandCode: cc, PresenceVector: pv})
			i += 6
		}

		return cmds, nil
	}

	for s := 0; s < count; s++ {
		if len(payload) < i+2 {
			return ReportServices{}, errs.ErrBufferTooSmall
		}
		serviceType, _ := wire.DecodeU16(payload[i : i+2])
		i += 2

		inputs, err := readCommands()
		if err != nil {
			return ReportServices{}, err
		}
		outputs, err := readCommands()
		if err != nil {
			return ReportServices{}, err
		}

		m.Services = append(m.Services, Service{ServiceType: serviceType, Inputs: inputs, Outputs: outputs})
	}

	if i != len(payload) {
		return ReportServices{}, errs.ErrLengthMismatch
	}

	return m, nil
}
