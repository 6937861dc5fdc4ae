package message

import (
	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/header"
)

// pack combines a header (with DataSize already set to len(payload)) and
// its payload into a single buffer, ready to hand to a transport.
func pack(h header.Header, payload []byte) []byte {
	out := make([]byte, header.SizeBytes+len(payload))
	h.PutBytes(out[:header.SizeBytes])
	copy(out[header.SizeBytes:], payload)

	return out
}

// packUDP is pack with a leading "JAUS" marker, for direct hand-off to a
// UDP socket.
func packUDP(h header.Header, payload []byte) []byte {
	return header.PrependUDPMarker(pack(h, payload))
}

// unpack strips an optional "JAUS" marker, decodes the common header,
// verifies its command code matches wantCC, and returns the header along
// with the payload slice it declares.
func unpack(buf []byte, wantCC uint16) (header.Header, []byte, error) {
	buf = header.StripUDPMarker(buf)

	h, err := header.Parse(buf)
	if err != nil {
		return header.Header{}, nil, err
	}

	if h.CommandCode != wantCC {
		return header.Header{}, nil, errs.ErrWrongMessageType
	}

	payload := buf[header.SizeBytes:]
	if int(h.DataSize) > len(payload) {
		return header.Header{}, nil, errs.ErrLengthMismatch
	}

	return h, payload[:h.DataSize], nil
}

// finish sets h.DataSize from the length of an already-encoded payload and
// returns the framed message bytes (without a UDP marker).
func finish(h header.Header, payload []byte) []byte {
	h.DataSize = uint16(len(payload))
	return pack(h, payload)
}

// finishUDP is finish, framed with a leading "JAUS" marker.
func finishUDP(h header.Header, payload []byte) []byte {
	h.DataSize = uint16(len(payload))
	return packUDP(h, payload)
}
