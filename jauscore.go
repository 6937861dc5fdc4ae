// Package jauscore implements the wire-level core of a JAUS v3.2/v3.3
// messaging stack: the common message header, the scaled-scalar and
// presence-vector primitives every schema builds on, a catalog of
// command/query/inform message schemas, and a Large Message Handler that
// fragments outgoing messages too big for one datagram and reassembles
// them on the way back in.
//
// A minimal send path looks like:
//
//	h, err := lmh.New(lmh.WithMaxPendingAssemblies(256))
//	msg := message.NewReportVelocityState(dest, src)
//	msg.VelocityX = jauscore.Float64(12.5)
//	for _, frame := range h.Send(msg.Header, msg.ToBuffer()[header.SizeBytes:]) {
//	    conn.Write(frame)
//	}
//
// And the matching receive path:
//
//	hdr, err := header.Parse(buf)
//	full, payload, ok := h.Receive(hdr, buf[header.SizeBytes:])
//	if ok {
//	    m, err := message.ParseReportVelocityState(append(full.Bytes(), payload...))
//	}
//
// See the addr, format, header, eventlimit, message, and lmh packages for
// the pieces this wrapper ties together; wire holds the primitive
// byte-level and scaled-integer codec they all share.
package jauscore

// Float64 returns a pointer to v, for populating the optional scaled
// fields message schemas declare as *float64.
func Float64(v float64) *float64 { return &v }

// Uint8 returns a pointer to v, for populating optional byte fields.
func Uint8(v uint8) *uint8 { return &v }

// Uint32 returns a pointer to v, for populating optional 32-bit fields
// such as ReportVelocityState's TimeStamp.
func Uint32(v uint32) *uint32 { return &v }
