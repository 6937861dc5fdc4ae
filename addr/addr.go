// Package addr implements the JAUS component address: a 32-bit identity
// split into subsystem, node, component, and instance bytes.
package addr

import "fmt"

// Broadcast is the wildcard value for any address byte, meaning "all" in
// that field (e.g. instance=255 addresses every instance of a component).
const Broadcast = 255

// Unassigned is the zero value of an address byte; a component, node, or
// subsystem ID of 0 means "not yet assigned" and must never appear as the
// source of a sent message.
const Unassigned = 0

// Address identifies a JAUS component: subsystem.node.component.instance.
type Address struct {
	Subsystem uint8
	Node      uint8
	Component uint8
	Instance  uint8
}

// New constructs an Address from its four parts.
func New(subsystem, node, component, instance uint8) Address {
	return Address{Subsystem: subsystem, Node: node, Component: component, Instance: instance}
}

// IsBroadcast reports whether every byte of the address is the broadcast
// wildcard.
func (a Address) IsBroadcast() bool {
	return a.Subsystem == Broadcast && a.Node == Broadcast &&
		a.Component == Broadcast && a.Instance == Broadcast
}

// IsUnassigned reports whether the address is the all-zero unassigned
// value.
func (a Address) IsUnassigned() bool {
	return a.Subsystem == Unassigned && a.Node == Unassigned &&
		a.Component == Unassigned && a.Instance == Unassigned
}

// String renders the address in dotted subsystem.node.component.instance
// form.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a.Subsystem, a.Node, a.Component, a.Instance)
}

// Pack encodes the address as a little-endian uint32 the way it appears
// packed into a JausMessage struct's destination/source integer field:
// instance in the low byte, subsystem in the high byte.
func (a Address) Pack() uint32 {
	return uint32(a.Instance) | uint32(a.Component)<<8 | uint32(a.Node)<<16 | uint32(a.Subsystem)<<24
}

// Unpack decodes an address from its packed uint32 form.
func Unpack(v uint32) Address {
	return Address{
		Instance:  uint8(v),
		Component: uint8(v >> 8),
		Node:      uint8(v >> 16),
		Subsystem: uint8(v >> 24),
	}
}

// PutBytes writes the address into buf[0:4] in the wire byte order used by
// the 16-byte common header: instance, component, node, subsystem.
func (a Address) PutBytes(buf []byte) {
	_ = buf[3]
	buf[0] = a.Instance
	buf[1] = a.Component
	buf[2] = a.Node
	buf[3] = a.Subsystem
}

// FromBytes reads an address from buf[0:4] in header wire order.
func FromBytes(buf []byte) Address {
	_ = buf[3]
	return Address{
		Instance:  buf[0],
		Component: buf[1],
		Node:      buf[2],
		Subsystem: buf[3],
	}
}
