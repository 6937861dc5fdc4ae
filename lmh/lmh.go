// Package lmh implements the Large Message Handler: fragmentation of
// oversized outgoing messages and reassembly of fragmented incoming ones.
//
// Reassembly keeps one pending assembly per (commandCode, source)
// identity. A fresh FIRST fragment always supersedes whatever assembly
// already exists for that identity; NORMAL and RETRANSMITTED fragments
// require a FIRST to already be pending; LAST triggers a linear scan over
// sequence numbers 0..N and fails the whole assembly if any is missing.
// None of this generates a retransmission request or a NAK — an invalid,
// duplicate, or orphaned fragment is logged and dropped on its own, and a
// gap found at LAST is logged and discards the partial assembly, exactly
// as the node manager it was modeled on does.
package lmh

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/op/go-logging"

	"github.com/jaus-project/jauscore/errs"
	"github.com/jaus-project/jauscore/format"
	"github.com/jaus-project/jauscore/header"
	"github.com/jaus-project/jauscore/internal/options"
)

var log = logging.MustGetLogger("jauscore/lmh")

// identity names the (commandCode, source) pair an assembly's fragments
// must share.
type identity struct {
	commandCode uint16
	source      uint32
}

func identityOf(h header.Header) identity {
	return identity{commandCode: h.CommandCode, source: h.Source.Pack()}
}

// fragment is one received piece of a large message, kept until its
// assembly either completes or is superseded/dropped.
type fragment struct {
	header  header.Header
	payload []byte
}

// assembly accumulates the fragments of one in-progress large message.
type assembly struct {
	id         identity
	fragments  []fragment
	receivedAt time.Time
}

func (a *assembly) has(seq uint16) bool {
	for _, f := range a.fragments {
		if f.header.SequenceNumber == seq {
			return true
		}
	}

	return false
}

func (a *assembly) removeSeq(seq uint16) {
	for i, f := range a.fragments {
		if f.header.SequenceNumber == seq {
			a.fragments = append(a.fragments[:i], a.fragments[i+1:]...)
			return
		}
	}
}

// assemble concatenates fragments 0..lastSeq in sequence order. It fails
// if any sequence number in that range is missing, the same gap check the
// original handler runs when a LAST fragment arrives.
func (a *assembly) assemble(lastSeq uint16) (header.Header, []byte, error) {
	total := 0
	for _, f := range a.fragments {
		total += len(f.payload)
	}

	out := make([]byte, 0, total)
	for seq := uint16(0); seq <= lastSeq; seq++ {
		found := false
		for _, f := range a.fragments {
			if f.header.SequenceNumber == seq {
				out = append(out, f.payload...)
				found = true
				break
			}
		}
		if !found {
			return header.Header{}, nil, errs.ErrFragmentOutOfSequence
		}
	}

	outHeader := a.fragments[len(a.fragments)-1].header
	outHeader.DataFlag = format.Single
	outHeader.DataSize = uint16(total)

	return outHeader, out, nil
}

// Handler is the Large Message Handler: it reassembles fragmented inbound
// messages and fragments oversized outbound ones.
type Handler struct {
	mu    sync.Mutex
	cache *lru.Cache

	maxFragmentPayload int
}

// WithMaxPendingAssemblies bounds how many distinct (commandCode, source)
// reassemblies the handler tracks concurrently. When the bound is
// exceeded, the oldest pending assembly is evicted and logged as dropped;
// this resolves the handler's memory growth under a flood of abandoned
// FIRST fragments, which the node manager it is modeled on left
// unbounded.
func WithMaxPendingAssemblies(n int) options.Option[*Handler] {
	return options.New(func(h *Handler) error {
		cache, err := lru.NewWithEvict(n, func(key, value interface{}) {
			log.Warningf("lmh: evicting pending assembly for %+v, max pending assemblies exceeded", key)
		})
		if err != nil {
			return err
		}

		h.cache = cache

		return nil
	})
}

// WithMaxFragmentPayload sets the largest payload size a single outgoing
// fragment may carry. Defaults to header.MaxDataSizeBytes.
func WithMaxFragmentPayload(n int) options.Option[*Handler] {
	return options.NoError(func(h *Handler) {
		h.maxFragmentPayload = n
	})
}

const defaultMaxPendingAssemblies = 256

// New builds a Handler with the given options applied over sensible
// defaults: header.MaxDataSizeBytes per fragment and 256 concurrently
// pending reassemblies.
func New(opts ...options.Option[*Handler]) (*Handler, error) {
	h := &Handler{maxFragmentPayload: header.MaxDataSizeBytes}

	cache, err := lru.New(defaultMaxPendingAssemblies)
	if err != nil {
		return nil, err
	}
	h.cache = cache

	if err := options.Apply(h, opts...); err != nil {
		return nil, err
	}

	return h, nil
}

// Receive feeds one received message into the handler. If hdr.DataFlag is
// format.Single, the message is already complete and is returned as-is.
// Otherwise the fragment is stored (or dropped, if it is invalid, a
// duplicate, or has no pending FIRST; a LAST that exposes a sequence gap
// drops the whole assembly) and ok is false until the matching LAST
// fragment completes the assembly.
func (h *Handler) Receive(hdr header.Header, payload []byte) (outHeader header.Header, outPayload []byte, ok bool) {
	if hdr.DataFlag == format.Single {
		return hdr, payload, true
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	id := identityOf(hdr)

	switch hdr.DataFlag {
	case format.First:
		if hdr.SequenceNumber != 0 {
			log.Errorf("%v: commandCode=0x%04X source=0x%08X", errs.ErrInvalidFirstSequence, id.commandCode, id.source)
			return header.Header{}, nil, false
		}

		h.cache.Remove(id)
		asm := &assembly{id: id, receivedAt: time.Now()}
		asm.fragments = append(asm.fragments, fragment{header: hdr, payload: payload})
		h.cache.Add(id, asm)

		return header.Header{}, nil, false

	case format.Normal:
		asm, found := h.getAssembly(id)
		if !found {
			log.Errorf("%v: commandCode=0x%04X source=0x%08X", errs.ErrMissingFirst, id.commandCode, id.source)
			return header.Header{}, nil, false
		}
		if asm.has(hdr.SequenceNumber) {
			log.Errorf("%v: commandCode=0x%04X source=0x%08X seq=%d", errs.ErrDuplicateFragment, id.commandCode, id.source, hdr.SequenceNumber)
			return header.Header{}, nil, false
		}
		asm.fragments = append(asm.fragments, fragment{header: hdr, payload: payload})
		asm.receivedAt = time.Now()

		return header.Header{}, nil, false

	case format.Retransmitted:
		asm, found := h.getAssembly(id)
		if !found {
			log.Errorf("%v: commandCode=0x%04X source=0x%08X", errs.ErrMissingFirst, id.commandCode, id.source)
			return header.Header{}, nil, false
		}
		asm.removeSeq(hdr.SequenceNumber)
		asm.fragments = append(asm.fragments, fragment{header: hdr, payload: payload})
		asm.receivedAt = time.Now()

		return header.Header{}, nil, false

	case format.Last:
		asm, found := h.getAssembly(id)
		if !found {
			log.Errorf("%v: commandCode=0x%04X source=0x%08X", errs.ErrMissingFirst, id.commandCode, id.source)
			return header.Header{}, nil, false
		}
		asm.fragments = append(asm.fragments, fragment{header: hdr, payload: payload})

		full, data, err := asm.assemble(hdr.SequenceNumber)
		h.cache.Remove(id)
		if err != nil {
			log.Errorf("%v: commandCode=0x%04X source=0x%08X", err, id.commandCode, id.source)
			return header.Header{}, nil, false
		}

		return full, data, true

	default:
		log.Errorf("jauscore: improper dataFlag %v from commandCode=0x%04X source=0x%08X", hdr.DataFlag, id.commandCode, id.source)
		return header.Header{}, nil, false
	}
}

func (h *Handler) getAssembly(id identity) (*assembly, bool) {
	v, ok := h.cache.Get(id)
	if !ok {
		return nil, false
	}

	asm, ok := v.(*assembly)
	return asm, ok
}

// PruneIdle removes every pending assembly that has not received a
// fragment within maxAge, returning the number removed. Call this
// periodically to bound memory when a peer starts a large message and
// never finishes it.
func (h *Handler) PruneIdle(maxAge time.Duration) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, key := range h.cache.Keys() {
		v, ok := h.cache.Peek(key)
		if !ok {
			continue
		}
		asm, ok := v.(*assembly)
		if !ok {
			continue
		}
		if asm.receivedAt.Before(cutoff) {
			h.cache.Remove(key)
			removed++
		}
	}

	return removed
}

// Send splits payload into one or more framed, header-prefixed messages
// ready for transport. If payload already fits within one fragment, it is
// returned unfragmented with DataFlag set to format.Single.
func (h *Handler) Send(hdr header.Header, payload []byte) [][]byte {
	max := h.maxFragmentPayload

	if len(payload) <= max {
		hdr.DataFlag = format.Single
		hdr.SequenceNumber = 0
		return [][]byte{frame(hdr, payload)}
	}

	var out [][]byte
	seq := uint16(0)
	offset := 0

	for offset+max < len(payload) {
		flag := format.Normal
		if seq == 0 {
			flag = format.First
		}

		fhdr := hdr
		fhdr.DataFlag = flag
		fhdr.SequenceNumber = seq
		out = append(out, frame(fhdr, payload[offset:offset+max]))

		offset += max
		seq++
	}

	fhdr := hdr
	fhdr.DataFlag = format.Last
	fhdr.SequenceNumber = seq
	out = append(out, frame(fhdr, payload[offset:]))

	return out
}

func frame(h header.Header, payload []byte) []byte {
	h.DataSize = uint16(len(payload))
	out := make([]byte, header.SizeBytes+len(payload))
	h.PutBytes(out[:header.SizeBytes])
	copy(out[header.SizeBytes:], payload)

	return out
}
