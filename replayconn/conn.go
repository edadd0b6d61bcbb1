// Package replayconn protects a datagram connection against replayed packets.
//
// Each outgoing packet is prefixed with a 64-bit counter. Incoming packets
// whose counter was already seen, or is outside the window, are dropped.
package replayconn

import (
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/seqguard/go-replay"
)

const (
	DefaultMaxSeq     = 1<<64 - 1
	DefaultWindowSize = 1024
	MaxFrameSize      = 1 << 16
)

var ErrExhausted = errors.New("replayconn: no sequence numbers left")

type Params struct {
	// MaxSeq is the highest counter sent or accepted. 0 means DefaultMaxSeq.
	MaxSeq uint64
	// WindowSize is how far behind the latest counter packets are still accepted.
	// 0 means DefaultWindowSize.
	WindowSize uint64
	Logger     *logrus.Logger
}

type Stats struct {
	Accepted   uint64
	Duplicate  uint64
	OutOfRange uint64
	Malformed  uint64
}

// Conn is a net.Conn which drops replayed packets.
// The underlying connection must preserve message boundaries, like UDP.
type Conn struct {
	// accessed atomically, kept first for alignment
	stats Stats

	net.Conn
	log    *logrus.Logger
	maxSeq uint64

	sendMu    sync.Mutex
	next      uint64
	exhausted bool

	recvMu  sync.Mutex
	recvBuf []byte

	checker *replay.Locked
}

func New(inner net.Conn, params Params) *Conn {
	if params.MaxSeq == 0 {
		params.MaxSeq = DefaultMaxSeq
	}
	if params.WindowSize == 0 {
		params.WindowSize = DefaultWindowSize
	}
	if params.Logger == nil {
		params.Logger = replay.Logger
	}
	return &Conn{
		Conn:    inner,
		log:     params.Logger,
		maxSeq:  params.MaxSeq,
		checker: replay.NewLocked(replay.NewDefault(params.MaxSeq, params.WindowSize)),
	}
}

// Write sends p as a single packet with the next counter.
func (c *Conn) Write(p []byte) (int, error) {
	if len(p)+HeaderSize > MaxFrameSize {
		return 0, errors.Errorf("replayconn: payload too large len=%d", len(p))
	}
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.exhausted {
		return 0, ErrExhausted
	}
	frame := AppendFrame(make([]byte, 0, HeaderSize+len(p)), c.next, p)
	if _, err := c.Conn.Write(frame); err != nil {
		return 0, errors.Wrapf(err, "replayconn: writing frame %d", c.next)
	}
	if c.next == c.maxSeq {
		c.exhausted = true
	} else {
		c.next++
	}
	return len(p), nil
}

// Read returns the payload of the next accepted packet.
// Rejected packets are counted and skipped.
// If p is smaller than the payload, Read fills p and returns io.ErrShortBuffer.
// The rest of the payload is lost, its sequence number is already accepted.
func (c *Conn) Read(p []byte) (int, error) {
	c.recvMu.Lock()
	defer c.recvMu.Unlock()
	if c.recvBuf == nil {
		c.recvBuf = make([]byte, MaxFrameSize)
	}
	buf := c.recvBuf
	for {
		n, err := c.Conn.Read(buf)
		if err != nil {
			return 0, err
		}
		seq, payload, err := ParseFrame(buf[:n])
		if err != nil {
			atomic.AddUint64(&c.stats.Malformed, 1)
			c.log.Debugf("replayconn: dropping frame: %v", err)
			continue
		}
		if _, err := c.checker.CheckAndAccept(seq); err != nil {
			c.countRejected(err)
			c.log.WithField("seq", seq).Debug(err)
			continue
		}
		atomic.AddUint64(&c.stats.Accepted, 1)
		n = copy(p, payload)
		if n < len(payload) {
			return n, io.ErrShortBuffer
		}
		return n, nil
	}
}

// Stats returns the number of packets accepted and rejected so far.
func (c *Conn) Stats() Stats {
	return Stats{
		Accepted:   atomic.LoadUint64(&c.stats.Accepted),
		Duplicate:  atomic.LoadUint64(&c.stats.Duplicate),
		OutOfRange: atomic.LoadUint64(&c.stats.OutOfRange),
		Malformed:  atomic.LoadUint64(&c.stats.Malformed),
	}
}

func (c *Conn) countRejected(err error) {
	switch {
	case replay.IsErrDuplicate(err):
		atomic.AddUint64(&c.stats.Duplicate, 1)
	case replay.IsErrOutOfRange(err):
		atomic.AddUint64(&c.stats.OutOfRange, 1)
	}
}
