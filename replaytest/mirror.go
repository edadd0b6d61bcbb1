package replaytest

import "github.com/seqguard/go-replay"

// Mirror is a slow model of replay.Detector which remembers every accepted
// sequence number.
type Mirror struct {
	MaxSeq     uint64
	WindowSize uint64

	latest uint64
	seen   map[uint64]struct{}
}

func NewMirror(maxSeq, windowSize uint64) *Mirror {
	return &Mirror{
		MaxSeq:     maxSeq,
		WindowSize: windowSize,
		seen:       map[uint64]struct{}{},
	}
}

func (m *Mirror) Latest() uint64 {
	return m.latest
}

func (m *Mirror) CheckAndAccept(seq uint64) (bool, error) {
	if seq > m.MaxSeq {
		return false, replay.ErrOutOfRange{Seq: seq}
	}
	if seq <= m.latest {
		if m.latest-seq >= m.WindowSize {
			return false, replay.ErrOutOfRange{Seq: seq}
		}
		if _, exists := m.seen[seq]; exists {
			return false, replay.ErrDuplicate{Seq: seq}
		}
	}
	latest := m.latest == 0 || seq > m.latest
	if seq > m.latest {
		m.latest = seq
	}
	m.seen[seq] = struct{}{}
	return latest, nil
}

var _ replay.Checker = &Mirror{}
