package replayconn

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the size of the counter in front of every frame.
const HeaderSize = 8

var ErrShortFrame = errors.New("replayconn: frame shorter than header")

// AppendFrame appends a frame carrying seq and payload to out.
func AppendFrame(out []byte, seq uint64, payload []byte) []byte {
	var buf [HeaderSize]byte
	binary.BigEndian.PutUint64(buf[:], seq)
	out = append(out, buf[:]...)
	return append(out, payload...)
}

// ParseFrame splits a frame into its counter and payload.
// The payload aliases frame.
func ParseFrame(frame []byte) (uint64, []byte, error) {
	if len(frame) < HeaderSize {
		return 0, nil, ErrShortFrame
	}
	return binary.BigEndian.Uint64(frame[:HeaderSize]), frame[HeaderSize:], nil
}
