package replay

import "github.com/seqguard/go-replay/bitmask"

// Detector is a replay detector for sequence numbers which never wrap.
// The window is recorded in a Mask of type M, offset 0 being the latest accepted
// sequence number.
type Detector[M Mask] struct {
	window     M
	maxSeq     uint64
	windowSize uint64
	// latestSeq is 0 until something is accepted.
	latestSeq uint64
}

// New returns a Detector using mask as its window.
// mask must be zeroed and at least windowSize wide.
func New[M Mask](mask M, maxSeq, windowSize uint64) *Detector[M] {
	return &Detector[M]{
		window:     mask,
		maxSeq:     maxSeq,
		windowSize: windowSize,
	}
}

// NewDefault returns a Detector backed by bitmask.Words sized to windowSize.
// It panics if windowSize is 0.
func NewDefault(maxSeq, windowSize uint64) *Detector[*bitmask.Words] {
	return New(bitmask.NewWords(windowSize), maxSeq, windowSize)
}

// Config describes a Detector.
type Config struct {
	// Mask is the window to use.
	// If nil, a bitmask.Words of WindowSize is created.
	Mask Mask

	MaxSeq     uint64
	WindowSize uint64
}

func (c Config) Validate() error {
	if c.Mask == nil && c.WindowSize == 0 {
		return ErrZeroWindow
	}
	return nil
}

// NewFromConfig returns a Detector described by cfg.
func NewFromConfig(cfg Config) (*Detector[Mask], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mask := cfg.Mask
	if mask == nil {
		mask = bitmask.NewWords(cfg.WindowSize)
	}
	return New(mask, cfg.MaxSeq, cfg.WindowSize), nil
}

// Check returns an error if seq would be rejected.
// It does not modify the Detector.
func (d *Detector[M]) Check(seq uint64) error {
	if seq > d.maxSeq {
		return ErrOutOfRange{Seq: seq}
	}
	if seq <= d.latestSeq {
		diff := d.latestSeq - seq
		// below the lower end of the window
		if diff >= d.windowSize {
			return ErrOutOfRange{Seq: seq}
		}
		if d.window.Bit(diff) {
			return ErrDuplicate{Seq: seq}
		}
	}
	return nil
}

// CheckAndAccept records seq if Check accepts it.
// It returns true if seq is now the latest sequence number, and always on the first
// acceptance, even when 0 is accepted.
func (d *Detector[M]) CheckAndAccept(seq uint64) (bool, error) {
	if err := d.Check(seq); err != nil {
		return false, err
	}
	latest := d.latestSeq == 0
	// slide the window
	if seq > d.latestSeq {
		d.window.Shl(seq - d.latestSeq)
		d.latestSeq = seq
		latest = true
	}
	d.window.SetBit(d.latestSeq - seq)
	return latest, nil
}

// Latest returns the highest accepted sequence number, or 0 if none was accepted.
func (d *Detector[M]) Latest() uint64 {
	return d.latestSeq
}

func (d *Detector[M]) MaxSeq() uint64 {
	return d.maxSeq
}

func (d *Detector[M]) WindowSize() uint64 {
	return d.windowSize
}

// Mask returns the window, which is still owned by the Detector.
func (d *Detector[M]) Mask() M {
	return d.window
}
