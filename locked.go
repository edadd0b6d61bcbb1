package replay

import "sync"

// Locked serializes calls to a Checker.
type Locked struct {
	mu sync.Mutex
	c  Checker
}

func NewLocked(c Checker) *Locked {
	return &Locked{c: c}
}

func (l *Locked) CheckAndAccept(seq uint64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.CheckAndAccept(seq)
}

var (
	_ Checker = &Locked{}
	_ Checker = &Detector[Mask]{}
)
