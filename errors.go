package replay

import (
	"errors"
	"fmt"
)

var ErrZeroWindow = errors.New("replay: window size must be greater than 0")

// ErrDuplicate is returned when a sequence number has already been accepted.
type ErrDuplicate struct {
	Seq uint64
}

func (e ErrDuplicate) Error() string {
	return fmt.Sprintf("replay: sequence number %d is duplicated", e.Seq)
}

// ErrOutOfRange is returned when a sequence number is above the maximum,
// or too far behind the latest accepted one to tell if it was seen.
type ErrOutOfRange struct {
	Seq uint64
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("replay: sequence number %d is outside the window", e.Seq)
}

func IsErrDuplicate(err error) bool {
	return errors.As(err, &ErrDuplicate{})
}

func IsErrOutOfRange(err error) bool {
	return errors.As(err, &ErrOutOfRange{})
}
