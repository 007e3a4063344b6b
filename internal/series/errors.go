package series

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader indicates the first line is not two non-negative integers.
	ErrMalformedHeader = errors.New("series: malformed header")

	// ErrTruncatedStream indicates the stream ended before every promised record.
	ErrTruncatedStream = errors.New("series: truncated stream")

	// ErrMalformedRecord indicates a data line that is not four floats.
	ErrMalformedRecord = errors.New("series: malformed record")

	// ErrIndexOutOfRange indicates a frame or body index outside the store.
	ErrIndexOutOfRange = errors.New("series: index out of range")

	// ErrShapeMismatch indicates a frame whose length differs from the body count.
	ErrShapeMismatch = errors.New("series: frame length does not match body count")
)

// DecodeError wraps a decode failure with the 1-based line it occurred on.
type DecodeError struct {
	Line int
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
