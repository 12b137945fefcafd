package target

import "errors"

var (
	// ErrWorkerStart is returned when the background gatherer cannot be
	// brought up, usually due to an invalid Spec.
	ErrWorkerStart = errors.New("target: gatherer failed to start")

	// ErrDecode is returned when a gathered item cannot be decoded into
	// candidates. The stream is not resumable past a decode failure.
	ErrDecode = errors.New("target: malformed item in stream")

	// ErrStopTimeout is returned by Close when the gatherer goroutine
	// does not exit within the join timeout.
	ErrStopTimeout = errors.New("target: gatherer did not stop")
)
