package braille

import "errors"

var (
	// ErrSinkWrite indicates the render destination rejected a write.
	ErrSinkWrite = errors.New("braille: sink write failed")

	// ErrBadColor indicates an unparseable color specification.
	ErrBadColor = errors.New("braille: invalid color")

	// ErrUnknownRenderer indicates an unknown cell renderer name.
	ErrUnknownRenderer = errors.New("braille: unknown cell renderer")
)

// RenderError reports the row at which a frame was abandoned because the
// sink failed. Output written before the failure stays in the sink.
type RenderError struct {
	Row     int
	Wrapped error
}

func (e *RenderError) Error() string {
	return ErrSinkWrite.Error() + ": " + e.Wrapped.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}

// Is lets errors.Is(err, ErrSinkWrite) match any RenderError.
func (e *RenderError) Is(target error) bool {
	return target == ErrSinkWrite
}
