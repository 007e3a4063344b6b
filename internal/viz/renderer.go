package viz

import (
	"errors"

	"github.com/san-kum/nbodyviz/internal/series"
)

var (
	// ErrNoExportTarget indicates Finalize was asked to export without a path.
	ErrNoExportTarget = errors.New("viz: no export target")

	// ErrNoFrames indicates an export with nothing captured.
	ErrNoFrames = errors.New("viz: no frames captured")

	// ErrExportUnsupported indicates an export request to a live renderer.
	ErrExportUnsupported = errors.New("viz: renderer cannot export")
)

// Renderer draws frames with a camera and theme established before the
// first Present call. Present is never called concurrently.
type Renderer interface {
	// Present draws one frame. Radii are indexed like the frame.
	Present(f series.Frame, radii []float64) error

	// Finalize ends the run. A non-empty exportTarget asks for every
	// presented frame to be written there; an empty one means the live view
	// stays up until the user closes it.
	Finalize(exportTarget string) error
}
