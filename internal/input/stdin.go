package input

import (
	"fmt"
	"io"

	"github.com/loopcontext/msgtool"
)

// CaptureIfEmpty returns files unchanged when any were resolved.
// Otherwise it reads r to end-of-input and returns a single synthetic
// unit carrying the accumulated text under virtualName. This is the
// only blocking wait in a command invocation and runs strictly after
// validation; no timeout is applied, the stream's own EOF terminates it.
func CaptureIfEmpty(r io.Reader, files []msgtool.SourceUnit, virtualName string) ([]msgtool.SourceUnit, error) {
	if len(files) > 0 {
		return files, nil
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []msgtool.SourceUnit{msgtool.SyntheticUnit(string(content), virtualName)}, nil
}
