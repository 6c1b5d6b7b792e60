package logs

import (
	"io"
	"os"
)

// Writer receives terminal log lines. Stdout is left to command output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
