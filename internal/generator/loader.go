package generator

import (
	"bytes"
	"fmt"
	"os"
)

// Loader reads whole files into an internal buffer that is reused
// across calls. The slice returned by Load is only valid until the next
// call; callers must consume it before loading the next file.
type Loader struct {
	buf bytes.Buffer
}

// Load reads the file at path in full, binary-mode, and returns its
// bytes. The error carries the offending path.
func (l *Loader) Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	defer f.Close()

	l.buf.Reset()
	if _, err := l.buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	return l.buf.Bytes(), nil
}
