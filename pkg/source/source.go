// Package source concatenates files and stdin into a single byte stream.
package source

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the filename that selects standard input instead of a file.
const Stdin = "-"

// Reader reads an ordered list of byte sources as one stream. Sources are
// consumed strictly in order; each source is closed and permanently
// discarded once it reports end of stream. A single Read never returns
// bytes from more than one source.
type Reader struct {
	sources []io.ReadCloser
}

// Open builds a Reader over the named files, opening every file before any
// byte is read so that a missing or unreadable file fails up front rather
// than mid-stream. The name "-" selects standard input, as does an empty
// filename list.
func Open(filenames []string) (*Reader, error) {
	return openAll(filenames, stdinSource)
}

// openAll is Open with the standard input provider injected for tests.
func openAll(filenames []string, stdin func() io.ReadCloser) (*Reader, error) {
	if len(filenames) == 0 {
		return NewReader(stdin()), nil
	}
	sources := make([]io.ReadCloser, 0, len(filenames))
	for _, filename := range filenames {
		if filename == Stdin {
			sources = append(sources, stdin())
			continue
		}
		f, err := os.Open(filename)
		if err != nil {
			for _, s := range sources {
				s.Close()
			}
			return nil, fmt.Errorf("failed to open %s: %w", filename, err)
		}
		sources = append(sources, f)
	}
	return NewReader(sources...), nil
}

// NewReader builds a Reader directly from already-open sources: files,
// network connections, buffers, test doubles. The sources are consumed as
// given, in order.
func NewReader(sources ...io.ReadCloser) *Reader {
	return &Reader{sources: sources}
}

// stdinSource wraps os.Stdin so that discarding it does not close the
// process's real descriptor.
func stdinSource() io.ReadCloser {
	return io.NopCloser(os.Stdin)
}

// Read returns bytes from the head source only. When the head reports end
// of stream it is closed and dropped and the read moves on to the next
// source. Once every source is exhausted Read reports io.EOF. Any other
// read error is returned as is without dropping the failing source, so a
// retry hits the same source again instead of silently skipping the rest
// of its data.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.sources) > 0 {
		n, err := r.sources[0].Read(p)
		if err == io.EOF {
			r.sources[0].Close()
			r.sources = r.sources[1:]
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
	return 0, io.EOF
}

// Close closes every source that has not yet been exhausted. All sources
// are closed even if some fail; the first error wins.
func (r *Reader) Close() error {
	var firstErr error
	for _, s := range r.sources {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.sources = nil
	return firstErr
}
