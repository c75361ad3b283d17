// Package transfer streams a remote body to a local writer in fixed-size
// chunks while keeping a running byte total for progress display.
package transfer

import (
	"fmt"
	"io"
)

// ChunkSize is the size of each read during a copy.
const ChunkSize = 1024

// Progress is the running total of bytes transferred during one copy.
type Progress struct {
	Bytes int64
}

// Megabytes returns the total in whole megabytes. Both divisions are integer
// divisions, so the fractional part is always zero.
func (p Progress) Megabytes() float64 {
	return float64((p.Bytes / 1024) / 1024)
}

// Line renders the progress as a single line meant to overwrite itself.
func (p Progress) Line() string {
	return fmt.Sprintf("\rDownloading ... %.1f mb", p.Megabytes())
}

// Copy reads src in ChunkSize chunks and writes each to dst. report, if not
// nil, is called after every chunk with the cumulative progress. It returns
// the number of bytes written.
func Copy(dst io.Writer, src io.Reader, report func(Progress)) (int64, error) {
	var p Progress
	buf := make([]byte, ChunkSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			written, writeErr := dst.Write(buf[:n])
			p.Bytes += int64(written)
			if writeErr != nil {
				return p.Bytes, fmt.Errorf("writing chunk: %w", writeErr)
			}
			if written != n {
				return p.Bytes, fmt.Errorf("writing chunk: %w", io.ErrShortWrite)
			}
			if report != nil {
				report(p)
			}
		}
		if readErr == io.EOF {
			return p.Bytes, nil
		}
		if readErr != nil {
			return p.Bytes, fmt.Errorf("reading stream: %w", readErr)
		}
	}
}

// Reporter returns a report func that rewrites the progress line on w.
func Reporter(w io.Writer) func(Progress) {
	return func(p Progress) {
		fmt.Fprint(w, p.Line())
	}
}
