// internal/writers/report.go
package writers

import (
	"io"

	"isru-core/report"
)

// StartReportWriter spins up a writer goroutine. Close the returned channel
// when done and read exactly one value from the error channel.
// After the first write error the goroutine keeps draining so senders never block.
func StartReportWriter(out io.Writer, opts Options, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		sink, err := NewSink(out, opts)
		for r := range in {
			if err != nil {
				continue
			}
			err = sink.Write(r)
		}
		if err == nil {
			err = sink.Close()
		}
		errCh <- err
	}()

	return in, errCh
}
