// Package stream adapts a raw byte channel into buffered line-oriented text
// I/O. Text is UTF-8; lines are written with a trailing '\n' and read back
// with the terminator stripped ("\r\n" is tolerated on read).
package stream

import (
	"bufio"
	"io"
	"strings"

	"tcplink/conn"
)

type DataStream struct {
	rw     *bufio.ReadWriter
	closer io.Closer
}

func NewDataStream(channel io.ReadWriteCloser) *DataStream {
	return &DataStream{
		rw:     bufio.NewReadWriter(bufio.NewReader(channel), bufio.NewWriter(channel)),
		closer: channel,
	}
}

// ReadLine blocks until a full line arrives and returns it without the
// terminator.
func (s *DataStream) ReadLine() (string, error) {
	line, err := s.rw.ReadString('\n')
	if err != nil {
		return "", &conn.StreamError{Op: "read", Err: err}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// WriteLine writes the line, appends '\n' and flushes, so the peer sees the
// line without the caller batching anything.
func (s *DataStream) WriteLine(line string) error {
	if _, err := s.rw.WriteString(line); err != nil {
		return &conn.StreamError{Op: "write", Err: err}
	}
	if err := s.rw.WriteByte('\n'); err != nil {
		return &conn.StreamError{Op: "write", Err: err}
	}
	if err := s.rw.Flush(); err != nil {
		return &conn.StreamError{Op: "write", Err: err}
	}
	return nil
}

func (s *DataStream) Read(p []byte) (int, error) {
	return s.rw.Read(p)
}

func (s *DataStream) Write(p []byte) (int, error) {
	return s.rw.Write(p)
}

func (s *DataStream) Flush() error {
	if err := s.rw.Flush(); err != nil {
		return &conn.StreamError{Op: "write", Err: err}
	}
	return nil
}

// Close flushes buffered writes, then closes the underlying channel. Both
// steps are attempted even if the first fails.
func (s *DataStream) Close() error {
	return conn.CollectClose(
		s.rw.Flush,
		s.closer.Close,
	)
}
