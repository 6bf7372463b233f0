package stream

import (
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"tcplink/conn"
)

func TestDataStream_LineRoundTrip(t *testing.T) {
	left, right := net.Pipe()
	a := NewDataStream(left)
	b := NewDataStream(right)
	defer a.Close()
	defer b.Close()

	done := make(chan struct{})
	go func() {
		if err := a.WriteLine("hello"); err != nil {
			t.Errorf("Failed to write line: %v", err)
		}
		close(done)
	}()

	line, err := b.ReadLine()
	if err != nil {
		t.Fatalf("Failed to read line: %v", err)
	}
	if line != "hello" {
		t.Errorf("Line mismatch. Got %q, want %q", line, "hello")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Writer did not finish")
	}
}

func TestDataStream_StripsCRLF(t *testing.T) {
	left, right := net.Pipe()
	a := NewDataStream(left)
	defer a.Close()
	defer right.Close()

	go func() {
		_, _ = right.Write([]byte("windows line\r\n"))
	}()

	line, err := a.ReadLine()
	if err != nil {
		t.Fatalf("Failed to read line: %v", err)
	}
	if line != "windows line" {
		t.Errorf("Line mismatch. Got %q, want %q", line, "windows line")
	}
}

func TestDataStream_ReadAfterPeerClose(t *testing.T) {
	left, right := net.Pipe()
	a := NewDataStream(left)
	defer a.Close()

	_ = right.Close()

	_, err := a.ReadLine()
	if err == nil {
		t.Fatal("Expected an error reading from a closed peer")
	}
	var streamErr *conn.StreamError
	if !errors.As(err, &streamErr) {
		t.Errorf("Expected a StreamError, got %T", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected the EOF to stay reachable through the wrap, got %v", err)
	}
}

func TestDataStream_RawPassThrough(t *testing.T) {
	left, right := net.Pipe()
	a := NewDataStream(left)
	defer a.Close()
	defer right.Close()

	go func() {
		_, _ = right.Write([]byte{0x00, 0x01, 0x02})
	}()

	buf := make([]byte, 3)
	if _, err := io.ReadFull(a, buf); err != nil {
		t.Fatalf("Failed to read raw bytes: %v", err)
	}
	if buf[0] != 0x00 || buf[1] != 0x01 || buf[2] != 0x02 {
		t.Errorf("Raw bytes mismatch: %v", buf)
	}
}
