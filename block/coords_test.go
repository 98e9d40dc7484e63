package block

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
)

func TestDebugPrintTo_DefaultsToZero(t *testing.T) {
	var buf bytes.Buffer
	if err := New("abc").DebugPrintTo(&buf); err != nil {
		t.Fatalf("DebugPrintTo: %v", err)
	}
	if got, want := buf.String(), "0 0 0\n"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

func TestDebugPrintTo_IgnoresText(t *testing.T) {
	b := New("hello")
	b.SetCoords(Coords{X: -1, Y: 20, Z: 300})

	var buf bytes.Buffer
	if err := b.DebugPrintTo(&buf); err != nil {
		t.Fatalf("DebugPrintTo: %v", err)
	}
	if got, want := buf.String(), "-1 20 300\n"; got != want {
		t.Fatalf("output=%q, want %q", got, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestDebugPrintTo_ReportsWriteError(t *testing.T) {
	if err := New("").DebugPrintTo(failWriter{}); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("got %v, want io.ErrClosedPipe", err)
	}
}

func TestDebugPrint_WritesStdout(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	var b TextBlock
	b.SetCoords(Coords{X: 7, Y: 8, Z: 9})
	b.DebugPrint()
	_ = w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(out), "7 8 9\n"; got != want {
		t.Fatalf("stdout=%q, want %q", got, want)
	}
}
