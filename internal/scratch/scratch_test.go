package scratch

import (
	"errors"
	"math"
	"testing"
)

func TestAllocHeap(t *testing.T) {
	buf, err := Alloc[int32](1000, Options{})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(buf.Data) != 1000 {
		t.Errorf("len(Data) = %d, want 1000", len(buf.Data))
	}
	if buf.Kind() != "heap" {
		t.Errorf("Kind() = %q, want heap", buf.Kind())
	}
	if err := buf.Release(); err != nil {
		t.Errorf("Release: %v", err)
	}
	if buf.Data != nil {
		t.Error("Release should drop Data")
	}
}

func TestAllocHugePages(t *testing.T) {
	n := 1 << 20
	buf, err := Alloc[uint64](n, Options{HugePages: true})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	// Every slot must be writable and readable.
	for i := range buf.Data {
		buf.Data[i] = uint64(i)
	}
	for i, v := range buf.Data {
		if v != uint64(i) {
			t.Fatalf("Data[%d] = %d, want %d", i, v, i)
		}
	}
	if err := buf.Release(); err != nil {
		t.Errorf("Release: %v", err)
	}
	if err := buf.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}
}

func TestAllocTooLarge(t *testing.T) {
	_, err := Alloc[int64](math.MaxInt/4, Options{})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Alloc(huge) error = %v, want ErrTooLarge", err)
	}
}

func TestAllocMaxBytes(t *testing.T) {
	if _, err := Alloc[int32](100, Options{MaxBytes: 399}); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Alloc(400 bytes, cap 399) error = %v, want ErrTooLarge", err)
	}
	buf, err := Alloc[int32](100, Options{MaxBytes: 400})
	if err != nil {
		t.Fatalf("Alloc(400 bytes, cap 400): %v", err)
	}
	if len(buf.Data) != 100 {
		t.Errorf("len(Data) = %d, want 100", len(buf.Data))
	}
}

func TestAllocNegative(t *testing.T) {
	if _, err := Alloc[int32](-1, Options{}); err == nil {
		t.Error("Alloc(-1) should fail")
	}
}

func TestAllocEmpty(t *testing.T) {
	buf, err := Alloc[float64](0, Options{HugePages: true})
	if err != nil {
		t.Fatalf("Alloc(0): %v", err)
	}
	if len(buf.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(buf.Data))
	}
}
