package frame

import "testing"

type fakeSource struct {
	w, h   int
	fill   byte
	probes int
	reads  int
}

func (s *fakeSource) ReadScreen(dst []byte) (int, int) {
	if dst == nil {
		s.probes++
		return s.w, s.h
	}
	s.reads++
	for i := range dst {
		dst[i] = s.fill
	}
	return s.w, s.h
}

func TestAcquirer_ProbeDefaultsWhenUnreported(t *testing.T) {
	a := NewAcquirer(&fakeSource{})
	w, h := a.ProbeDimensions()
	if w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("expected default %dx%d, got %dx%d", DefaultWidth, DefaultHeight, w, h)
	}
	if w, h := (*Acquirer)(nil).ProbeDimensions(); w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("nil acquirer should report default, got %dx%d", w, h)
	}
}

func TestAcquirer_ProbeDoesNotCopy(t *testing.T) {
	src := &fakeSource{w: 320, h: 240}
	a := NewAcquirer(src)
	w, h := a.ProbeDimensions()
	if w != 320 || h != 240 {
		t.Fatalf("unexpected dims %dx%d", w, h)
	}
	if src.probes != 1 || src.reads != 0 {
		t.Fatalf("probe must pass nil buffer: probes=%d reads=%d", src.probes, src.reads)
	}
}

func TestAcquirer_AcquireFillsBuffer(t *testing.T) {
	src := &fakeSource{w: 2, h: 2, fill: 0xAB}
	a := NewAcquirer(src)
	var b Buffer
	if _, err := b.Ensure(2, 2); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	w, h := a.Acquire(&b)
	if w != 2 || h != 2 {
		t.Fatalf("unexpected dims %dx%d", w, h)
	}
	for i, v := range b.Pix() {
		if v != 0xAB {
			t.Fatalf("byte %d not filled: %x", i, v)
		}
	}
}

func TestAcquirer_AcquireUnsizedBufferIsNoop(t *testing.T) {
	src := &fakeSource{w: 2, h: 2}
	a := NewAcquirer(src)
	var b Buffer
	if w, h := a.Acquire(&b); w != 0 || h != 0 || src.reads != 0 {
		t.Fatalf("unsized buffer should not reach backend")
	}
}

func TestSourceFunc(t *testing.T) {
	var got []byte
	f := SourceFunc(func(dst []byte) (int, int) { got = dst; return 7, 9 })
	buf := make([]byte, 3)
	if w, h := f.ReadScreen(buf); w != 7 || h != 9 || len(got) != 3 {
		t.Fatalf("SourceFunc did not forward call")
	}
}
