package nesmem

import "testing"

func TestReadWrite(t *testing.T) {
	r := New(8)
	r.Write(3, 0x42)
	if got := r.Read(3); got != 0x42 {
		t.Errorf("Read(3) = %#x, want 0x42", got)
	}
}

func TestRead16LittleEndian(t *testing.T) {
	r := New(4)
	r.Write(0, 0x34)
	r.Write(1, 0x12)
	if got := r.Read16(0); got != 0x1234 {
		t.Errorf("Read16(0) = %#x, want 0x1234", got)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func(r *RAM)
	}{
		{"read", func(r *RAM) { r.Read(8) }},
		{"write", func(r *RAM) { r.Write(8, 1) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %s out of range", c.name)
				}
			}()
			c.fn(New(8))
		})
	}
}

func TestNewFromDoesNotCopy(t *testing.T) {
	b := make([]uint8, 4)
	r := NewFrom(b)
	r.Write(0, 9)
	if b[0] != 9 {
		t.Errorf("NewFrom should wrap the slice, not copy it")
	}
}
