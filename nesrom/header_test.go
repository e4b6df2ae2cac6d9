package nesrom

import (
	"reflect"
	"testing"
)

func TestParseHeader(t *testing.T) {
	cases := []struct {
		bytes      []byte
		wantHeader *header
		wantErr    bool
	}{
		{
			bytes: []byte{0x4e, 0x45, 0x53, 0x1a, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			wantHeader: &header{
				constant: "NES\x1a", prgSize: 2, chrSize: 1, flags6: 1,
				unused: []byte{0, 0, 0, 0, 0},
			},
		},
		{
			bytes:   []byte{'B', 'O', 'B', 0x1a, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			wantErr: true,
		},
		{
			bytes:   []byte{0x4e, 0x45, 0x53, 0x1a, 0x02},
			wantErr: true,
		},
	}
	for i, tc := range cases {
		h, err := parseHeader(tc.bytes)
		if (err != nil) != tc.wantErr {
			t.Errorf("%d: err = %v, wantErr %v", i, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			continue
		}
		if !reflect.DeepEqual(h, tc.wantHeader) {
			t.Errorf("%d: got %+v, want %+v", i, h, tc.wantHeader)
		}
	}
}

func TestNES2Format(t *testing.T) {
	cases := []struct {
		constant string
		flags7   uint8
		want     bool
	}{
		{"NES\x1a", 0x08, true},
		{"NES\x1a", 0x0C, false},
		{"BOB\x1a", 0x08, false},
	}

	for i, tc := range cases {
		h := &header{constant: tc.constant, flags7: tc.flags7}
		if got := h.isNES2Format(); got != tc.want {
			t.Errorf("%d: isNES2Format() = %v, want %v", i, got, tc.want)
		}
	}
}

func TestMapperNum(t *testing.T) {
	cases := []struct {
		flags6, flags7 uint8
		unused         []byte
		want           uint16
	}{
		{0xE0, 0xF0, []byte{0, 0, 0, 0, 0}, 0xFE}, // not NES2, last bytes zero: use full mapper byte
		{0xC0, 0xB0, []byte{0, 0, 1, 1, 1}, 0x0C}, // not NES2, last bytes not zero: ignore high nibble
	}

	for i, tc := range cases {
		h := &header{constant: "NES\x1a", flags6: tc.flags6, flags7: tc.flags7, unused: tc.unused}
		if got := h.mapperNum(); got != tc.want {
			t.Errorf("%d: mapperNum() = %#x, want %#x", i, got, tc.want)
		}
	}
}

func TestHasTrainer(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   bool
	}{
		{0xFF, true},
		{0x04, true},
		{0x0A, false},
	}

	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.hasTrainer(); got != tc.want {
			t.Errorf("%d: hasTrainer() = %v, want %v", i, got, tc.want)
		}
	}
}

func TestMirroringMode(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   uint8
	}{
		{0xFF, MirrorFourScreen},
		{0x00, MirrorHorizontal},
		{0x01, MirrorVertical},
		{0x08, MirrorFourScreen},
	}

	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.mirroringMode(); got != tc.want {
			t.Errorf("%d: mirroringMode() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestHasPrgRAM(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   bool
	}{
		{0, false},
		{batteryBackedMem, true},
	}

	for i, tc := range cases {
		h := &header{flags6: tc.flags6}
		if got := h.hasPrgRAM(); got != tc.want {
			t.Errorf("%d: hasPrgRAM() = %v, want %v", i, got, tc.want)
		}
	}
}
