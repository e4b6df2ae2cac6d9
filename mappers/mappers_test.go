package mappers

import "testing"

func TestGetUnknownMapperErrors(t *testing.T) {
	path := writeTempROM(t, 1, 1, 99)
	rom := mustLoad(t, path)

	if _, err := Get(rom); err == nil {
		t.Errorf("Get() with mapper id 99: got nil error, want non-nil")
	}
}

func TestGetMapper0NROM(t *testing.T) {
	path := writeTempROM(t, 1, 1, 0)
	rom := mustLoad(t, path)

	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}
	if m.Name() != "NROM" {
		t.Errorf("Name() = %q, want NROM", m.Name())
	}
}

func TestMapper0Mirrors16KPRGAcrossBothWindows(t *testing.T) {
	path := writeTempROM(t, 1, 1, 0)
	rom := mustLoad(t, path)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}

	rom.PrgWrite(0x0010, 0xAB)
	if got := m.PrgRead(0x8010); got != 0xAB {
		t.Errorf("PrgRead(0x8010) = %#x, want 0xAB", got)
	}
	if got := m.PrgRead(0xC010); got != 0xAB {
		t.Errorf("PrgRead(0xC010) = %#x, want 0xAB (16K PRG mirrors into the C000 window)", got)
	}
}

func TestMapper0ChrReadWrite(t *testing.T) {
	path := writeTempROM(t, 1, 1, 0)
	rom := mustLoad(t, path)
	m, err := Get(rom)
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}

	m.ChrWrite(5, 0x7E)
	if got := m.ChrRead(5); got != 0x7E {
		t.Errorf("ChrRead(5) = %#x, want 0x7E", got)
	}
}
