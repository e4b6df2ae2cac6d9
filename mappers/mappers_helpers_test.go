package mappers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kwalton/nescore/nesrom"
)

// writeTempROM writes a minimal iNES file with the given mapper id encoded
// across flags6/flags7's high nibbles, and no trainer/playchoice data.
func writeTempROM(t *testing.T, prgBanks, chrBanks int, mapperID uint8) string {
	t.Helper()

	header := make([]byte, 16)
	copy(header, []byte("NES\x1a"))
	header[4] = byte(prgBanks)
	header[5] = byte(chrBanks)
	header[6] = (mapperID & 0x0F) << 4
	header[7] = mapperID & 0xF0

	prg := make([]byte, 16384*prgBanks)
	chr := make([]byte, 8192*chrBanks)

	path := filepath.Join(t.TempDir(), "test.nes")
	data := append(append(header, prg...), chr...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test ROM: %v", err)
	}
	return path
}

func mustLoad(t *testing.T, path string) *nesrom.ROM {
	t.Helper()
	rom, err := nesrom.New(path)
	if err != nil {
		t.Fatalf("nesrom.New(%q): %v", path, err)
	}
	return rom
}
