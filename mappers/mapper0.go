package mappers

import "fmt"

func init() {
	RegisterMapper(0, &mapper0{baseMapper: newBaseMapper(0, "NROM")})
}

// mapper0 implements NROM: a fixed 16 or 32 KiB PRG window with no bank
// switching. CHR reads and writes go straight to the cartridge's CHR data,
// so CHR is writable whether the header declares CHR ROM or CHR RAM.
type mapper0 struct {
	*baseMapper
}

func (m *mapper0) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000 && addr <= 0xBFFF:
		return m.rom.PrgRead(addr - 0x8000)
	case addr >= 0xC000:
		if m.rom.NumPrgBlocks() <= 1 {
			return m.rom.PrgRead(addr - 0xC000)
		}
		return m.rom.PrgRead(addr - 0x8000)
	default:
		panic(fmt.Sprintf("mapper0: PrgRead address out of range: %#x", addr))
	}
}

// PrgWrite is a no-op: NROM has no bank-select registers and program ROM is
// not writable.
func (m *mapper0) PrgWrite(addr uint16, val uint8) {}

func (m *mapper0) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(addr)
}

func (m *mapper0) ChrWrite(addr uint16, val uint8) {
	m.rom.ChrWrite(addr, val)
}
