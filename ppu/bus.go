package ppu

// ppuBusRead and ppuBusWrite implement the PPU bus address decode of
// character data, VRAM (with mirroring) and palette RAM described in the
// system's memory map.
const (
	vramBase    = 0x2000
	vramMirror  = 0x3000
	vramTop     = 0x3EFF
	paletteBase = 0x3F00
)

func (p *PPU) ppuBusRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < vramBase:
		return p.bus.ChrRead(addr)
	case addr < paletteBase:
		return p.vram.Read(uint32(p.vramOffset(addr)))
	default:
		return p.readPalette(addr - paletteBase)
	}
}

func (p *PPU) ppuBusWrite(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < vramBase:
		p.bus.ChrWrite(addr, val)
	case addr < paletteBase:
		p.vram.Write(uint32(p.vramOffset(addr)), val)
	default:
		p.writePalette(addr-paletteBase, val)
	}
}

// vramOffset folds a 0x2000-0x3EFF address into a 0-2047 VRAM index, routing
// the four logical name-table quadrants through horizontal or vertical
// mirroring onto the two physical 1KB pages.
func (p *PPU) vramOffset(addr uint16) uint16 {
	a := addr
	if a >= vramMirror && a <= vramTop {
		a -= 0x1000
	}
	rel := a - vramBase
	quadrant := rel / 0x0400
	within := rel % 0x0400

	page := quadrant % 2 // vertical: 0,2 -> page 0; 1,3 -> page 1
	if p.horizontalMirroring {
		page = quadrant / 2 // horizontal: 0,1 -> page 0; 2,3 -> page 1
	}
	return page*0x0400 + within
}

// readPalette and writePalette implement the palette RAM's background/
// sprite color-zero aliasing: a read of every fourth entry (the "color 0"
// slot of each of the 8 on-screen palettes) returns the universal
// background color at index 0, and a write to 0x10/0x14/0x18/0x1C lands at
// 0x00/0x04/0x08/0x0C.
func (p *PPU) readPalette(rel uint16) uint8 {
	rel &= 0x1F
	if rel%4 == 0 {
		rel = 0
	}
	return p.paletteMem.Read(uint32(rel))
}

func (p *PPU) writePalette(rel uint16, val uint8) {
	rel &= 0x1F
	switch rel {
	case 0x10, 0x14, 0x18, 0x1C:
		rel -= 0x10
	}
	p.paletteMem.Write(uint32(rel), val)
}

func (p *PPU) backgroundPalette(id uint8) [4]uint8 {
	base := uint16(id) * 4
	var out [4]uint8
	for i := range out {
		out[i] = p.readPalette(base + uint16(i))
	}
	return out
}

func (p *PPU) spritePalette(id uint8) [4]uint8 {
	base := 0x10 + uint16(id)*4
	var out [4]uint8
	for i := range out {
		out[i] = p.readPalette(base + uint16(i))
	}
	return out
}

// fetchPattern reads the 16-byte, two-bit-plane pattern for tileID from the
// pattern table starting at base (0x0000 or 0x1000).
func (p *PPU) fetchPattern(base uint16, tileID uint8) [16]uint8 {
	var out [16]uint8
	start := base + uint16(tileID)*16
	for i := range out {
		out[i] = p.ppuBusRead(start + uint16(i))
	}
	return out
}
