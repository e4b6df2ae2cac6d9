package ppu

// tile is the per-pixel color-id lookup shared by background cells and
// sprite records: two 8-byte bit planes fetched from a pattern table.
type tile struct {
	pattern [16]uint8
}

// PaletteOffset returns the 2-bit palette index for intra-tile pixel
// (ox, oy), combining the low and high bit planes.
func (t tile) PaletteOffset(ox, oy int) uint8 {
	low, high := t.pattern[oy], t.pattern[oy+8]
	return (low>>(7-ox))&1 | (((high >> (7 - ox)) & 1) << 1)
}

// SpriteRecord is one of up to 64 sprites rebuilt from OAM at the start of
// each frame.
type SpriteRecord struct {
	tile

	X, Y        uint8
	Palette     [4]uint8
	LowPriority bool
	FlipH, FlipV bool
}

// buildSprites rebuilds the 64-entry sprite list from the raw OAM bytes,
// resolving each sprite's pattern and palette up front so the compositor
// never has to touch OAM or VRAM directly.
func (p *PPU) buildSprites() [64]SpriteRecord {
	patternBase := uint16(0)
	if p.control&ctrlSpritePattern != 0 {
		patternBase = 0x1000
	}

	var out [64]SpriteRecord
	for i := range out {
		base := uint32(i * 4)
		y := p.oamMem.Read(base)
		tileID := p.oamMem.Read(base + 1)
		attr := p.oamMem.Read(base + 2)
		x := p.oamMem.Read(base + 3)

		out[i] = SpriteRecord{
			tile:        tile{pattern: p.fetchPattern(patternBase, tileID)},
			X:           x,
			Y:           y,
			Palette:     p.spritePalette(attr & 0x03),
			LowPriority: attr&0x20 != 0,
			FlipH:       attr&0x40 != 0,
			FlipV:       attr&0x80 != 0,
		}
	}
	return out
}
