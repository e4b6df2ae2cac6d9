package ppu

// BackgroundCell is one 8x8 tile's worth of background rendering data,
// built once per background line (every 8th scanline) and consumed by the
// compositor once per frame.
type BackgroundCell struct {
	tile

	Palette [4]uint8
	ScrollX uint16
	ScrollY uint16
	Visible bool
}

// BackgroundLine is one row of 32 background cells.
type BackgroundLine [32]BackgroundCell

// RenderingData is the frame output handed from the PPU to the
// framebuffer compositor once per emulated frame.
type RenderingData struct {
	Background [30]BackgroundLine
	Sprites    [64]SpriteRecord
}

// effectiveScroll folds the base name-table id selected by PPUCTRL bits 0-1
// into the written scroll position, matching the coarse-scroll rule this
// implementation uses in place of the hardware's fine-X/coarse-X loopy
// v/t/x registers.
func (p *PPU) effectiveScroll() (x, y uint16) {
	ntID := uint16(p.control & ctrlNametableMask)
	x = uint16(p.scroll.x) + (ntID%2)*256
	y = uint16(p.scroll.y) + (ntID/2)*256
	return x, y
}

// buildBackgroundLine constructs the 32-cell background line for the
// visible scanline row, fetching each tile's name/attribute/pattern/palette
// data through the PPU bus.
func (p *PPU) buildBackgroundLine(row int) BackgroundLine {
	patternBase := uint16(0)
	if p.control&ctrlBackgroundPattern != 0 {
		patternBase = 0x1000
	}

	effX, effY := p.effectiveScroll()
	visible := p.mask&maskShowBackground != 0

	tileY := ((uint16(row) + effY) / 8) % 60

	var line BackgroundLine
	for col := 0; col < 32; col++ {
		tileX := ((uint16(col)*8 + effX) / 8) % 64

		ntBase := vramBase + (tileX/32)*0x0400 + (tileY/30)*0x0800
		ntAddr := ntBase + (tileX % 32) + (tileY%30)*32
		attrAddr := ntBase + 0x03C0 + (tileX%32)/4 + (tileY%30)/4*8

		tileID := p.ppuBusRead(ntAddr)
		attr := p.ppuBusRead(attrAddr)
		paletteID := (attr >> (((tileX%4)/2 + (tileY%4)/2*2) * 2)) & 0x03

		line[col] = BackgroundCell{
			tile:    tile{pattern: p.fetchPattern(patternBase, tileID)},
			Palette: p.backgroundPalette(paletteID),
			ScrollX: effX,
			ScrollY: effY,
			Visible: visible,
		}
	}
	return line
}
